package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	hzerrors "github.com/cloudwego/hertz/pkg/common/errors"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
)

// DefaultFetchTimeout is the abort deadline for a single dataset fetch.
const DefaultFetchTimeout = 12 * time.Second

// Fetcher retrieves the raw bytes of a source dataset.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches datasets over HTTP with an abort timeout. Failures are
// returned as typed domain errors so callers can tell a timeout from any
// other transport failure.
type HTTPFetcher struct {
	client  *client.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewHTTPFetcher creates a fetcher. A non-positive timeout falls back to
// DefaultFetchTimeout.
func NewHTTPFetcher(timeout time.Duration, logger *slog.Logger) (*HTTPFetcher, error) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	c, err := client.NewClient(
		client.WithDialTimeout(10 * time.Second),
		client.WithMaxIdleConnDuration(60 * time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return &HTTPFetcher{client: c, timeout: timeout, logger: logger}, nil
}

// Fetch GETs url and returns the body. Non-2xx responses and network
// failures map to transport errors; deadline overruns map to timeout errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(url)

	start := time.Now()
	err := f.client.DoTimeout(ctx, req, resp, f.timeout)
	if err != nil {
		if errors.Is(err, hzerrors.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			f.logger.Warn("dataset fetch timed out", "url", url, "timeout", f.timeout)
			return nil, domain.NewTimeoutError(url)
		}
		f.logger.Warn("dataset fetch failed", "url", url, "error", err)
		return nil, domain.NewTransportError(url, err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		f.logger.Warn("dataset fetch returned non-2xx", "url", url, "status", status)
		return nil, domain.NewTransportError(url, fmt.Errorf("HTTP %d", status))
	}

	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)

	f.logger.Debug("dataset fetched",
		"url", url,
		"bytes", len(out),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
