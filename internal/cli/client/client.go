// Package client is the HTTP client for the ledger API server.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/jab1897/LoneStarLedger5/internal/cli/types"
)

// prefixCandidates are tried in order when the server's route prefix is
// unknown. Deployments differ in whether the API is mounted at the root or
// under a versioned prefix.
var prefixCandidates = []string{"", "/api", "/v1", "/api/v1", "/v1/api"}

// APIClient wraps a Hertz client with route prefix detection.
type APIClient struct {
	client *client.Client
	server string

	prefix      string
	prefixKnown bool
}

// NewAPIClient creates a client. cachedPrefix, when non-empty, skips probing.
func NewAPIClient(server, cachedPrefix string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client:      c,
		server:      normalizedServer,
		prefix:      cachedPrefix,
		prefixKnown: cachedPrefix != "",
	}, nil
}

// Prefix returns the detected route prefix, for callers that cache it.
func (c *APIClient) Prefix() string {
	return c.prefix
}

// normalizeServerURL ensures the server address has a scheme and no path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// detectPrefix probes the candidate prefixes with a cheap districts request
// until one answers, then caches the winner for the rest of the process.
func (c *APIClient) detectPrefix(ctx context.Context) error {
	if c.prefixKnown {
		return nil
	}
	for _, candidate := range prefixCandidates {
		status, _, err := c.doGet(ctx, c.server+candidate+"/districts?page_size=1")
		if err != nil {
			continue
		}
		if status == consts.StatusOK {
			c.prefix = candidate
			c.prefixKnown = true
			return nil
		}
	}
	return fmt.Errorf("could not locate the API on %s (tried prefixes %v)", c.server, prefixCandidates)
}

// doGet performs one GET and returns the status and a copy of the body.
func (c *APIClient) doGet(ctx context.Context, fullURL string) (int, []byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(fullURL)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}

	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)
	return resp.StatusCode(), out, nil
}

// get fetches path (with optional query) under the detected prefix and
// returns the body of a 2xx response.
func (c *APIClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.detectPrefix(ctx); err != nil {
		return nil, err
	}

	fullURL := c.server + c.prefix + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	status, body, err := c.doGet(ctx, fullURL)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, apiError(status, body)
	}
	return body, nil
}

// apiError surfaces the server's envelope message when one is present.
func apiError(status int, body []byte) error {
	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := sonic.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s (HTTP %d)", envelope.Message, status)
	}
	return fmt.Errorf("request failed with HTTP status %d", status)
}

// decode parses the response envelope and returns its data.
func decode[T any](body []byte) (*T, error) {
	var resp types.APIResponse[T]
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &resp.Data, nil
}
