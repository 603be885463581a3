package dataset

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// Dataset is one fully loaded CSV source: the parsed table and the field map
// resolved against its headers. Both are immutable once built.
type Dataset struct {
	Table  *Table
	Fields schema.FieldMap
}

// Store is the per-process dataset cache. Each named dataset is fetched,
// parsed, and header-resolved at most once per process lifetime; concurrent
// first callers coalesce onto a single in-flight load. Failed loads are not
// cached, so a transient upstream failure is retried on the next request.
// There is no invalidation short of a process restart.
type Store struct {
	fetcher Fetcher
	logger  *slog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	csv   map[string]*Dataset
	raw   map[string][]byte
}

// NewStore creates an empty store over the given fetcher.
func NewStore(fetcher Fetcher, logger *slog.Logger) *Store {
	return &Store{
		fetcher: fetcher,
		logger:  logger,
		csv:     make(map[string]*Dataset),
		raw:     make(map[string][]byte),
	}
}

// CSV returns the named CSV dataset, loading it on first use. An empty url
// means the dataset was never configured and yields a configuration error.
func (s *Store) CSV(ctx context.Context, name, url string, specs schema.Specs) (*Dataset, error) {
	if url == "" {
		return nil, domain.NewUnavailableError(name)
	}

	s.mu.RLock()
	ds, ok := s.csv[name]
	s.mu.RUnlock()
	if ok {
		return ds, nil
	}

	v, err, _ := s.group.Do("csv:"+name, func() (interface{}, error) {
		s.mu.RLock()
		cached, ok := s.csv[name]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		body, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		table := DecodeCSV(bytes.NewReader(body), s.logger)
		fields := schema.ResolveAll(table.Headers, specs)
		ds := &Dataset{Table: table, Fields: fields}

		s.logger.Info("dataset loaded",
			"dataset", name,
			"rows", len(table.Rows),
			"detected_fields", len(fields),
		)

		s.mu.Lock()
		s.csv[name] = ds
		s.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

// JSON returns the raw bytes of a named JSON (GeoJSON) source, loading it on
// first use with the same coalescing and caching rules as CSV.
func (s *Store) JSON(ctx context.Context, name, url string) ([]byte, error) {
	if url == "" {
		return nil, domain.NewUnavailableError(name)
	}

	s.mu.RLock()
	body, ok := s.raw[name]
	s.mu.RUnlock()
	if ok {
		return body, nil
	}

	v, err, _ := s.group.Do("json:"+name, func() (interface{}, error) {
		s.mu.RLock()
		cached, ok := s.raw[name]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		body, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		s.logger.Info("geojson loaded", "dataset", name, "bytes", len(body))

		s.mu.Lock()
		s.raw[name] = body
		s.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
