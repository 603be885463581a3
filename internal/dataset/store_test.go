package dataset

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

type fakeFetcher struct {
	calls int32
	body  []byte
	err   error
	block chan struct{}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func TestStoreLoadsOnce(t *testing.T) {
	f := &fakeFetcher{body: []byte("DISTRICT_N,NAME\n015901,Alamo Heights ISD\n")}
	s := NewStore(f, discard())

	for i := 0; i < 3; i++ {
		ds, err := s.CSV(context.Background(), "districts", "http://example/d.csv", schema.DistrictSpecs)
		if err != nil {
			t.Fatalf("CSV: %v", err)
		}
		if len(ds.Table.Rows) != 1 {
			t.Fatalf("rows = %d", len(ds.Table.Rows))
		}
	}
	if got := atomic.LoadInt32(&f.calls); got != 1 {
		t.Errorf("fetch calls = %d, want 1", got)
	}
}

func TestStoreCoalescesConcurrentLoads(t *testing.T) {
	f := &fakeFetcher{
		body:  []byte("DISTRICT_N\n1\n"),
		block: make(chan struct{}),
	}
	s := NewStore(f, discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CSV(context.Background(), "districts", "http://example/d.csv", schema.DistrictSpecs)
			if err != nil {
				t.Errorf("CSV: %v", err)
			}
		}()
	}
	close(f.block)
	wg.Wait()

	if got := atomic.LoadInt32(&f.calls); got != 1 {
		t.Errorf("fetch calls = %d, want concurrent loads coalesced to 1", got)
	}
}

func TestStoreDoesNotCacheFailures(t *testing.T) {
	f := &fakeFetcher{err: domain.NewTransportError("http://example/d.csv", errors.New("boom"))}
	s := NewStore(f, discard())

	if _, err := s.CSV(context.Background(), "districts", "http://example/d.csv", schema.DistrictSpecs); err == nil {
		t.Fatal("expected transport error")
	}

	// Upstream recovers; the next call must refetch instead of replaying the
	// cached failure.
	f.err = nil
	f.body = []byte("DISTRICT_N\n1\n")
	ds, err := s.CSV(context.Background(), "districts", "http://example/d.csv", schema.DistrictSpecs)
	if err != nil {
		t.Fatalf("CSV after recovery: %v", err)
	}
	if len(ds.Table.Rows) != 1 {
		t.Errorf("rows = %d", len(ds.Table.Rows))
	}
}

func TestStoreUnconfiguredURL(t *testing.T) {
	s := NewStore(&fakeFetcher{}, discard())
	_, err := s.CSV(context.Background(), "spending", "", schema.SpendingSpecs)
	if !domain.IsUnavailable(err) {
		t.Errorf("err = %v, want dataset-unavailable", err)
	}
	if _, err := s.JSON(context.Background(), "geo", ""); !domain.IsUnavailable(err) {
		t.Errorf("JSON err = %v, want dataset-unavailable", err)
	}
}
