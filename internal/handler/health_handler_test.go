package handler

import (
	"context"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// readinessDistrictRepo fails every call with err when it is set.
type readinessDistrictRepo struct {
	err error
}

func (r *readinessDistrictRepo) List(ctx context.Context) ([]*entity.District, error) {
	return nil, r.err
}

func (r *readinessDistrictRepo) GetByID(ctx context.Context, canonID string) (*entity.District, error) {
	return nil, r.err
}

func (r *readinessDistrictRepo) Counties(ctx context.Context) ([]string, error) {
	return nil, r.err
}

func (r *readinessDistrictRepo) Fields(ctx context.Context) (schema.FieldMap, error) {
	if r.err != nil {
		return nil, r.err
	}
	return schema.FieldMap{}, nil
}

func (r *readinessDistrictRepo) Stats(ctx context.Context) (*entity.StateStats, error) {
	return nil, r.err
}

func TestReadinessChecksDistrictDataset(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantReady bool
	}{
		{name: "dataset loads", err: nil, wantReady: true},
		{name: "url unconfigured", err: domain.NewUnavailableError("districts"), wantReady: true},
		{name: "upstream unreachable", err: domain.NewTransportError("http://example.com/districts.csv", context.DeadlineExceeded), wantReady: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(&readinessDistrictRepo{err: tt.err})
			err := h.checkReady(context.Background())
			if ready := err == nil; ready != tt.wantReady {
				t.Errorf("ready = %v (err = %v), want %v", ready, err, tt.wantReady)
			}
		})
	}
}
