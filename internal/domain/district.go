package domain

import (
	"context"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// ListDistrictsQuery carries the parsed district list parameters from the
// handler layer. Pointer bounds are nil when the caller did not set them.
type ListDistrictsQuery struct {
	Search        string
	Counties      []string
	MinEnrollment *float64
	MaxEnrollment *float64
	SortKey       string
	SortDir       string
	Page          int
	PageSize      int
}

// DistrictList is one page of districts plus the pre-pagination total.
type DistrictList struct {
	Items    []*entity.District
	Total    int
	Page     int
	PageSize int
}

// DistrictRepository serves district entities built from the loaded dataset.
type DistrictRepository interface {
	// List returns every district in source row order.
	List(ctx context.Context) ([]*entity.District, error)

	// GetByID looks a district up by canonical id.
	GetByID(ctx context.Context, canonID string) (*entity.District, error)

	// Counties returns the distinct county names, sorted.
	Counties(ctx context.Context) ([]string, error)

	// Fields reports which headers the detection pass bound to each field.
	Fields(ctx context.Context) (schema.FieldMap, error)

	// Stats returns the statewide aggregate over the full table.
	Stats(ctx context.Context) (*entity.StateStats, error)
}

// DistrictUsecase is the district query surface.
type DistrictUsecase interface {
	List(ctx context.Context, q ListDistrictsQuery) (*DistrictList, error)
	Get(ctx context.Context, id string) (*entity.District, error)
	Counties(ctx context.Context) ([]string, error)
}
