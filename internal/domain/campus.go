package domain

import (
	"context"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// ListCampusesQuery carries the parsed campus list parameters.
type ListCampusesQuery struct {
	Search   string
	Grades   []string
	MinScore *float64
	MaxScore *float64
	SortKey  string
	SortDir  string
	Page     int
	PageSize int
}

// CampusList is one page of campuses plus the pre-pagination total.
type CampusList struct {
	Items    []*entity.Campus
	Total    int
	Page     int
	PageSize int
}

// CampusRepository serves campus entities built from the loaded dataset.
type CampusRepository interface {
	List(ctx context.Context) ([]*entity.Campus, error)

	GetByID(ctx context.Context, canonID string) (*entity.Campus, error)

	// ListByDistrict returns a district's campuses sorted by score descending,
	// unscored campuses last, ties broken by name.
	ListByDistrict(ctx context.Context, districtCanonID string) ([]*entity.Campus, error)

	Fields(ctx context.Context) (schema.FieldMap, error)
}

// CampusUsecase is the campus query surface.
type CampusUsecase interface {
	List(ctx context.Context, q ListCampusesQuery) (*CampusList, error)
	Get(ctx context.Context, id string) (*entity.Campus, error)
	ListByDistrict(ctx context.Context, districtID string) ([]*entity.Campus, error)
}
