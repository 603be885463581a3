package usecase

import (
	"context"
	"log/slog"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/query"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// Pagination bounds shared by the list usecases.
const (
	defaultPageSize = 50
	maxPageSize     = 500
)

var districtSortKeys = map[string]bool{
	"name": true, "county": true, "enrollment": true,
	"spending": true, "debt": true, "teacher_salary": true,
}

// districtUsecase implements domain.DistrictUsecase.
type districtUsecase struct {
	repo   domain.DistrictRepository
	logger *slog.Logger
}

func NewDistrictUsecase(repo domain.DistrictRepository, logger *slog.Logger) domain.DistrictUsecase {
	return &districtUsecase{repo: repo, logger: logger}
}

func (u *districtUsecase) List(ctx context.Context, q domain.ListDistrictsQuery) (*domain.DistrictList, error) {
	opts, err := buildOptions(q.SortKey, q.SortDir, "name", districtSortKeys, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	opts.Text = q.Search
	opts.Categories = q.Counties
	opts.MinValue = q.MinEnrollment
	opts.MaxValue = q.MaxEnrollment

	districts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page, total := query.Apply(districts, opts)
	return &domain.DistrictList{
		Items:    page,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

func (u *districtUsecase) Get(ctx context.Context, id string) (*entity.District, error) {
	canon := schema.CanonicalID(id)
	if canon == "" {
		return nil, domain.NewInvalidInputError("district id must contain digits")
	}
	return u.repo.GetByID(ctx, canon)
}

func (u *districtUsecase) Counties(ctx context.Context) ([]string, error) {
	return u.repo.Counties(ctx)
}

// buildOptions validates the shared sort and pagination parameters. The sort
// direction defaults to ascending; page and page size are clamped rather
// than rejected.
func buildOptions(sortKey, sortDir, defaultKey string, validKeys map[string]bool, page, pageSize int) (query.Options, error) {
	if sortKey == "" {
		sortKey = defaultKey
	}
	if !validKeys[sortKey] {
		return query.Options{}, domain.NewInvalidInputError("unknown sort key: " + sortKey)
	}

	var dir query.Order
	switch sortDir {
	case "", "asc":
		dir = query.Asc
	case "desc":
		dir = query.Desc
	default:
		return query.Options{}, domain.NewInvalidInputError("sort direction must be 'asc' or 'desc'")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return query.Options{
		SortKey:  sortKey,
		SortDir:  dir,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
