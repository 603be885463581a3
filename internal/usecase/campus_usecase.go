package usecase

import (
	"context"
	"log/slog"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/query"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

var campusSortKeys = map[string]bool{
	"name": true, "score": true, "grade": true, "teacher_count": true,
}

// campusUsecase implements domain.CampusUsecase.
type campusUsecase struct {
	repo   domain.CampusRepository
	logger *slog.Logger
}

func NewCampusUsecase(repo domain.CampusRepository, logger *slog.Logger) domain.CampusUsecase {
	return &campusUsecase{repo: repo, logger: logger}
}

func (u *campusUsecase) List(ctx context.Context, q domain.ListCampusesQuery) (*domain.CampusList, error) {
	opts, err := buildOptions(q.SortKey, q.SortDir, "name", campusSortKeys, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	opts.Text = q.Search
	opts.Categories = q.Grades
	opts.MinValue = q.MinScore
	opts.MaxValue = q.MaxScore

	campuses, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page, total := query.Apply(campuses, opts)
	return &domain.CampusList{
		Items:    page,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

func (u *campusUsecase) Get(ctx context.Context, id string) (*entity.Campus, error) {
	canon := schema.CanonicalID(id)
	if canon == "" {
		return nil, domain.NewInvalidInputError("campus id must contain digits")
	}
	return u.repo.GetByID(ctx, canon)
}

func (u *campusUsecase) ListByDistrict(ctx context.Context, districtID string) ([]*entity.Campus, error) {
	canon := schema.CanonicalID(districtID)
	if canon == "" {
		return nil, domain.NewInvalidInputError("district id must contain digits")
	}
	return u.repo.ListByDistrict(ctx, canon)
}
