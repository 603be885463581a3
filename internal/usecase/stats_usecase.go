package usecase

import (
	"context"
	"log/slog"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// statsUsecase implements domain.StatsUsecase over the three datasets.
type statsUsecase struct {
	districts domain.DistrictRepository
	campuses  domain.CampusRepository
	spending  domain.SpendingRepository
	logger    *slog.Logger
}

func NewStatsUsecase(
	districts domain.DistrictRepository,
	campuses domain.CampusRepository,
	spending domain.SpendingRepository,
	logger *slog.Logger,
) domain.StatsUsecase {
	return &statsUsecase{
		districts: districts,
		campuses:  campuses,
		spending:  spending,
		logger:    logger,
	}
}

func (u *statsUsecase) StateStats(ctx context.Context) (*entity.StateStats, error) {
	return u.districts.Stats(ctx)
}

func (u *statsUsecase) DatasetFields(ctx context.Context, name string) (schema.FieldMap, error) {
	switch name {
	case domain.DatasetDistricts:
		return u.districts.Fields(ctx)
	case domain.DatasetCampuses:
		return u.campuses.Fields(ctx)
	case domain.DatasetSpending:
		return u.spending.Fields(ctx)
	}
	return nil, domain.NewInvalidInputError("unknown dataset: " + name)
}
