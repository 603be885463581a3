package usecase

import (
	"context"
	"log/slog"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// geoUsecase implements domain.GeoUsecase.
type geoUsecase struct {
	repo   domain.GeoRepository
	logger *slog.Logger
}

func NewGeoUsecase(repo domain.GeoRepository, logger *slog.Logger) domain.GeoUsecase {
	return &geoUsecase{repo: repo, logger: logger}
}

func (u *geoUsecase) DistrictFeature(ctx context.Context, districtID string) (*entity.Feature, error) {
	canon := schema.CanonicalID(districtID)
	if canon == "" {
		return nil, domain.NewInvalidInputError("district id must contain digits")
	}
	return u.repo.DistrictFeature(ctx, canon)
}

func (u *geoUsecase) CampusFeatures(ctx context.Context, districtID string) (*entity.FeatureCollection, error) {
	canon := schema.CanonicalID(districtID)
	if canon == "" {
		return nil, domain.NewInvalidInputError("district id must contain digits")
	}
	features, err := u.repo.CampusFeatures(ctx, canon)
	if err != nil {
		return nil, err
	}
	return entity.NewFeatureCollection(features), nil
}
