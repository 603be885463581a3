package domain

import (
	"context"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
)

// GeoRepository serves boundary and point features for map rendering.
type GeoRepository interface {
	// DistrictFeature returns the boundary feature for one district, or a
	// not-found error when the boundary file has no matching feature.
	DistrictFeature(ctx context.Context, districtCanonID string) (*entity.Feature, error)

	// CampusFeatures returns point features for a district's campuses. When
	// the campus boundary file is not configured, points are synthesized from
	// the campus table's latitude/longitude columns.
	CampusFeatures(ctx context.Context, districtCanonID string) ([]*entity.Feature, error)
}

// GeoUsecase is the map feature surface.
type GeoUsecase interface {
	DistrictFeature(ctx context.Context, districtID string) (*entity.Feature, error)
	CampusFeatures(ctx context.Context, districtID string) (*entity.FeatureCollection, error)
}
