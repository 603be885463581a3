package table

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/geo"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

const (
	districtGeoDataset = "districts_geojson"
	campusGeoDataset   = "campuses_geojson"
)

// GeoRepo serves map features from the GeoJSON boundary files. Campus point
// features fall back to the campus table's latitude/longitude columns when
// the boundary file yields nothing for a district.
type GeoRepo struct {
	store       *dataset.Store
	districtURL string
	campusURL   string
	campuses    domain.CampusRepository
	logger      *slog.Logger

	mu         sync.Mutex
	districtFC *entity.FeatureCollection
	campusFC   *entity.FeatureCollection
}

func NewGeoRepo(store *dataset.Store, districtURL, campusURL string, campuses domain.CampusRepository, logger *slog.Logger) *GeoRepo {
	return &GeoRepo{
		store:       store,
		districtURL: districtURL,
		campusURL:   campusURL,
		campuses:    campuses,
		logger:      logger,
	}
}

func (r *GeoRepo) loadDistrictFC(ctx context.Context) (*entity.FeatureCollection, error) {
	r.mu.Lock()
	if r.districtFC != nil {
		defer r.mu.Unlock()
		return r.districtFC, nil
	}
	r.mu.Unlock()

	body, err := r.store.JSON(ctx, districtGeoDataset, r.districtURL)
	if err != nil {
		return nil, err
	}
	fc, err := geo.Decode(body)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.districtFC == nil {
		r.districtFC = fc
	}
	return r.districtFC, nil
}

func (r *GeoRepo) loadCampusFC(ctx context.Context) (*entity.FeatureCollection, error) {
	r.mu.Lock()
	if r.campusFC != nil {
		defer r.mu.Unlock()
		return r.campusFC, nil
	}
	r.mu.Unlock()

	body, err := r.store.JSON(ctx, campusGeoDataset, r.campusURL)
	if err != nil {
		return nil, err
	}
	fc, err := geo.Decode(body)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.campusFC == nil {
		r.campusFC = fc
	}
	return r.campusFC, nil
}

// DistrictFeature returns the boundary feature whose id property matches the
// canonical district id.
func (r *GeoRepo) DistrictFeature(ctx context.Context, districtCanonID string) (*entity.Feature, error) {
	fc, err := r.loadDistrictFC(ctx)
	if err != nil {
		return nil, err
	}
	f := geo.FindFeature(fc, schema.GeoDistrictIDSpec, districtCanonID)
	if f == nil {
		return nil, domain.NewNotFoundError("district boundary", districtCanonID)
	}
	return f, nil
}

// CampusFeatures returns point features for a district's campuses. Points
// are synthesized from the campus table when no campus boundary file is
// configured, when it cannot be loaded, or when it holds no features for
// the district.
func (r *GeoRepo) CampusFeatures(ctx context.Context, districtCanonID string) ([]*entity.Feature, error) {
	if r.campusURL != "" {
		fc, err := r.loadCampusFC(ctx)
		if err != nil {
			r.logger.Warn("campus boundary file unavailable, synthesizing points",
				"district", districtCanonID,
				"error", err,
			)
		} else if features := geo.FilterFeatures(fc, schema.GeoDistrictIDSpec, districtCanonID); len(features) > 0 {
			return features, nil
		}
	}
	return r.synthesizeCampusPoints(ctx, districtCanonID)
}

// synthesizeCampusPoints builds GeoJSON points from the campus table.
// Campuses without coordinates are skipped.
func (r *GeoRepo) synthesizeCampusPoints(ctx context.Context, districtCanonID string) ([]*entity.Feature, error) {
	campuses, err := r.campuses.ListByDistrict(ctx, districtCanonID)
	if err != nil {
		return nil, err
	}

	var out []*entity.Feature
	for _, c := range campuses {
		if c.Lat == nil || c.Lon == nil {
			continue
		}
		geom, err := sonic.Marshal(map[string]interface{}{
			"type":        "Point",
			"coordinates": []float64{*c.Lon, *c.Lat},
		})
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		props := map[string]interface{}{
			"CAMPUS_ID":   c.ID,
			"CAMPUS_NAME": c.Name,
			"DISTRICT_ID": c.DistrictCanonID,
		}
		if c.Score != nil {
			props["SCORE"] = *c.Score
		}
		if c.Grade != "" {
			props["GRADE"] = c.Grade
		}
		out = append(out, &entity.Feature{
			Type:       "Feature",
			Properties: props,
			Geometry:   geom,
		})
	}
	r.logger.Debug("synthesized campus points",
		"district", districtCanonID,
		"features", len(out),
		"campuses", len(campuses),
	)
	return out, nil
}
