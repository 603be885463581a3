package domain

import (
	"context"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// Dataset names accepted by the detected-fields endpoint.
const (
	DatasetDistricts = "districts"
	DatasetCampuses  = "campuses"
	DatasetSpending  = "spending"
)

// StatsUsecase serves statewide aggregates and schema introspection.
type StatsUsecase interface {
	StateStats(ctx context.Context) (*entity.StateStats, error)

	// DatasetFields reports the resolved header for each logical field of the
	// named dataset. Unknown names yield an invalid-input error.
	DatasetFields(ctx context.Context, name string) (schema.FieldMap, error)
}
