package table

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/index"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
	"github.com/jab1897/LoneStarLedger5/internal/stats"
)

const districtDataset = "districts"

// DistrictRepo serves districts from the district CSV.
type DistrictRepo struct {
	store  *dataset.Store
	url    string
	logger *slog.Logger

	mu    sync.Mutex
	built *districtBuilt
}

// districtBuilt is everything derived from one loaded dataset. Rebuilt only
// when the store hands back a different dataset pointer, which with the
// current load-once store means built exactly once.
type districtBuilt struct {
	ds        *dataset.Dataset
	districts []*entity.District
	idx       *index.EntityIndex
	counties  []string
	stats     *entity.StateStats
}

func NewDistrictRepo(store *dataset.Store, url string, logger *slog.Logger) *DistrictRepo {
	return &DistrictRepo{store: store, url: url, logger: logger}
}

func (r *DistrictRepo) load(ctx context.Context) (*districtBuilt, error) {
	ds, err := r.store.CSV(ctx, districtDataset, r.url, schema.DistrictSpecs)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.built != nil && r.built.ds == ds {
		return r.built, nil
	}

	rows := ds.Table.Rows
	districts := make([]*entity.District, 0, len(rows))
	countySet := make(map[string]struct{})
	for _, row := range rows {
		d := buildDistrict(row, ds.Fields)
		districts = append(districts, d)
		if d.County != "" {
			countySet[d.County] = struct{}{}
		}
	}
	counties := make([]string, 0, len(countySet))
	for c := range countySet {
		counties = append(counties, c)
	}
	sort.Strings(counties)

	r.built = &districtBuilt{
		ds:        ds,
		districts: districts,
		idx:       index.Build(rows, ds.Fields.Header(schema.DistrictID), "", r.logger),
		counties:  counties,
		stats:     stats.Aggregate(rows, ds.Fields),
	}
	return r.built, nil
}

func (r *DistrictRepo) List(ctx context.Context) ([]*entity.District, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.districts, nil
}

func (r *DistrictRepo) GetByID(ctx context.Context, canonID string) (*entity.District, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	row, ok := b.idx.ByID[canonID]
	if !ok {
		return nil, domain.NewNotFoundError("district", canonID)
	}
	return buildDistrict(row, b.ds.Fields), nil
}

func (r *DistrictRepo) Counties(ctx context.Context) ([]string, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.counties, nil
}

func (r *DistrictRepo) Fields(ctx context.Context) (schema.FieldMap, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.ds.Fields, nil
}

func (r *DistrictRepo) Stats(ctx context.Context) (*entity.StateStats, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.stats, nil
}
