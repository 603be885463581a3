package table

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/index"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

const spendingDataset = "spending"

// SpendingRepo serves spending line items from the spending CSV. Line items
// carry no identity of their own; the only lookup is by district.
type SpendingRepo struct {
	store  *dataset.Store
	url    string
	logger *slog.Logger

	mu    sync.Mutex
	built *spendingBuilt
}

type spendingBuilt struct {
	ds  *dataset.Dataset
	idx *index.EntityIndex

	byDistrict map[string][]*entity.SpendingRecord
	categories map[string][]string
}

func NewSpendingRepo(store *dataset.Store, url string, logger *slog.Logger) *SpendingRepo {
	return &SpendingRepo{store: store, url: url, logger: logger}
}

func (r *SpendingRepo) load(ctx context.Context) (*spendingBuilt, error) {
	ds, err := r.store.CSV(ctx, spendingDataset, r.url, schema.SpendingSpecs)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.built != nil && r.built.ds == ds {
		return r.built, nil
	}

	r.built = &spendingBuilt{
		ds:         ds,
		idx:        index.Build(ds.Table.Rows, "", ds.Fields.Header(schema.SpendingDistrictID), r.logger),
		byDistrict: make(map[string][]*entity.SpendingRecord),
		categories: make(map[string][]string),
	}
	return r.built, nil
}

// ListByDistrict returns a district's line items in source row order. An
// unknown district yields an empty list.
func (r *SpendingRepo) ListByDistrict(ctx context.Context, districtCanonID string) ([]*entity.SpendingRecord, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := b.byDistrict[districtCanonID]; ok {
		return cached, nil
	}

	rows := b.idx.ByParent[districtCanonID]
	list := make([]*entity.SpendingRecord, 0, len(rows))
	for _, row := range rows {
		list = append(list, buildSpending(row, b.ds.Fields))
	}

	b.byDistrict[districtCanonID] = list
	return list, nil
}

// Categories returns the distinct category names for one district, sorted.
func (r *SpendingRepo) Categories(ctx context.Context, districtCanonID string) ([]string, error) {
	records, err := r.ListByDistrict(ctx, districtCanonID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.built.categories[districtCanonID]; ok {
		return cached, nil
	}

	set := make(map[string]struct{})
	for _, rec := range records {
		if rec.Category != "" {
			set[rec.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)

	r.built.categories[districtCanonID] = out
	return out, nil
}

func (r *SpendingRepo) Fields(ctx context.Context) (schema.FieldMap, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.ds.Fields, nil
}
