package table

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/index"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

const campusDataset = "campuses"

// CampusRepo serves campuses from the campus CSV.
type CampusRepo struct {
	store  *dataset.Store
	url    string
	logger *slog.Logger

	mu    sync.Mutex
	built *campusBuilt
}

type campusBuilt struct {
	ds       *dataset.Dataset
	campuses []*entity.Campus
	idx      *index.EntityIndex

	// byDistrict caches the sorted campus list per district, built on first
	// request for that district.
	byDistrict map[string][]*entity.Campus
}

func NewCampusRepo(store *dataset.Store, url string, logger *slog.Logger) *CampusRepo {
	return &CampusRepo{store: store, url: url, logger: logger}
}

func (r *CampusRepo) load(ctx context.Context) (*campusBuilt, error) {
	ds, err := r.store.CSV(ctx, campusDataset, r.url, schema.CampusSpecs)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.built != nil && r.built.ds == ds {
		return r.built, nil
	}

	rows := ds.Table.Rows
	campuses := make([]*entity.Campus, 0, len(rows))
	for _, row := range rows {
		campuses = append(campuses, buildCampus(row, ds.Fields))
	}

	r.built = &campusBuilt{
		ds:       ds,
		campuses: campuses,
		idx: index.Build(rows,
			ds.Fields.Header(schema.CampusID),
			ds.Fields.Header(schema.CampusDistrictID),
			r.logger),
		byDistrict: make(map[string][]*entity.Campus),
	}
	return r.built, nil
}

func (r *CampusRepo) List(ctx context.Context) ([]*entity.Campus, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.campuses, nil
}

func (r *CampusRepo) GetByID(ctx context.Context, canonID string) (*entity.Campus, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	row, ok := b.idx.ByID[canonID]
	if !ok {
		return nil, domain.NewNotFoundError("campus", canonID)
	}
	return buildCampus(row, b.ds.Fields), nil
}

// ListByDistrict returns a district's campuses sorted by score descending.
// Unscored campuses sink to the end; ties break by name. A district with no
// campuses yields an empty list, not an error.
func (r *CampusRepo) ListByDistrict(ctx context.Context, districtCanonID string) ([]*entity.Campus, error) {
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
	list := make([]*entity.Campus, 0, len(rows))
	for _, row := range rows {
		list = append(list, buildCampus(row, b.ds.Fields))
	}
	sortCampusesByScore(list)

	b.byDistrict[districtCanonID] = list
	return list, nil
}

func (r *CampusRepo) Fields(ctx context.Context) (schema.FieldMap, error) {
	b, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return b.ds.Fields, nil
}

func sortCampusesByScore(list []*entity.Campus) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.Score != nil && b.Score == nil:
			return true
		case a.Score == nil && b.Score != nil:
			return false
		case a.Score != nil && b.Score != nil && *a.Score != *b.Score:
			return *a.Score > *b.Score
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
