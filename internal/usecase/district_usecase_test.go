package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

type testDistrictRepository struct {
	districts []*entity.District
}

func (r *testDistrictRepository) List(ctx context.Context) ([]*entity.District, error) {
	return r.districts, nil
}

func (r *testDistrictRepository) GetByID(ctx context.Context, canonID string) (*entity.District, error) {
	for _, d := range r.districts {
		if d.CanonID == canonID {
			return d, nil
		}
	}
	return nil, domain.NewNotFoundError("district", canonID)
}

func (r *testDistrictRepository) Counties(ctx context.Context) ([]string, error) {
	return []string{"Bexar", "Travis"}, nil
}

func (r *testDistrictRepository) Fields(ctx context.Context) (schema.FieldMap, error) {
	return schema.FieldMap{}, nil
}

func (r *testDistrictRepository) Stats(ctx context.Context) (*entity.StateStats, error) {
	return &entity.StateStats{DistrictCount: len(r.districts)}, nil
}

func fptr(v float64) *float64 { return &v }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, nil))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func testDistricts() []*entity.District {
	return []*entity.District{
		{ID: "'227901", CanonID: "227901", Name: "Austin ISD", County: "Travis", Enrollment: fptr(73000)},
		{ID: "'015901", CanonID: "15901", Name: "Alamo Heights ISD", County: "Bexar", Enrollment: fptr(4800)},
		{ID: "'015905", CanonID: "15905", Name: "Edgewood ISD", County: "Bexar", Enrollment: fptr(7900)},
	}
}

func TestDistrictListSortedByName(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())

	got, err := u.List(context.Background(), domain.ListDistrictsQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Total != 3 || len(got.Items) != 3 {
		t.Fatalf("total = %d, items = %d", got.Total, len(got.Items))
	}
	if got.Items[0].Name != "Alamo Heights ISD" || got.Items[2].Name != "Edgewood ISD" {
		t.Errorf("default order = %q..%q, want name ascending", got.Items[0].Name, got.Items[2].Name)
	}
	if got.Page != 1 || got.PageSize != defaultPageSize {
		t.Errorf("page = %d size = %d, want clamped defaults", got.Page, got.PageSize)
	}
}

func TestDistrictListCountyFilter(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())

	got, err := u.List(context.Background(), domain.ListDistrictsQuery{Counties: []string{"Bexar"}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Total != 2 {
		t.Errorf("total = %d, want 2 Bexar districts", got.Total)
	}
}

func TestDistrictListEnrollmentRange(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())

	got, err := u.List(context.Background(), domain.ListDistrictsQuery{
		MinEnrollment: fptr(4800),
		MaxEnrollment: fptr(8000),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// Bounds are inclusive.
	if got.Total != 2 {
		t.Errorf("total = %d, want 2", got.Total)
	}
}

func TestDistrictListDigitSearchPromotesExactID(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())

	got, err := u.List(context.Background(), domain.ListDistrictsQuery{Search: "015901"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Total < 1 || got.Items[0].CanonID != "15901" {
		t.Errorf("items = %v, want exact canonical match first", got.Items)
	}
}

func TestDistrictListInvalidSort(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())

	if _, err := u.List(context.Background(), domain.ListDistrictsQuery{SortKey: "bogus"}); !domain.IsInvalidInput(err) {
		t.Errorf("err = %v, want invalid input", err)
	}
	if _, err := u.List(context.Background(), domain.ListDistrictsQuery{SortDir: "sideways"}); !domain.IsInvalidInput(err) {
		t.Errorf("err = %v, want invalid input", err)
	}
}

func TestDistrictGetCanonicalizes(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())
	ctx := context.Background()

	// Quoted, zero-padded input resolves to the same district.
	d, err := u.Get(ctx, "'015901")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.Name != "Alamo Heights ISD" {
		t.Errorf("Get = %q", d.Name)
	}

	if _, err := u.Get(ctx, "no-digits"); !domain.IsInvalidInput(err) {
		t.Errorf("err = %v, want invalid input for digitless id", err)
	}
	if _, err := u.Get(ctx, "999999"); !domain.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestDistrictListPagination(t *testing.T) {
	u := NewDistrictUsecase(&testDistrictRepository{districts: testDistricts()}, testLogger())

	got, err := u.List(context.Background(), domain.ListDistrictsQuery{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Total != 3 || len(got.Items) != 1 {
		t.Errorf("page 2 of 2: total = %d items = %d", got.Total, len(got.Items))
	}
	if got.Items[0].Name != "Edgewood ISD" {
		t.Errorf("page 2 starts at %q", got.Items[0].Name)
	}
}
