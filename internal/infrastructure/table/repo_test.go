package table

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain"
)

type fakeFetcher struct {
	bodies map[string][]byte
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, ok := f.bodies[url]
	if !ok {
		return nil, domain.NewTransportError(url, fmt.Errorf("HTTP 404"))
	}
	return body, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func newStore(bodies map[string][]byte) *dataset.Store {
	return dataset.NewStore(&fakeFetcher{bodies: bodies}, discard())
}

const districtCSV = "DISTRICT_N,NAME,COUNTY,Total Spending,Enrollment\n" +
	"'015901,Alamo Heights ISD,Bexar,\"$10,000\",500\n" +
	"227901,Austin ISD,Travis,\"$20,000\",1500\n"

func TestDistrictRepo(t *testing.T) {
	store := newStore(map[string][]byte{"http://d.csv": []byte(districtCSV)})
	repo := NewDistrictRepo(store, "http://d.csv", discard())
	ctx := context.Background()

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].CanonID != "15901" || list[0].Name != "Alamo Heights ISD" {
		t.Errorf("list[0] = %+v", list[0])
	}

	d, err := repo.GetByID(ctx, "15901")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if d.TotalSpending == nil || *d.TotalSpending != 10000 {
		t.Errorf("TotalSpending = %v, want 10000", d.TotalSpending)
	}
	if ps := d.PerStudentSpending(); ps == nil || *ps != 20 {
		t.Errorf("PerStudentSpending = %v, want 20", ps)
	}

	if _, err := repo.GetByID(ctx, "999999"); !domain.IsNotFound(err) {
		t.Errorf("unknown id error = %v, want not found", err)
	}

	counties, err := repo.Counties(ctx)
	if err != nil {
		t.Fatalf("Counties: %v", err)
	}
	if len(counties) != 2 || counties[0] != "Bexar" || counties[1] != "Travis" {
		t.Errorf("Counties = %v", counties)
	}

	st, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.DistrictCount != 2 || st.TotalSpending != 30000 || st.Enrollment != 2000 {
		t.Errorf("Stats = %+v", st)
	}
}

func TestDistrictRepoUnconfigured(t *testing.T) {
	repo := NewDistrictRepo(newStore(nil), "", discard())
	if _, err := repo.List(context.Background()); !domain.IsUnavailable(err) {
		t.Errorf("err = %v, want unavailable", err)
	}
}

const campusCSV = "USER_School_Number,USER_School_Name,USER_District_Number,Campus Score,LAT,LON\n" +
	"'015901001,Cambridge Elementary,'015901,88.5,29.48,-98.46\n" +
	"'015901002,Woodridge Elementary,015901,,29.50,-98.45\n" +
	"'015901003,Alamo Heights High School,15901,91.2,,\n" +
	"'227901001,Austin High School,227901,85.0,30.27,-97.75\n"

func TestCampusRepoListByDistrict(t *testing.T) {
	store := newStore(map[string][]byte{"http://c.csv": []byte(campusCSV)})
	repo := NewCampusRepo(store, "http://c.csv", discard())
	ctx := context.Background()

	// Variant district id spellings all land in the same group, sorted by
	// score descending with the unscored campus last.
	list, err := repo.ListByDistrict(ctx, "15901")
	if err != nil {
		t.Fatalf("ListByDistrict: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	wantOrder := []string{"Alamo Heights High School", "Cambridge Elementary", "Woodridge Elementary"}
	for i, want := range wantOrder {
		if list[i].Name != want {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Name, want)
		}
	}

	empty, err := repo.ListByDistrict(ctx, "999999")
	if err != nil {
		t.Fatalf("ListByDistrict(unknown): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown district must yield an empty list, got %d", len(empty))
	}
}

func TestCampusRepoGetByID(t *testing.T) {
	store := newStore(map[string][]byte{"http://c.csv": []byte(campusCSV)})
	repo := NewCampusRepo(store, "http://c.csv", discard())

	c, err := repo.GetByID(context.Background(), "15901001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Name != "Cambridge Elementary" || c.DistrictCanonID != "15901" {
		t.Errorf("campus = %+v", c)
	}
	if c.Lat == nil || c.Lon == nil {
		t.Error("coordinates must parse")
	}
}

const spendingCSV = "DISTRICT_N,DATE,VENDOR,CATEGORY,AMOUNT\n" +
	"015901,2024-01-15,Acme Supply,Maintenance,\"$1,200\"\n" +
	"15901,2024-02-20,Bexar Books,Instruction,800\n" +
	"227901,2024-03-05,Travis Transit,Transportation,5000\n"

func TestSpendingRepo(t *testing.T) {
	store := newStore(map[string][]byte{"http://s.csv": []byte(spendingCSV)})
	repo := NewSpendingRepo(store, "http://s.csv", discard())
	ctx := context.Background()

	list, err := repo.ListByDistrict(ctx, "15901")
	if err != nil {
		t.Fatalf("ListByDistrict: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want variant district ids merged", len(list))
	}
	if list[0].Vendor != "Acme Supply" || list[0].Amount != 1200 {
		t.Errorf("list[0] = %+v", list[0])
	}
	if !list[0].DateOK {
		t.Error("date must parse")
	}

	cats, err := repo.Categories(ctx, "15901")
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 || cats[0] != "Instruction" || cats[1] != "Maintenance" {
		t.Errorf("Categories = %v", cats)
	}
}

const districtGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature",
		 "properties": {"DISTRICT_N": "'015901", "NAME": "Alamo Heights ISD"},
		 "geometry": {"type": "Polygon", "coordinates": []}}
	]
}`

func TestGeoRepoDistrictFeature(t *testing.T) {
	store := newStore(map[string][]byte{"http://d.geojson": []byte(districtGeoJSON)})
	repo := NewGeoRepo(store, "http://d.geojson", "", nil, discard())
	ctx := context.Background()

	f, err := repo.DistrictFeature(ctx, "15901")
	if err != nil {
		t.Fatalf("DistrictFeature: %v", err)
	}
	if f.Properties["NAME"] != "Alamo Heights ISD" {
		t.Errorf("feature = %v", f.Properties)
	}

	if _, err := repo.DistrictFeature(ctx, "999999"); !domain.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

const campusGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature",
		 "properties": {"DISTRICT_N": "227901", "CAMPUS_NAME": "Austin High School"},
		 "geometry": {"type": "Point", "coordinates": [-97.75, 30.27]}}
	]
}`

func TestGeoRepoCampusPointFallback(t *testing.T) {
	store := newStore(map[string][]byte{
		"http://c.csv":     []byte(campusCSV),
		"http://c.geojson": []byte(campusGeoJSON),
	})
	campuses := NewCampusRepo(store, "http://c.csv", discard())
	repo := NewGeoRepo(store, "", "http://c.geojson", campuses, discard())
	ctx := context.Background()

	// The boundary file has features for this district, so they win.
	feats, err := repo.CampusFeatures(ctx, "227901")
	if err != nil {
		t.Fatalf("CampusFeatures: %v", err)
	}
	if len(feats) != 1 || feats[0].Properties["CAMPUS_NAME"] != "Austin High School" {
		t.Fatalf("feats = %+v, want the boundary file feature", feats)
	}

	// The boundary file holds nothing for this district: points come from
	// the campus table instead of an empty collection.
	feats, err = repo.CampusFeatures(ctx, "15901")
	if err != nil {
		t.Fatalf("CampusFeatures(sparse): %v", err)
	}
	if len(feats) != 2 {
		t.Errorf("len = %d, want table-synthesized points", len(feats))
	}

	// An unreachable boundary file falls back the same way.
	broken := NewGeoRepo(store, "", "http://missing.geojson", campuses, discard())
	feats, err = broken.CampusFeatures(ctx, "15901")
	if err != nil {
		t.Fatalf("CampusFeatures(unreachable): %v", err)
	}
	if len(feats) != 2 {
		t.Errorf("len = %d, want table-synthesized points", len(feats))
	}
}

func TestGeoRepoSynthesizesCampusPoints(t *testing.T) {
	store := newStore(map[string][]byte{"http://c.csv": []byte(campusCSV)})
	campuses := NewCampusRepo(store, "http://c.csv", discard())
	repo := NewGeoRepo(store, "", "", campuses, discard())

	// No campus boundary file configured: points come from the table, and
	// the campus without coordinates is skipped.
	feats, err := repo.CampusFeatures(context.Background(), "15901")
	if err != nil {
		t.Fatalf("CampusFeatures: %v", err)
	}
	if len(feats) != 2 {
		t.Fatalf("len = %d, want campuses without coordinates skipped", len(feats))
	}
	for _, f := range feats {
		if f.Type != "Feature" || len(f.Geometry) == 0 {
			t.Errorf("feature = %+v", f)
		}
		if f.Properties["DISTRICT_ID"] != "15901" {
			t.Errorf("properties = %v", f.Properties)
		}
	}
}
