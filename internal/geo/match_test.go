package geo

import (
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

func feature(props map[string]interface{}) *entity.Feature {
	return &entity.Feature{Type: "Feature", Properties: props}
}

func TestDecode(t *testing.T) {
	raw := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature",
			 "properties": {"DISTRICT_N": "'015901", "NAME": "Alamo Heights ISD"},
			 "geometry": {"type": "Point", "coordinates": [-98.46, 29.48]}}
		]
	}`)
	fc, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("features = %d, want 1", len(fc.Features))
	}
	if fc.Features[0].Properties["NAME"] != "Alamo Heights ISD" {
		t.Errorf("properties = %v", fc.Features[0].Properties)
	}
	if len(fc.Features[0].Geometry) == 0 {
		t.Error("geometry must be carried through as raw bytes")
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{"type": "FeatureCollection", "features": [`)); err == nil {
		t.Error("malformed geojson must error")
	}
}

func TestFindFeatureCanonicalMatch(t *testing.T) {
	fc := entity.NewFeatureCollection([]*entity.Feature{
		feature(map[string]interface{}{"DISTRICT_N": "'015901", "NAME": "Alamo Heights ISD"}),
		feature(map[string]interface{}{"DISTRICT_N": "227901", "NAME": "Austin ISD"}),
	})

	// Lookup by canonical id matches the quoted, zero-padded property value.
	got := FindFeature(fc, schema.GeoDistrictIDSpec, "15901")
	if got == nil || got.Properties["NAME"] != "Alamo Heights ISD" {
		t.Fatalf("FindFeature(15901) = %v", got)
	}
	if FindFeature(fc, schema.GeoDistrictIDSpec, "999999") != nil {
		t.Error("unknown id must return nil, not an error")
	}
	if FindFeature(fc, schema.GeoDistrictIDSpec, "") != nil {
		t.Error("empty id must return nil")
	}
}

func TestFindFeatureNumericProperty(t *testing.T) {
	// JSON numbers decode as float64; they must still canonicalize.
	fc := entity.NewFeatureCollection([]*entity.Feature{
		feature(map[string]interface{}{"DISTRICT_ID": float64(15901)}),
	})
	if FindFeature(fc, schema.GeoDistrictIDSpec, "15901") == nil {
		t.Error("numeric id property must match")
	}
}

func TestFindFeatureNoIDProperty(t *testing.T) {
	fc := entity.NewFeatureCollection([]*entity.Feature{
		feature(map[string]interface{}{"SHAPE_AREA": "12.5"}),
	})
	if FindFeature(fc, schema.GeoDistrictIDSpec, "15901") != nil {
		t.Error("collection without an id property must match nothing")
	}
}

func TestFilterFeatures(t *testing.T) {
	fc := entity.NewFeatureCollection([]*entity.Feature{
		feature(map[string]interface{}{"USER_District_Number": "015901", "CAMPUS": "a"}),
		feature(map[string]interface{}{"USER_District_Number": "227901", "CAMPUS": "b"}),
		feature(map[string]interface{}{"USER_District_Number": "15901", "CAMPUS": "c"}),
	})

	got := FilterFeatures(fc, schema.GeoDistrictIDSpec, "15901")
	if len(got) != 2 {
		t.Fatalf("len = %d, want variant ids merged", len(got))
	}
	if got[0].Properties["CAMPUS"] != "a" || got[1].Properties["CAMPUS"] != "c" {
		t.Error("filtered features must keep collection order")
	}
}

func TestResolveIDPropertyEmptyCollection(t *testing.T) {
	if ResolveIDProperty(nil, schema.GeoDistrictIDSpec) != "" {
		t.Error("nil collection resolves to nothing")
	}
	if ResolveIDProperty(&entity.FeatureCollection{}, schema.GeoDistrictIDSpec) != "" {
		t.Error("empty collection resolves to nothing")
	}
}
