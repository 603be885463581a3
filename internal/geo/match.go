// Package geo matches GeoJSON features to entities by canonical identifier.
package geo

import (
	"fmt"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// Decode parses raw GeoJSON bytes into a feature collection.
func Decode(data []byte) (*entity.FeatureCollection, error) {
	var fc entity.FeatureCollection
	if err := sonic.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse geojson: %w", err)
	}
	return &fc, nil
}

// ResolveIDProperty picks the identifier property key on the collection,
// using the first feature's properties as the sample and the same alias/
// fuzzy strategy as CSV header detection. JSON objects carry no key order,
// so keys are sorted before the fuzzy scan to keep resolution stable.
func ResolveIDProperty(fc *entity.FeatureCollection, spec schema.Spec) string {
	if fc == nil || len(fc.Features) == 0 {
		return ""
	}
	props := fc.Features[0].Properties
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return schema.Resolve(keys, spec)
}

// FindFeature returns the first feature whose resolved identifier property
// canonicalizes to canonID, or nil when none matches. A nil result is an
// empty state for the caller, never an error.
func FindFeature(fc *entity.FeatureCollection, spec schema.Spec, canonID string) *entity.Feature {
	key := ResolveIDProperty(fc, spec)
	if key == "" || canonID == "" {
		return nil
	}
	for _, f := range fc.Features {
		if f == nil || f.Properties == nil {
			continue
		}
		if schema.CanonicalID(propString(f.Properties[key])) == canonID {
			return f
		}
	}
	return nil
}

// FilterFeatures returns every feature whose resolved identifier property
// canonicalizes to canonID, preserving collection order.
func FilterFeatures(fc *entity.FeatureCollection, spec schema.Spec, canonID string) []*entity.Feature {
	key := ResolveIDProperty(fc, spec)
	if key == "" || canonID == "" {
		return nil
	}
	var out []*entity.Feature
	for _, f := range fc.Features {
		if f == nil || f.Properties == nil {
			continue
		}
		if schema.CanonicalID(propString(f.Properties[key])) == canonID {
			out = append(out, f)
		}
	}
	return out
}

// propString renders a property value for canonicalization. GeoJSON id
// properties appear as both strings and numbers across revisions.
func propString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return fmt.Sprintf("%.0f", x)
	default:
		return fmt.Sprint(x)
	}
}
