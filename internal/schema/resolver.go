package schema

import (
	"regexp"
	"strings"
)

// Field is a stable logical field name, independent of which literal column
// header expresses it in a given dataset revision.
type Field string

// Spec describes how to locate one logical field in a header set: exact alias
// candidates tried first in priority order, then fuzzy patterns in priority
// order against the raw headers.
type Spec struct {
	Aliases []string
	Fuzzy   []*regexp.Regexp
}

// Specs maps each logical field of a dataset to its detection rules.
type Specs map[Field]Spec

// FieldMap is the per-dataset resolution from logical field to the actual
// column header chosen for it. Built once per dataset per process; a field
// missing from the map was not detected.
type FieldMap map[Field]string

// Header returns the resolved header for f, or "" when the field was not
// detected in the dataset.
func (m FieldMap) Header(f Field) string {
	return m[f]
}

// Has reports whether f was detected.
func (m FieldMap) Has(f Field) bool {
	return m[f] != ""
}

var dedupSuffix = regexp.MustCompile(`-\d+$`)

// NormalizeHeader reduces a header to its comparison form: the numeric
// de-duplication suffix a CSV parser may append ("Foo-1") is removed, then
// the result is lower-cased and stripped of separators and every other
// non-alphanumeric rune.
func NormalizeHeader(h string) string {
	h = dedupSuffix.ReplaceAllString(h, "")
	h = strings.ToLower(strings.TrimSpace(h))
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range h {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve picks the one header out of headers that best represents the field
// described by spec, or "" when nothing matches.
//
// Exact aliases win over fuzzy patterns: each alias is compared in priority
// order against the normalized header set (first occurrence wins when two
// headers normalize identically). Only if no alias matches are the fuzzy
// patterns applied, in pattern priority order, against the lower-cased raw
// headers in their original column order.
func Resolve(headers []string, spec Spec) string {
	norm := make(map[string]string, len(headers))
	for _, h := range headers {
		n := NormalizeHeader(h)
		if _, ok := norm[n]; !ok {
			norm[n] = h
		}
	}

	for _, a := range spec.Aliases {
		if h, ok := norm[NormalizeHeader(a)]; ok {
			return h
		}
	}

	for _, re := range spec.Fuzzy {
		for _, h := range headers {
			if re.MatchString(strings.ToLower(h)) {
				return h
			}
		}
	}

	return ""
}

// ResolveAll resolves every field in specs against the same header set.
// Undetected fields are simply absent from the result; callers treat them as
// missing data, never as an error.
func ResolveAll(headers []string, specs Specs) FieldMap {
	m := make(FieldMap, len(specs))
	for f, spec := range specs {
		if h := Resolve(headers, spec); h != "" {
			m[f] = h
		}
	}
	return m
}
