package schema

import "strings"

// CanonicalID reduces a raw district/campus identifier to its canonical form:
// quote characters removed, digits only, leading zeros stripped. All textual
// variants of the same identifier ("'015901", "015901", "15901") canonicalize
// to the same value, and the function is idempotent.
//
// An identifier consisting solely of zeros canonicalizes to "0" rather than
// the empty string, so a true-zero id stays distinguishable from a missing
// one. Input with no digits at all yields "".
func CanonicalID(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	hasDigit := false
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			hasDigit = true
		}
	}
	s := strings.TrimLeft(b.String(), "0")
	if s == "" && hasDigit {
		return "0"
	}
	return s
}
