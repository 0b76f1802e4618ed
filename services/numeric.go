package services

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a numeric form value leniently. Empty or unparsable
// input yields 0 so a half-typed field never propagates NaN into totals.
// ParseFloat itself accepts "NaN" and "Inf" spellings, so those are
// rejected explicitly. Both "1234.56" and the pt-BR "1234,56" are accepted.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseOptionalPercent parses a per-item profit percent field. An empty
// value means "use the quotation's global percent" and returns nil;
// unparsable input is coerced to a zero percent, matching ParseAmount.
func ParseOptionalPercent(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v := ParseAmount(s)
	return &v
}
