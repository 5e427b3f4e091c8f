package numutil

import (
	"math"
	"strconv"
)

// Every numeric field in the building model passes through one of these
// before being stored or displayed, so downstream consumers never see
// NaN/Infinity or out-of-range values regardless of what was typed into
// a field.

// Clamp coerces v into [min, max]. Non-finite input falls back to min.
func Clamp(v, min, max float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt rounds v to the nearest integer, then clamps to [min, max].
// Non-finite input falls back to min.
func ClampInt(v float64, min, max int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	n := int(math.Round(v))
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ParseClamp parses a text-field string and clamps the result.
// Unparseable input behaves like non-finite input (falls back to min).
func ParseClamp(s string, min, max float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return min
	}
	return Clamp(v, min, max)
}

// ParseClampInt parses a text-field string, rounds, and clamps.
func ParseClampInt(s string, min, max int) int {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return min
	}
	return ClampInt(v, min, max)
}

// FormatFloat renders v with a fixed number of decimals. Non-finite values
// produce an empty string, which blanks a numeric input instead of showing
// a misleading number.
func FormatFloat(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}
