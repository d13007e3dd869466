// Package metrics holds the pure transformation core of the dashboard:
// unit normalization, fill-level and staleness evaluation, time-series
// alignment and collection-event detection. Everything here is a
// side-effect-free function of its inputs so callers can recompute on
// every request.
package metrics

import "math"

// ToDistanceMM converts a raw distance reading to millimetres.
// ok is false for unknown units or non-finite values; the row should be
// skipped, not treated as an error.
func ToDistanceMM(value float64, unit string) (float64, bool) {
	if !isFinite(value) {
		return 0, false
	}
	switch unit {
	case "mm":
		return value, true
	case "cm":
		return value * 10, true
	case "m":
		return value * 1000, true
	}
	return 0, false
}

// ToWeightKG converts a raw weight reading to kilograms.
func ToWeightKG(value float64, unit string) (float64, bool) {
	if !isFinite(value) {
		return 0, false
	}
	switch unit {
	case "g":
		return value / 1000, true
	case "kg":
		return value, true
	}
	return 0, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
