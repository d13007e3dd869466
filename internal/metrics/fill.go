package metrics

import "math"

// FillPercentage converts a distance-to-contents reading into an integer
// fill percentage relative to the fullMM calibration constant.
// Negative numerators from over-full sensor noise clamp to 0. Readings
// closer than the calibration minimum yield values above 100 and are
// intentionally not capped, so sensor anomalies stay visible.
func FillPercentage(distanceMM, fullMM float64) int {
	pct := math.Max(fullMM-distanceMM, 0) / fullMM * 100
	return int(math.Round(pct))
}
