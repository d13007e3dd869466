package metrics

import "time"

// Active reports whether a reading taken at readingAt is still recent at
// reference. A reading exactly threshold old is still active. The zero
// time means no reading exists, which is inactive rather than an error.
func Active(readingAt, reference time.Time, threshold time.Duration) bool {
	if readingAt.IsZero() {
		return false
	}
	return reference.Sub(readingAt) <= threshold
}
