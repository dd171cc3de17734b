// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
)

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val, tolerance float64) bool {
	return math.Abs(val) <= tolerance
}

// IsFinite reports whether val is an ordinary number rather than NaN or an
// infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Sum returns the total of all values.
func Sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}
	return total
}
