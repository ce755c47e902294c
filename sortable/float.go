package sortable

import "math"

// Float64 is a sortable float64 with a total order: NaN equals NaN and sorts before
// every other value, including negative infinity. Plain float64 comparison has no
// answer for NaN, which would let a binary search wander off.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals reports whether both values are equal, treating any two NaNs as equal.
func (f Float64) Equals(other Float64) bool {
	a, b := float64(f), float64(other)
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

// LessThan reports whether f orders before other.
func (f Float64) LessThan(other Float64) bool {
	a, b := float64(f), float64(other)
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}

	if math.IsNaN(b) {
		return false
	}

	return a < b
}
