package sortable

import (
	"github.com/amp-labs/amp-sorted/compare"
)

// Sortable is implemented by types that know both their equality and their order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison derived from LessThan and Equals. It can be
// used anywhere a compare.Comparator[T] is expected.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}
