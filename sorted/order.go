package sorted

import (
	"cmp"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/sortable"
)

// Kind tells how an Order compares elements.
type Kind int

const (
	KindNone Kind = iota
	KindNatural
	KindByKey
	KindByComparator
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNatural:
		return "natural"
	case KindByKey:
		return "key"
	case KindByComparator:
		return "comparator"
	default:
		return "unknown"
	}
}

// Order is an ordering configuration resolved to one comparison function.
// The zero Order has KindNone and cannot be used to build an Array.
type Order[T any] struct {
	kind Kind
	cmp  compare.Comparator[T]
}

// Natural orders cmp.Ordered values ascending, see compare.Natural.
func Natural[T cmp.Ordered]() Order[T] {
	return Order[T]{kind: KindNatural, cmp: compare.Natural[T]}
}

// ByKey orders elements by key(element). A nil key yields an Order that New rejects.
func ByKey[T any, K cmp.Ordered](key func(T) K) Order[T] {
	if key == nil {
		return Order[T]{kind: KindByKey}
	}

	return Order[T]{kind: KindByKey, cmp: compare.Key(key)}
}

// ByComparator orders elements with fn.
func ByComparator[T any](fn compare.Comparator[T]) Order[T] {
	return Order[T]{kind: KindByComparator, cmp: fn}
}

// BySortable orders elements with their own LessThan and Equals methods.
func BySortable[T sortable.Sortable[T]]() Order[T] {
	return ByComparator[T](sortable.Compare[T])
}

// Kind returns how o compares elements.
func (o Order[T]) Kind() Kind {
	return o.kind
}

// IsZero reports whether o has no comparison function.
func (o Order[T]) IsZero() bool {
	return o.cmp == nil
}

// Compare compares a and b under o.
func (o Order[T]) Compare(a, b T) int {
	return o.cmp(a, b)
}

// Reverse returns the same ordering, descending.
func (o Order[T]) Reverse() Order[T] {
	if o.cmp == nil {
		return o
	}

	return Order[T]{kind: o.kind, cmp: compare.Reverse(o.cmp)}
}
