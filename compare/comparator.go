package compare

import (
	"cmp"
	"strings"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator is a three-way comparison. It returns a negative number when a orders
// before b, a positive number when a orders after b, and zero when they are
// order-equal (not necessarily identical).
//
// A Comparator must describe a total order: consistent, antisymmetric and transitive.
// Collections trust this and do not check it on every call.
type Comparator[T any] func(a, b T) int

// Natural orders values with cmp.Compare. Floating point NaNs are equal to each other
// and order before every other value, so the order stays total.
func Natural[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse flips the direction of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Key orders values by a key extracted from each of them.
func Key[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Then breaks ties of first with each of rest, in order.
func Then[T any](first Comparator[T], rest ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if c := first(a, b); c != 0 {
			return c
		}

		for _, next := range rest {
			if c := next(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// FromLess builds a Comparator out of a strict less-than function.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// NaturalString orders strings so that embedded numbers compare numerically,
// e.g. "file2" before "file10". Strings natsort cannot tell apart, such as "a01"
// and "a1", fall back to bytewise order so that only identical strings compare equal.
func NaturalString(a, b string) int {
	if a == b {
		return 0
	}

	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)
	if ab != ba {
		if ab {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

// Collated orders strings according to the collation rules of the given language.
// The returned Comparator owns a collator and must not be shared between goroutines.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	collator := collate.New(tag, opts...)

	return collator.CompareString
}
