package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/logger"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/zero"
)

// Array is a slice kept sorted ascending under its Order. Equal elements stay in
// the order they were inserted.
//
// Build one with New, Of, NewFunc or NewKeyed; the zero Array has no ordering.
type Array[T any] struct {
	items []T
	order Order[T]
	log   *slog.Logger
}

// New builds an Array from options. Exactly one ordering option is required:
// ErrNoOrder is returned when none is given, ErrConflictingOrder when several are
// (such as a key and a comparator), and ErrNilComparator when the ordering has a
// nil function.
func New[T any](opts ...Option[T]) (*Array[T], error) {
	cfg := &config[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	order, err := cfg.order()
	if err != nil {
		return nil, err
	}

	return newArray(order, cfg.log).Insert(cfg.elements...), nil
}

// Of builds an Array of cmp.Ordered values in natural order.
func Of[T cmp.Ordered](elems ...T) *Array[T] {
	return newArray(Natural[T](), nil).Insert(elems...)
}

// NewFunc builds an Array ordered by fn, which must not be nil.
func NewFunc[T any](fn compare.Comparator[T], elems ...T) *Array[T] {
	assert.True(fn != nil, "sorted: nil comparator")

	return newArray(ByComparator(fn), nil).Insert(elems...)
}

func newArray[T any](order Order[T], log *slog.Logger) *Array[T] {
	if log == nil {
		log = logger.Get()
	}

	return &Array[T]{order: order, log: log}
}

// derive returns a new Array sharing a's configuration and owning items, which must
// already be sorted.
func (a *Array[T]) derive(items []T) *Array[T] {
	return &Array[T]{items: items, order: a.order, log: a.log}
}

func (a *Array[T]) logger() *slog.Logger {
	if a.log == nil {
		return logger.Get()
	}

	return a.log
}

// Order returns the ordering the Array runs on.
func (a *Array[T]) Order() Order[T] {
	return a.order
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Get returns the element at index, or the zero value of T when index is out of range.
func (a *Array[T]) Get(index int) T {
	return zero.At(a.items, index)
}

// At returns the element at index, or None when index is out of range.
func (a *Array[T]) At(index int) optional.Value[T] {
	return optional.Index(a.items, index)
}

// First returns the smallest element, or None when the Array is empty.
func (a *Array[T]) First() optional.Value[T] {
	return a.At(0)
}

// Last returns the largest element, or None when the Array is empty.
func (a *Array[T]) Last() optional.Value[T] {
	return a.At(len(a.items) - 1)
}

// Insert adds elements, keeping the Array sorted, and returns it for chaining.
//
// Into an empty Array the whole batch is copied and stable-sorted once. Otherwise
// each element is placed by binary search after every element equal to it.
// A comparator that is not a total order leaves the result unordered rather than
// failing; Verify reports such violations.
func (a *Array[T]) Insert(elems ...T) *Array[T] {
	if len(elems) == 0 {
		return a
	}

	assert.False(a.order.IsZero(), "sorted: insert into an Array without ordering")

	if len(a.items) == 0 {
		items := slices.Clone(elems)
		slices.SortStableFunc(items, a.order.cmp)
		a.items = items

		a.logger().Debug("sorted: bulk load", "count", len(items), "order", a.order.kind.String())

		return a
	}

	for _, elem := range elems {
		a.insertOne(elem)
	}

	return a
}

// InsertSeq inserts every element produced by seq.
func (a *Array[T]) InsertSeq(seq iter.Seq[T]) *Array[T] {
	return a.Insert(slices.Collect(seq)...)
}

func (a *Array[T]) insertOne(elem T) {
	index := a.greaterThanCutoff(a.valueProbe(elem), false)
	if index < 0 {
		index = len(a.items)
	}

	assert.InRange(index, 0, len(a.items))

	a.items = slices.Insert(a.items, index, elem)
}

// Remove deletes the element at index. See RemoveRange.
func (a *Array[T]) Remove(index int) *Array[T] {
	return a.RemoveRange(index, 1)
}

// RemoveRange deletes count elements starting at index. An index outside the Array
// or a non-positive count removes nothing; a count running past the end is clipped.
func (a *Array[T]) RemoveRange(index, count int) *Array[T] {
	if index < 0 || index >= len(a.items) || count <= 0 {
		return a
	}

	if count > len(a.items)-index {
		count = len(a.items) - index
	}

	a.items = slices.Delete(a.items, index, index+count)

	return a
}

// RemoveValue deletes every element equal to value. Absent values are a no-op.
func (a *Array[T]) RemoveValue(value T) *Array[T] {
	a.removeRun(a.valueProbe(value))

	return a
}

func (a *Array[T]) removeRun(p probe[T]) {
	start, n := a.equalRun(p)
	if n == 0 {
		return
	}

	a.items = slices.Delete(a.items, start, start+n)
}

// Search returns the index of the leftmost element equal to value, or -1.
func (a *Array[T]) Search(value T) int {
	return a.search(a.valueProbe(value))
}

// Has reports whether an element equal to value is present.
func (a *Array[T]) Has(value T) bool {
	return a.Search(value) != -1
}

// Count returns how many elements are equal to value.
func (a *Array[T]) Count(value T) int {
	_, n := a.equalRun(a.valueProbe(value))

	return n
}

// Eq returns a new Array holding the elements equal to value.
func (a *Array[T]) Eq(value T) *Array[T] {
	return a.derive(a.equal(a.valueProbe(value)))
}

// Gt returns a new Array holding the elements greater than value.
func (a *Array[T]) Gt(value T) *Array[T] {
	return a.derive(a.after(a.valueProbe(value), false))
}

// Gte returns a new Array holding the elements greater than or equal to value.
func (a *Array[T]) Gte(value T) *Array[T] {
	return a.derive(a.after(a.valueProbe(value), true))
}

// Lt returns a new Array holding the elements less than value.
func (a *Array[T]) Lt(value T) *Array[T] {
	return a.derive(a.before(a.valueProbe(value), false))
}

// Lte returns a new Array holding the elements less than or equal to value.
func (a *Array[T]) Lte(value T) *Array[T] {
	return a.derive(a.before(a.valueProbe(value), true))
}

// Between returns a new Array holding the elements e with lo <= e <= hi.
func (a *Array[T]) Between(lo, hi T) *Array[T] {
	return a.derive(a.within(a.valueProbe(lo), a.valueProbe(hi)))
}

// Clear removes every element and returns the Array.
func (a *Array[T]) Clear() *Array[T] {
	a.items = nil

	return a
}

// Clone returns an independent copy with the same ordering.
func (a *Array[T]) Clone() *Array[T] {
	return a.derive(slices.Clone(a.items))
}

// Values returns a copy of the elements in order. Changing the copy does not
// affect the Array.
func (a *Array[T]) Values() []T {
	return append(make([]T, 0, len(a.items)), a.items...)
}

// All yields index/element pairs in order. The Array must not be mutated while
// iterating.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.items)
}

// Seq yields the elements in order. The Array must not be mutated while iterating.
func (a *Array[T]) Seq() iter.Seq[T] {
	return slices.Values(a.items)
}

// String renders the elements comma-separated, e.g. "-50,-25,0,25,50".
func (a *Array[T]) String() string {
	parts := make([]string, len(a.items))
	for i, item := range a.items {
		parts[i] = fmt.Sprint(item)
	}

	return strings.Join(parts, ",")
}
