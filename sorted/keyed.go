package sorted

import (
	"cmp"
	"iter"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/optional"
)

// Keyed is an Array ordered by a key extracted from each element. Besides the
// whole-element queries of Array it answers queries given a bare key, comparing
// key(stored) against it directly.
type Keyed[T any, K cmp.Ordered] struct {
	*Array[T]

	key        func(T) K
	descending bool
}

// NewKeyed builds a Keyed collection ordered by key, which must not be nil.
func NewKeyed[T any, K cmp.Ordered](key func(T) K, elems ...T) *Keyed[T, K] {
	assert.True(key != nil, "sorted: nil key function")

	return &Keyed[T, K]{
		Array: newArray(ByKey(key), nil).Insert(elems...),
		key:   key,
	}
}

// NewKeyedWith builds a Keyed collection ordered by key and configured by opts.
// The key is the ordering, so any other ordering option yields ErrConflictingOrder
// and a nil key yields ErrNilComparator. Descending, WithElements and WithLogger
// apply as they do for New.
func NewKeyedWith[T any, K cmp.Ordered](key func(T) K, opts ...Option[T]) (*Keyed[T, K], error) {
	cfg := &config[T]{}
	WithKey(key)(cfg)

	for _, opt := range opts {
		opt(cfg)
	}

	order, err := cfg.order()
	if err != nil {
		return nil, err
	}

	return &Keyed[T, K]{
		Array:      newArray(order, cfg.log).Insert(cfg.elements...),
		key:        key,
		descending: cfg.descending,
	}, nil
}

func (k *Keyed[T, K]) keyProbe(target K) probe[T] {
	key := k.key

	if k.descending {
		return func(stored T) int {
			return cmp.Compare(target, key(stored))
		}
	}

	return func(stored T) int {
		return cmp.Compare(key(stored), target)
	}
}

func (k *Keyed[T, K]) derive(items []T) *Keyed[T, K] {
	return &Keyed[T, K]{Array: k.Array.derive(items), key: k.key, descending: k.descending}
}

// Key returns the key of the element at index, or None when out of range.
func (k *Keyed[T, K]) Key(index int) optional.Value[K] {
	return optional.Map(k.At(index), k.key)
}

// Insert adds elements and returns k for chaining.
func (k *Keyed[T, K]) Insert(elems ...T) *Keyed[T, K] {
	k.Array.Insert(elems...)

	return k
}

// InsertSeq inserts every element produced by seq.
func (k *Keyed[T, K]) InsertSeq(seq iter.Seq[T]) *Keyed[T, K] {
	k.Array.InsertSeq(seq)

	return k
}

// Remove deletes the element at index.
func (k *Keyed[T, K]) Remove(index int) *Keyed[T, K] {
	k.Array.Remove(index)

	return k
}

// RemoveRange deletes count elements starting at index.
func (k *Keyed[T, K]) RemoveRange(index, count int) *Keyed[T, K] {
	k.Array.RemoveRange(index, count)

	return k
}

// RemoveValue deletes every element whose key equals that of value.
func (k *Keyed[T, K]) RemoveValue(value T) *Keyed[T, K] {
	k.Array.RemoveValue(value)

	return k
}

// Clear removes every element.
func (k *Keyed[T, K]) Clear() *Keyed[T, K] {
	k.Array.Clear()

	return k
}

// Clone returns an independent copy.
func (k *Keyed[T, K]) Clone() *Keyed[T, K] {
	return k.derive(k.Values())
}

// Eq returns a new collection holding the elements whose key equals that of value.
func (k *Keyed[T, K]) Eq(value T) *Keyed[T, K] {
	return k.derive(k.equal(k.valueProbe(value)))
}

// Gt returns a new collection holding the elements ordered after value.
func (k *Keyed[T, K]) Gt(value T) *Keyed[T, K] {
	return k.derive(k.after(k.valueProbe(value), false))
}

// Gte returns a new collection holding the elements not ordered before value.
func (k *Keyed[T, K]) Gte(value T) *Keyed[T, K] {
	return k.derive(k.after(k.valueProbe(value), true))
}

// Lt returns a new collection holding the elements ordered before value.
func (k *Keyed[T, K]) Lt(value T) *Keyed[T, K] {
	return k.derive(k.before(k.valueProbe(value), false))
}

// Lte returns a new collection holding the elements not ordered after value.
func (k *Keyed[T, K]) Lte(value T) *Keyed[T, K] {
	return k.derive(k.before(k.valueProbe(value), true))
}

// Between returns a new collection holding the elements ordered from lo to hi inclusive.
func (k *Keyed[T, K]) Between(lo, hi T) *Keyed[T, K] {
	return k.derive(k.within(k.valueProbe(lo), k.valueProbe(hi)))
}

// SearchKey returns the index of the leftmost element with the given key, or -1.
func (k *Keyed[T, K]) SearchKey(key K) int {
	return k.search(k.keyProbe(key))
}

// HasKey reports whether an element with the given key is present.
func (k *Keyed[T, K]) HasKey(key K) bool {
	return k.SearchKey(key) != -1
}

// CountKey returns how many elements have the given key.
func (k *Keyed[T, K]) CountKey(key K) int {
	_, n := k.equalRun(k.keyProbe(key))

	return n
}

// RemoveKey deletes every element with the given key.
func (k *Keyed[T, K]) RemoveKey(key K) *Keyed[T, K] {
	k.removeRun(k.keyProbe(key))

	return k
}

// EqKey returns a new collection holding the elements with the given key.
func (k *Keyed[T, K]) EqKey(key K) *Keyed[T, K] {
	return k.derive(k.equal(k.keyProbe(key)))
}

// GtKey returns a new collection holding the elements whose key orders after key.
func (k *Keyed[T, K]) GtKey(key K) *Keyed[T, K] {
	return k.derive(k.after(k.keyProbe(key), false))
}

// GteKey returns a new collection holding the elements whose key does not order before key.
func (k *Keyed[T, K]) GteKey(key K) *Keyed[T, K] {
	return k.derive(k.after(k.keyProbe(key), true))
}

// LtKey returns a new collection holding the elements whose key orders before key.
func (k *Keyed[T, K]) LtKey(key K) *Keyed[T, K] {
	return k.derive(k.before(k.keyProbe(key), false))
}

// LteKey returns a new collection holding the elements whose key does not order after key.
func (k *Keyed[T, K]) LteKey(key K) *Keyed[T, K] {
	return k.derive(k.before(k.keyProbe(key), true))
}

// BetweenKey returns a new collection holding the elements whose key orders from lo to hi inclusive.
func (k *Keyed[T, K]) BetweenKey(lo, hi K) *Keyed[T, K] {
	return k.derive(k.within(k.keyProbe(lo), k.keyProbe(hi)))
}
