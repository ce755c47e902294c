package sorted

import (
	"cmp"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/sortable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option configures an Array built by New.
type Option[T any] func(*config[T])

type config[T any] struct {
	orders     []Order[T]
	descending bool
	elements   []T
	log        *slog.Logger
}

// WithOrder sets the ordering. Exactly one ordering option may be given to New.
func WithOrder[T any](order Order[T]) Option[T] {
	return func(c *config[T]) {
		c.orders = append(c.orders, order)
	}
}

// WithNaturalOrder sorts cmp.Ordered elements ascending.
func WithNaturalOrder[T cmp.Ordered]() Option[T] {
	return WithOrder(Natural[T]())
}

// WithKey sorts elements by the key extracted from each of them.
func WithKey[T any, K cmp.Ordered](key func(T) K) Option[T] {
	return WithOrder(ByKey(key))
}

// WithComparator sorts elements with fn.
func WithComparator[T any](fn compare.Comparator[T]) Option[T] {
	return WithOrder(ByComparator(fn))
}

// WithSortable sorts elements by their LessThan and Equals methods.
func WithSortable[T sortable.Sortable[T]]() Option[T] {
	return WithOrder(BySortable[T]())
}

// WithNaturalStrings sorts strings with embedded numbers compared numerically.
func WithNaturalStrings() Option[string] {
	return WithComparator[string](compare.NaturalString)
}

// WithCollation sorts strings by the collation rules of a language.
func WithCollation(tag language.Tag, opts ...collate.Option) Option[string] {
	return WithComparator(compare.Collated(tag, opts...))
}

// Descending reverses whichever ordering is configured.
func Descending[T any]() Option[T] {
	return func(c *config[T]) {
		c.descending = true
	}
}

// WithElements loads elements into the new Array in one sort.
func WithElements[T any](elems ...T) Option[T] {
	return func(c *config[T]) {
		c.elements = append(c.elements, elems...)
	}
}

// WithLogger sets the logger. Defaults to logger.Get().
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(c *config[T]) {
		c.log = log
	}
}

func (c *config[T]) order() (Order[T], error) {
	switch len(c.orders) {
	case 0:
		return Order[T]{}, errors.ErrNoOrder
	case 1:
	default:
		kinds := make([]string, len(c.orders))
		for i, o := range c.orders {
			kinds[i] = o.kind.String()
		}

		return Order[T]{}, fmt.Errorf("%w: %s", errors.ErrConflictingOrder, strings.Join(kinds, ", "))
	}

	order := c.orders[0]
	if order.IsZero() {
		return Order[T]{}, fmt.Errorf("%w: %s order", errors.ErrNilComparator, order.kind)
	}

	if c.descending {
		order = order.Reverse()
	}

	return order, nil
}
