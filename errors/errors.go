// Package errors holds the sentinel errors shared by the collection packages and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrNoOrder is returned when a collection is built without any ordering option.
	ErrNoOrder = errors.New("no ordering configured")

	// ErrConflictingOrder is returned when more than one ordering option is supplied,
	// for example both a key function and an explicit comparator.
	ErrConflictingOrder = errors.New("conflicting ordering options")

	// ErrNilComparator is returned when an ordering option carries a nil function.
	ErrNilComparator = errors.New("nil comparator")

	// ErrOutOfOrder reports two adjacent elements that violate the sort order.
	ErrOutOfOrder = errors.New("elements out of order")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
