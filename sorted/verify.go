package sorted

import (
	"fmt"

	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/logger"
)

// Verify re-checks that every adjacent pair is in order. Each violation is reported
// as an ErrOutOfOrder annotated with its index, all joined into one error. A
// violation can only come from a comparator that is not a consistent total order.
func (a *Array[T]) Verify() error {
	var errs errors.Collection

	for i := 1; i < len(a.items); i++ {
		if a.order.cmp(a.items[i-1], a.items[i]) > 0 {
			err := fmt.Errorf("%w: index %d orders before index %d", errors.ErrOutOfOrder, i, i-1)
			errs.Add(logger.AnnotateError(err, "index", i))
		}
	}

	if errs.HasError() {
		a.logger().Warn("sorted: order violated", "violations", errs.Len(), "len", len(a.items))
	}

	return errs.GetError()
}
