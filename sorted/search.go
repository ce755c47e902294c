package sorted

import "slices"

// probe compares a stored element against a fixed target: negative when the element
// orders before the target, zero when equal, positive when after. Every lookup runs on
// a probe, so the same routines serve whole-element and key queries.
type probe[T any] func(stored T) int

func (a *Array[T]) valueProbe(target T) probe[T] {
	cmp := a.order.cmp

	return func(stored T) int {
		return cmp(stored, target)
	}
}

// search returns the leftmost index where p reports equal, or -1. On an equal
// midpoint that is not the lower bound it keeps narrowing left, and only returns
// once the lower bound itself matches.
func (a *Array[T]) search(p probe[T]) int {
	lo, hi := 0, len(a.items)-1

	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec

		switch c := p(a.items[mid]); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		case lo != mid:
			hi = mid
		default:
			return mid
		}
	}

	return -1
}

// greaterThanCutoff returns the smallest index whose element is greater than the
// target (greater or equal when orEqual), or -1 when no element qualifies.
func (a *Array[T]) greaterThanCutoff(p probe[T], orEqual bool) int {
	lo, hi := 0, len(a.items)-1

	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec

		if c := p(a.items[mid]); c > 0 || (orEqual && c == 0) {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	if hi+1 == len(a.items) {
		return -1
	}

	return hi + 1
}

// lessThanCutoff returns the largest index whose element is less than the target
// (less or equal when orEqual), or -1 when no element qualifies.
func (a *Array[T]) lessThanCutoff(p probe[T], orEqual bool) int {
	lo, hi := 0, len(a.items)-1

	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec

		if c := p(a.items[mid]); c > 0 || (!orEqual && c == 0) {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	return lo - 1
}

// equalRun locates the contiguous run of elements equal to the target. The start
// is found by binary search, the length by walking the run. Returns (-1, 0) when
// the target is absent.
func (a *Array[T]) equalRun(p probe[T]) (start, n int) {
	start = a.greaterThanCutoff(p, true)
	if start < 0 {
		return -1, 0
	}

	end := start
	for end < len(a.items) && p(a.items[end]) == 0 {
		end++
	}

	if end == start {
		return -1, 0
	}

	return start, end - start
}

// The helpers below return freshly allocated slices, never views of a.items.

func (a *Array[T]) equal(p probe[T]) []T {
	start, n := a.equalRun(p)
	if n == 0 {
		return nil
	}

	return slices.Clone(a.items[start : start+n])
}

func (a *Array[T]) after(p probe[T], orEqual bool) []T {
	index := a.greaterThanCutoff(p, orEqual)
	if index < 0 {
		return nil
	}

	return slices.Clone(a.items[index:])
}

func (a *Array[T]) before(p probe[T], orEqual bool) []T {
	index := a.lessThanCutoff(p, orEqual)
	if index < 0 {
		return nil
	}

	return slices.Clone(a.items[:index+1])
}

func (a *Array[T]) within(lo, hi probe[T]) []T {
	start := a.greaterThanCutoff(lo, true)
	end := a.lessThanCutoff(hi, true)

	if start < 0 || end < 0 || start > end {
		return nil
	}

	return slices.Clone(a.items[start : end+1])
}
