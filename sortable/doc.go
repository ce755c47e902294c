// Package sortable provides the Sortable interface and wrapper types for primitive
// types that implement it.
//
// A Sortable type knows both equality (from [github.com/amp-labs/amp-sorted/compare.Comparable])
// and order (LessThan). [Compare] turns that pair into a three-way comparison, which is
// what ordered collections such as [github.com/amp-labs/amp-sorted/sorted.Array] run on:
//
//	arr, err := sorted.New(sorted.WithSortable[sortable.Int]())
//	arr.Insert(sortable.Int(42), sortable.Int(10), sortable.Int(25))
//	// arr.Values() == [10 25 42]
//
// # Custom Sortable Types
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// Equals and LessThan must agree: exactly one of a.LessThan(b), a.Equals(b) and
// b.LessThan(a) holds for any pair. [Float64] shows how to keep that true for NaN.
package sortable
