// Package sorted provides Array, a generic collection that keeps its elements sorted
// in a flat slice and answers membership and range queries by binary search.
//
// # Ordering
//
// Every Array runs on exactly one ordering, chosen at construction and resolved to a
// single comparison function:
//
//   - natural order for cmp.Ordered types ([Of], [WithNaturalOrder]);
//   - order by a key extracted from each element ([NewKeyed], [WithKey]);
//   - an explicit comparator ([NewFunc], [WithComparator], [WithSortable]).
//
// [New] rejects configurations that name no ordering or more than one.
//
// # Duplicates
//
// Equal elements are allowed and kept in insertion order. [Array.Search] returns the
// leftmost of them and [Array.RemoveValue] removes all of them.
//
// # Ownership
//
// [Array.Values] and every range query ([Array.Gt], [Array.Lte], [Array.Eq], ...)
// return fresh copies, so nothing a caller does to a result can break the order of
// the source. An Array is not safe for concurrent use.
package sorted
