// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
//
//	var n = zero.Value[int]()       // 0
//	var p = zero.Value[*MyStruct]() // nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// At returns slice[index], or the zero value of T when index is outside the slice.
// It never panics, which makes it suitable for accessors that treat a bad position
// as a miss instead of an error.
func At[T any](slice []T, index int) T {
	if index < 0 || index >= len(slice) {
		return Value[T]()
	}

	return slice[index]
}
