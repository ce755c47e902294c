//go:build !assertions_disabled

package assert

// True asserts that the given value is true.
// If the assertion fails, it panics with a message built from args.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(failure(args...))
}

// False asserts that the given value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil asserts that the given value is not nil.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// InRange asserts that lo <= index <= hi.
func InRange(index, lo, hi int, args ...any) {
	if index >= lo && index <= hi {
		return
	}

	if len(args) == 0 {
		panic(failure("index %d outside [%d, %d]", index, lo, hi))
	}

	panic(failure(args...))
}
