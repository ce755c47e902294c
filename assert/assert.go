// Package assert provides runtime assertions for internal invariants.
//
// Assertions panic when they fail. Building with the assertions_disabled tag turns
// every assertion into a no-op, so they can guard hot paths during development and
// testing without costing anything in production builds.
package assert

import "fmt"

// failure builds the panic message for a failed assertion.
// If the first arg is a string, it's used as a format string with remaining args.
// Otherwise, all args are included in the message.
func failure(args ...any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
