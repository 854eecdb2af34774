package bigint

import "fmt"

// AssertHook is invoked whenever a public operation detects a precondition
// violation: a released or zero-value receiver, an invalid base, division
// or modulo by zero, a negative exponent to ModPow, a negative input to
// Sqrt, or min >= max passed to RandomRange (§7). It is the Go analogue of
// the library's compile-time "assertion hook" configuration option (§6):
// the default panics with a "bigint: " message, which aborts the program
// unless recovered. The tests keep the default and recover that panic to
// check that a violation was reported.
var AssertHook = func(cond bool, msg string) {
	if !cond {
		panic("bigint: " + msg)
	}
}

func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		AssertHook(false, fmt.Sprintf(format, args...))
	}
}
