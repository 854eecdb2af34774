package bigint

import (
	"testing"

	ga "github.com/shabbyrobe/golib/assert"
)

func TestRetainRelease(t *testing.T) {
	tt := ga.WrapTB(t)

	x := mustFrom("12345")
	tt.MustEqual(1, RefCount(x))

	y := Retain(x)
	tt.MustEqual(2, RefCount(x))
	tt.MustAssert(y.b == x.b)

	Release(&y)
	tt.MustEqual(BigInt{}, y)
	tt.MustEqual(1, RefCount(x))

	Release(&x)
	tt.MustEqual(BigInt{}, x)
}

func TestReleaseOnNullHandleIsNoOp(t *testing.T) {
	tt := ga.WrapTB(t)
	x := mustFrom("1")
	Release(&x)
	tt.MustEqual(BigInt{}, x)

	// x is now a null handle; releasing it again must be a no-op, not a
	// precondition violation (§4.8, §7).
	Release(&x)
	tt.MustEqual(BigInt{}, x)
}

func TestReleaseStaleHandleAsserts(t *testing.T) {
	tt := ga.WrapTB(t)
	x := mustFrom("1")
	y := Retain(x)
	z := y // a third, independent copy of the same handle, never nulled itself

	Release(&x)
	Release(&y)

	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	// z still points at the now-freed body; releasing it is a precondition
	// violation, unlike releasing a handle that was itself already nulled.
	Release(&z)
}

func TestCopyIsIndependentLifetime(t *testing.T) {
	tt := ga.WrapTB(t)

	x := mustFrom("999")
	y := Copy(x)
	tt.MustAssert(y.b != x.b)
	tt.MustAssert(y.Equal(x))
	tt.MustEqual(1, RefCount(y))

	Release(&y)
	// x is unaffected by releasing its independent copy.
	tt.MustEqual("999", x.String())
}
