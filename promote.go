package bigint

import "github.com/edadma/bigint/internal/overflow"

// PromoteAddInt32, PromoteSubInt32 and PromoteMulInt32 implement the
// automatic promotion behavior described in the original library's
// package doc: ordinary int32 arithmetic is attempted first, and only
// promoted to an arbitrary-precision BigInt when the fixed-width result
// would overflow (§12 supplemented feature). The int32 fast path avoids
// allocating a body when the result fits.
func PromoteAddInt32(a, b int32) (int32, BigInt, bool) {
	if r, ok := overflow.AddInt32(a, b); ok {
		return r, BigInt{}, true
	}
	return 0, FromInt32(a).AddInt32(b), false
}

func PromoteSubInt32(a, b int32) (int32, BigInt, bool) {
	if r, ok := overflow.SubInt32(a, b); ok {
		return r, BigInt{}, true
	}
	return 0, FromInt32(a).SubInt32(b), false
}

func PromoteMulInt32(a, b int32) (int32, BigInt, bool) {
	if r, ok := overflow.MulInt32(a, b); ok {
		return r, BigInt{}, true
	}
	return 0, FromInt32(a).MulInt32(b), false
}
