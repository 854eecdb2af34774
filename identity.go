package bigint

import "sync/atomic"

// Retain increments x's reference count and returns x unchanged, mirroring
// db_retain (§4.8, §8 property 16): every call to Retain must be matched
// by exactly one call to Release. Retaining a released handle is a
// precondition violation.
func Retain(x BigInt) BigInt {
	assertValid(x)
	atomic.AddInt32(&x.b.refs, 1)
	return x
}

// Release decrements (*x)'s reference count and, when it reaches zero,
// marks the body freed and clears *x to the null handle (§4.8). Release on
// a null handle is a no-op (§4.8, §7) — this is what makes a double-release
// through the same variable safe: the first call already nulls *x, so the
// second sees a null handle rather than a stale one. Releasing a non-null
// handle whose body some other handle already drove to zero refs is still a
// precondition violation, since that handle was never nulled by the release
// that freed it.
func Release(x *BigInt) {
	assert(x != nil, "release requires a non-nil pointer")
	if x.b == nil {
		return
	}
	assertValid(*x)

	b := x.b
	if atomic.AddInt32(&b.refs, -1) == 0 {
		b.freed = true
	}
	*x = BigInt{}
}

// RefCount reports x's current reference count (§4.8, exposed for testing
// and diagnostics — db_ref_count in the original).
func RefCount(x BigInt) int {
	assertValid(x)
	return int(atomic.LoadInt32(&x.b.refs))
}

// Copy returns a value-identical BigInt backed by its own body with a
// fresh reference count of one (§4.8's db_copy), rather than sharing x's
// body the way Retain does. Because bodies are otherwise immutable, Copy
// only matters for independent lifetime management — the returned handle
// can be released without affecting x.
func Copy(x BigInt) BigInt {
	assertValid(x)
	limbs := make([]limb, len(x.b.limbs))
	copy(limbs, x.b.limbs)
	return newBigInt(x.b.neg, limbs)
}
