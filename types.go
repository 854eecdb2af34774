package bigint

// body is the reference-counted, immutable backing store for a BigInt
// (§3, §4.8). limbs is little-endian and canonical: either empty (the
// value is zero) or its last element is non-zero (§3 invariant 1). neg is
// forbidden from being true when limbs is empty (§3 invariant 2).
type body struct {
	limbs []limb
	neg   bool
	refs  int32
	freed bool
}

// BigInt is a handle onto a body. It is a small value type, cheap to copy,
// but copying a BigInt does NOT retain it (see Retain) — exactly like
// copying a db_bigint pointer in the C original does not touch its
// refcount. The zero value of BigInt is a null handle; every accessor
// asserts it was obtained from a constructor or operation before use.
type BigInt struct {
	b *body
}

func newBody(neg bool, limbs []limb) *body {
	limbs = trimLimbs(limbs)
	if len(limbs) == 0 {
		neg = false
	}
	return &body{limbs: limbs, neg: neg, refs: 1}
}

func newBigInt(neg bool, limbs []limb) BigInt {
	return BigInt{b: newBody(neg, limbs)}
}

func assertValid(x BigInt) {
	assert(x.b != nil, "operation on a null BigInt handle")
	assert(!x.b.freed, "operation on a released BigInt handle")
}

// Zero returns a freshly constructed BigInt representing 0.
func Zero() BigInt { return newBigInt(false, nil) }

// One returns a freshly constructed BigInt representing 1.
func One() BigInt { return newBigInt(false, []limb{1}) }

// IsZero reports whether x's magnitude is empty (§4.3).
func (x BigInt) IsZero() bool {
	assertValid(x)
	return len(x.b.limbs) == 0
}

// IsNegative reports whether x's sign is negative (§4.3). Zero is never
// negative, by construction (§3 invariant 2).
func (x BigInt) IsNegative() bool {
	assertValid(x)
	return x.b.neg
}

// IsPositive reports whether x is non-negative and non-zero (§4.3).
func (x BigInt) IsPositive() bool {
	assertValid(x)
	return !x.b.neg && len(x.b.limbs) != 0
}

// LimbCount returns the number of limbs in x's canonical magnitude.
func (x BigInt) LimbCount() int {
	assertValid(x)
	return len(x.b.limbs)
}

// BitLen returns the number of bits required to represent |x|'s magnitude;
// BitLen of zero is 0.
func (x BigInt) BitLen() int {
	assertValid(x)
	return magBitLen(x.b.limbs)
}
