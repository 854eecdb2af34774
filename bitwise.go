package bigint

// And, Or and Xor operate on magnitudes only and always produce a
// non-negative result (§4.5): sign-magnitude BigInts have no two's
// complement extension for negative operands, so these are not
// mathematically meaningful on negative inputs beyond what's documented
// here. Callers wanting two's-complement semantics must re-derive them.
func (x BigInt) And(y BigInt) BigInt {
	assertValid(x)
	assertValid(y)
	return newBigInt(false, magAnd(x.b.limbs, y.b.limbs))
}

func (x BigInt) Or(y BigInt) BigInt {
	assertValid(x)
	assertValid(y)
	return newBigInt(false, magOr(x.b.limbs, y.b.limbs))
}

func (x BigInt) Xor(y BigInt) BigInt {
	assertValid(x)
	assertValid(y)
	return newBigInt(false, magXor(x.b.limbs, y.b.limbs))
}

// Not flips every bit of every limb of x's magnitude and appends one
// additional all-ones limb, producing a non-negative result (§4.5). This
// is a known quirk preserved for compatibility with the original source:
// Not(Not(x)) != x in general. See §9 Open Question 4.
func (x BigInt) Not() BigInt {
	assertValid(x)
	return newBigInt(false, magNot(x.b.limbs))
}

// Lsh shifts x left by bits bits, preserving sign (§4.5). shift_left(x,k)
// == x * 2^k for non-negative k (§8 property 10).
func (x BigInt) Lsh(bits uint) BigInt {
	assertValid(x)
	return newBigInt(x.b.neg, magShl(x.b.limbs, bits))
}

// Rsh shifts x right by bits bits (a logical shift on the magnitude, NOT
// an arithmetic two's-complement shift): if bits is at least the total
// number of magnitude bits the result is zero, otherwise the low
// bits/limbBits limbs are dropped and the remainder shifted down,
// preserving sign (§4.5) unless the result becomes zero, in which case
// §3 invariant 2 forces it non-negative.
func (x BigInt) Rsh(bits uint) BigInt {
	assertValid(x)
	return newBigInt(x.b.neg, magShr(x.b.limbs, bits))
}
