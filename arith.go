package bigint

// Add implements §4.4: same-sign operands add magnitudes and keep the
// common sign; differing-sign operands subtract the smaller magnitude
// from the larger and take the larger operand's sign.
func (x BigInt) Add(y BigInt) BigInt {
	assertValid(x)
	assertValid(y)

	if x.b.neg == y.b.neg {
		return newBigInt(x.b.neg, magAdd(x.b.limbs, y.b.limbs))
	}

	switch magCmp(x.b.limbs, y.b.limbs) {
	case 0:
		return Zero()
	case 1:
		return newBigInt(x.b.neg, magSub(x.b.limbs, y.b.limbs))
	default:
		return newBigInt(y.b.neg, magSub(y.b.limbs, x.b.limbs))
	}
}

// Sub implements §4.4's a + (-b) definition directly.
func (x BigInt) Sub(y BigInt) BigInt {
	assertValid(x)
	assertValid(y)
	return x.Add(y.Neg())
}

// Neg returns -x; zero's negation is zero, never negative (§3 invariant 2).
func (x BigInt) Neg() BigInt {
	assertValid(x)
	if x.IsZero() {
		return Zero()
	}
	return newBigInt(!x.b.neg, x.b.limbs)
}

// Abs returns |x|.
func (x BigInt) Abs() BigInt {
	assertValid(x)
	return newBigInt(false, x.b.limbs)
}

// Mul implements the schoolbook multiply of §4.4; the result's sign is the
// XOR of the operand signs, forced back to non-negative if the product is
// zero (magMul/newBigInt already normalize that).
func (x BigInt) Mul(y BigInt) BigInt {
	assertValid(x)
	assertValid(y)
	return newBigInt(x.b.neg != y.b.neg, magMul(x.b.limbs, y.b.limbs))
}

// QuoRem implements truncated division with remainder together (§4.4):
// the quotient's sign is the XOR of the operand signs, the remainder
// carries the sign of the dividend, and |remainder| < |y|. Dividing by
// zero is a precondition violation (§7).
func (x BigInt) QuoRem(y BigInt) (q, r BigInt) {
	assertValid(x)
	assertValid(y)
	assert(!y.IsZero(), "division or modulo by zero")

	if x.IsZero() {
		return Zero(), Zero()
	}

	qmag, rmag := magDivMod(x.b.limbs, y.b.limbs)
	return newBigInt(x.b.neg != y.b.neg, qmag), newBigInt(x.b.neg, rmag)
}

// Divide returns the truncated quotient x/y (§6).
func (x BigInt) Divide(y BigInt) BigInt {
	q, _ := x.QuoRem(y)
	return q
}

// Mod returns the truncated remainder x%y, carrying the sign of x (§6).
func (x BigInt) Mod(y BigInt) BigInt {
	_, r := x.QuoRem(y)
	return r
}

// Pow returns x raised to the non-negative integer power exp, by repeated
// squaring. x^0 is 1 for any x, including 0 (the §4.6 supplemented
// db_pow operation, distinct from ModPow).
func (x BigInt) Pow(exp uint32) BigInt {
	assertValid(x)
	result := One()
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// AddInt32 adds a native int32 to x (§6, §12 supplemented mixed variant).
// y is converted with FromInt32 first, so a BigInt is still allocated
// for it.
func (x BigInt) AddInt32(y int32) BigInt { return x.Add(FromInt32(y)) }

// SubInt32 subtracts a native int32 from x (§6, §12).
func (x BigInt) SubInt32(y int32) BigInt { return x.Sub(FromInt32(y)) }

// MulInt32 multiplies x by a native int32 (§6, §12).
func (x BigInt) MulInt32(y int32) BigInt { return x.Mul(FromInt32(y)) }
