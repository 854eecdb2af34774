package bigint

// GCD implements the Euclidean algorithm of §4.6 over the magnitudes of a
// and b: repeatedly replace (a, b) with (b, a mod b) until b is zero.
// GCD(0, x) == |x| falls out of the loop without a special case.
func GCD(a, b BigInt) BigInt {
	x, y := a.Abs(), b.Abs()
	for !y.IsZero() {
		x, y = y, x.Mod(y)
	}
	return x
}

// LCM returns |a*b| / gcd(a, b), or zero if either operand is zero (§4.6).
func LCM(a, b BigInt) BigInt {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	return a.Mul(b).Abs().Divide(GCD(a, b))
}

// ExtGCD implements the iterative extended Euclidean algorithm of §4.6,
// maintaining (old_r, r), (old_s, s) and (old_t, t) over signed BigInts.
// It returns (g, x, y) such that a*x + b*y == g with g >= 0 (§8 property
// 12); x and y may be negative.
func ExtGCD(a, b BigInt) (g, x, y BigInt) {
	oldR, r := Copy(a), Copy(b)
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()

	for !r.IsZero() {
		q := oldR.Divide(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}

	g, x, y = oldR, oldS, oldT
	if g.IsNegative() {
		g, x, y = g.Neg(), x.Neg(), y.Neg()
	}
	return g, x, y
}

// Sqrt returns floor(sqrt(n)) via Newton's iteration (§4.6): starting from
// x0 = n/2 (or 1 if that's zero), update x <- (x + n/x) / 2 and stop as
// soon as the update does not decrease x. Negative input is a precondition
// violation (§7).
func Sqrt(n BigInt) BigInt {
	assertValid(n)
	assert(!n.IsNegative(), "sqrt of negative input")
	if n.IsZero() {
		return Zero()
	}

	two := FromInt32(2)
	x := n.Divide(two)
	if x.IsZero() {
		x = One()
	}
	for {
		next := x.Add(n.Divide(x)).Divide(two)
		if next.GreaterEqual(x) {
			return x
		}
		x = next
	}
}

// Factorial returns n! for a non-negative 32-bit input, with 0! == 1! == 1
// (§4.6).
func Factorial(n uint32) BigInt {
	result := One()
	for i := uint32(2); i <= n; i++ {
		result = result.Mul(FromUint32(i))
	}
	return result
}

// ModPow implements right-to-left binary exponentiation (§4.6): m must be
// positive (m == 1 short-circuits to 0) and exp must be non-negative,
// both enforced as precondition violations (§7). base is reduced mod m
// first, then at each step a set low exponent bit multiplies the base
// into the running result mod m, the base is squared mod m, and the
// exponent shifts right by one bit.
func ModPow(base, exp, m BigInt) BigInt {
	assertValid(base)
	assertValid(exp)
	assertValid(m)
	assert(m.IsPositive(), "mod_pow requires a positive modulus")
	assert(!exp.IsNegative(), "mod_pow requires a non-negative exponent")

	if m.Equal(One()) {
		return Zero()
	}

	result := One()
	b := base.Mod(m)
	e := exp
	one := One()
	for !e.IsZero() {
		if e.And(one).Equal(one) {
			result = result.Mul(b).Mod(m)
		}
		b = b.Mul(b).Mod(m)
		e = e.Rsh(1)
	}
	return result
}

// IsPrime performs deterministic trial division up to floor(sqrt(n))
// (§4.6). certainty is accepted for interface compatibility with a
// probabilistic primality test and ignored, per spec — see §9 Open
// Question 3 and the Non-goals in §1.
func IsPrime(n BigInt, certainty int) bool {
	_ = certainty
	assertValid(n)

	if n.Less(FromInt32(2)) {
		return false
	}
	two, three := FromInt32(2), FromInt32(3)
	if n.Equal(two) || n.Equal(three) {
		return true
	}
	if n.Mod(two).IsZero() {
		return false
	}

	limit := Sqrt(n)
	for i := three; i.LessEqual(limit); i = i.AddInt32(2) {
		if n.Mod(i).IsZero() {
			return false
		}
	}
	return true
}

// NextPrime scans upward from n for a prime, per §4.6: an even n is
// incremented to the next odd candidate first (even n == 2 included — the
// original source applies this unconditionally), then candidates are
// stepped by two until IsPrime reports true. For n > 2 the result is the
// smallest prime >= n; NextPrime(2) is 3, and any n < 2 yields 3.
func NextPrime(n BigInt) BigInt {
	assertValid(n)
	two := FromInt32(2)

	candidate := Copy(n)
	if candidate.Mod(two).IsZero() {
		candidate = candidate.AddInt32(1)
	}
	for !cachedIsPrime(candidate, 0) {
		candidate = candidate.Add(two)
	}
	return candidate
}
