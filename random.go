package bigint

// RandSource is the source of entropy for Random and RandomRange (§4.7).
// A *rand.Rand satisfies this interface.
type RandSource interface {
	Uint64() uint64
}

// Random returns a non-negative BigInt drawing ceil(bits/limbBits) limbs
// of uniformly random bits from source, masking the top limb down to
// exactly bits bits (§4.7). Unlike a fixed-width random integer, the top
// bit is not forced on: a result may normalize to fewer than bits
// significant bits if the high bits happen to be zero, matching
// db_random in the original source exactly. source is explicitly a
// non-cryptographic PRNG.
func Random(bits uint, source RandSource) BigInt {
	assert(source != nil, "random requires a non-nil source")
	if bits == 0 {
		return Zero()
	}

	n := (bits + limbBits - 1) / limbBits
	limbs := make([]limb, n)
	for i := range limbs {
		limbs[i] = limb(source.Uint64())
	}

	if high := bits % limbBits; high > 0 {
		limbs[n-1] &= limb(uint64(1)<<uint(high) - 1)
	}

	return newBigInt(false, limbs)
}

// RandomRange returns a random value in [lo, hi), per
// §4.7 and db_random_range in the original source: min must be strictly
// less than max. A candidate of bit_length(hi-lo)+8 bits is drawn and
// reduced modulo the range width (the extra 8 bits bound the modular
// bias), then added to lo. §4.7 specifies a bounded retry budget for this
// step because the original C implementation's random() call can fail
// under allocation pressure and must be retried; that failure mode does
// not exist in Go, so the error return exists for interface parity with
// the spec but is always nil here.
func RandomRange(lo, hi BigInt, source RandSource) (BigInt, error) {
	assertValid(lo)
	assertValid(hi)
	assert(lo.Less(hi), "random_range requires min < max")

	width := hi.Sub(lo)
	bits := uint(width.BitLen()) + 8
	candidate := Random(bits, source)
	return lo.Add(candidate.Mod(width)), nil
}
