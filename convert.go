package bigint

import (
	"math/big"
	"strings"
)

// magToUint64 reassembles up to 64 bits of magnitude, returning ok=false if
// x has more bits than fit.
func magToUint64(a []limb) (v uint64, ok bool) {
	for i, l := range a {
		if i*limbBits >= 64 {
			return 0, false
		}
		v |= uint64(l) << uint(i*limbBits)
	}
	if magBitLen(a) > 64 {
		return 0, false
	}
	return v, true
}

// ToUint64 reports whether x fits in a uint64 and, if so, writes it out
// (§4.2, §6: Conversion). Negative values never fit.
func (x BigInt) ToUint64() (v uint64, ok bool) {
	assertValid(x)
	if x.b.neg {
		return 0, false
	}
	return magToUint64(x.b.limbs)
}

// ToUint32 reports whether x fits in a uint32.
func (x BigInt) ToUint32() (v uint32, ok bool) {
	u, ok := x.ToUint64()
	if !ok || u > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(u), true
}

// ToInt64 reports whether x fits in an int64 and, if so, writes it out.
// MinInt64 is representable even though its magnitude (1<<63) is one
// greater than MaxInt64 (§4.2).
func (x BigInt) ToInt64() (v int64, ok bool) {
	assertValid(x)
	mag, fits := magToUint64(x.b.limbs)
	if !fits {
		return 0, false
	}
	if x.b.neg {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag > uint64(1<<63-1) {
		return 0, false
	}
	return int64(mag), true
}

// ToInt32 reports whether x fits in an int32.
func (x BigInt) ToInt32() (v int32, ok bool) {
	i, ok := x.ToInt64()
	if !ok || i > (1<<31-1) || i < -(1<<31) {
		return 0, false
	}
	return int32(i), true
}

// ToFloat64 converts x to the nearest double, accumulating limbs from
// least to most significant with a running base multiplied by 2^limbBits
// per limb, then applying the sign (§4.2). No rounding guarantee beyond
// ordinary IEEE 754 double accumulation is made.
func (x BigInt) ToFloat64() float64 {
	assertValid(x)
	var out, base float64 = 0, 1
	wrap := float64(uint64(1) << limbBits)
	for _, l := range x.b.limbs {
		out += float64(l) * base
		base *= wrap
	}
	if x.b.neg {
		out = -out
	}
	return out
}

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text converts x to a string in the given base (2-36) by repeated
// division, accumulating least-significant digits first and reversing
// (§4.2). This is exact for every base — there is no floating-point
// fallback, unlike the snprintf("%.0f", ...) path the original source
// used (§9 Open Question 2).
func (x BigInt) Text(base int) string {
	assertValid(x)
	assert(base >= 2 && base <= 36, "invalid base %d, must be 2..36", base)

	if x.IsZero() {
		return "0"
	}

	mag := x.b.limbs
	bdiv := []limb{limb(base)}

	var digits []byte
	for len(mag) > 0 {
		q, r := magDivMod(mag, bdiv)
		var d limb
		if len(r) > 0 {
			d = r[0]
		}
		digits = append(digits, digitAlphabet[d])
		mag = q
	}

	var sb strings.Builder
	if x.b.neg {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// String implements fmt.Stringer by delegating to Text(10).
func (x BigInt) String() string { return x.Text(10) }

// AsBigInt copies x into a new math/big.Int. This bridge — together with
// FromBigInt — exists for interop and so the test suite can use math/big
// as a correctness oracle; production arithmetic never routes through it
// (§9 Open Questions 1 and 2 explicitly forbid a float/big.Int shortcut in
// the core algorithms).
func (x BigInt) AsBigInt() *big.Int {
	assertValid(x)
	out := new(big.Int)
	if len(x.b.limbs) == 0 {
		return out
	}
	bytes := make([]byte, len(x.b.limbs)*(limbBits/8))
	for i, l := range x.b.limbs {
		off := i * (limbBits / 8)
		for j := 0; j < limbBits/8; j++ {
			bytes[off+j] = byte(l >> (8 * j))
		}
	}
	// bytes is little-endian; big.Int.SetBytes wants big-endian.
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
	out.SetBytes(bytes)
	if x.b.neg {
		out.Neg(out)
	}
	return out
}

// FromBigInt converts a math/big.Int into a BigInt. See AsBigInt for why
// this bridge exists and what it is not used for.
func FromBigInt(v *big.Int) BigInt {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	bytes := abs.Bytes() // big-endian
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}

	step := limbBits / 8
	var limbs []limb
	for off := 0; off < len(bytes); off += step {
		var l limb
		for j := 0; j < step && off+j < len(bytes); j++ {
			l |= limb(bytes[off+j]) << (8 * j)
		}
		limbs = append(limbs, l)
	}
	return newBigInt(neg, limbs)
}
