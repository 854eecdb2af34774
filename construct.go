package bigint

import (
	"fmt"
	"strings"
)

// FromInt32 constructs a BigInt from a signed 32-bit input (§4.2). The
// most-negative value is handled by computing its magnitude in unsigned
// space: mag := uint32(v); negate it as an unsigned value rather than
// negating v itself, so MinInt32's magnitude (MaxInt32+1) never overflows.
func FromInt32(v int32) BigInt {
	if v == 0 {
		return Zero()
	}
	mag := uint32(v)
	neg := v < 0
	if neg {
		mag = -mag
	}
	return newBigInt(neg, limbsFromUint64(uint64(mag)))
}

// FromInt64 constructs a BigInt from a signed 64-bit input, using the same
// unsigned-negation trick as FromInt32 so MinInt64 is handled correctly.
func FromInt64(v int64) BigInt {
	if v == 0 {
		return Zero()
	}
	mag := uint64(v)
	neg := v < 0
	if neg {
		mag = -mag
	}
	return newBigInt(neg, limbsFromUint64(mag))
}

// FromUint32 constructs a non-negative BigInt from an unsigned 32-bit input.
func FromUint32(v uint32) BigInt { return newBigInt(false, limbsFromUint64(uint64(v))) }

// FromUint64 constructs a non-negative BigInt from an unsigned 64-bit input.
func FromUint64(v uint64) BigInt { return newBigInt(false, limbsFromUint64(v)) }

// limbsFromUint64 splits v into the minimal little-endian limb sequence.
func limbsFromUint64(v uint64) []limb {
	var out []limb
	for v != 0 {
		out = append(out, limb(v))
		v >>= limbBits
	}
	return out
}

// FromString parses s in the given base (2-36) per §4.2: optional leading
// whitespace, optional sign, then one or more base-b digits (letters are
// case-insensitive for bases above 10), parsed with Horner's method. A
// prefix of valid digits is accepted; parsing stops at the first invalid
// character as long as at least one digit was consumed. An empty digit
// sequence is a parse failure (§7), reported as a non-nil error rather
// than a precondition violation — this is the one recoverable error kind
// from-string can produce.
func FromString(s string, base int) (BigInt, error) {
	assert(base >= 2 && base <= 36, "invalid base %d, must be 2..36", base)

	i, n := 0, len(s)
	for i < n && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}

	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	acc := Zero()
	digits := 0
	for i < n {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			break
		}
		acc = acc.mulAddSmall(uint32(base), uint32(d))
		digits++
		i++
	}

	if digits == 0 {
		return BigInt{}, fmt.Errorf("bigint: from_string %q has no valid base-%d digits", s, base)
	}

	if acc.IsZero() {
		return acc, nil
	}
	acc.b.neg = neg
	return acc, nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// mulAddSmall computes x*base + add over the magnitude, the inner step of
// Horner's method used by FromString. It ignores x's sign, matching the
// accumulator's use as an always-non-negative running magnitude.
func (x BigInt) mulAddSmall(base, add uint32) BigInt {
	out := make([]limb, len(x.b.limbs)+1)
	var carry dlimb
	for i, v := range x.b.limbs {
		t := dlimb(v)*dlimb(base) + carry
		out[i] = limb(t)
		carry = t >> limbBits
	}
	out[len(x.b.limbs)] = limb(carry)

	// add the digit into limb 0, propagating carry if needed.
	t := dlimb(out[0]) + dlimb(add)
	out[0] = limb(t)
	carry = t >> limbBits
	for i := 1; carry != 0; i++ {
		if i == len(out) {
			out = append(out, 0)
		}
		t = dlimb(out[i]) + carry
		out[i] = limb(t)
		carry = t >> limbBits
	}

	return newBigInt(false, out)
}

// FromStringTrim is a convenience over FromString that trims surrounding
// whitespace before delegating; FromString already skips leading
// whitespace per §4.2, but trailing whitespace is treated as trailing
// garbage and simply stops the scan, which is what callers usually want
// when the input also carries a trailing newline.
func FromStringTrim(s string, base int) (BigInt, error) {
	return FromString(strings.TrimRight(s, " \t\r\n"), base)
}
