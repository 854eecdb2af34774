// Package overflow provides checked fixed-width arithmetic on int32 and
// int64, the §6 "trivial external collaborator" contract that
// bigint.PromoteAdd/Sub/MulInt32 builds on to offer automatic promotion
// from a fixed-size integer to arbitrary precision on overflow, as
// described in the original library's own package doc.
package overflow

// AddInt32 returns a+b and reports whether the addition overflowed int32.
func AddInt32(a, b int32) (result int32, ok bool) {
	result = a + b
	if (b > 0 && result < a) || (b < 0 && result > a) {
		return 0, false
	}
	return result, true
}

// SubInt32 returns a-b and reports whether the subtraction overflowed int32.
func SubInt32(a, b int32) (result int32, ok bool) {
	result = a - b
	if (b < 0 && result < a) || (b > 0 && result > a) {
		return 0, false
	}
	return result, true
}

// MulInt32 returns a*b and reports whether the multiplication overflowed
// int32, by checking the result against a 64-bit replay of the same
// multiplication.
func MulInt32(a, b int32) (result int32, ok bool) {
	wide := int64(a) * int64(b)
	if wide > int64(maxInt32) || wide < int64(minInt32) {
		return 0, false
	}
	return int32(wide), true
}

// AddInt64 returns a+b and reports whether the addition overflowed int64.
func AddInt64(a, b int64) (result int64, ok bool) {
	result = a + b
	if (b > 0 && result < a) || (b < 0 && result > a) {
		return 0, false
	}
	return result, true
}

// SubInt64 returns a-b and reports whether the subtraction overflowed int64.
func SubInt64(a, b int64) (result int64, ok bool) {
	result = a - b
	if (b < 0 && result < a) || (b > 0 && result > a) {
		return 0, false
	}
	return result, true
}

// MulInt64 returns a*b and reports whether the multiplication overflowed
// int64, checked without a wider integer type by dividing back out.
func MulInt64(a, b int64) (result int64, ok bool) {
	result = a * b
	if a == 0 || b == 0 {
		return 0, true
	}
	if result/b != a {
		return 0, false
	}
	if a == -1 && b == minInt64 || b == -1 && a == minInt64 {
		return 0, false
	}
	return result, true
}

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
	minInt64 = -1 << 63
)
