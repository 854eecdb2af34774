//go:build !bigint_limb16

package bigint

import "math/bits"

// limb and dlimb are the configurable-width machine word and its
// double-width carry-propagation counterpart (§3). This file selects the
// 32-bit default; build with -tags bigint_limb16 to select the 16-bit
// limb defined in limb_width16.go instead.
type limb = uint32
type dlimb = uint64

const limbBits = 32

func leadingZerosLimb(x limb) uint { return uint(bits.LeadingZeros32(x)) }

func trailingZerosLimb(x limb) uint { return uint(bits.TrailingZeros32(x)) }
