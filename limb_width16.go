//go:build bigint_limb16

package bigint

import "math/bits"

// limb and dlimb are the configurable-width machine word and its
// double-width carry-propagation counterpart (§3). This file selects the
// 16-bit limb; the 32-bit default lives in limb_width32.go.
type limb = uint16
type dlimb = uint32

const limbBits = 16

func leadingZerosLimb(x limb) uint { return uint(bits.LeadingZeros16(x)) }

func trailingZerosLimb(x limb) uint { return uint(bits.TrailingZeros16(x)) }
