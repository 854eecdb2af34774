package bigint

// Compare returns -1, 0 or +1 per the total order of §4.3: differing signs
// decide first, then zero equals zero, then magnitudes are compared
// (inverted when both operands are negative).
func Compare(a, b BigInt) int {
	assertValid(a)
	assertValid(b)

	if a.b.neg != b.b.neg {
		if a.b.neg {
			return -1
		}
		return 1
	}
	if a.IsZero() && b.IsZero() {
		return 0
	}

	c := magCmp(a.b.limbs, b.b.limbs)
	if a.b.neg {
		return -c
	}
	return c
}

func (x BigInt) Compare(y BigInt) int { return Compare(x, y) }

func (x BigInt) Equal(y BigInt) bool        { return Compare(x, y) == 0 }
func (x BigInt) Less(y BigInt) bool         { return Compare(x, y) < 0 }
func (x BigInt) LessEqual(y BigInt) bool    { return Compare(x, y) <= 0 }
func (x BigInt) Greater(y BigInt) bool      { return Compare(x, y) > 0 }
func (x BigInt) GreaterEqual(y BigInt) bool { return Compare(x, y) >= 0 }
