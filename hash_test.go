package bigint

import (
	"testing"

	ga "github.com/shabbyrobe/golib/assert"
)

func TestHashDeterministic(t *testing.T) {
	tt := ga.WrapTB(t)
	a := mustFrom("123456789012345678901234567890")
	b := mustFrom("123456789012345678901234567890")
	tt.MustEqual(a.Hash(), b.Hash())
}

func TestHashSignSensitive(t *testing.T) {
	tt := ga.WrapTB(t)
	pos := FromInt32(5)
	neg := FromInt32(-5)
	tt.MustAssert(pos.Hash() != neg.Hash())
}

func TestCachedIsPrimeAgreesWithIsPrime(t *testing.T) {
	tt := ga.WrapTB(t)
	for _, n := range []string{"2", "17", "18", "997", "998"} {
		v := mustFrom(n)
		tt.MustEqual(IsPrime(v, 0), cachedIsPrime(v, 0))
		// second call exercises the cache hit path
		tt.MustEqual(IsPrime(v, 0), cachedIsPrime(v, 0))
	}
}
