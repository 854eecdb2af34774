package bigint

import (
	"math/rand"
	"testing"

	ga "github.com/shabbyrobe/golib/assert"
)

func TestRandomBitLength(t *testing.T) {
	tt := ga.WrapTB(t)
	src := rand.New(rand.NewSource(1))

	tt.MustEqual("0", Random(0, src).String())

	for _, bits := range []uint{1, 8, 31, 32, 33, 64, 65, 200} {
		v := Random(bits, src)
		// The top bit isn't forced on, so the result may normalize to
		// fewer significant bits than requested, but never more.
		tt.MustAssert(v.BitLen() <= int(bits), "bits=%d got BitLen=%d", bits, v.BitLen())
		tt.MustAssert(!v.IsNegative())
	}
}

func TestRandomRange(t *testing.T) {
	tt := ga.WrapTB(t)
	src := rand.New(rand.NewSource(42))

	lo, hi := FromInt32(10), FromInt32(20)
	for i := 0; i < 200; i++ {
		v, err := RandomRange(lo, hi, src)
		tt.MustOK(err)
		tt.MustAssert(v.GreaterEqual(lo) && v.Less(hi), "got %s", v)
	}
}

func TestRandomRangeNarrow(t *testing.T) {
	tt := ga.WrapTB(t)
	src := rand.New(rand.NewSource(7))
	v, err := RandomRange(FromInt32(5), FromInt32(6), src)
	tt.MustOK(err)
	tt.MustEqual("5", v.String())
}
