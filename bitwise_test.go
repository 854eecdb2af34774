package bigint

import (
	"fmt"
	"testing"

	ga "github.com/shabbyrobe/golib/assert"
)

func TestAndOrXor(t *testing.T) {
	tt := ga.WrapTB(t)
	a, b := FromInt32(0b1100), FromInt32(0b1010)
	tt.MustEqual(FromInt32(0b1000).String(), a.And(b).String())
	tt.MustEqual(FromInt32(0b1110).String(), a.Or(b).String())
	tt.MustEqual(FromInt32(0b0110).String(), a.Xor(b).String())
}

func TestLshRsh(t *testing.T) {
	tt := ga.WrapTB(t)
	a := FromInt32(1)
	tt.MustEqual("1024", a.Lsh(10).String())
	tt.MustEqual("-1024", FromInt32(-1).Lsh(10).String())

	b := FromInt32(1024)
	tt.MustEqual("1", b.Rsh(10).String())
	tt.MustEqual("0", b.Rsh(20).String())
	tt.MustAssert(!b.Rsh(20).IsNegative())
}

func TestShiftAgreesWithPow(t *testing.T) {
	for idx, k := range []uint{0, 1, 5, 31, 32, 63, 64, 100} {
		t.Run(fmt.Sprintf("%d/%d", idx, k), func(t *testing.T) {
			tt := ga.WrapTB(t)
			got := FromInt32(3).Lsh(k)
			want := FromInt32(3).Mul(FromInt32(2).Pow(uint32(k)))
			tt.MustEqual(want.String(), got.String())
		})
	}
}

func TestNotQuirk(t *testing.T) {
	tt := ga.WrapTB(t)
	x := FromInt32(5)
	// Not is magnitude-only and not a clean involution; Not(Not(x)) != x.
	tt.MustAssert(!x.Not().Not().Equal(x))
}
