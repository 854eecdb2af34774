package overflow

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAddInt32(t *testing.T) {
	for idx, tc := range []struct {
		a, b int32
		want int32
		ok   bool
	}{
		{1, 2, 3, true},
		{math.MaxInt32, 1, 0, false},
		{math.MinInt32, -1, 0, false},
		{math.MaxInt32, -1, math.MaxInt32 - 1, true},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got, ok := AddInt32(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			if ok {
				tt.MustEqual(tc.want, got)
			}
		})
	}
}

func TestSubInt32(t *testing.T) {
	tt := assert.WrapTB(t)
	_, ok := SubInt32(math.MinInt32, 1)
	tt.MustAssert(!ok)
	got, ok := SubInt32(10, 3)
	tt.MustAssert(ok)
	tt.MustEqual(int32(7), got)
}

func TestMulInt32(t *testing.T) {
	for idx, tc := range []struct {
		a, b int32
		want int32
		ok   bool
	}{
		{3, 4, 12, true},
		{math.MaxInt32, 2, 0, false},
		{math.MinInt32, -1, 0, false},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got, ok := MulInt32(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			if ok {
				tt.MustEqual(tc.want, got)
			}
		})
	}
}

func TestAddSubMulInt64(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := AddInt64(math.MaxInt64, 1)
	tt.MustAssert(!ok)

	_, ok = SubInt64(math.MinInt64, 1)
	tt.MustAssert(!ok)

	got, ok := MulInt64(1000000000, 1000000000)
	tt.MustAssert(ok)
	tt.MustEqual(int64(1000000000000000000), got)

	_, ok = MulInt64(math.MaxInt64, 2)
	tt.MustAssert(!ok)

	_, ok = MulInt64(math.MinInt64, -1)
	tt.MustAssert(!ok)
}
