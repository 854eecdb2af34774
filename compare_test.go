package bigint

import (
	"fmt"
	"testing"

	ga "github.com/shabbyrobe/golib/assert"
)

func TestCompare(t *testing.T) {
	for idx, tc := range []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"-5", "-3", -1},
		{"-3", "-5", 1},
		{"100000000000000000000", "99999999999999999999", 1},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := ga.WrapTB(t)
			a, _ := FromString(tc.a, 10)
			b, _ := FromString(tc.b, 10)
			tt.MustEqual(tc.want, Compare(a, b))
		})
	}
}

func TestCompareHelpers(t *testing.T) {
	tt := ga.WrapTB(t)
	a, b := FromInt32(5), FromInt32(10)
	tt.MustAssert(a.Less(b))
	tt.MustAssert(b.Greater(a))
	tt.MustAssert(a.LessEqual(a))
	tt.MustAssert(a.GreaterEqual(a))
	tt.MustAssert(a.Equal(FromInt32(5)))
}
