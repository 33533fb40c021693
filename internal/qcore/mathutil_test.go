package qcore

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsInt64(t *testing.T) {
	cases := []struct{ in, want int64 }{
		{5, 5}, {-5, 5}, {0, 0}, {math.MinInt64 + 1, math.MaxInt64},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, c.want, AbsInt64(c.in))
		})
	}
}

func TestSameSign(t *testing.T) {
	assert.True(t, SameSign(5, 10))
	assert.True(t, SameSign(-5, -10))
	assert.False(t, SameSign(5, -10))
}

func TestMulWide64SmallValues(t *testing.T) {
	hi, lo := MulWide64(6, 7)
	assert.Equal(t, int64(0), hi)
	assert.Equal(t, int64(42), lo)

	hi, lo = MulWide64(-6, 7)
	assert.Equal(t, int64(-1), hi)
	assert.Equal(t, int64(-42), lo)
}

func TestMulWide64LargeValues(t *testing.T) {
	a := int64(1) << 40
	b := int64(1) << 40
	hi, lo := MulWide64(a, b)
	assert.True(t, fitsInt64(hi, lo) == false)
	_ = lo
}
