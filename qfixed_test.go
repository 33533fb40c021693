package fixed

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/qfixed/cordic"
	"github.com/avdva/qfixed/internal/qcore"
	robaho "github.com/robaho/fixed"
)

func TestQ5_10RoundTrip(t *testing.T) {
	for i, x := range []float64{0, 1, -1, 3.25, -3.25, 15.5} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := NewQ5_10(x)
			require.NoError(t, err)
			assert.InDelta(t, x, v.Float64(), v.Descriptor().Precision())
		})
	}
}

// TestConstructionAgainstRobahoFixed cross-checks construction-from-real
// (round-half-away-from-zero) against an independent fixed-point
// implementation built from the same float64 value.
func TestConstructionAgainstRobahoFixed(t *testing.T) {
	literal := 3.25
	ours, err := NewQ10_20(literal)
	require.NoError(t, err)

	oracle := robaho.NewF(literal)
	assert.InDelta(t, oracle.Float(), ours.Float64(), ours.Descriptor().Precision())
}

// TestDistributivityAgainstDecimalOracle checks a*(b+c) == a*b + a*c
// using shopspring/decimal as an arbitrary-precision reference, tighter
// than comparing float64 against float64.
func TestDistributivityAgainstDecimalOracle(t *testing.T) {
	a, _ := NewQ5_10(1.5)
	b, _ := NewQ5_10(2.0)
	c, _ := NewQ5_10(0.5)

	da := decimal.NewFromFloat(a.Float64())
	db := decimal.NewFromFloat(b.Float64())
	dc := decimal.NewFromFloat(c.Float64())
	want := da.Mul(db.Add(dc))

	ab, err := a.Mul(b)
	require.NoError(t, err)
	ac, err := a.Mul(c)
	require.NoError(t, err)
	got := ab.Float64() + ac.Float64()

	assert.InDelta(t, want.InexactFloat64(), got, 0.05)
}

func TestAddOverflowScenarioS2(t *testing.T) {
	// x=15.5, y=16.5 in Q(5,10) signed: x+y=32.0 would fit the promoted
	// Q(6,10) format, but overflow is checked against x's own Q(5,10)
	// bounds first (see DESIGN.md's resolution of this scenario), so the
	// result stays in Q5_10, saturated.
	x, err := NewQ5_10(15.5)
	require.NoError(t, err)
	y, err := NewQ5_10(16.5)
	require.NoError(t, err)

	sum, err := x.Add(y)
	require.NoError(t, err) // default policy saturates rather than raises
	assert.Equal(t, descQ5_10, sum.Descriptor())
	assert.InDelta(t, 31.999, sum.Float64(), 0.01) // saturated at Q5_10's largest
}

func TestSinCosIdentity(t *testing.T) {
	v, err := NewQ10_20(1.1)
	require.NoError(t, err)
	s, err := v.Sin()
	require.NoError(t, err)
	c, err := v.Cos()
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(1.1), s.Float64(), 0.01)
	assert.InDelta(t, math.Cos(1.1), c.Float64(), 0.01)
}

func TestSqrtPromotesFormat(t *testing.T) {
	v, err := NewQ10_20(4.0)
	require.NoError(t, err)
	root, err := v.Sqrt()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root.Float64(), 0.01)
	assert.Equal(t, descQ6_20, root.Descriptor())
}

func TestExpIsUnsigned(t *testing.T) {
	v, err := NewQ10_20(1.0)
	require.NoError(t, err)
	e, err := v.Exp()
	require.NoError(t, err)
	assert.False(t, e.Descriptor().Signed)
	assert.InDelta(t, math.E, e.Float64(), 0.05)
}

func TestUnsignedFormatMulStaysClosed(t *testing.T) {
	a, err := NewUQ4_28(2.0)
	require.NoError(t, err)
	b, err := NewUQ4_28(3.0)
	require.NoError(t, err)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, descUQ4_28, prod.Descriptor())
	assert.InDelta(t, 6.0, prod.Float64(), 0.01)
}

func TestDivisionByZeroAlwaysRaises(t *testing.T) {
	a, _ := NewQ8_24(1.0)
	zero, _ := NewQ8_24(0.0)
	_, err := a.Div(zero)
	require.Error(t, err)
	assert.True(t, IsDivisionByZero(err))
}

// TestNegSaturatesAtSignedMinimum pins down the signed-minimum edge of
// anti-symmetry: negating Q5_10's smallest stored integer overflows its
// own bounds by one, so the default saturate policy clamps it to the
// largest stored integer instead of wrapping around to a negative value.
func TestNegSaturatesAtSignedMinimum(t *testing.T) {
	min, err := Q5_10FromRaw(descQ5_10.LeastStored())
	require.NoError(t, err)
	neg, err := min.Neg()
	require.NoError(t, err) // default policy saturates rather than raises
	assert.Equal(t, descQ5_10.LargestStored(), neg.Raw())
}

func TestNegAntiSymmetry(t *testing.T) {
	v, err := NewQ5_10(12.25)
	require.NoError(t, err)
	neg, err := v.Neg()
	require.NoError(t, err)
	back, err := neg.Neg()
	require.NoError(t, err)
	assert.Equal(t, v.Raw(), back.Raw())
}

// TestOverflowPolicyRaiseFires pins down invariant 10 for Add, Mul and
// Div directly: each operation is given an overflow=raise descriptor and
// an input pair whose exact result falls outside the destination
// format, and the policy must actually surface an error rather than
// silently saturating or wrapping.
func TestOverflowPolicyRaiseFires(t *testing.T) {
	raiseDesc := qcore.Descriptor{IntBits: 5, FracBits: 10, Signed: true, Overflow: qcore.PolicyRaise}

	x, err := qcore.FromFloat(15.5, raiseDesc)
	require.NoError(t, err)
	y, err := qcore.FromFloat(16.5, raiseDesc)
	require.NoError(t, err)
	_, _, err = qcore.Add(x, raiseDesc, y, raiseDesc)
	require.Error(t, err)
	assert.True(t, IsOverflow(err))

	closedDesc := qcore.Descriptor{IntBits: 8, FracBits: 24, Signed: true, Overflow: qcore.PolicyRaise}
	a, err := qcore.FromFloat(100.0, closedDesc)
	require.NoError(t, err)
	b, err := qcore.FromFloat(100.0, closedDesc)
	require.NoError(t, err)
	_, _, err = qcore.Mul(a, closedDesc, b, closedDesc)
	require.Error(t, err)
	assert.True(t, IsOverflow(err))

	num, err := qcore.FromFloat(16.0, raiseDesc)
	require.NoError(t, err)
	den, err := qcore.Wrap(1, raiseDesc) // smallest positive representable value
	require.NoError(t, err)
	_, _, err = qcore.Div(num, raiseDesc, den, raiseDesc)
	require.Error(t, err)
	assert.True(t, IsOverflow(err))

	min, err := qcore.Wrap(raiseDesc.LeastStored(), raiseDesc)
	require.NoError(t, err)
	_, err = qcore.Neg(min, raiseDesc)
	require.Error(t, err)
	assert.True(t, IsOverflow(err))
}

// TestScenarioS1ExactStoredInteger: x=1.5, y=0.25 in Q(10,20) signed sum
// to exactly 1.75, stored integer 1835008, with no rounding involved.
func TestScenarioS1ExactStoredInteger(t *testing.T) {
	x, err := NewQ10_20(1.5)
	require.NoError(t, err)
	y, err := NewQ10_20(0.25)
	require.NoError(t, err)
	sum, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, int64(1835008), sum.Raw())
	assert.Equal(t, 1.75, sum.Float64())
}

// TestScenarioS3SinPrecision: sin(pi/6) in Q(8,24) signed, abs error
// bounded by 2^-23.
func TestScenarioS3SinPrecision(t *testing.T) {
	v, err := NewQ8_24(math.Pi / 6)
	require.NoError(t, err)
	s, err := v.Sin()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Float64(), math.Pow(2, -23))
}

// TestScenarioS4LogPrecision: log(e) in Q(8,24) signed, abs error
// bounded by 2^-22.
func TestScenarioS4LogPrecision(t *testing.T) {
	v, err := NewQ8_24(math.E)
	require.NoError(t, err)
	l, err := v.Log()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l.Float64(), math.Pow(2, -22))
}

// TestScenarioS5SqrtPrecision: sqrt(2.0) in Q(10,20) signed, abs error
// bounded by 2^-19.
func TestScenarioS5SqrtPrecision(t *testing.T) {
	v, err := NewQ10_20(2.0)
	require.NoError(t, err)
	root, err := v.Sqrt()
	require.NoError(t, err)
	assert.InDelta(t, 1.41421356, root.Float64(), math.Pow(2, -19))
}

// TestScenarioS6UnsignedOverflowRaises: UQ(4,28) with overflow=raise; a
// value already at the format's largest representable magnitude plus
// the smallest positive increment overflows and must raise.
func TestScenarioS6UnsignedOverflowRaises(t *testing.T) {
	d := qcore.Descriptor{IntBits: 4, FracBits: 28, Signed: false, Overflow: qcore.PolicyRaise}
	x, err := qcore.FromFloat(d.Largest(), d)
	require.NoError(t, err)
	one, err := qcore.Wrap(1, d)
	require.NoError(t, err)
	_, _, err = qcore.Add(x, d, one, d)
	require.Error(t, err)
	assert.True(t, IsOverflow(err))
}

// TestScenarioS7DivThenMulRecoversOriginal: a=3.0, b=7.0 in Q(10,20);
// (a/b) renormalised back to Q(10,20) and multiplied by b again lands
// within one of Q(10,20)'s own epsilons of the original a.
func TestScenarioS7DivThenMulRecoversOriginal(t *testing.T) {
	a, err := NewQ10_20(3.0)
	require.NoError(t, err)
	b, err := NewQ10_20(7.0)
	require.NoError(t, err)
	q, err := a.Div(b)
	require.NoError(t, err)
	qBack, err := NewQ10_20(q.Float64())
	require.NoError(t, err)
	prod, err := qBack.Mul(b)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, prod.Float64(), descQ10_20.Precision())
}

// TestWrapUnwrapIdentity pins down invariant 2: re-wrapping a value's own
// stored integer must reproduce it exactly.
func TestWrapUnwrapIdentity(t *testing.T) {
	v, err := NewQ5_10(12.25)
	require.NoError(t, err)
	wrapped, err := Q5_10FromRaw(v.Raw())
	require.NoError(t, err)
	assert.Equal(t, v.Raw(), wrapped.Raw())
}

// TestAdditiveIdentity pins down invariant 3: x + 0 must equal x exactly,
// even after the sum's promotion to the wider companion format.
func TestAdditiveIdentity(t *testing.T) {
	x, err := NewQ5_10(7.75)
	require.NoError(t, err)
	zero, err := NewQ5_10(0)
	require.NoError(t, err)
	sum, err := x.Add(zero)
	require.NoError(t, err)
	assert.Equal(t, x.Float64(), sum.Float64())
}

// TestMultiplicativeIdentityClosedFormat pins down invariant 4 in the
// closed case: Q8_24 * Q8_24 stays in Q8_24, so x * 1 must equal x
// exactly, format included.
func TestMultiplicativeIdentityClosedFormat(t *testing.T) {
	x, err := NewQ8_24(5.5)
	require.NoError(t, err)
	one, err := NewQ8_24(1.0)
	require.NoError(t, err)
	prod, err := x.Mul(one)
	require.NoError(t, err)
	assert.Equal(t, x.Descriptor(), prod.Descriptor())
	assert.Equal(t, x.Float64(), prod.Float64())
}

// TestMultiplicativeIdentityExpandableFormat pins down invariant 4 in
// the expandable case: Q5_10 * Q5_10 promotes to Q10_20, so x * 1 is
// only required to equal x after renormalising back to x's own format.
func TestMultiplicativeIdentityExpandableFormat(t *testing.T) {
	x, err := NewQ5_10(12.25)
	require.NoError(t, err)
	one, err := NewQ5_10(1.0)
	require.NoError(t, err)
	prod, err := x.Mul(one)
	require.NoError(t, err)
	renormalized, err := NewQ5_10(prod.Float64())
	require.NoError(t, err)
	assert.Equal(t, x.Raw(), renormalized.Raw())
}

// TestAtanMonotonicOnStoredOrder pins down invariant 9 for atan, which
// is monotone over its whole domain: increasing stored integers in must
// never produce decreasing stored integers out.
func TestAtanMonotonicOnStoredOrder(t *testing.T) {
	var prevStored, prevResult int64
	first := true
	for x := -2.0; x <= 2.0; x += 0.05 {
		stored, err := qcore.FromFloat(x, descQ10_20)
		require.NoError(t, err)
		result, err := cordic.Atan(stored, descQ10_20)
		require.NoError(t, err)
		if !first && stored > prevStored {
			assert.GreaterOrEqual(t, result, prevResult)
		}
		prevStored, prevResult = stored, result
		first = false
	}
}
