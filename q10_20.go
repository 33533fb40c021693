//go:generate go run ./internal/genformat -n=10 -f=20 -signed=true -out=q10_20_base.gen.go

package fixed

import (
	"github.com/avdva/qfixed/cordic"
	"github.com/avdva/qfixed/internal/qcore"
)

var descQ10_20 = qcore.Descriptor{IntBits: 10, FracBits: 20, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

// Q10_20 is a signed Q(10,20) fixed-point value.
type Q10_20 struct{ Base }

func NewQ10_20(x float64) (Q10_20, error) {
	stored, err := qcore.FromFloat(x, descQ10_20)
	return Q10_20{Base{stored, &descQ10_20}}, err
}

func Q10_20FromInt(x int64) (Q10_20, error) {
	stored, err := qcore.FromInt(x, descQ10_20)
	return Q10_20{Base{stored, &descQ10_20}}, err
}

func Q10_20FromRaw(raw int64) (Q10_20, error) {
	stored, err := qcore.Wrap(raw, descQ10_20)
	return Q10_20{Base{stored, &descQ10_20}}, err
}

// Add implements sum promotion; overflow is checked against a's own
// bounds before the result is ever re-expressed in the wider Q11_20
// (see DESIGN.md).
func (a Q10_20) Add(b Q10_20) (Q11_20, error) {
	stored, desc, err := qcore.Add(a.stored, descQ10_20, b.stored, descQ10_20)
	return Q11_20{Base{stored, &desc}}, err
}

func (a Q10_20) Sub(b Q10_20) (Q11_20, error) {
	stored, desc, err := qcore.Sub(a.stored, descQ10_20, b.stored, descQ10_20)
	return Q11_20{Base{stored, &desc}}, err
}

func (a Q10_20) Mul(b Q10_20) (Q20_40, error) {
	stored, desc, err := qcore.Mul(a.stored, descQ10_20, b.stored, descQ10_20)
	return Q20_40{Base{stored, &desc}}, err
}

func (a Q10_20) Div(b Q10_20) (Q20_10, error) {
	stored, desc, err := qcore.Div(a.stored, descQ10_20, b.stored, descQ10_20)
	return Q20_10{Base{stored, &desc}}, err
}

// Neg negates in place within Q10_20, overflowing at the signed minimum.
func (a Q10_20) Neg() (Q10_20, error) {
	v, err := qcore.Neg(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Sin() (Q10_20, error) {
	v, err := cordic.Sin(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Cos() (Q10_20, error) {
	v, err := cordic.Cos(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Tan() (Q10_20, error) {
	v, err := cordic.Tan(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Asin() (Q10_20, error) {
	v, err := cordic.Asin(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Acos() (Q10_20, error) {
	v, err := cordic.Acos(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Atan() (Q10_20, error) {
	v, err := cordic.Atan(a.stored, descQ10_20)
	return Q10_20{Base{v, &descQ10_20}}, err
}

func (a Q10_20) Sqrt() (Q6_20, error) {
	v, err := cordic.Sqrt(a.stored, descQ10_20)
	return Q6_20{Base{v, &descQ6_20}}, err
}

func (a Q10_20) Log() (Q15_20, error) {
	v, err := cordic.Log(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Log2() (Q15_20, error) {
	v, err := cordic.Log2(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Log10() (Q15_20, error) {
	v, err := cordic.Log10(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Exp() (UQ15_20, error) {
	v, err := cordic.Exp(a.stored, descQ10_20)
	return UQ15_20{Base{v, &descUQ15_20}}, err
}

func (a Q10_20) Sinh() (Q15_20, error) {
	v, err := cordic.Sinh(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Cosh() (Q15_20, error) {
	v, err := cordic.Cosh(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Tanh() (Q15_20, error) {
	v, err := cordic.Tanh(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Asinh() (Q15_20, error) {
	v, err := cordic.Asinh(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Acosh() (Q15_20, error) {
	v, err := cordic.Acosh(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (a Q10_20) Atanh() (Q15_20, error) {
	v, err := cordic.Atanh(a.stored, descQ10_20)
	return Q15_20{Base{v, &descQ15_20}}, err
}

func (Q10_20) ConstPi() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constPi, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstPi2() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constPi2, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstPi4() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constPi4, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstTwoPi() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(const2PiFull, descQ10_20), &descQ10_20}}
}

func (Q10_20) Const1Pi() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(const1Pi, descQ10_20), &descQ10_20}}
}

func (Q10_20) Const2Pi() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(const2Pi, descQ10_20), &descQ10_20}}
}

func (Q10_20) Const2SqrtPi() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(const2SqrtPi, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstSqrt2() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constSqrt2, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstSqrt1_2() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constSqrt1_2, descQ10_20), &descQ10_20}}
}

func (Q10_20) Const2Sqrt2() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(const2Sqrt2, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstE() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constE, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstLog2E() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constLog2E, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstLog10E() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constLog10E, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstLog102() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constLog102, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstLn2() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constLn2, descQ10_20), &descQ10_20}}
}

func (Q10_20) ConstLn10() Q10_20 {
	return Q10_20{Base{qcore.FromFloatMust(constLn10, descQ10_20), &descQ10_20}}
}

// Q11_20 is Q10_20's sum-promoted companion.
type Q11_20 struct{ Base }

var descQ11_20 = qcore.Descriptor{IntBits: 11, FracBits: 20, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ11_20(x float64) (Q11_20, error) {
	stored, err := qcore.FromFloat(x, descQ11_20)
	return Q11_20{Base{stored, &descQ11_20}}, err
}

// Q20_40 is Q10_20's product-promoted companion.
type Q20_40 struct{ Base }

var descQ20_40 = qcore.Descriptor{IntBits: 20, FracBits: 40, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ20_40(x float64) (Q20_40, error) {
	stored, err := qcore.FromFloat(x, descQ20_40)
	return Q20_40{Base{stored, &descQ20_40}}, err
}

// Q20_10 is Q10_20's quotient-promoted companion.
type Q20_10 struct{ Base }

var descQ20_10 = qcore.Descriptor{IntBits: 20, FracBits: 10, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ20_10(x float64) (Q20_10, error) {
	stored, err := qcore.FromFloat(x, descQ20_10)
	return Q20_10{Base{stored, &descQ20_10}}, err
}

// Q6_20 is Q10_20's sqrt-promoted companion.
type Q6_20 struct{ Base }

var descQ6_20 = qcore.Descriptor{IntBits: 6, FracBits: 20, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ6_20(x float64) (Q6_20, error) {
	stored, err := qcore.FromFloat(x, descQ6_20)
	return Q6_20{Base{stored, &descQ6_20}}, err
}

// Q15_20 is Q10_20's log/hyperbolic-sum-promoted companion.
type Q15_20 struct{ Base }

var descQ15_20 = qcore.Descriptor{IntBits: 15, FracBits: 20, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ15_20(x float64) (Q15_20, error) {
	stored, err := qcore.FromFloat(x, descQ15_20)
	return Q15_20{Base{stored, &descQ15_20}}, err
}

// UQ15_20 is Q10_20's exp-promoted companion, forced unsigned.
type UQ15_20 struct{ Base }

var descUQ15_20 = qcore.Descriptor{IntBits: 15, FracBits: 20, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ15_20(x float64) (UQ15_20, error) {
	stored, err := qcore.FromFloat(x, descUQ15_20)
	return UQ15_20{Base{stored, &descUQ15_20}}, err
}
