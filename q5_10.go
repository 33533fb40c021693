//go:generate go run ./internal/genformat -n=5 -f=10 -signed=true -out=q5_10_base.gen.go

package fixed

import (
	"github.com/avdva/qfixed/cordic"
	"github.com/avdva/qfixed/internal/qcore"
)

var descQ5_10 = qcore.Descriptor{IntBits: 5, FracBits: 10, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

// Q5_10 is a signed Q(5,10) fixed-point value: 5 integer bits, 10
// fractional bits, no external scaling.
type Q5_10 struct{ Base }

// NewQ5_10 constructs a Q5_10 from a real literal, rounding half away
// from zero.
func NewQ5_10(x float64) (Q5_10, error) {
	stored, err := qcore.FromFloat(x, descQ5_10)
	return Q5_10{Base{stored, &descQ5_10}}, err
}

// Q5_10FromInt constructs a Q5_10 from an integer.
func Q5_10FromInt(x int64) (Q5_10, error) {
	stored, err := qcore.FromInt(x, descQ5_10)
	return Q5_10{Base{stored, &descQ5_10}}, err
}

// Q5_10FromRaw wraps a pre-computed stored integer directly, raising
// overflow if it falls outside the format's bounds.
func Q5_10FromRaw(raw int64) (Q5_10, error) {
	stored, err := qcore.Wrap(raw, descQ5_10)
	return Q5_10{Base{stored, &descQ5_10}}, err
}

// Add implements sum promotion: Q5_10 + Q5_10 -> Q6_10.
func (a Q5_10) Add(b Q5_10) (Q6_10, error) {
	stored, desc, err := qcore.Add(a.stored, descQ5_10, b.stored, descQ5_10)
	return Q6_10{Base{stored, &desc}}, err
}

// Sub implements sum promotion for subtraction: Q5_10 - Q5_10 -> Q6_10.
func (a Q5_10) Sub(b Q5_10) (Q6_10, error) {
	stored, desc, err := qcore.Sub(a.stored, descQ5_10, b.stored, descQ5_10)
	return Q6_10{Base{stored, &desc}}, err
}

// Mul implements product promotion: Q5_10 * Q5_10 -> Q10_20.
func (a Q5_10) Mul(b Q5_10) (Q10_20, error) {
	stored, desc, err := qcore.Mul(a.stored, descQ5_10, b.stored, descQ5_10)
	return Q10_20{Base{stored, &desc}}, err
}

// Div implements quotient promotion: Q5_10 / Q5_10 -> Q10_5.
func (a Q5_10) Div(b Q5_10) (Q10_5, error) {
	stored, desc, err := qcore.Div(a.stored, descQ5_10, b.stored, descQ5_10)
	return Q10_5{Base{stored, &desc}}, err
}

// Neg returns the additive inverse, staying in Q5_10 (unary minus never
// changes format). Negating the signed minimum overflows Q5_10's own
// bounds, so the result is routed through descQ5_10's overflow policy
// like every other operator.
func (a Q5_10) Neg() (Q5_10, error) {
	v, err := qcore.Neg(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

// Sin, Cos, Tan, Asin, Acos and Atan preserve format.
func (a Q5_10) Sin() (Q5_10, error) {
	v, err := cordic.Sin(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

func (a Q5_10) Cos() (Q5_10, error) {
	v, err := cordic.Cos(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

func (a Q5_10) Tan() (Q5_10, error) {
	v, err := cordic.Tan(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

func (a Q5_10) Asin() (Q5_10, error) {
	v, err := cordic.Asin(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

func (a Q5_10) Acos() (Q5_10, error) {
	v, err := cordic.Acos(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

func (a Q5_10) Atan() (Q5_10, error) {
	v, err := cordic.Atan(a.stored, descQ5_10)
	return Q5_10{Base{v, &descQ5_10}}, err
}

// Sqrt implements sqrt promotion: n <- ceil(n/2)+1 -> Q4_10.
func (a Q5_10) Sqrt() (Q4_10, error) {
	v, err := cordic.Sqrt(a.stored, descQ5_10)
	return Q4_10{Base{v, &descQ4_10}}, err
}

// Log, Log2 and Log10 implement the sum-of-sums promotion -> Q9_10.
func (a Q5_10) Log() (Q9_10, error) {
	v, err := cordic.Log(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

func (a Q5_10) Log2() (Q9_10, error) {
	v, err := cordic.Log2(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

func (a Q5_10) Log10() (Q9_10, error) {
	v, err := cordic.Log10(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

// Exp implements the sum-of-sums promotion, forced unsigned -> UQ9_10.
func (a Q5_10) Exp() (UQ9_10, error) {
	v, err := cordic.Exp(a.stored, descQ5_10)
	return UQ9_10{Base{v, &descUQ9_10}}, err
}

// Sinh, Cosh and Tanh implement the hyperbolic sum promotion -> Q9_10.
func (a Q5_10) Sinh() (Q9_10, error) {
	v, err := cordic.Sinh(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

func (a Q5_10) Cosh() (Q9_10, error) {
	v, err := cordic.Cosh(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

func (a Q5_10) Tanh() (Q9_10, error) {
	v, err := cordic.Tanh(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

// Asinh, Acosh and Atanh share the log promotion table entry -> Q9_10.
func (a Q5_10) Asinh() (Q9_10, error) {
	v, err := cordic.Asinh(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

func (a Q5_10) Acosh() (Q9_10, error) {
	v, err := cordic.Acosh(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

func (a Q5_10) Atanh() (Q9_10, error) {
	v, err := cordic.Atanh(a.stored, descQ5_10)
	return Q9_10{Base{v, &descQ9_10}}, err
}

// ConstPi, ConstE and the rest of the named constants, each stored once
// in Q5_10's own scale.
func (Q5_10) ConstPi() Q5_10  { return Q5_10{Base{qcore.FromFloatMust(constPi, descQ5_10), &descQ5_10}} }
func (Q5_10) ConstE() Q5_10   { return Q5_10{Base{qcore.FromFloatMust(constE, descQ5_10), &descQ5_10}} }
func (Q5_10) ConstLn2() Q5_10 { return Q5_10{Base{qcore.FromFloatMust(constLn2, descQ5_10), &descQ5_10}} }

// Q6_10 is the sum-promoted companion of Q5_10 + Q5_10.
type Q6_10 struct{ Base }

var descQ6_10 = qcore.Descriptor{IntBits: 6, FracBits: 10, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ6_10(x float64) (Q6_10, error) {
	stored, err := qcore.FromFloat(x, descQ6_10)
	return Q6_10{Base{stored, &descQ6_10}}, err
}

// Q10_5 is the quotient-promoted companion of Q5_10 / Q5_10.
type Q10_5 struct{ Base }

var descQ10_5 = qcore.Descriptor{IntBits: 10, FracBits: 5, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ10_5(x float64) (Q10_5, error) {
	stored, err := qcore.FromFloat(x, descQ10_5)
	return Q10_5{Base{stored, &descQ10_5}}, err
}

// Q9_10 is the log/hyperbolic-sum-promoted companion of Q5_10.
type Q9_10 struct{ Base }

var descQ9_10 = qcore.Descriptor{IntBits: 9, FracBits: 10, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ9_10(x float64) (Q9_10, error) {
	stored, err := qcore.FromFloat(x, descQ9_10)
	return Q9_10{Base{stored, &descQ9_10}}, err
}

// UQ9_10 is Q5_10's exp-promoted companion, forced unsigned.
type UQ9_10 struct{ Base }

var descUQ9_10 = qcore.Descriptor{IntBits: 9, FracBits: 10, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ9_10(x float64) (UQ9_10, error) {
	stored, err := qcore.FromFloat(x, descUQ9_10)
	return UQ9_10{Base{stored, &descUQ9_10}}, err
}

// Q4_10 is Q5_10's sqrt-promoted companion.
type Q4_10 struct{ Base }

var descQ4_10 = qcore.Descriptor{IntBits: 4, FracBits: 10, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ4_10(x float64) (Q4_10, error) {
	stored, err := qcore.FromFloat(x, descQ4_10)
	return Q4_10{Base{stored, &descQ4_10}}, err
}
