//go:generate go run ./internal/genformat -n=8 -f=24 -signed=true -out=q8_24_base.gen.go

package fixed

import (
	"github.com/avdva/qfixed/cordic"
	"github.com/avdva/qfixed/internal/qcore"
)

var descQ8_24 = qcore.Descriptor{IntBits: 8, FracBits: 24, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

// Q8_24 is a signed Q(8,24) fixed-point value.
type Q8_24 struct{ Base }

func NewQ8_24(x float64) (Q8_24, error) {
	stored, err := qcore.FromFloat(x, descQ8_24)
	return Q8_24{Base{stored, &descQ8_24}}, err
}

func Q8_24FromInt(x int64) (Q8_24, error) {
	stored, err := qcore.FromInt(x, descQ8_24)
	return Q8_24{Base{stored, &descQ8_24}}, err
}

func Q8_24FromRaw(raw int64) (Q8_24, error) {
	stored, err := qcore.Wrap(raw, descQ8_24)
	return Q8_24{Base{stored, &descQ8_24}}, err
}

func (a Q8_24) Add(b Q8_24) (Q9_24, error) {
	stored, desc, err := qcore.Add(a.stored, descQ8_24, b.stored, descQ8_24)
	return Q9_24{Base{stored, &desc}}, err
}

func (a Q8_24) Sub(b Q8_24) (Q9_24, error) {
	stored, desc, err := qcore.Sub(a.stored, descQ8_24, b.stored, descQ8_24)
	return Q9_24{Base{stored, &desc}}, err
}

// Mul stays in Q8_24: the promoted product format needs 16+48=64
// significant bits plus a sign bit, over qcore.MaxSignificantBits, so
// the closed-product rule applies.
func (a Q8_24) Mul(b Q8_24) (Q8_24, error) {
	stored, desc, err := qcore.Mul(a.stored, descQ8_24, b.stored, descQ8_24)
	return Q8_24{Base{stored, &desc}}, err
}

func (a Q8_24) Div(b Q8_24) (Q16_8, error) {
	stored, desc, err := qcore.Div(a.stored, descQ8_24, b.stored, descQ8_24)
	return Q16_8{Base{stored, &desc}}, err
}

// Neg negates in place within Q8_24, overflowing at the signed minimum.
func (a Q8_24) Neg() (Q8_24, error) {
	v, err := qcore.Neg(a.stored, descQ8_24)
	return Q8_24{Base{v, &descQ8_24}}, err
}

func (a Q8_24) Sin() (Q8_24, error) {
	v, err := cordic.Sin(a.stored, descQ8_24)
	return Q8_24{Base{v, &descQ8_24}}, err
}

func (a Q8_24) Cos() (Q8_24, error) {
	v, err := cordic.Cos(a.stored, descQ8_24)
	return Q8_24{Base{v, &descQ8_24}}, err
}

func (a Q8_24) Sqrt() (Q5_24, error) {
	v, err := cordic.Sqrt(a.stored, descQ8_24)
	return Q5_24{Base{v, &descQ5_24}}, err
}

func (a Q8_24) Log() (Q13_24, error) {
	v, err := cordic.Log(a.stored, descQ8_24)
	return Q13_24{Base{v, &descQ13_24}}, err
}

func (a Q8_24) Log2() (Q13_24, error) {
	v, err := cordic.Log2(a.stored, descQ8_24)
	return Q13_24{Base{v, &descQ13_24}}, err
}

func (a Q8_24) Log10() (Q13_24, error) {
	v, err := cordic.Log10(a.stored, descQ8_24)
	return Q13_24{Base{v, &descQ13_24}}, err
}

func (a Q8_24) Exp() (UQ13_24, error) {
	v, err := cordic.Exp(a.stored, descQ8_24)
	return UQ13_24{Base{v, &descUQ13_24}}, err
}

func (a Q8_24) Sinh() (Q13_24, error) {
	v, err := cordic.Sinh(a.stored, descQ8_24)
	return Q13_24{Base{v, &descQ13_24}}, err
}

func (a Q8_24) Cosh() (Q13_24, error) {
	v, err := cordic.Cosh(a.stored, descQ8_24)
	return Q13_24{Base{v, &descQ13_24}}, err
}

func (a Q8_24) Tanh() (Q13_24, error) {
	v, err := cordic.Tanh(a.stored, descQ8_24)
	return Q13_24{Base{v, &descQ13_24}}, err
}

// Q9_24 is Q8_24's sum-promoted companion.
type Q9_24 struct{ Base }

var descQ9_24 = qcore.Descriptor{IntBits: 9, FracBits: 24, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ9_24(x float64) (Q9_24, error) {
	stored, err := qcore.FromFloat(x, descQ9_24)
	return Q9_24{Base{stored, &descQ9_24}}, err
}

// Q16_8 is Q8_24's quotient-promoted companion.
type Q16_8 struct{ Base }

var descQ16_8 = qcore.Descriptor{IntBits: 16, FracBits: 8, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ16_8(x float64) (Q16_8, error) {
	stored, err := qcore.FromFloat(x, descQ16_8)
	return Q16_8{Base{stored, &descQ16_8}}, err
}

// Q5_24 is Q8_24's sqrt-promoted companion.
type Q5_24 struct{ Base }

var descQ5_24 = qcore.Descriptor{IntBits: 5, FracBits: 24, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ5_24(x float64) (Q5_24, error) {
	stored, err := qcore.FromFloat(x, descQ5_24)
	return Q5_24{Base{stored, &descQ5_24}}, err
}

// Q13_24 is Q8_24's log/hyperbolic-sum-promoted companion.
type Q13_24 struct{ Base }

var descQ13_24 = qcore.Descriptor{IntBits: 13, FracBits: 24, Signed: true, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewQ13_24(x float64) (Q13_24, error) {
	stored, err := qcore.FromFloat(x, descQ13_24)
	return Q13_24{Base{stored, &descQ13_24}}, err
}

// UQ13_24 is Q8_24's exp-promoted companion, forced unsigned.
type UQ13_24 struct{ Base }

var descUQ13_24 = qcore.Descriptor{IntBits: 13, FracBits: 24, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ13_24(x float64) (UQ13_24, error) {
	stored, err := qcore.FromFloat(x, descUQ13_24)
	return UQ13_24{Base{stored, &descUQ13_24}}, err
}
