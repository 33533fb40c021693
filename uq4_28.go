//go:generate go run ./internal/genformat -n=4 -f=28 -signed=false -out=uq4_28_base.gen.go

package fixed

import (
	"github.com/avdva/qfixed/cordic"
	"github.com/avdva/qfixed/internal/qcore"
)

var descUQ4_28 = qcore.Descriptor{IntBits: 4, FracBits: 28, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

// UQ4_28 is an unsigned Q(4,28) fixed-point value.
type UQ4_28 struct{ Base }

func NewUQ4_28(x float64) (UQ4_28, error) {
	stored, err := qcore.FromFloat(x, descUQ4_28)
	return UQ4_28{Base{stored, &descUQ4_28}}, err
}

func UQ4_28FromInt(x int64) (UQ4_28, error) {
	stored, err := qcore.FromInt(x, descUQ4_28)
	return UQ4_28{Base{stored, &descUQ4_28}}, err
}

func UQ4_28FromRaw(raw int64) (UQ4_28, error) {
	stored, err := qcore.Wrap(raw, descUQ4_28)
	return UQ4_28{Base{stored, &descUQ4_28}}, err
}

// Add implements sum promotion: UQ4_28 + UQ4_28 -> UQ5_28.
func (a UQ4_28) Add(b UQ4_28) (UQ5_28, error) {
	stored, desc, err := qcore.Add(a.stored, descUQ4_28, b.stored, descUQ4_28)
	return UQ5_28{Base{stored, &desc}}, err
}

func (a UQ4_28) Sub(b UQ4_28) (UQ5_28, error) {
	stored, desc, err := qcore.Sub(a.stored, descUQ4_28, b.stored, descUQ4_28)
	return UQ5_28{Base{stored, &desc}}, err
}

// Mul stays in UQ4_28: the promoted product format (8 int bits, 56
// fractional bits) needs 64 significant bits, two more than the 62
// qcore.MaxSignificantBits hosts, so the closed-product rule applies
// and the product keeps a's own format, right-shifted by b's
// fractional width.
func (a UQ4_28) Mul(b UQ4_28) (UQ4_28, error) {
	stored, desc, err := qcore.Mul(a.stored, descUQ4_28, b.stored, descUQ4_28)
	return UQ4_28{Base{stored, &desc}}, err
}

func (a UQ4_28) Div(b UQ4_28) (UQ8_4, error) {
	stored, desc, err := qcore.Div(a.stored, descUQ4_28, b.stored, descUQ4_28)
	return UQ8_4{Base{stored, &desc}}, err
}

func (a UQ4_28) Atan() (UQ4_28, error) {
	v, err := cordic.Atan(a.stored, descUQ4_28)
	return UQ4_28{Base{v, &descUQ4_28}}, err
}

func (a UQ4_28) Sqrt() (UQ3_28, error) {
	v, err := cordic.Sqrt(a.stored, descUQ4_28)
	return UQ3_28{Base{v, &descUQ3_28}}, err
}

func (a UQ4_28) Log() (UQ9_28, error) {
	v, err := cordic.Log(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

func (a UQ4_28) Log2() (UQ9_28, error) {
	v, err := cordic.Log2(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

func (a UQ4_28) Log10() (UQ9_28, error) {
	v, err := cordic.Log10(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

func (a UQ4_28) Exp() (UQ9_28, error) {
	v, err := cordic.Exp(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

func (a UQ4_28) Sinh() (UQ9_28, error) {
	v, err := cordic.Sinh(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

func (a UQ4_28) Cosh() (UQ9_28, error) {
	v, err := cordic.Cosh(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

func (a UQ4_28) Tanh() (UQ9_28, error) {
	v, err := cordic.Tanh(a.stored, descUQ4_28)
	return UQ9_28{Base{v, &descUQ9_28}}, err
}

// UQ5_28 is UQ4_28's sum-promoted companion.
type UQ5_28 struct{ Base }

var descUQ5_28 = qcore.Descriptor{IntBits: 5, FracBits: 28, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ5_28(x float64) (UQ5_28, error) {
	stored, err := qcore.FromFloat(x, descUQ5_28)
	return UQ5_28{Base{stored, &descUQ5_28}}, err
}

// UQ8_4 is UQ4_28's quotient-promoted companion.
type UQ8_4 struct{ Base }

var descUQ8_4 = qcore.Descriptor{IntBits: 8, FracBits: 4, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ8_4(x float64) (UQ8_4, error) {
	stored, err := qcore.FromFloat(x, descUQ8_4)
	return UQ8_4{Base{stored, &descUQ8_4}}, err
}

// UQ3_28 is UQ4_28's sqrt-promoted companion.
type UQ3_28 struct{ Base }

var descUQ3_28 = qcore.Descriptor{IntBits: 3, FracBits: 28, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ3_28(x float64) (UQ3_28, error) {
	stored, err := qcore.FromFloat(x, descUQ3_28)
	return UQ3_28{Base{stored, &descUQ3_28}}, err
}

// UQ9_28 is UQ4_28's log/exp/hyperbolic-sum-promoted companion.
type UQ9_28 struct{ Base }

var descUQ9_28 = qcore.Descriptor{IntBits: 9, FracBits: 28, Signed: false, Overflow: qcore.PolicySaturate, Underflow: qcore.PolicyIgnore}

func NewUQ9_28(x float64) (UQ9_28, error) {
	stored, err := qcore.FromFloat(x, descUQ9_28)
	return UQ9_28{Base{stored, &descUQ9_28}}, err
}
