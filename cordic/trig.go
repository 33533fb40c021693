package cordic

import "github.com/avdva/qfixed/internal/qcore"

// Sin evaluates sin(stored) using rotation-mode circular CORDIC, after
// reducing the argument to θ' = π − (θ mod 2π), with θ mod 2π taken in
// [0, 2π), followed by the two-branch correction that folds θ' back into
// [−π/2, π/2].
func Sin(stored int64, d qcore.Descriptor) (int64, error) {
	s, _, err := sinCos(stored, d)
	return s, err
}

// Cos evaluates cos(stored) via the same reduced rotation as Sin.
func Cos(stored int64, d qcore.Descriptor) (int64, error) {
	_, c, err := sinCos(stored, d)
	return c, err
}

// Tan evaluates tan(stored) as sin/cos's stored integer quotient
// (s<<f)/c: both operands already share d, so the quotient is computed
// directly at d's scale.
func Tan(stored int64, d qcore.Descriptor) (int64, error) {
	s, c, err := sinCos(stored, d)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, qcore.DivisionByZeroError(d, "tan")
	}
	return divStored(s, c, d), nil
}

// sinCos requires a signed format with enough integer headroom to hold
// 2π during range reduction; neither CORDIC rotation nor the
// θ' = π − (θ mod 2π) step is meaningful otherwise.
func sinCos(stored int64, d qcore.Descriptor) (sinV, cosV int64, err error) {
	if !d.Signed || d.IntBits < 3 {
		return 0, 0, qcore.DomainError(d, "sin/cos")
	}
	l := Of(d)
	f := d.FracBits

	reduced := fmodStored(stored, l.TwoPi)
	if reduced < 0 {
		reduced += l.TwoPi
	}
	x := l.Pi - reduced
	sign := int64(1)
	var arg int64
	switch {
	case x < -l.HalfPi:
		arg = x + l.Pi
		sign = -1
	case x > l.HalfPi:
		arg = x - l.Pi
		sign = -1
	default:
		arg = x
	}

	res := circularRotation(l.CircNorm, arg, l, f)
	// sin(π−θ) = sin θ but cos(π−θ) = −cos θ, so cos takes the opposite sign.
	return sign * res.y, -sign * res.x, nil
}

// fmodStored implements a C-like fmod (remainder keeps the dividend's
// sign, truncating division toward zero), matching the std::fmod call
// in the original sin/cos range reduction.
func fmodStored(theta, modulus int64) int64 {
	if modulus == 0 {
		return theta
	}
	n := theta / modulus
	return theta - n*modulus
}
