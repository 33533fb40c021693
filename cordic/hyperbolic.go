package cordic

import "github.com/avdva/qfixed/internal/qcore"

// Sinh evaluates sinh(stored) = (exp(x) - exp(-x)) / 2, matching the
// original's sinh.inl which builds sinh from two Exp evaluations halved
// by a final shift.
func Sinh(stored int64, d qcore.Descriptor) (int64, error) {
	ep, err := Exp(stored, d)
	if err != nil {
		return 0, err
	}
	en, err := Exp(-stored, d)
	if err != nil {
		return 0, err
	}
	return (ep - en) >> 1, nil
}

// Cosh evaluates cosh(stored) = (exp(x) + exp(-x)) / 2.
func Cosh(stored int64, d qcore.Descriptor) (int64, error) {
	ep, err := Exp(stored, d)
	if err != nil {
		return 0, err
	}
	en, err := Exp(-stored, d)
	if err != nil {
		return 0, err
	}
	return (ep + en) >> 1, nil
}

// Tanh evaluates tanh(stored) = sinh(stored) / cosh(stored).
func Tanh(stored int64, d qcore.Descriptor) (int64, error) {
	s, err := Sinh(stored, d)
	if err != nil {
		return 0, err
	}
	c, err := Cosh(stored, d)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, qcore.DivisionByZeroError(d, "tanh")
	}
	return divStored(s, c, d), nil
}
