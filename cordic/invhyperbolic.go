package cordic

import "github.com/avdva/qfixed/internal/qcore"

// Asinh evaluates asinh(stored) = log(x + sqrt(x^2+1)).
func Asinh(stored int64, d qcore.Descriptor) (int64, error) {
	sq := mulStored(stored, stored, d)
	root, err := Sqrt(sq+d.Scale(), d)
	if err != nil {
		return 0, err
	}
	return Log(stored+root, d)
}

// Acosh evaluates acosh(stored) = log(x + sqrt(x^2-1)), x >= 1 required.
func Acosh(stored int64, d qcore.Descriptor) (int64, error) {
	if stored < d.Scale() {
		return 0, qcore.DomainError(d, "acosh")
	}
	sq := mulStored(stored, stored, d)
	root, err := Sqrt(sq-d.Scale(), d)
	if err != nil {
		return 0, err
	}
	return Log(stored+root, d)
}

// Atanh evaluates atanh(stored) = 1/2 * (log(1+x) - log(1-x)), |x| < 1
// required.
func Atanh(stored int64, d qcore.Descriptor) (int64, error) {
	scale := d.Scale()
	if stored <= -scale || stored >= scale {
		return 0, qcore.DomainError(d, "atanh")
	}
	lp, err := Log(scale+stored, d)
	if err != nil {
		return 0, err
	}
	lm, err := Log(scale-stored, d)
	if err != nil {
		return 0, err
	}
	return (lp - lm) >> 1, nil
}
