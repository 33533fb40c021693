package cordic

import "github.com/avdva/qfixed/internal/qcore"

// Atan evaluates atan(stored) via vectoring-mode circular CORDIC. When
// |stored| exceeds 1 (in d's scale) the identity
// atan(x) = sign(x)*(pi/2 - atan(1/|x|)) is applied first.
func Atan(stored int64, d qcore.Descriptor) (int64, error) {
	l := Of(d)
	f := d.FracBits
	scale := d.Scale()

	if stored == 0 {
		return 0, nil
	}
	neg := stored < 0
	mag := qcore.AbsInt64(stored)

	if mag <= scale {
		res := circularVectoring(scale, mag, l, f)
		if neg {
			return -res.z, nil
		}
		return res.z, nil
	}

	recip := divStored(scale, mag, d)
	res := circularVectoring(scale, recip, l, f)
	result := l.HalfPi - res.z
	if neg {
		return -result, nil
	}
	return result, nil
}

// Asin evaluates asin(stored) via asin(x) = atan(x / sqrt(1-x^2)),
// requiring |x| <= 1.
func Asin(stored int64, d qcore.Descriptor) (int64, error) {
	scale := d.Scale()
	if stored > scale || stored < -scale {
		return 0, qcore.DomainError(d, "asin")
	}
	l := Of(d)
	if stored == scale {
		return l.HalfPi, nil
	}
	if stored == -scale {
		return -l.HalfPi, nil
	}
	sq := mulStored(stored, stored, d)
	root, err := Sqrt(scale-sq, d)
	if err != nil {
		return 0, err
	}
	if root == 0 {
		return 0, qcore.DomainError(d, "asin")
	}
	return Atan(divStored(stored, root, d), d)
}

// Acos evaluates acos(stored) as pi/2 - asin(stored).
func Acos(stored int64, d qcore.Descriptor) (int64, error) {
	l := Of(d)
	s, err := Asin(stored, d)
	if err != nil {
		return 0, err
	}
	return l.HalfPi - s, nil
}

// divStored divides a by b, both stored integers at d's scale, returning
// the quotient at d's scale too: (a<<f)/b.
func divStored(a, b int64, d qcore.Descriptor) int64 {
	return (a << uint(d.FracBits)) / b
}
