package cordic

import "github.com/avdva/qfixed/internal/qcore"

// Exp evaluates exp(stored) via k = round(x/ln2), r = x - k*ln2, then
// hyperbolic rotation-mode CORDIC gives cosh(r) and sinh(r) whose sum is
// exp(r); exp(x) = exp(r) * 2^k is applied last with a plain shift.
func Exp(stored int64, d qcore.Descriptor) (int64, error) {
	l := Of(d)
	f := d.FracBits

	k := roundDiv(stored, l.Ln2)
	r := stored - k*l.Ln2

	res := hyperbolicRotation(d.Scale(), r, l, f)
	cosh := mulStored(res.x, l.HypNorm, d)
	sinh := mulStored(res.y, l.HypNorm, d)
	expR := cosh + sinh

	return ldexpStored(expR, int(k)), nil
}

// roundDiv computes round(a/b) to the nearest integer, ties away from
// zero, for int64 operands.
func roundDiv(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	ua, ub := qcore.AbsInt64(a), qcore.AbsInt64(b)
	q := (ua + ub/2) / ub
	if neg {
		return -q
	}
	return q
}
