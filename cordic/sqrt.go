package cordic

import "github.com/avdva/qfixed/internal/qcore"

// Sqrt evaluates sqrt(stored), stored >= 0 required. The argument is
// first scaled by a power of 4 into [1/2, 2], where the vectoring below
// converges, and the root is scaled back by the matching power of 2.
// Uses the identity
// (x+1/4)^2 - (x-1/4)^2 = x, so hyperbolic vectoring-mode CORDIC on the
// pair (x+1/4, x-1/4) drives y to zero and leaves sqrt(x) (scaled by
// K_hyp) in x; the "n <- ceil(n/2)+1" format promotion is handled by the
// caller, this engine only ever works at a single descriptor's scale.
func Sqrt(stored int64, d qcore.Descriptor) (int64, error) {
	if stored < 0 {
		return 0, qcore.DomainError(d, "sqrt")
	}
	if stored == 0 {
		return 0, nil
	}
	l := Of(d)
	f := d.FracBits
	quarter := d.Scale() / 4
	if quarter == 0 {
		quarter = 1
	}

	scale := d.Scale()
	k := 0
	for stored > 2*scale {
		stored >>= 2
		k++
	}
	for stored < scale/2 {
		stored <<= 2
		k--
	}

	res := hyperbolicVectoring(stored+quarter, stored-quarter, l, f)
	return ldexpStored(mulStored(res.x, l.HypNorm, d), k), nil
}
