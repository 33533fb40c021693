package cordic

import (
	"math"
	"math/bits"

	"github.com/avdva/qfixed/internal/qcore"
)

// Log evaluates log(stored), x > 0 required. Splits x = 2^k*m with m in
// [1,2), then log(x) = k*ln2 + log(m), where log(m) is obtained by
// hyperbolic vectoring-mode CORDIC on the pair (m+1, m-1):
// 2*atanh((m-1)/(m+1)) = log(m).
func Log(stored int64, d qcore.Descriptor) (int64, error) {
	if stored <= 0 {
		return 0, qcore.DomainError(d, "log")
	}
	f := d.FracBits
	l := Of(d)
	scale := d.Scale()

	k := bits.Len64(uint64(stored)) - 1 - f
	m := ldexpStored(stored, -k)
	for m < scale {
		m <<= 1
		k--
	}
	for m >= 2*scale {
		m >>= 1
		k++
	}

	x0 := m + scale
	y0 := m - scale
	res := hyperbolicVectoring(x0, y0, l, f)
	logm := 2 * res.z

	return logm + int64(k)*l.Ln2, nil
}

// Log2 evaluates log2(stored) = log(stored)/ln2.
func Log2(stored int64, d qcore.Descriptor) (int64, error) {
	l, err := Log(stored, d)
	if err != nil {
		return 0, err
	}
	ln2 := Of(d).Ln2
	return divStored(l, ln2, d), nil
}

// Log10 evaluates log10(stored) = log(stored)/ln10.
func Log10(stored int64, d qcore.Descriptor) (int64, error) {
	l, err := Log(stored, d)
	if err != nil {
		return 0, err
	}
	ln10 := storeConst(math.Ln10, d)
	return divStored(l, ln10, d), nil
}
