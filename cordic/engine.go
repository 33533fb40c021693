package cordic

import "github.com/avdva/qfixed/internal/qcore"

// triple is the (x, y, z) state driven by a CORDIC recurrence.
type triple struct {
	x, y, z int64
}

// circularRotation runs f circular (m=+1) rotation-mode iterations,
// driving z toward zero. x0 is normally the circular norm reciprocal
// (for sin/cos) or 1 (for raw vector rotation).
func circularRotation(x0, z0 int64, l *LUT, f int) triple {
	s := triple{x: x0, y: 0, z: z0}
	for i := 0; i < f; i++ {
		sigma := int64(1)
		if s.z < 0 {
			sigma = -1
		}
		s = stepCircular(s, i, sigma, l.ArcTan[i])
	}
	return s
}

// circularVectoring runs f circular vectoring-mode iterations, driving y
// toward zero. Used by atan (and, via atan, asin/acos).
func circularVectoring(x0, y0 int64, l *LUT, f int) triple {
	s := triple{x: x0, y: y0, z: 0}
	for i := 0; i < f; i++ {
		sigma := int64(-1)
		if s.y < 0 {
			sigma = 1
		}
		s = stepCircular(s, i, sigma, l.ArcTan[i])
	}
	return s
}

func stepCircular(s triple, i int, sigma, alpha int64) triple {
	xs := s.y >> uint(i)
	ys := s.x >> uint(i)
	return triple{
		x: s.x - sigma*xs,
		y: s.y + sigma*ys,
		z: s.z - sigma*alpha,
	}
}

// hyperbolicRotation runs the hyperbolic (m=-1) rotation-mode recurrence
// over i = 1..f, repeating the iterations named by l.Repeat twice. Used
// by exp (via sinh+cosh).
func hyperbolicRotation(x0, z0 int64, l *LUT, f int) triple {
	s := triple{x: x0, y: 0, z: z0}
	for i := 1; i <= f; i++ {
		reps := 1
		if l.Repeat[i] {
			reps = 2
		}
		alpha := l.ArcTanh[i-1]
		for r := 0; r < reps; r++ {
			sigma := int64(1)
			if s.z < 0 {
				sigma = -1
			}
			s = stepHyperbolic(s, i, sigma, alpha)
		}
	}
	return s
}

// hyperbolicVectoring runs the hyperbolic vectoring-mode recurrence,
// driving y toward zero. Used by log and sqrt.
func hyperbolicVectoring(x0, y0 int64, l *LUT, f int) triple {
	s := triple{x: x0, y: y0, z: 0}
	for i := 1; i <= f; i++ {
		reps := 1
		if l.Repeat[i] {
			reps = 2
		}
		alpha := l.ArcTanh[i-1]
		for r := 0; r < reps; r++ {
			sigma := int64(-1)
			if s.y < 0 {
				sigma = 1
			}
			s = stepHyperbolic(s, i, sigma, alpha)
		}
	}
	return s
}

func stepHyperbolic(s triple, i int, sigma, alpha int64) triple {
	xs := s.y >> uint(i)
	ys := s.x >> uint(i)
	return triple{
		x: s.x + sigma*xs,
		y: s.y + sigma*ys,
		z: s.z - sigma*alpha,
	}
}

// mulStored multiplies two stored integers both expressed at d's scale,
// returning a stored integer at d's scale too (i.e. a same-format
// closed product, used internally by the CORDIC kernels where both
// operands already share the caller's format).
func mulStored(a, b int64, d qcore.Descriptor) int64 {
	hi, lo := qcore.MulWide64(a, b)
	_ = hi
	return lo >> uint(d.FracBits)
}

// ldexpStored performs a signed arithmetic shift of a stored integer by
// k bits (k may be negative), used for the 2^k steps in exp/log.
func ldexpStored(v int64, k int) int64 {
	if k >= 0 {
		return v << uint(k)
	}
	return v >> uint(-k)
}
