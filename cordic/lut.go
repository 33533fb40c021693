// Package cordic implements the elementary functions of a fixed-point
// format using circular and hyperbolic CORDIC iterations over plain
// int64 stored integers, driven by pre-computed arctangent/arctanh
// tables and normalisation constants.
//
// Every exported function here takes a stored integer plus the
// qcore.Descriptor that gives it meaning, and returns a stored integer in
// that same descriptor's scale — the generic "engine" that every
// generated Q-format type's elementary-function methods call into.
package cordic

import (
	"math"
	"sync"

	"github.com/avdva/qfixed/internal/qcore"
)

// LUT is the pair of finite tables and scalar normalisation constants a
// CORDIC evaluation needs: arctan_lut, arctanh_lut (with the
// repeated-iteration schedule folded into its normalisation constant),
// and the circular and hyperbolic gain reciprocals: the circular one
// seeds rotation-mode CORDIC, the hyperbolic one rescales the results of
// the hyperbolic recurrences afterwards.
type LUT struct {
	// ArcTan[i] holds atan(2^-i) for i = 0..f-1, in the owning
	// descriptor's stored-integer scale.
	ArcTan []int64
	// ArcTanh[k] holds atanh(2^-(k+1)) for k = 0..f-1 (i.e. i = 1..f).
	ArcTanh []int64
	// CircNorm is 1/K_circ, pre-multiplied into the seed of circular
	// rotation-mode CORDIC.
	CircNorm int64
	// HypNorm is 1/K_hyp, computed with the same repeated-iteration
	// schedule used during evaluation.
	HypNorm int64
	// Repeat marks which iteration indices (1-based, as used by the
	// hyperbolic recurrence) are performed twice to ensure convergence.
	Repeat map[int]bool

	// Pi, TwoPi and HalfPi are CONST_PI, CONST_2PI and CONST_PI_2 in the
	// owning descriptor's scale, used by sin/cos range reduction.
	Pi, TwoPi, HalfPi int64
	// Ln2 is CONST_LN2, used by exp/log's 2^k decomposition.
	Ln2 int64
}

var (
	lutMu    sync.Mutex
	lutCache = map[qcore.Descriptor]*LUT{}
)

// Of returns the LUT for d, building and memoising it on first use. The
// mutex gives a thread-safe single-initialisation discipline; once
// built, a LUT is never mutated again.
func Of(d qcore.Descriptor) *LUT {
	lutMu.Lock()
	defer lutMu.Unlock()
	if l, ok := lutCache[d]; ok {
		return l
	}
	l := build(d)
	lutCache[d] = l
	return l
}

// repeatedIterations computes the hyperbolic repeat schedule: 4, 13,
// 40, ... where each subsequent entry is 3*previous+1.
func repeatedIterations(f int) map[int]bool {
	set := map[int]bool{}
	for i := 4; i <= f; i = 3*i + 1 {
		set[i] = true
	}
	return set
}

func build(d qcore.Descriptor) *LUT {
	f := d.FracBits
	if f < 1 {
		f = 1
	}

	arctan := make([]int64, f)
	kCirc := 1.0
	for i := 0; i < f; i++ {
		angle := math.Atan(math.Exp2(-float64(i)))
		arctan[i] = storeConst(angle, d)
		kCirc *= math.Sqrt(1 + math.Exp2(-2*float64(i)))
	}

	repeat := repeatedIterations(f)
	arctanh := make([]int64, f)
	kHyp := 1.0
	for i := 1; i <= f; i++ {
		arctanh[i-1] = storeConst(math.Atanh(math.Exp2(-float64(i))), d)
		reps := 1
		if repeat[i] {
			reps = 2
		}
		for r := 0; r < reps; r++ {
			kHyp *= math.Sqrt(1 - math.Exp2(-2*float64(i)))
		}
	}

	return &LUT{
		ArcTan:   arctan,
		ArcTanh:  arctanh,
		CircNorm: storeConst(1.0/kCirc, d),
		HypNorm:  storeConst(1.0/kHyp, d),
		Repeat:   repeat,
		Pi:       storeConst(math.Pi, d),
		TwoPi:    storeConst(2*math.Pi, d),
		HalfPi:   storeConst(math.Pi/2, d),
		Ln2:      storeConst(math.Ln2, d),
	}
}

// storeConst rounds a mathematical constant into d's stored-integer
// scale, the same rounding rule used for construction from a real
// literal. LUT entries are always well within range for any format that
// can host d itself, so the overflow branch is unreachable in practice.
func storeConst(x float64, d qcore.Descriptor) int64 {
	v, err := qcore.FromFloat(x, d)
	if err != nil {
		return 0
	}
	return v
}
