package qcore

import "math"

// scaleExpOf is the f+e exponent used throughout the normalisation rule:
// stored = round(x * 2^(f+e)).
func scaleExpOf(d Descriptor) int {
	return d.scaleExp()
}

// FromFloat implements construction from a real literal: stored <-
// round(x * 2^(f+e)), rounding half-away-from-zero. No floating-point
// data is retained afterwards.
func FromFloat(x float64, d Descriptor) (int64, error) {
	scaled := x * math.Exp2(float64(scaleExpOf(d)))
	var stored float64
	if scaled >= 0 {
		stored = math.Floor(scaled + 0.5)
	} else {
		stored = math.Ceil(scaled - 0.5)
	}
	if stored > float64(math.MaxInt64) || stored < float64(math.MinInt64) {
		return applyOverflow(d, "from_float", math.MaxInt64*sign64(stored))
	}
	raw := int64(stored)
	if raw < d.LeastStored() || raw > d.LargestStored() {
		return applyOverflow(d, "from_float", raw)
	}
	if raw == 0 && x != 0 {
		if err := applyUnderflow(d, "from_float"); err != nil {
			return 0, err
		}
	}
	return raw, nil
}

// FromInt implements construction from an integer: the value is shifted
// into place by f fractional bits (e is folded in the same way as for
// floats, via the pre-scaling factor).
func FromInt(x int64, d Descriptor) (int64, error) {
	if d.Exp == 0 {
		raw := x << uint(max0(d.FracBits))
		if d.FracBits < 0 {
			raw = x >> uint(-d.FracBits)
		}
		if raw < d.LeastStored() || raw > d.LargestStored() {
			return applyOverflow(d, "from_int", raw)
		}
		return raw, nil
	}
	return FromFloat(float64(x), d)
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func sign64(f float64) int64 {
	if f < 0 {
		return -1
	}
	return 1
}

// FromFloatMust is FromFloat discarding the error, for use by callers
// that construct a named mathematical constant known to always fit:
// every such constant is well within range for any format capable of
// hosting a non-trivial integer part.
func FromFloatMust(x float64, d Descriptor) int64 {
	v, _ := FromFloat(x, d)
	return v
}

// Wrap takes a pre-computed stored integer without rescaling, raising
// overflow if it is out of the descriptor's stored-integer bounds.
func Wrap(stored int64, d Descriptor) (int64, error) {
	if stored < d.LeastStored() || stored > d.LargestStored() {
		return applyOverflow(d, "wrap", stored)
	}
	return stored, nil
}

// ToFloat converts a stored integer back to its represented real value.
func ToFloat(stored int64, d Descriptor) float64 {
	return float64(stored) * d.ScalingFactor() / float64(d.Scale())
}

// Normalize implements normalisation between formats: given a stored
// integer in format `from`, compute its representation in format `to`.
// If to's scale exponent is not smaller than from's, the value is
// left-shifted (overflow if bits are lost); otherwise it is right-shifted
// (underflow if a non-zero input becomes zero).
func Normalize(stored int64, from, to Descriptor) (int64, error) {
	diff := scaleExpOf(to) - scaleExpOf(from)
	if diff >= 0 {
		if diff >= 63 {
			if stored == 0 {
				return 0, nil
			}
			return applyOverflow(to, "normalize", math.MaxInt64)
		}
		shifted := stored << uint(diff)
		if shifted>>uint(diff) != stored {
			return applyOverflow(to, "normalize", shifted)
		}
		if shifted < to.LeastStored() || shifted > to.LargestStored() {
			return applyOverflow(to, "normalize", shifted)
		}
		return shifted, nil
	}
	shift := -diff
	if shift >= 63 {
		if stored != 0 {
			if err := applyUnderflow(to, "normalize"); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}
	result := stored >> uint(shift)
	if stored < 0 {
		// shift the magnitude so negative values also truncate toward zero
		result = -(-stored >> uint(shift))
	}
	if stored != 0 && result == 0 {
		if err := applyUnderflow(to, "normalize"); err != nil {
			return 0, err
		}
	}
	return result, nil
}

// overflowsAddFrame reports whether the exact sum raw, computed from
// operands a and bNorm both already expressed in d's reference frame,
// overflows d: either the sign-bit carry rule ("sign bits of operands
// agree but differ from the sign bit of the result"), or raw simply
// falls outside d's own stored-integer bounds. The check is
// deliberately evaluated against the *left operand's* descriptor, not
// the promoted result's — see DESIGN.md's resolution of scenario S2.
func overflowsAddFrame(a, bNorm, raw int64, d Descriptor) bool {
	if d.Signed && SameSign(a, bNorm) && !SameSign(a, raw) && raw != 0 {
		return true
	}
	return raw < d.LeastStored() || raw > d.LargestStored()
}

// Add converts the RHS into the LHS's reference frame, adds in that
// frame, then re-expresses the result in the promoted descriptor unless
// the addition already overflowed the LHS's own bounds, in which case
// the result stays in the LHS's format.
func Add(aStored int64, aDesc Descriptor, bStored int64, bDesc Descriptor) (int64, Descriptor, error) {
	return addOrSub(aStored, aDesc, bStored, bDesc, "add")
}

// Sub implements subtraction as addition of the negated RHS.
func Sub(aStored int64, aDesc Descriptor, bStored int64, bDesc Descriptor) (int64, Descriptor, error) {
	return addOrSub(aStored, aDesc, -bStored, bDesc, "sub")
}

func addOrSub(aStored int64, aDesc Descriptor, bStored int64, bDesc Descriptor, op string) (int64, Descriptor, error) {
	resultDesc, expandable := PromoteSum(aDesc, bDesc)

	bNorm, err := Normalize(bStored, bDesc, aDesc)
	if err != nil {
		return 0, resultDesc, err
	}

	raw := aStored + bNorm
	if overflowsAddFrame(aStored, bNorm, raw, aDesc) {
		stored, err := applyOverflow(aDesc, op, raw)
		if err != nil {
			return 0, aDesc, err
		}
		return stored, aDesc, nil
	}
	if !expandable {
		return raw, aDesc, nil
	}
	out, err := Normalize(raw, aDesc, resultDesc)
	if err != nil {
		return 0, resultDesc, err
	}
	return out, resultDesc, nil
}

// Neg implements unary negation. The result stays in d's own format, so
// the signed minimum (whose negation is one past d's largest stored
// integer) is routed through the same overflow policy as every other
// operator instead of wrapping around silently.
func Neg(stored int64, d Descriptor) (int64, error) {
	raw := -stored
	if raw < d.LeastStored() || raw > d.LargestStored() {
		return applyOverflow(d, "neg", raw)
	}
	return raw, nil
}

// Mul implements multiplication: in the expandable case the full
// product is computed in the widened descriptor; in the closed case the
// product is performed in a's own format and right-shifted by b's
// fractional width before storing.
func Mul(aStored int64, aDesc Descriptor, bStored int64, bDesc Descriptor) (int64, Descriptor, error) {
	resultDesc, expandable := PromoteProduct(aDesc, bDesc)

	hi, lo := MulWide64(aStored, bStored)
	if expandable {
		if !fitsInt64(hi, lo) {
			stored, err := applyOverflow(resultDesc, "mul", clampWide(hi, lo))
			if err != nil {
				return 0, resultDesc, err
			}
			return stored, resultDesc, nil
		}
		if lo < resultDesc.LeastStored() || lo > resultDesc.LargestStored() {
			stored, err := applyOverflow(resultDesc, "mul", lo)
			if err != nil {
				return 0, resultDesc, err
			}
			return stored, resultDesc, nil
		}
		return lo, resultDesc, nil
	}

	// closed: keep a's format, shift the exact product right by b's
	// fractional width.
	shifted := shiftWideRight(hi, lo, bDesc.FracBits)
	if shifted < aDesc.LeastStored() || shifted > aDesc.LargestStored() {
		stored, err := applyOverflow(aDesc, "mul", shifted)
		if err != nil {
			return 0, aDesc, err
		}
		return stored, aDesc, nil
	}
	return shifted, aDesc, nil
}

func clampWide(hi, lo int64) int64 {
	if hi >= 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

// shiftWideRight shifts the 128-bit value (hi,lo) right by n bits,
// truncating toward zero, and returns the low 64 bits (sufficient because
// the result is known to fit an int64 once shifted, given our bounded
// formats).
func shiftWideRight(hi, lo int64, n int) int64 {
	if hi < 0 {
		// shift the magnitude so a negative product truncates toward zero
		uhi, ulo := negate128(uint64(hi), uint64(lo))
		return -shiftWideRight(int64(uhi), int64(ulo), n)
	}
	if n <= 0 {
		return lo
	}
	if n >= 64 {
		return hi >> uint(n-64)
	}
	uhi, ulo := uint64(hi), uint64(lo)
	return int64((uhi << uint(64-n)) | (ulo >> uint(n)))
}

// Div implements division: the numerator is pre-shifted left by b's
// total significant bits before dividing by the denominator's stored
// integer, and the quotient is then rescaled into the promoted format
// (or, when the quotient is closed, into a's own format).
func Div(aStored int64, aDesc Descriptor, bStored int64, bDesc Descriptor) (int64, Descriptor, error) {
	resultDesc, expandable := PromoteQuotient(aDesc, bDesc)

	if bStored == 0 {
		// Division by zero is always raised, like a domain error: there
		// is no sensible default stored integer for it, regardless of
		// the format's overflow policy.
		return 0, resultDesc, divByZeroError(aDesc, "div")
	}

	shift := bDesc.SignificantBits()
	hi, lo := shiftWideLeft(aStored, shift)

	q, overflowed := divWide(hi, lo, bStored)
	if overflowed {
		stored, err := applyOverflow(aDesc, "div", q)
		if err != nil {
			return 0, aDesc, err
		}
		return stored, aDesc, nil
	}

	target := aDesc
	if expandable {
		target = resultDesc
	}
	// The pre-shifted quotient is scaled by 2^(f_A+e_A+n_B-e_B).
	quotDesc := Descriptor{FracBits: aDesc.FracBits + bDesc.IntBits, Exp: aDesc.Exp - bDesc.Exp}
	q, err := Normalize(q, quotDesc, target)
	if err != nil {
		return 0, target, err
	}
	if q < target.LeastStored() || q > target.LargestStored() {
		stored, err := applyOverflow(target, "div", q)
		if err != nil {
			return 0, target, err
		}
		return stored, target, nil
	}
	return q, target, nil
}

func shiftWideLeft(v int64, n int) (hi, lo int64) {
	if n <= 0 {
		return signExtendHi(v), v
	}
	if n >= 64 {
		return v << uint(n-64), 0
	}
	uv := uint64(v)
	lo = int64(uv << uint(n))
	hi = (v >> uint(64-n))
	return hi, lo
}

func signExtendHi(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 0
}

// divWide divides the 128-bit signed dividend (hi,lo) by the int64
// divisor, reporting overflowed=true when the exact quotient does not
// fit in an int64 (signed overflow, including the signed-min/-1 case).
func divWide(hi, lo int64, divisor int64) (quotient int64, overflowed bool) {
	negResult := (hi < 0) != (divisor < 0)
	uhi, ulo := uint64(hi), uint64(lo)
	if hi < 0 {
		uhi, ulo = negate128(uhi, ulo)
	}
	ud := uint64(divisor)
	if divisor < 0 {
		ud = -ud
	}
	if uhi >= ud {
		return 0, true // quotient would not fit in 64 bits
	}
	qlo, _ := quoRem128By64(uhi, ulo, ud)
	if negResult {
		if qlo > uint64(math.MaxInt64)+1 {
			return 0, true
		}
		return -int64(qlo), false
	}
	if qlo > uint64(math.MaxInt64) {
		return 0, true
	}
	return int64(qlo), false
}

// quoRem128By64 divides the unsigned 128-bit value (hi,lo) by d.
func quoRem128By64(hi, lo, d uint64) (quo, rem uint64) {
	return divBits(hi, lo, d)
}
