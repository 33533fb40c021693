package qcore

// Limits mirrors the numeric_limits surface of a fixed-point format: it
// is bounded, not exact, not a built-in integer, modulo (wraps under
// the ignore policy), has neither infinities, NaNs, nor subnormals, and
// rounds toward zero on rescaling shifts.
type Limits struct {
	IsBounded       bool
	IsExact         bool
	IsInteger       bool
	IsModulo        bool
	IsSigned        bool
	HasInfinity     bool
	HasNaN          bool
	HasDenorm       bool
	Digits          int
	Digits10        int
	Radix           int
	MaxExponent     int
	MaxExponent10   int
	MinExponent     int
	MinExponent10   int
	RoundTowardZero bool
	RoundError      float64
}

// LimitsOf computes the numeric_limits-equivalent surface for d.
func LimitsOf(d Descriptor) Limits {
	return Limits{
		IsBounded:       true,
		IsExact:         false,
		IsInteger:       false,
		IsModulo:        true,
		IsSigned:        d.Signed,
		HasInfinity:     false,
		HasNaN:          false,
		HasDenorm:       false,
		Digits:          d.SignificantBits(),
		Digits10:        decimalDigitsOf(d.SignificantBits()),
		Radix:           2,
		MaxExponent:     d.IntBits,
		MaxExponent10:   decimalDigitsOf(d.IntBits),
		MinExponent:     d.FracBits,
		MinExponent10:   decimalDigitsOf(d.FracBits),
		RoundTowardZero: true,
		RoundError:      0.5,
	}
}

// decimalDigitsOf approximates the base-10 digit count of a base-2
// exponent, as libq's numeric_limits.inl does for max_exponent10 /
// min_exponent10.
func decimalDigitsOf(binaryExp int) int {
	// floor(binaryExp * log10(2))
	const log10_2 = 0.30102999566398119521
	return int(float64(binaryExp) * log10_2)
}
