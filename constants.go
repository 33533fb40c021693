package fixed

import "math"

// constants holds the named mathematical constants
// (CONST_E, CONST_PI, ...). A format type's ConstE(), ConstPi(), ...
// methods convert the matching constant into a value of its own concrete
// type with qcore.FromFloatMust on every call. Q10_20 exposes the full
// set; Q5_10 exposes ConstPi, ConstE and ConstLn2; the other format
// types expose none.
const (
	constE        = math.E
	constLog2E    = 1 / math.Ln2
	constLog10E   = math.Log10E
	constLn2      = math.Ln2
	constLn10     = math.Ln10
	constPi       = math.Pi
	constPi2      = math.Pi / 2
	constPi4      = math.Pi / 4
	const1Pi      = 1 / math.Pi
	const2Pi      = 2 / math.Pi
	const2SqrtPi  = 2 / 1.7724538509055160273 // 2/sqrt(pi)
	constSqrt2    = math.Sqrt2
	constSqrt1_2  = 1 / math.Sqrt2
	const2Sqrt2   = 2 * math.Sqrt2
	constLog102   = 0.30102999566398119521
	const2PiFull  = 2 * math.Pi
)
