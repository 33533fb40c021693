// Package qcore implements the non-generic heart of the fixed-point
// library: the Q-format descriptor, the promotion algebra, and the
// integer arithmetic core. Every generated format type in the root
// package is a thin, type-safe wrapper around a stored int64 and a
// Descriptor value produced here.
package qcore

import (
	"fmt"
	"math"
)

// MaxSignificantBits is the largest n+f (plus sign bit, if signed) this
// library is willing to host in a single int64 stored integer. Above
// this width a promoted format is "closed": no wider host integer
// exists, so the operation falls back to the left operand's format.
const MaxSignificantBits = 62

// Descriptor is the compile-time shape of a fixed-point type: its
// integer and fractional bit counts, its external scaling exponent, its
// signedness, and its overflow/underflow policies. It never changes
// after a format type is generated, so it is safe to hold by value or by
// a package-level pointer.
type Descriptor struct {
	IntBits   int
	FracBits  int
	Exp       int
	Signed    bool
	Overflow  Policy
	Underflow Policy
}

// SignificantBits returns n+f, the number of bits needed to hold the
// magnitude, excluding any sign bit.
func (d Descriptor) SignificantBits() int {
	return d.IntBits + d.FracBits
}

// Width returns the total number of bits the stored integer occupies,
// including the sign bit for signed descriptors.
func (d Descriptor) Width() int {
	if d.Signed {
		return d.SignificantBits() + 1
	}
	return d.SignificantBits()
}

// Fits reports whether this descriptor's width is hostable in a single
// int64 stored integer.
func (d Descriptor) Fits() bool {
	return d.Width() <= MaxSignificantBits
}

// Scale returns 2^f, the fixed-point scale factor.
func (d Descriptor) Scale() int64 {
	return int64(1) << uint(d.FracBits)
}

// ScalingFactor returns 2^-e, the external prescaling factor.
func (d Descriptor) ScalingFactor() float64 {
	return math.Exp2(-float64(d.Exp))
}

// LargestStored returns the largest representable stored integer.
func (d Descriptor) LargestStored() int64 {
	if d.SignificantBits() >= 63 {
		return math.MaxInt64
	}
	return (int64(1) << uint(d.SignificantBits())) - 1
}

// LeastStored returns the smallest representable stored integer.
func (d Descriptor) LeastStored() int64 {
	if !d.Signed {
		return 0
	}
	return -d.LargestStored() - 1
}

// scaleExp is f+e, the exponent used to convert a real value to a stored
// integer: stored = round(x * 2^(f+e)).
func (d Descriptor) scaleExp() int {
	return d.FracBits + d.Exp
}

// Largest returns the largest representable real value, in the
// descriptor's own (unscaled) units, i.e. stored/2^f.
func (d Descriptor) Largest() float64 {
	return float64(d.LargestStored()) / float64(d.Scale())
}

// Least returns the smallest representable real value.
func (d Descriptor) Least() float64 {
	return float64(d.LeastStored()) / float64(d.Scale())
}

// Epsilon returns the stored integer of value 1, i.e. the smallest
// positive step between two representable values.
func (d Descriptor) Epsilon() int64 {
	return 1
}

// Precision returns 2^-f.
func (d Descriptor) Precision() float64 {
	return 1.0 / float64(d.Scale())
}

// DynamicRangeDB returns 20*log10(largest_stored_integer).
func (d Descriptor) DynamicRangeDB() float64 {
	return 20.0 * math.Log10(float64(d.LargestStored()))
}

// ToSigned returns the signed sibling of d, keeping n, f, e and policies.
func (d Descriptor) ToSigned() Descriptor {
	d.Signed = true
	return d
}

// ToUnsigned returns the unsigned sibling of d.
func (d Descriptor) ToUnsigned() Descriptor {
	d.Signed = false
	return d
}

func (d Descriptor) String() string {
	kind := "Q"
	if !d.Signed {
		kind = "UQ"
	}
	if d.Exp != 0 {
		return fmt.Sprintf("%s(%d,%d,e=%d)", kind, d.IntBits, d.FracBits, d.Exp)
	}
	return fmt.Sprintf("%s(%d,%d)", kind, d.IntBits, d.FracBits)
}
