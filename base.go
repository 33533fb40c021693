// Package fixed implements fixed-point arithmetic over a family of
// Q-format types: signed or unsigned, with a configurable integer-bit
// width, fractional-bit width, and external scaling exponent. Every
// concrete format (Q10_20, UQ4_28, ...) is a small, non-generic type,
// its constructors in the shape internal/genformat emits, embedding Base
// for the operations that never change shape (comparison, string form,
// coercion to float64, numeric limits). Each format type declares its
// own arithmetic and elementary-function methods (which call into
// internal/qcore and cordic); the return type of Add, Sub, Mul, Div and
// every format-changing elementary function is fixed by the promotion
// rules in internal/qcore before any value is ever constructed.
package fixed

import (
	"fmt"

	"github.com/avdva/qfixed/internal/qcore"
)

// Base is embedded by every format type. It carries the stored integer
// and a pointer to the descriptor it was produced in: the type's
// package-level descriptor for a constructed value, or the descriptor
// qcore reported for an arithmetic result (the left operand's own format
// when the operation stayed closed or overflowed). This gives every
// embedder the format-preserving operations for
// free: a shape paired with a magnitude, shared by every format type
// without duplicating comparison, coercion or string logic per type.
type Base struct {
	stored int64
	desc   *qcore.Descriptor
}

// Raw returns the underlying stored integer, with no rescaling applied.
func (b Base) Raw() int64 {
	return b.stored
}

// Descriptor returns the Q-format shape this value was constructed with.
func (b Base) Descriptor() qcore.Descriptor {
	return *b.desc
}

// Float64 converts back to a real value: stored / 2^f, rescaled by the
// external exponent e.
func (b Base) Float64() float64 {
	return qcore.ToFloat(b.stored, *b.desc)
}

// IsZero reports whether the stored integer is exactly zero.
func (b Base) IsZero() bool {
	return b.stored == 0
}

// Sign returns -1, 0 or 1 according to the sign of the stored integer.
func (b Base) Sign() int {
	switch {
	case b.stored < 0:
		return -1
	case b.stored > 0:
		return 1
	default:
		return 0
	}
}

// String renders the represented real value using Go's default float
// formatting; no decimal-specific formatting is attempted.
func (b Base) String() string {
	return fmt.Sprintf("%v", b.Float64())
}

// Cmp compares two values already known to share a format: -1, 0 or 1.
func (b Base) Cmp(other Base) int {
	switch {
	case b.stored < other.stored:
		return -1
	case b.stored > other.stored:
		return 1
	default:
		return 0
	}
}

// Eq reports whether two same-format values hold the same stored integer.
func (b Base) Eq(other Base) bool {
	return b.stored == other.stored
}

// Limits returns the numeric_limits-equivalent surface for this value's
// format.
func (b Base) Limits() qcore.Limits {
	return qcore.LimitsOf(*b.desc)
}
