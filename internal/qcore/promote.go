package qcore

import "math"

// resultSigned implements the signedness rule shared by every promotion:
// the result is signed if either operand is signed.
func resultSigned(a, b Descriptor) bool {
	return a.Signed || b.Signed
}

// PromoteSum computes the result format of a+b / a-b. expandable reports
// whether a host integer wide enough for the promoted format exists;
// when it does not, the operation is "closed" and the caller should keep
// operating in a's own format.
func PromoteSum(a, b Descriptor) (result Descriptor, expandable bool) {
	r := Descriptor{
		IntBits:   maxInt(a.IntBits, b.IntBits) + 1,
		FracBits:  maxInt(a.FracBits, b.FracBits),
		Exp:       minInt(a.Exp, b.Exp),
		Signed:    resultSigned(a, b),
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
	if !r.Fits() {
		return a, false
	}
	return r, true
}

// PromoteProduct computes the result format of a*b.
func PromoteProduct(a, b Descriptor) (result Descriptor, expandable bool) {
	r := Descriptor{
		IntBits:   a.IntBits + b.IntBits,
		FracBits:  a.FracBits + b.FracBits,
		Exp:       a.Exp + b.Exp,
		Signed:    resultSigned(a, b),
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
	if !r.Fits() {
		return a, false
	}
	return r, true
}

// PromoteQuotient computes the result format of a/b.
func PromoteQuotient(a, b Descriptor) (result Descriptor, expandable bool) {
	signed := resultSigned(a, b)
	n := a.IntBits + b.IntBits
	r := Descriptor{
		IntBits:   n,
		FracBits:  a.FracBits + (b.IntBits - b.FracBits),
		Exp:       a.Exp - b.Exp,
		Signed:    signed,
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
	if !r.Fits() {
		return a, false
	}
	return r, true
}

// sumPromotedFormat implements the "sum-of-sums by n+f terms" rule shared
// by log/exp/sinh/cosh/tanh: n grows by ceil(log2(n+f)), f and e are
// unchanged.
func sumPromotedFormat(a Descriptor) Descriptor {
	terms := a.IntBits + a.FracBits
	growth := 0
	if terms > 1 {
		growth = int(math.Ceil(math.Log2(float64(terms))))
	}
	return Descriptor{
		IntBits:   a.IntBits + growth,
		FracBits:  a.FracBits,
		Exp:       a.Exp,
		Signed:    a.Signed,
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
}

// PromoteLog is the result format of log/log2/log10 and, by the same
// table entry, asinh/acosh/atanh.
func PromoteLog(a Descriptor) Descriptor {
	return sumPromotedFormat(a)
}

// PromoteExp is the result format of exp: same promotion as log, but
// always unsigned.
func PromoteExp(a Descriptor) Descriptor {
	r := sumPromotedFormat(a)
	r.Signed = false
	return r
}

// PromoteSameFormat covers sin/cos/tan/asin/acos/atan: same format as
// the argument.
func PromoteSameFormat(a Descriptor) Descriptor {
	return a
}

// PromoteHyperbolicSum is sinh/cosh/tanh's sum-promoted format.
func PromoteHyperbolicSum(a Descriptor) Descriptor {
	return sumPromotedFormat(a)
}

// PromoteSqrt is sqrt's result format: n <- ceil(n/2)+1, f unchanged.
func PromoteSqrt(a Descriptor) Descriptor {
	return Descriptor{
		IntBits:   int(math.Ceil(float64(a.IntBits)/2.0)) + 1,
		FracBits:  a.FracBits,
		Exp:       a.Exp,
		Signed:    a.Signed,
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
