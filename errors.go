package fixed

import "github.com/avdva/qfixed/internal/qcore"

// Errors of the four kinds (overflow, underflow, domain and
// division_by_zero) are surfaced through Go's ordinary error return
// value (never a panic) as a *qcore.Error, which carries Kind/Desc/Op:
// overflow and underflow when a format's policy is set to raise, domain
// and division-by-zero errors always. The predicates below report the
// kind for callers that do not want to inspect Kind directly.

// IsOverflow reports whether err is an overflow error raised by this
// package.
func IsOverflow(err error) bool {
	return hasKind(err, qcore.KindOverflow)
}

// IsUnderflow reports whether err is an underflow error raised by this
// package.
func IsUnderflow(err error) bool {
	return hasKind(err, qcore.KindUnderflow)
}

// IsDomainError reports whether err was raised because an argument fell
// outside a function's mathematical domain.
func IsDomainError(err error) bool {
	return hasKind(err, qcore.KindDomain)
}

// IsDivisionByZero reports whether err was raised by a zero denominator.
func IsDivisionByZero(err error) bool {
	return hasKind(err, qcore.KindDivisionByZero)
}

func hasKind(err error, k qcore.Kind) bool {
	qe, ok := err.(*qcore.Error)
	return ok && qe.Kind == k
}
