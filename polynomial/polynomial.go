// Package polynomial implements the dense polynomial core spec.md §4.3
// describes: coefficients in ascending degree order, Horner evaluation, and
// schoolbook long division.
package polynomial

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/internal/curve"
)

// Polynomial holds dense coefficients in ascending degree order: p[i] is the
// coefficient of x^i. The zero-length polynomial represents the zero
// polynomial.
type Polynomial []curve.Fr

// Eval evaluates p at x using Horner's method, processing the highest-degree
// coefficient first.
func (p Polynomial) Eval(x *curve.Fr) curve.Fr {
	if len(p) == 0 {
		return curve.Zero()
	}

	out := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		out.Mul(&out, x)
		out.Add(&out, &p[i])
	}
	return out
}

// LongDiv divides dividend by divisor, returning the quotient. It is
// schoolbook long division run coefficient-by-coefficient from the highest
// degree down, matching new_poly_long_div.
//
// If the quotient's degree would be negative (dividend shorter than
// divisor), LongDiv returns a nil Polynomial and no error rather than
// treating that as a precondition violation — it simply isn't representable
// as a polynomial quotient here, not a bad argument by the caller. Only an
// explicit zero-length (zero) divisor is a bad argument.
func LongDiv(dividend, divisor Polynomial) (Polynomial, error) {
	if len(divisor) == 0 {
		return nil, fmt.Errorf("%w: division by the zero polynomial", ErrBadArgs)
	}

	outLength := len(dividend) - len(divisor) + 1
	if outLength <= 0 {
		return nil, nil
	}

	a := make(Polynomial, len(dividend))
	copy(a, dividend)

	out := make(Polynomial, outLength)
	bPos := len(divisor) - 1

	for aPos, diff := len(a)-1, outLength-1; diff >= 0; aPos, diff = aPos-1, diff-1 {
		quot, err := curve.Div(&a[aPos], &divisor[bPos])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		out[diff] = quot

		for i := bPos; i >= 0; i-- {
			var term curve.Fr
			term.Mul(&quot, &divisor[i])
			a[diff+i].Sub(&a[diff+i], &term)
		}
	}

	return out, nil
}
