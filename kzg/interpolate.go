package kzg

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/polynomial"
)

// lagrangeInterpolate returns the unique polynomial of degree < len(xs) with
// I(xs[i]) = ys[i], via the standard barycentric construction: for each i,
// divide out the full product polynomial by (x - xs[i]) to get the
// numerator of the i-th Lagrange basis polynomial, then scale by
// ys[i]/numerator(xs[i]).
func lagrangeInterpolate(xs, ys []curve.Fr) (polynomial.Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d points but %d values", ErrBadArgs, len(xs), len(ys))
	}
	n := len(xs)
	if n == 0 {
		return polynomial.Polynomial{}, nil
	}

	full := polynomial.Polynomial{curve.One()}
	for _, x := range xs {
		var negX curve.Fr
		negX.Neg(&x)

		next := make(polynomial.Polynomial, len(full)+1)
		for i, c := range full {
			var term curve.Fr
			term.Mul(&c, &negX)
			next[i].Add(&next[i], &term)
			next[i+1].Add(&next[i+1], &c)
		}
		full = next
	}

	result := make(polynomial.Polynomial, n)
	for i := 0; i < n; i++ {
		var negXi curve.Fr
		negXi.Neg(&xs[i])
		divisor := polynomial.Polynomial{negXi, curve.One()}

		numerator, err := polynomial.LongDiv(full, divisor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		if numerator == nil {
			return nil, fmt.Errorf("%w: duplicate interpolation point %d", ErrBadArgs, i)
		}

		denom := numerator.Eval(&xs[i])
		if denom.IsZero() {
			return nil, fmt.Errorf("%w: duplicate interpolation point %d", ErrBadArgs, i)
		}

		coeff, err := curve.Div(&ys[i], &denom)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}

		for j, c := range numerator {
			var term curve.Fr
			term.Mul(&c, &coeff)
			result[j].Add(&result[j], &term)
		}
	}

	return result, nil
}
