// Package recovery reconstructs a polynomial's evaluations over a power-of-two
// domain from any half (or more) of its samples, using the FFT-based
// erasure-code recovery method of
// https://ethresear.ch/t/reed-solomon-erasure-code-recovery-in-n-log-2-n-time-with-ffts/3039.
// It assumes the inverse FFT of the original data has its upper half equal to
// zero, i.e. the data is the evaluation of a degree-<n/2 polynomial over a
// size-n domain — the data-availability-sampling erasure code's defining
// property.
package recovery

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/bitops"
	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/polynomial"
	"github.com/nume-crypto/kzg-das/zeropoly"
)

// Sample is one entry of a dataset to be recovered. Present is false for an
// erasure. This replaces the sentinel fr_null value the originating
// implementation used to mark missing samples in-band: erasure is tracked
// out-of-band, in its own field, rather than as a reserved field-element
// value.
type Sample struct {
	Value   curve.Fr
	Present bool
}

// scaleFactor shifts a polynomial's evaluation point by x -> k*x. 5 is a
// primitive element of Fr, but any value that's neither 0 nor a low-order
// root of unity works equally well.
const scaleFactor = 5

// Recover reconstructs the full evaluation vector from samples, of which up
// to half may be missing (Present == false). len(samples) must be a power of
// two and fs must cover a domain at least that large.
func Recover(fs *fft.Settings, samples []Sample) ([]curve.Fr, error) {
	n := uint64(len(samples))
	if !bitops.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: sample count %d is not a power of two", ErrBadArgs, n)
	}
	if n > fs.MaxWidth {
		return nil, fmt.Errorf("%w: sample count %d exceeds FFT max width %d", ErrBadArgs, n, fs.MaxWidth)
	}

	var missing []uint64
	for i, s := range samples {
		if !s.Present {
			missing = append(missing, uint64(i))
		}
	}
	if uint64(len(missing)) > n/2 {
		return nil, fmt.Errorf("%w: %d missing samples exceeds half of %d", ErrBadArgs, len(missing), n)
	}

	zeroPoly, zeroEval, err := zeropoly.Build(fs, n, missing, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	for i := range samples {
		if samples[i].Present == zeroEval[i].IsZero() {
			return nil, fmt.Errorf("%w: erasure pattern disagrees with vanishing polynomial at index %d", ErrInternal, i)
		}
	}

	// Construct E * Z_r,I, the evaluation form of (D * Z_r,I)(x).
	polyEvalsWithZero := make([]curve.Fr, n)
	for i := range samples {
		if samples[i].Present {
			polyEvalsWithZero[i].Mul(&samples[i].Value, &zeroEval[i])
		}
	}

	polyWithZero, err := fs.FFTInverse(polyEvalsWithZero, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	zeroPolyPadded := make(polynomial.Polynomial, n)
	copy(zeroPolyPadded, zeroPoly)

	// x -> k * x, so polynomial division becomes convolution by the
	// reciprocal's evaluations instead of a division at the original roots
	// of unity (which Z_r,I vanishes at, by construction).
	scalePolyInPlace(polyWithZero)
	scalePolyInPlace(zeroPolyPadded)

	evalScaledPolyWithZero, err := fs.FFT(polyWithZero, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	evalScaledZeroPoly, err := fs.FFT(zeroPolyPadded, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	evalScaledReconstructedPoly := make([]curve.Fr, n)
	for i := range evalScaledReconstructedPoly {
		v, err := curve.Div(&evalScaledPolyWithZero[i], &evalScaledZeroPoly[i])
		if err != nil {
			return nil, fmt.Errorf("%w: dividing at index %d: %v", ErrInternal, i, err)
		}
		evalScaledReconstructedPoly[i] = v
	}

	// The result of the division is D(k * x).
	scaledReconstructedPoly, err := fs.FFTInverse(evalScaledReconstructedPoly, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	// k * x -> x: now we have D(x).
	unscalePolyInPlace(scaledReconstructedPoly)

	reconstructedData, err := fs.FFT(scaledReconstructedPoly, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	for i := range samples {
		if samples[i].Present && !reconstructedData[i].Equal(&samples[i].Value) {
			return nil, fmt.Errorf("%w: reconstructed value disagrees with present sample at index %d", ErrInternal, i)
		}
	}

	return reconstructedData, nil
}

// scalePolyInPlace multiplies coefficient i by scaleFactor^-i, for i >= 1:
// the polynomial transform equivalent to evaluating at k*x rather than x.
func scalePolyInPlace(p []curve.Fr) {
	scale := curve.FromUint64(scaleFactor)
	one := curve.One()
	invFactor, err := curve.Div(&one, &scale)
	if err != nil {
		panic("recovery: scale factor must be nonzero")
	}

	factorPower := curve.One()
	for i := 1; i < len(p); i++ {
		factorPower.Mul(&factorPower, &invFactor)
		p[i].Mul(&p[i], &factorPower)
	}
}

// unscalePolyInPlace is scalePolyInPlace's inverse: multiplies coefficient i
// by scaleFactor^i, undoing the x -> k*x shift.
func unscalePolyInPlace(p []curve.Fr) {
	scale := curve.FromUint64(scaleFactor)

	factorPower := curve.One()
	for i := 1; i < len(p); i++ {
		factorPower.Mul(&factorPower, &scale)
		p[i].Mul(&p[i], &factorPower)
	}
}
