package fk20

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/polynomial"
)

// toeplitzPart1 is the precompute half of the Toeplitz-matrix/SRS-vector
// product: it extends x with identities to length 2n and forward-transforms
// it, so that per-proof work only needs the cheap pointwise part 2.
func toeplitzPart1(x []curve.G1, n uint64, fs *fft.Settings) ([]curve.G1, error) {
	n2 := n * 2
	xExt := make([]curve.G1, n2)
	copy(xExt, x)
	return fs.FFTG1(xExt, n2)
}

// toeplitzPart2 forward-transforms the Toeplitz coefficients and forms the
// pointwise product with the precomputed x_ext_fft. toeplitzCoeffs and
// xExtFFT must have the same length — enforcing this, rather than leaving it
// as an unchecked assumption, catches a mismatched settings/polynomial pair
// as a BadArgs instead of silently reading past the shorter slice.
func toeplitzPart2(toeplitzCoeffs polynomial.Polynomial, xExtFFT []curve.G1, fs *fft.Settings) ([]curve.G1, error) {
	if len(toeplitzCoeffs) != len(xExtFFT) {
		return nil, fmt.Errorf("%w: %d toeplitz coefficients but x_ext_fft has length %d", ErrBadArgs, len(toeplitzCoeffs), len(xExtFFT))
	}

	coeffsFFT, err := fs.FFT(toeplitzCoeffs, uint64(len(toeplitzCoeffs)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	out := make([]curve.G1, len(coeffsFFT))
	for i := range out {
		out[i] = curve.ScalarMulG1Jac(&xExtFFT[i], &coeffsFFT[i])
	}
	return out, nil
}

// toeplitzPart3 inverse-transforms the pointwise product and zeroes the
// upper half to isolate h from its circulant extension.
func toeplitzPart3(hExtFFT []curve.G1, n2 uint64, fs *fft.Settings) ([]curve.G1, error) {
	n := n2 / 2

	h, err := fs.FFTG1Inverse(hExtFFT, n2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	for i := n; i < n2; i++ {
		h[i] = curve.G1{}
	}
	return h, nil
}

// toeplitzCoeffsStride reorders and extends p (length n, upper half
// implicitly zero) into the Toeplitz coefficient vector for a chunked
// opening at the given offset and stride: t[0..2k) where k = n/stride.
func toeplitzCoeffsStride(p polynomial.Polynomial, offset, stride uint64) (polynomial.Polynomial, error) {
	if stride == 0 {
		return nil, fmt.Errorf("%w: stride must be positive", ErrBadArgs)
	}
	n := uint64(len(p))
	k := n / stride
	k2 := k * 2

	out := make(polynomial.Polynomial, k2)
	out[0] = p[n-1-offset]
	// out[1 .. k+1] stay zero.
	j := 2*stride - offset - 1
	for i := k + 2; i < k2; i++ {
		out[i] = p[j]
		j += stride
	}
	return out, nil
}

// toeplitzCoeffsStep is the unstrided (single-proof) special case of
// toeplitzCoeffsStride.
func toeplitzCoeffsStep(p polynomial.Polynomial) (polynomial.Polynomial, error) {
	return toeplitzCoeffsStride(p, 0, 1)
}
