// Package fk20 implements the Feist-Khovratovich amortised proof scheme:
// computing every KZG opening proof for a polynomial's evaluation domain in
// O(n log n), instead of one KZG.OpenSingle per point. Per spec.md §4.6, the
// whole vector of proofs is a Toeplitz-matrix/SRS-vector product computable
// via FFT circulant embedding, split into three parts: a one-time precompute
// (toeplitzPart1, folded into the settings constructors below), a per-call
// pointwise multiply (toeplitzPart2), and a final inverse transform
// (toeplitzPart3).
package fk20

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/bitops"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/kzg"
)

// SingleSettings precomputes the Toeplitz-method SRS transform needed to
// produce every single-point opening proof for a length-n polynomial over a
// domain of size n2 = 2n.
type SingleSettings struct {
	KZG        *kzg.Settings
	XExtFFTLen uint64
	XExtFFT    []curve.G1
}

// NewSingleSettings builds SingleSettings for polynomials of length n2/2.
func NewSingleSettings(ks *kzg.Settings, n2 uint64) (*SingleSettings, error) {
	if n2 > ks.FFT.MaxWidth {
		return nil, fmt.Errorf("%w: n2 %d exceeds FFT max width %d", ErrBadArgs, n2, ks.FFT.MaxWidth)
	}
	if !bitops.IsPowerOfTwo(n2) {
		return nil, fmt.Errorf("%w: n2 %d is not a power of two", ErrBadArgs, n2)
	}
	if n2 < 2 {
		return nil, fmt.Errorf("%w: n2 must be at least 2", ErrBadArgs)
	}

	n := n2 / 2
	x := make([]curve.G1, n)
	for i := uint64(0); i < n-1; i++ {
		var jac curve.G1
		jac.FromAffine(&ks.SecretG1[n-2-i])
		x[i] = jac
	}
	x[n-1] = curve.G1{}

	xExtFFT, err := toeplitzPart1(x, n, ks.FFT)
	if err != nil {
		return nil, err
	}

	return &SingleSettings{KZG: ks, XExtFFTLen: n2, XExtFFT: xExtFFT}, nil
}

// MultiSettings precomputes the Toeplitz-method SRS transforms for a
// chunked (multi-point) opening scheme: one proof per coset of chunkLen
// points, n2/chunkLen proofs in all.
type MultiSettings struct {
	KZG          *kzg.Settings
	N2           uint64
	ChunkLen     uint64
	XExtFFTFiles [][]curve.G1
}

// NewMultiSettings builds MultiSettings for polynomials of length n2/2,
// split into chunkLen interleaved cosets.
func NewMultiSettings(ks *kzg.Settings, n2, chunkLen uint64) (*MultiSettings, error) {
	if n2 > ks.FFT.MaxWidth {
		return nil, fmt.Errorf("%w: n2 %d exceeds FFT max width %d", ErrBadArgs, n2, ks.FFT.MaxWidth)
	}
	if !bitops.IsPowerOfTwo(n2) {
		return nil, fmt.Errorf("%w: n2 %d is not a power of two", ErrBadArgs, n2)
	}
	if n2 < 2 {
		return nil, fmt.Errorf("%w: n2 must be at least 2", ErrBadArgs)
	}
	if chunkLen > n2 {
		return nil, fmt.Errorf("%w: chunk length %d exceeds n2 %d", ErrBadArgs, chunkLen, n2)
	}
	if !bitops.IsPowerOfTwo(chunkLen) || chunkLen == 0 {
		return nil, fmt.Errorf("%w: chunk length %d must be a positive power of two", ErrBadArgs, chunkLen)
	}

	n := n2 / 2
	if n%chunkLen != 0 {
		return nil, fmt.Errorf("%w: chunk length %d does not divide n %d", ErrBadArgs, chunkLen, n)
	}
	k := n / chunkLen

	files := make([][]curve.G1, chunkLen)
	x := make([]curve.G1, k)
	for offset := uint64(0); offset < chunkLen; offset++ {
		start := n - chunkLen - 1 - offset
		j := start
		for i := uint64(0); i+1 < k; i++ {
			var jac curve.G1
			jac.FromAffine(&ks.SecretG1[j])
			x[i] = jac
			j -= chunkLen
		}
		x[k-1] = curve.G1{}

		xExtFFT, err := toeplitzPart1(x, k, ks.FFT)
		if err != nil {
			return nil, err
		}
		files[offset] = xExtFFT
	}

	return &MultiSettings{KZG: ks, N2: n2, ChunkLen: chunkLen, XExtFFTFiles: files}, nil
}
