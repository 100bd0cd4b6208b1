package fk20

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/bitops"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/internal/parallel"
	"github.com/nume-crypto/kzg-das/polynomial"
)

// ProveAllSingle computes every single-point opening proof for p over the
// domain of size n2 = 2*len(p), in bit-reversed order: out[rev(i)] is the
// proof for ω^i, where ω generates the size-n2 domain and rev reverses the
// low log2(n2) bits of i.
func (fk *SingleSettings) ProveAllSingle(p polynomial.Polynomial) ([]curve.G1Affine, error) {
	n := uint64(len(p))
	n2 := n * 2
	if n2 != fk.XExtFFTLen {
		return nil, fmt.Errorf("%w: 2n %d does not match settings built for n2 %d", ErrBadArgs, n2, fk.XExtFFTLen)
	}
	if !bitops.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: polynomial length %d is not a power of two", ErrBadArgs, n)
	}

	h, err := fk.singleDAOpt(p)
	if err != nil {
		return nil, err
	}

	out, err := fk.KZG.FFT.FFTG1(h, n2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	if err := bitops.ReverseBitOrder(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	return toAffineSlice(out), nil
}

// singleDAOpt runs Toeplitz parts 2-3 for the single-proof scheme, assuming
// the upper half of p (as a length-2n codeword) is zero.
func (fk *SingleSettings) singleDAOpt(p polynomial.Polynomial) ([]curve.G1, error) {
	toeplitzCoeffs, err := toeplitzCoeffsStep(p)
	if err != nil {
		return nil, err
	}

	hExtFFT, err := toeplitzPart2(toeplitzCoeffs, fk.XExtFFT, fk.KZG.FFT)
	if err != nil {
		return nil, err
	}

	return toeplitzPart3(hExtFFT, uint64(len(p))*2, fk.KZG.FFT)
}

// ProveAllMulti computes n2/chunkLen proofs over the domain of size
// n2 = 2*len(p), each opening the polynomial at one coset of chunkLen points
// simultaneously, in bit-reversed order. It assumes the upper half of p (as
// a length-2n codeword) is zero, the same data-availability optimisation
// ProveAllSingle uses.
func (fk *MultiSettings) ProveAllMulti(p polynomial.Polynomial) ([]curve.G1Affine, error) {
	n := uint64(len(p))
	n2 := n * 2
	if n2 != fk.N2 {
		return nil, fmt.Errorf("%w: 2n %d does not match settings built for n2 %d", ErrBadArgs, n2, fk.N2)
	}
	if !bitops.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: polynomial length %d is not a power of two", ErrBadArgs, n)
	}
	if n%fk.ChunkLen != 0 {
		return nil, fmt.Errorf("%w: chunk length %d does not divide polynomial length %d", ErrBadArgs, fk.ChunkLen, n)
	}

	h, err := fk.multiDAOpt(p)
	if err != nil {
		return nil, err
	}

	k2 := n2 / fk.ChunkLen
	out, err := fk.KZG.FFT.FFTG1(h, k2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	if err := bitops.ReverseBitOrder(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	return toAffineSlice(out), nil
}

func (fk *MultiSettings) multiDAOpt(p polynomial.Polynomial) ([]curve.G1, error) {
	n := uint64(len(p))
	n2 := n * 2
	k := n / fk.ChunkLen
	k2 := k * 2

	hExtFFT := make([]curve.G1, k2)
	for i := uint64(0); i < fk.ChunkLen; i++ {
		toeplitzCoeffs, err := toeplitzCoeffsStride(p, i, fk.ChunkLen)
		if err != nil {
			return nil, err
		}
		hExtFFTFile, err := toeplitzPart2(toeplitzCoeffs, fk.XExtFFTFiles[i], fk.KZG.FFT)
		if err != nil {
			return nil, err
		}
		for j := range hExtFFT {
			hExtFFT[j] = curve.AddG1(&hExtFFT[j], &hExtFFTFile[j])
		}
	}

	return toeplitzPart3(hExtFFT, k2, fk.KZG.FFT)
}

// ComputeProofMulti is the general, non-data-availability-optimised
// multi-proof path: it does not assume the upper half of p is zero, running
// the unstrided toeplitzCoeffsStep once per settings file and accumulating
// the results before the final transform. It returns 2*len(p) proofs in
// natural (non-bit-reversed) order; callers after data-availability-shaped
// output should use ProveAllMulti instead.
func (fk *MultiSettings) ComputeProofMulti(p polynomial.Polynomial) ([]curve.G1Affine, error) {
	n := uint64(len(p))
	n2 := n * 2
	if n2 > fk.KZG.FFT.MaxWidth {
		return nil, fmt.Errorf("%w: 2n %d exceeds FFT max width %d", ErrBadArgs, n2, fk.KZG.FFT.MaxWidth)
	}
	for i := range fk.XExtFFTFiles {
		if len(fk.XExtFFTFiles[i]) != int(n2) {
			return nil, fmt.Errorf("%w: polynomial length %d incompatible with these multi settings", ErrBadArgs, n)
		}
	}

	hExtFFT := make([]curve.G1, n2)
	for i := uint64(0); i < fk.ChunkLen; i++ {
		toeplitzCoeffs, err := toeplitzCoeffsStep(p)
		if err != nil {
			return nil, err
		}
		hExtFFTFile, err := toeplitzPart2(toeplitzCoeffs, fk.XExtFFTFiles[i], fk.KZG.FFT)
		if err != nil {
			return nil, err
		}
		for j := range hExtFFT {
			hExtFFT[j] = curve.AddG1(&hExtFFT[j], &hExtFFTFile[j])
		}
	}

	h, err := toeplitzPart3(hExtFFT, n2, fk.KZG.FFT)
	if err != nil {
		return nil, err
	}

	out, err := fk.KZG.FFT.FFTG1(h, n2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	return toAffineSlice(out), nil
}

// toAffineSlice converts every proof from Jacobian to affine form. A
// data-availability sample's worth of proofs can run into the thousands, so
// this fans the conversions out across workers rather than doing them one at
// a time on the calling goroutine.
func toAffineSlice(in []curve.G1) []curve.G1Affine {
	out := make([]curve.G1Affine, len(in))
	parallel.Execute(len(in), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = curve.ToAffineG1(&in[i])
		}
	})
	return out
}
