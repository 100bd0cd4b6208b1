package fft

import (
	"github.com/nume-crypto/kzg-das/internal/curve"
)

// FFT evaluates the polynomial with coefficients in over the subgroup of
// order n generated by the domain's root of unity, in bit-reversed-free
// (natural) output order. len(in) must equal n, a power of two not
// exceeding s.MaxWidth.
func (s *Settings) FFT(in []curve.Fr, n uint64) ([]curve.Fr, error) {
	if uint64(len(in)) != n {
		return nil, errBadArgs
	}
	if err := s.checkSize(n); err != nil {
		return nil, err
	}
	out := make([]curve.Fr, n)
	rootsStride := s.MaxWidth / n
	fftFrFast(out, in, 1, s.ExpandedRootsOfUnity, rootsStride, n)
	return out, nil
}

// FFTInverse computes the inverse transform of FFT: recovering coefficients
// from n evaluations on the domain's subgroup.
func (s *Settings) FFTInverse(in []curve.Fr, n uint64) ([]curve.Fr, error) {
	if uint64(len(in)) != n {
		return nil, errBadArgs
	}
	if err := s.checkSize(n); err != nil {
		return nil, err
	}
	out := make([]curve.Fr, n)
	rootsStride := s.MaxWidth / n
	fftFrFast(out, in, 1, s.ReverseRootsOfUnity, rootsStride, n)

	var nInv curve.Fr
	nInv = curve.FromUint64(n)
	nInv.Inverse(&nInv)
	for i := range out {
		out[i].Mul(&out[i], &nInv)
	}
	return out, nil
}

// fftFrFast is the recursive Cooley-Tukey butterfly: in is read with the
// given stride, roots with roots_stride, and the result written densely
// into out. Splitting the domain into even/odd halves and recursing is the
// same decomposition fft_fr_fast uses.
func fftFrFast(out, in []curve.Fr, stride uint64, roots []curve.Fr, rootsStride, n uint64) {
	half := n / 2
	if half == 0 {
		out[0] = in[0]
		return
	}

	fftFrFast(out[:half], in, stride*2, roots, rootsStride*2, half)
	fftFrFast(out[half:], in[stride:], stride*2, roots, rootsStride*2, half)

	for i := uint64(0); i < half; i++ {
		var yTimesRoot curve.Fr
		yTimesRoot.Mul(&out[half+i], &roots[i*rootsStride])
		lo := out[i]
		out[half+i].Sub(&lo, &yTimesRoot)
		out[i].Add(&lo, &yTimesRoot)
	}
}

// FFTG1 and FFTG1Inverse are the mirror-image transforms over G1, used to
// FFT a vector of group elements (the FK20 precomputed proof tables). The
// recursion is identical to the Fr case with group addition/subtraction and
// scalar multiplication in place of field add/sub/mul.
func (s *Settings) FFTG1(in []curve.G1, n uint64) ([]curve.G1, error) {
	if uint64(len(in)) != n {
		return nil, errBadArgs
	}
	if err := s.checkSize(n); err != nil {
		return nil, err
	}
	out := make([]curve.G1, n)
	rootsStride := s.MaxWidth / n
	fftG1Fast(out, in, 1, s.ExpandedRootsOfUnity, rootsStride, n)
	return out, nil
}

func (s *Settings) FFTG1Inverse(in []curve.G1, n uint64) ([]curve.G1, error) {
	if uint64(len(in)) != n {
		return nil, errBadArgs
	}
	if err := s.checkSize(n); err != nil {
		return nil, err
	}
	out := make([]curve.G1, n)
	rootsStride := s.MaxWidth / n
	fftG1Fast(out, in, 1, s.ReverseRootsOfUnity, rootsStride, n)

	var nInv curve.Fr
	nInv = curve.FromUint64(n)
	nInv.Inverse(&nInv)
	for i := range out {
		out[i] = curve.ScalarMulG1Jac(&out[i], &nInv)
	}
	return out, nil
}

func fftG1Fast(out, in []curve.G1, stride uint64, roots []curve.Fr, rootsStride, n uint64) {
	half := n / 2
	if half == 0 {
		out[0] = in[0]
		return
	}

	fftG1Fast(out[:half], in, stride*2, roots, rootsStride*2, half)
	fftG1Fast(out[half:], in[stride:], stride*2, roots, rootsStride*2, half)

	for i := uint64(0); i < half; i++ {
		yTimesRoot := curve.ScalarMulG1Jac(&out[half+i], &roots[i*rootsStride])
		lo := out[i]
		out[half+i] = curve.SubG1(&lo, &yTimesRoot)
		out[i] = curve.AddG1(&lo, &yTimesRoot)
	}
}

// SlowFr is the O(n^2) reference DFT over Fr, kept for cross-checking FFT in
// tests only (spec.md §8).
func (s *Settings) SlowFr(in []curve.Fr, n uint64, inverse bool) ([]curve.Fr, error) {
	if uint64(len(in)) != n {
		return nil, errBadArgs
	}
	if err := s.checkSize(n); err != nil {
		return nil, err
	}

	rootsStride := s.MaxWidth / n
	roots := s.ExpandedRootsOfUnity
	if inverse {
		roots = s.ReverseRootsOfUnity
	}

	out := make([]curve.Fr, n)
	for i := uint64(0); i < n; i++ {
		var sum curve.Fr
		for j := uint64(0); j < n; j++ {
			var term curve.Fr
			term.Mul(&in[j], &roots[(i*j%n)*rootsStride])
			sum.Add(&sum, &term)
		}
		out[i] = sum
	}

	if inverse {
		var nInv curve.Fr
		nInv = curve.FromUint64(n)
		nInv.Inverse(&nInv)
		for i := range out {
			out[i].Mul(&out[i], &nInv)
		}
	}

	return out, nil
}
