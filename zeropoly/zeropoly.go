// Package zeropoly builds the vanishing ("zero") polynomial over an
// arbitrary subset of a power-of-two evaluation domain: the polynomial
// Z(x) = Π_{j∈missing}(x - ω^j), used by recovery to isolate erasures and by
// KZG multi-point opening to divide out a claimed root set.
package zeropoly

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"

	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/internal/parallel"
	"github.com/nume-crypto/kzg-das/polynomial"
)

// DefaultPerLeaf is the group size each leaf of the subproduct tree is built
// to directly, below which convolution by repeated multiplication beats the
// FFT-based merge. Purely a performance tuning constant: it must not affect
// the returned polynomial or its evaluations (spec.md §9).
const DefaultPerLeaf = 64

// Build constructs Z(x) = Π_{j∈missing}(x - ω^j) over the size-domainSize
// subgroup that fs was built to cover, and returns Z together with its
// evaluations over the full domain. missing indices must be distinct and lie
// in [0, domainSize).
func Build(fs *fft.Settings, domainSize uint64, missing []uint64, perLeaf int) (polynomial.Polynomial, []curve.Fr, error) {
	if perLeaf <= 0 {
		perLeaf = DefaultPerLeaf
	}
	if err := checkDomain(fs, domainSize); err != nil {
		return nil, nil, err
	}
	if uint64(len(missing)) > domainSize {
		return nil, nil, fmt.Errorf("%w: %d missing indices exceeds domain size %d", ErrBadArgs, len(missing), domainSize)
	}

	sorted := append([]uint64(nil), missing...)
	slices.Sort(sorted)
	for i := range sorted {
		if i > 0 && sorted[i] == sorted[i-1] {
			return nil, nil, fmt.Errorf("%w: duplicate missing index %d", ErrBadArgs, sorted[i])
		}
		if sorted[i] >= domainSize {
			return nil, nil, fmt.Errorf("%w: missing index %d out of range for domain size %d", ErrBadArgs, sorted[i], domainSize)
		}
	}

	if len(sorted) == 0 {
		z := polynomial.Polynomial{curve.One()}
		evals := make([]curve.Fr, domainSize)
		for i := range evals {
			evals[i] = curve.One()
		}
		return z, evals, nil
	}

	stride := fs.MaxWidth / domainSize

	numGroups := (len(sorted) + perLeaf - 1) / perLeaf
	groups := make([]polynomial.Polynomial, numGroups)
	parallel.Execute(numGroups, func(lo, hi int) {
		for g := lo; g < hi; g++ {
			start := g * perLeaf
			end := start + perLeaf
			if end > len(sorted) {
				end = len(sorted)
			}
			roots := make([]curve.Fr, end-start)
			for i, idx := range sorted[start:end] {
				roots[i] = fs.ExpandedRootsOfUnity[idx*stride]
			}
			groups[g] = directProduct(roots)
		}
	})

	z, err := mergeAll(fs, groups)
	if err != nil {
		return nil, nil, err
	}

	padded := make([]curve.Fr, domainSize)
	copy(padded, z)
	evals, err := fs.FFT(padded, domainSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	return z, evals, nil
}

func checkDomain(fs *fft.Settings, domainSize uint64) error {
	if domainSize == 0 || domainSize&(domainSize-1) != 0 {
		return fmt.Errorf("%w: domain size %d is not a power of two", ErrBadArgs, domainSize)
	}
	if domainSize > fs.MaxWidth {
		return fmt.Errorf("%w: domain size %d exceeds max width %d", ErrBadArgs, domainSize, fs.MaxWidth)
	}
	return nil
}

// directProduct multiplies out Π(x - r) one root at a time: the standard
// incremental construction of a monic polynomial from its roots, used
// within a single subproduct-tree leaf where the group is small enough that
// this O(g^2) approach is cheaper than an FFT-based merge.
func directProduct(roots []curve.Fr) polynomial.Polynomial {
	p := polynomial.Polynomial{curve.One()}
	for _, r := range roots {
		next := make(polynomial.Polynomial, len(p)+1)
		for i, c := range p {
			var term curve.Fr
			term.Mul(&c, &r)
			next[i].Sub(&next[i], &term)
			next[i+1].Add(&next[i+1], &c)
		}
		p = next
	}
	return p
}

// mergeAll combines the leaf polynomials pairwise via FFT-based
// multiplication, halving the count of surviving polynomials each round,
// until one remains — the subproduct-tree merge of spec.md §4.4.
func mergeAll(fs *fft.Settings, polys []polynomial.Polynomial) (polynomial.Polynomial, error) {
	for len(polys) > 1 {
		next := make([]polynomial.Polynomial, 0, (len(polys)+1)/2)
		for i := 0; i < len(polys); i += 2 {
			if i+1 == len(polys) {
				next = append(next, polys[i])
				continue
			}
			merged, err := mulFFT(fs, polys[i], polys[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, merged)
		}
		polys = next
	}
	return polys[0], nil
}

// mulFFT multiplies two polynomials by padding both to the next power of
// two at or above their combined degree plus one, transforming, multiplying
// pointwise in the Fourier domain, and inverse-transforming back.
func mulFFT(fs *fft.Settings, a, b polynomial.Polynomial) (polynomial.Polynomial, error) {
	outLen := len(a) + len(b) - 1
	n := nextPowerOfTwo(uint64(outLen))
	if n > fs.MaxWidth {
		return nil, fmt.Errorf("%w: merged degree requires domain size %d exceeding max width %d", ErrBadArgs, n, fs.MaxWidth)
	}

	pa := make([]curve.Fr, n)
	copy(pa, a)
	pb := make([]curve.Fr, n)
	copy(pb, b)

	fa, err := fs.FFT(pa, n)
	if err != nil {
		return nil, err
	}
	fb, err := fs.FFT(pb, n)
	if err != nil {
		return nil, err
	}

	prod := make([]curve.Fr, n)
	for i := range prod {
		prod[i].Mul(&fa[i], &fb[i])
	}

	coeffs, err := fs.FFTInverse(prod, n)
	if err != nil {
		return nil, err
	}

	return polynomial.Polynomial(coeffs[:outLen]), nil
}

func nextPowerOfTwo(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	return uint64(1) << uint(bits.Len64(x-1))
}
