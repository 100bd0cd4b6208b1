// Package fft implements power-of-two discrete Fourier transforms over the
// BLS12-381 scalar field and, structurally identically, over G1 — the two
// engines spec.md §4.2 specifies. Settings precompute the roots of unity
// once; FFT/FFTInverse and FFTG1/FFTG1Inverse consume them for any domain
// size up to MaxWidth.
package fft

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nume-crypto/kzg-das/bitops"
	"github.com/nume-crypto/kzg-das/internal/curve"
)

// Settings holds the precomputed powers of a 2^k-th root of unity (and its
// inverse) needed to run fast Fourier transforms on any power-of-two domain
// size up to MaxWidth. Immutable after construction; safe to share by
// reference across goroutines for read-only use (spec.md §5).
type Settings struct {
	MaxWidth uint64

	// ExpandedRootsOfUnity[i] = ω^i for i in [0, MaxWidth], with the final
	// entry equal to ω^0 again (a sentinel matching spec.md §3).
	ExpandedRootsOfUnity []curve.Fr

	// ReverseRootsOfUnity[i] = ω^(-i) for i in [0, MaxWidth], same sentinel.
	ReverseRootsOfUnity []curve.Fr
}

// NewSettings builds Settings supporting domains up to 2^maxScale.
func NewSettings(maxScale uint) (*Settings, error) {
	if err := curve.CheckBackendVersion(curve.BackendVersion, curve.RequiredBackendVersion); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadArgs, err)
	}

	maxWidth := uint64(1) << maxScale

	root, err := curve.RootOfUnity(maxScale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadArgs, err)
	}

	expanded := make([]curve.Fr, maxWidth+1)
	expanded[0] = curve.One()
	for i := uint64(1); i <= maxWidth; i++ {
		expanded[i].Mul(&expanded[i-1], &root)
	}
	if !expanded[maxWidth].Equal(&expanded[0]) {
		return nil, fmt.Errorf("%w: root of unity has wrong order", errInternal)
	}

	var rootInv curve.Fr
	rootInv.Inverse(&root)
	reverse := make([]curve.Fr, maxWidth+1)
	reverse[0] = curve.One()
	for i := uint64(1); i <= maxWidth; i++ {
		reverse[i].Mul(&reverse[i-1], &rootInv)
	}

	log.Debug().Uint("max_scale", maxScale).Uint64("max_width", maxWidth).Msg("fft settings constructed")

	return &Settings{
		MaxWidth:             maxWidth,
		ExpandedRootsOfUnity: expanded,
		ReverseRootsOfUnity:  reverse,
	}, nil
}

func (s *Settings) checkSize(n uint64) error {
	if n > s.MaxWidth {
		return fmt.Errorf("%w: domain size %d exceeds max width %d", errBadArgs, n, s.MaxWidth)
	}
	if !bitops.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: domain size %d is not a power of two", errBadArgs, n)
	}
	return nil
}
