// Package kzg implements polynomial commitment, opening, and verification
// against a BLS12-381 structured reference string, per spec.md §4.5.
package kzg

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
)

// Settings bundles the structured reference string with the FFT settings
// the module shares across KZG, FK20, and recovery. It is built once and
// treated as immutable thereafter (spec.md §5): no method on Settings
// mutates SecretG1, SecretG2, or FFT.
type Settings struct {
	FFT *fft.Settings

	// SecretG1[i] = [s^i]G1, i in [0, length).
	SecretG1 []curve.G1Affine

	// SecretG2[i] = [s^i]G2, i in [0, length). Carrying the same power
	// tower in G2 as in G1 (rather than only [G2, [s]G2]) is what lets
	// VerifyMulti commit the vanishing polynomial of an arbitrary root set
	// directly in G2, generalising the single-point verification equation
	// instead of requiring a separate batching protocol.
	SecretG2 []curve.G2Affine
}

// NewSettings builds Settings from a precomputed SRS. len(secretG1) and
// len(secretG2) must be equal and non-zero; fs must cover a domain at least
// as large.
func NewSettings(secretG1 []curve.G1Affine, secretG2 []curve.G2Affine, fs *fft.Settings) (*Settings, error) {
	if len(secretG1) == 0 || len(secretG1) != len(secretG2) {
		return nil, fmt.Errorf("%w: secretG1/secretG2 must be equal-length and non-empty", ErrBadArgs)
	}
	if uint64(len(secretG1)) > fs.MaxWidth {
		return nil, fmt.Errorf("%w: SRS length %d exceeds FFT max width %d", ErrBadArgs, len(secretG1), fs.MaxWidth)
	}

	log.Debug().Int("srs_length", len(secretG1)).Msg("kzg settings constructed")

	return &Settings{FFT: fs, SecretG1: secretG1, SecretG2: secretG2}, nil
}

func (s *Settings) length() int { return len(s.SecretG1) }
