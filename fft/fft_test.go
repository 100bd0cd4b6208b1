package fft

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/kzg-das/internal/curve"
)

func randFr(seed uint64) curve.Fr {
	var f curve.Fr
	f.SetUint64(seed*2654435761 + 1)
	return f
}

func TestFFTMatchesSlowDFT(t *testing.T) {
	s, err := NewSettings(8)
	require.NoError(t, err)

	for _, scale := range []uint{0, 1, 2, 3, 5, 8} {
		n := uint64(1) << scale
		in := make([]curve.Fr, n)
		for i := range in {
			in[i] = randFr(uint64(i) + 1)
		}

		fast, err := s.FFT(in, n)
		require.NoError(t, err)
		slow, err := s.SlowFr(in, n, false)
		require.NoError(t, err)
		require.Equal(t, slow, fast, "scale=%d", scale)
	}
}

func TestFFTRoundTrip(t *testing.T) {
	s, err := NewSettings(10)
	require.NoError(t, err)

	n := uint64(256)
	in := make([]curve.Fr, n)
	for i := range in {
		in[i] = randFr(uint64(i) + 7)
	}

	evals, err := s.FFT(in, n)
	require.NoError(t, err)
	coeffs, err := s.FFTInverse(evals, n)
	require.NoError(t, err)
	require.Equal(t, in, coeffs)
}

func TestFFTRejectsOversizedDomain(t *testing.T) {
	s, err := NewSettings(2)
	require.NoError(t, err)
	_, err = s.FFT(make([]curve.Fr, 64), 64)
	require.ErrorIs(t, err, errBadArgs)
}

func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	s, err := NewSettings(4)
	require.NoError(t, err)
	_, err = s.FFT(make([]curve.Fr, 3), 3)
	require.ErrorIs(t, err, errBadArgs)
}

func TestFFTG1RoundTrip(t *testing.T) {
	s, err := NewSettings(6)
	require.NoError(t, err)

	n := uint64(16)
	g1 := curve.G1Generator()
	in := make([]curve.G1, n)
	for i := range in {
		scalar := randFr(uint64(i) + 3)
		in[i] = curve.ScalarMulG1(&g1, &scalar)
	}

	evals, err := s.FFTG1(in, n)
	require.NoError(t, err)
	coeffs, err := s.FFTG1Inverse(evals, n)
	require.NoError(t, err)

	for i := range in {
		require.True(t, in[i].Equal(&coeffs[i]), "index %d", i)
	}
}

func TestFFTRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	s, err := NewSettings(8)
	require.NoError(t, err)

	properties.Property("FFTInverse(FFT(x)) == x", prop.ForAll(
		func(scale int) bool {
			n := uint64(1) << uint(scale)
			in := make([]curve.Fr, n)
			for i := range in {
				in[i] = randFr(uint64(i)*1103515245 + uint64(scale) + 1)
			}
			evals, err := s.FFT(in, n)
			if err != nil {
				return false
			}
			coeffs, err := s.FFTInverse(evals, n)
			if err != nil {
				return false
			}
			for i := range in {
				if !in[i].Equal(&coeffs[i]) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}
