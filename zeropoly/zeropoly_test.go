package zeropoly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/polynomial"
)

func TestBuildVanishesExactlyOnMissingSet(t *testing.T) {
	fs, err := fft.NewSettings(6)
	require.NoError(t, err)

	const domainSize = 32
	missing := []uint64{1, 5, 7, 19, 30}

	_, evals, err := Build(fs, domainSize, missing, DefaultPerLeaf)
	require.NoError(t, err)
	require.Len(t, evals, domainSize)

	missingSet := make(map[uint64]bool, len(missing))
	for _, m := range missing {
		missingSet[m] = true
	}

	for i := uint64(0); i < domainSize; i++ {
		if missingSet[i] {
			require.True(t, evals[i].IsZero(), "index %d should be a root", i)
		} else {
			require.False(t, evals[i].IsZero(), "index %d should not be a root", i)
		}
	}
}

func TestBuildDegreeMatchesMissingCount(t *testing.T) {
	fs, err := fft.NewSettings(6)
	require.NoError(t, err)

	missing := []uint64{0, 3, 9, 10, 11, 20}
	z, _, err := Build(fs, 32, missing, DefaultPerLeaf)
	require.NoError(t, err)
	require.Len(t, z, len(missing)+1)

	one := curve.One()
	require.True(t, one.Equal(&z[len(z)-1]), "Z must be monic")
}

func TestBuildIsPerLeafInvariant(t *testing.T) {
	fs, err := fft.NewSettings(7)
	require.NoError(t, err)

	missing := []uint64{2, 4, 8, 16, 17, 18, 33, 40, 41, 55, 60, 63}

	zSmall, evalsSmall, err := Build(fs, 64, missing, 2)
	require.NoError(t, err)
	zLarge, evalsLarge, err := Build(fs, 64, missing, 1000)
	require.NoError(t, err)

	require.Equal(t, zSmall, zLarge)
	require.Equal(t, evalsSmall, evalsLarge)
}

func TestBuildEmptyMissingSetIsNeverZero(t *testing.T) {
	fs, err := fft.NewSettings(5)
	require.NoError(t, err)

	z, evals, err := Build(fs, 16, nil, DefaultPerLeaf)
	require.NoError(t, err)
	require.Equal(t, polynomialOne(), z)
	for i, e := range evals {
		require.False(t, e.IsZero(), "index %d", i)
	}
}

func TestBuildRejectsOutOfRangeIndex(t *testing.T) {
	fs, err := fft.NewSettings(5)
	require.NoError(t, err)

	_, _, err = Build(fs, 16, []uint64{16}, DefaultPerLeaf)
	require.ErrorIs(t, err, ErrBadArgs)
}

func TestBuildRejectsDuplicateIndex(t *testing.T) {
	fs, err := fft.NewSettings(5)
	require.NoError(t, err)

	_, _, err = Build(fs, 16, []uint64{3, 3}, DefaultPerLeaf)
	require.ErrorIs(t, err, ErrBadArgs)
}

func TestBuildRejectsNonPowerOfTwoDomain(t *testing.T) {
	fs, err := fft.NewSettings(5)
	require.NoError(t, err)

	_, _, err = Build(fs, 12, []uint64{1}, DefaultPerLeaf)
	require.ErrorIs(t, err, ErrBadArgs)
}

func polynomialOne() polynomial.Polynomial {
	return polynomial.Polynomial{curve.One()}
}
