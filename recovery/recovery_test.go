package recovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
)

// erasureCodedData builds n evaluations of a degree-<n/2 polynomial over the
// domain fs covers: the shape recovery.Recover assumes its input has.
func erasureCodedData(t *testing.T, fs *fft.Settings, n uint64, seed uint64) []curve.Fr {
	t.Helper()
	coeffs := make([]curve.Fr, n)
	for i := uint64(0); i < n/2; i++ {
		coeffs[i] = curve.FromUint64(seed*31 + i + 1)
	}
	data, err := fs.FFT(coeffs, n)
	require.NoError(t, err)
	return data
}

func withErasures(data []curve.Fr, missing map[uint64]bool) []Sample {
	samples := make([]Sample, len(data))
	for i := range data {
		if missing[uint64(i)] {
			samples[i] = Sample{Present: false}
		} else {
			samples[i] = Sample{Value: data[i], Present: true}
		}
	}
	return samples
}

func TestRecoverWithNoErasuresReturnsOriginalData(t *testing.T) {
	fs, err := fft.NewSettings(4)
	require.NoError(t, err)

	data := erasureCodedData(t, fs, 16, 1)
	samples := withErasures(data, nil)

	reconstructed, err := Recover(fs, samples)
	require.NoError(t, err)
	require.Equal(t, data, reconstructed)
}

func TestRecoverWithHalfErasuresReturnsOriginalData(t *testing.T) {
	fs, err := fft.NewSettings(4)
	require.NoError(t, err)

	data := erasureCodedData(t, fs, 16, 7)
	missing := map[uint64]bool{1: true, 3: true, 5: true, 7: true, 9: true, 11: true, 13: true, 15: true}
	samples := withErasures(data, missing)

	reconstructed, err := Recover(fs, samples)
	require.NoError(t, err)
	require.Equal(t, data, reconstructed)
}

func TestRecoverWithScatteredErasuresReturnsOriginalData(t *testing.T) {
	fs, err := fft.NewSettings(4)
	require.NoError(t, err)

	data := erasureCodedData(t, fs, 16, 42)
	missing := map[uint64]bool{0: true, 2: true, 6: true, 8: true, 9: true, 12: true, 14: true}
	samples := withErasures(data, missing)

	reconstructed, err := Recover(fs, samples)
	require.NoError(t, err)
	require.Equal(t, data, reconstructed)
}

func TestRecoverIsIdempotentOnItsOutput(t *testing.T) {
	fs, err := fft.NewSettings(4)
	require.NoError(t, err)

	data := erasureCodedData(t, fs, 16, 99)
	missing := map[uint64]bool{2: true, 4: true, 6: true, 8: true}
	samples := withErasures(data, missing)

	reconstructed, err := Recover(fs, samples)
	require.NoError(t, err)

	full := make([]Sample, len(reconstructed))
	for i := range reconstructed {
		full[i] = Sample{Value: reconstructed[i], Present: true}
	}
	again, err := Recover(fs, full)
	require.NoError(t, err)
	if diff := cmp.Diff(reconstructed, again, cmp.Comparer(func(a, b curve.Fr) bool { return a.Equal(&b) })); diff != "" {
		t.Fatalf("recovering an already-complete dataset changed it (-first +second):\n%s", diff)
	}
}

func TestRecoverRejectsTooManyErasures(t *testing.T) {
	fs, err := fft.NewSettings(4)
	require.NoError(t, err)

	data := erasureCodedData(t, fs, 16, 5)
	missing := map[uint64]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true}
	samples := withErasures(data, missing)

	_, err = Recover(fs, samples)
	require.ErrorIs(t, err, ErrBadArgs)
}

func TestRecoverRejectsNonPowerOfTwoSampleCount(t *testing.T) {
	fs, err := fft.NewSettings(4)
	require.NoError(t, err)

	samples := make([]Sample, 10)
	for i := range samples {
		samples[i] = Sample{Value: curve.FromUint64(uint64(i)), Present: true}
	}

	_, err = Recover(fs, samples)
	require.ErrorIs(t, err, ErrBadArgs)
}
