package bitops

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		in   uint64
		want bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{5, false},
		{1 << 20, true},
		{(1 << 20) + 1, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, IsPowerOfTwo(c.in), "IsPowerOfTwo(%d)", c.in)
	}
}

func TestLog2PowerOfTwo(t *testing.T) {
	for k := uint(0); k < 40; k++ {
		require.Equal(t, k, Log2PowerOfTwo(uint64(1)<<k))
	}
}

func TestReverseBits32(t *testing.T) {
	require.Equal(t, uint32(0x80000000), ReverseBits32(1))
	require.Equal(t, uint32(1), ReverseBits32(0x80000000))
	require.Equal(t, uint32(0), ReverseBits32(0))
}

func TestReverseBitOrderInvolution(t *testing.T) {
	n := 16
	buf := make([]int, n)
	for i := range buf {
		buf[i] = i
	}
	require.NoError(t, ReverseBitOrder(buf))
	require.NoError(t, ReverseBitOrder(buf))
	for i := range buf {
		require.Equal(t, i, buf[i])
	}
}

func TestReverseBitOrderRejectsNonPowerOfTwo(t *testing.T) {
	err := ReverseBitOrder(make([]int, 3))
	require.ErrorIs(t, err, errBadArgs)
}

func TestReverseBitOrderKnownPermutation(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5, 6, 7}
	require.NoError(t, ReverseBitOrder(buf))
	require.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, buf)
}

func TestReverseBitOrderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	scales := gen.IntRange(0, 10)

	properties.Property("reverse-bit-order is an involution", prop.ForAll(
		func(scale int) bool {
			n := 1 << scale
			buf := make([]int, n)
			for i := range buf {
				buf[i] = i
			}
			original := append([]int(nil), buf...)

			if err := ReverseBitOrder(buf); err != nil {
				return false
			}
			if err := ReverseBitOrder(buf); err != nil {
				return false
			}
			for i := range buf {
				if buf[i] != original[i] {
					return false
				}
			}
			return true
		},
		scales,
	))

	properties.Property("reverse-bit-order is a permutation", prop.ForAll(
		func(scale int) bool {
			n := 1 << scale
			buf := make([]int, n)
			for i := range buf {
				buf[i] = i
			}
			rand.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
			before := append([]int(nil), buf...)

			if err := ReverseBitOrder(buf); err != nil {
				return false
			}

			seen := make(map[int]bool, n)
			for _, v := range buf {
				seen[v] = true
			}
			for _, v := range before {
				if !seen[v] {
					return false
				}
			}
			return len(seen) == n
		},
		scales,
	))

	properties.TestingRun(t)
}
