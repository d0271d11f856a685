package encoding

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arloliu/e57/errs"
	"github.com/stretchr/testify/require"
)

func TestBitWidth(t *testing.T) {
	tests := []struct {
		name     string
		minimum  int64
		maximum  int64
		expected int
	}{
		{"single value zero", 0, 0, 0},
		{"single value negative", -5, -5, 0},
		{"one bit", 0, 1, 1},
		{"two bits", 0, 3, 2},
		{"three bits", 0, 4, 3},
		{"byte", 0, 255, 8},
		{"byte plus one", 0, 256, 9},
		{"signed byte", -128, 127, 8},
		{"offset range", 1000, 1255, 8},
		{"uint16", 0, math.MaxUint16, 16},
		{"int32", math.MinInt32, math.MaxInt32, 32},
		{"positive int64", 0, math.MaxInt64, 63},
		{"full int64", math.MinInt64, math.MaxInt64, 64},
		{"negative half", math.MinInt64, -1, 63},
		{"minus one to max", -1, math.MaxInt64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BitWidth(tt.minimum, tt.maximum)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestBitWidth_InvalidRange(t *testing.T) {
	_, err := BitWidth(10, 9)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	_, err = BitWidth(math.MaxInt64, math.MinInt64)
	require.ErrorIs(t, err, errs.ErrInvalidRange)
}

func TestBitWidth_EqualBoundsIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(57))
	for range 1000 {
		x := rng.Int63() - rng.Int63()
		got, err := BitWidth(x, x)
		require.NoError(t, err)
		require.Zero(t, got)
	}
}

func TestBitWidth_NonDecreasing(t *testing.T) {
	prev := 0
	for span := int64(0); span < 1<<12; span++ {
		got, err := BitWidth(-7, -7+span)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev, "span %d", span)
		prev = got
	}
}

// Diverges from the legacy e57importer helper, which chained per-range checks
// with one range tested twice (the second test unreachable) and ended in a
// draft branch that returned nothing. Here every span follows
// ceil(log2(span+1)). Spans of 2^63 and above are covered by TestBitWidth.
func TestBitWidth_ClosedFormAcrossPowersOfTwo(t *testing.T) {
	for b := 1; b < 63; b++ {
		top := int64(1) << b

		below, err := BitWidth(0, top-1)
		require.NoError(t, err)
		require.Equal(t, b, below, "span 2^%d-1", b)

		at, err := BitWidth(0, top)
		require.NoError(t, err)
		require.Equal(t, b+1, at, "span 2^%d", b)
	}
}

func TestBitWidth_Ceiling(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 1000 {
		a, b := rng.Int63()-rng.Int63(), rng.Int63()-rng.Int63()
		if a > b {
			a, b = b, a
		}
		got, err := BitWidth(a, b)
		require.NoError(t, err)
		require.LessOrEqual(t, got, MaxBitWidth)
	}
}
