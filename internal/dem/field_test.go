package dem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsValidate(t *testing.T) {
	assert.NoError(t, Bounds{Min: 0, Max: 2635}.Validate())
	assert.NoError(t, Bounds{Min: -12, Max: -3}.Validate())

	var degenerate *DegenerateRangeError
	err := Bounds{Min: 100, Max: 100}.Validate()
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 100.0, degenerate.Min)

	err = Bounds{Min: 100, Max: 50}.Validate()
	require.ErrorAs(t, err, &degenerate)
}

func TestBoundsNormalize(t *testing.T) {
	b := Bounds{Min: 0, Max: 2635}

	h, err := b.Normalize(50)
	require.NoError(t, err)
	assert.InDelta(t, 0.0189753, h, 1e-6)

	h, err = b.Normalize(2635)
	require.NoError(t, err)
	assert.Equal(t, 1.0, h)

	// out-of-range elevations clamp instead of extrapolating
	h, err = b.Normalize(-200)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	h, err = b.Normalize(9000)
	require.NoError(t, err)
	assert.Equal(t, 1.0, h)
}

func TestBoundsNormalizeMonotonic(t *testing.T) {
	b := Bounds{Min: -50, Max: 1950}

	prev := -1.0
	for e := -100.0; e <= 2000; e += 25 {
		h, err := b.Normalize(e)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h, prev)
		prev = h
	}
}

func TestBoundsNormalizeDegenerate(t *testing.T) {
	var degenerate *DegenerateRangeError

	_, err := Bounds{Min: 5, Max: 5}.Normalize(5)
	require.ErrorAs(t, err, &degenerate)
}

func TestFieldExtrema(t *testing.T) {
	field := Field{
		Ncols: 3,
		Nrows: 2,
		Data: [][]float64{
			{120, 95, 410},
			{88, 260, 101},
		},
	}

	bounds := field.Extrema()
	assert.Equal(t, 88.0, bounds.Min)
	assert.Equal(t, 410.0, bounds.Max)
}

func TestFieldExtremaAllPositive(t *testing.T) {
	// zero must not leak in as a minimum when every sample is above it
	field := Field{
		Ncols: 2,
		Nrows: 1,
		Data:  [][]float64{{1500, 1800}},
	}

	bounds := field.Extrema()
	assert.Equal(t, 1500.0, bounds.Min)
	assert.Equal(t, 1800.0, bounds.Max)
}

func TestFieldExtremaEmpty(t *testing.T) {
	var field Field
	assert.Equal(t, Bounds{}, field.Extrema())
}

func TestFieldZ(t *testing.T) {
	field := Field{
		Ncols: 2,
		Nrows: 2,
		Data: [][]float64{
			{1, 2},
			{3, 4},
		},
	}

	assert.Equal(t, 2.0, field.Z(1, 0))
	assert.Equal(t, 3.0, field.Z(0, 1))

	c, r := field.Dims()
	assert.Equal(t, uint(2), c)
	assert.Equal(t, uint(2), r)
}
