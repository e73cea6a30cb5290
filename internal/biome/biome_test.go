package biome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terradye/terradye/internal/palette"
)

func testProfile() Profile {
	return Profile{
		Name: "test",
		Ramp: palette.MustRamp(
			palette.Stop{Position: 0, Color: palette.RGBA{R: 1, A: 1}},
			palette.Stop{Position: 1, Color: palette.RGBA{G: 1, A: 1}},
		),
		SlopeLow:  20,
		SlopeHigh: 35,
		Tone:      DefaultTone(),
	}
}

func TestClassify(t *testing.T) {
	p := testProfile()

	assert.Equal(t, Vegetation, p.Classify(0))
	assert.Equal(t, Vegetation, p.Classify(19.99))
	assert.Equal(t, Scree, p.Classify(20))
	assert.Equal(t, Scree, p.Classify(34.99))
	assert.Equal(t, Rock, p.Classify(35))
	assert.Equal(t, Rock, p.Classify(89))
}

func TestClassifyEmptyScreeBand(t *testing.T) {
	p := testProfile()
	p.SlopeLow = 30
	p.SlopeHigh = 30
	require.NoError(t, p.Validate())

	assert.Equal(t, Vegetation, p.Classify(29.9))
	assert.Equal(t, Rock, p.Classify(30))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "vegetation", Vegetation.String())
	assert.Equal(t, "scree", Scree.String())
	assert.Equal(t, "rock", Rock.String())
}

func TestProfileValidate(t *testing.T) {
	p := testProfile()
	assert.NoError(t, p.Validate())

	inverted := testProfile()
	inverted.SlopeLow = 40
	inverted.SlopeHigh = 20
	err := inverted.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thresholds")

	tooSteep := testProfile()
	tooSteep.SlopeHigh = 95
	assert.Error(t, tooSteep.Validate())

	negative := testProfile()
	negative.SlopeLow = -5
	assert.Error(t, negative.Validate())

	badRamp := testProfile()
	badRamp.Ramp = palette.Ramp{}
	var invalid *palette.InvalidRampError
	require.ErrorAs(t, badRamp.Validate(), &invalid)

	badTone := testProfile()
	badTone.Tone.Desaturate = 1.5
	assert.Error(t, badTone.Validate())

	badTone.Tone = Tone{Desaturate: 0.5, Brighten: -0.1}
	assert.Error(t, badTone.Validate())
}
