package dye

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/dem"
	"github.com/terradye/terradye/internal/palette"
)

// unitPipeline maps elevation straight to normalized height and disables
// toning and the sea, so blend arithmetic is easy to verify.
func unitPipeline(t *testing.T) *Pipeline {
	t.Helper()

	cfg := Config{
		Bounds: dem.Bounds{Min: 0, Max: 1},
		Profile: biome.Profile{
			Name:      "flatgreen",
			Ramp:      palette.MustRamp(palette.Stop{Position: 0, Color: palette.RGBA{G: 1, A: 1}}),
			SlopeLow:  20,
			SlopeHigh: 35,
		},
		RockRamp: palette.MustRamp(palette.Stop{Position: 0, Color: palette.Gray(0.5)}),
		SeaLevel: 0,
		SeaColor: DefaultSeaColor(),
	}

	p, err := NewPipeline(cfg)
	require.NoError(t, err)
	return p
}

func TestComputeLowlandIsSea(t *testing.T) {
	p, err := NewPipeline(DefaultConfig())
	require.NoError(t, err)

	// 50 m of 2635 normalizes to ~0.019, well below the 0.05 sea level
	c := p.Compute(Sample{Elevation: 50, SlopeDeg: 10, Vegetation: 1})
	assert.Equal(t, DefaultSeaColor(), c)
}

func TestComputeAboveSeaLevelIsLand(t *testing.T) {
	p, err := NewPipeline(DefaultConfig())
	require.NoError(t, err)

	// 200 m normalizes to ~0.076 and must not drown
	c := p.Compute(Sample{Elevation: 200, SlopeDeg: 10, Vegetation: 1})
	assert.NotEqual(t, DefaultSeaColor(), c)
	assert.Equal(t, 1.0, c.A)
}

func TestComputeSeaLevelBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds = dem.Bounds{Min: 0, Max: 1}

	p, err := NewPipeline(cfg)
	require.NoError(t, err)

	// exactly at sea level is land; only strictly below drowns
	at := p.Compute(Sample{Elevation: 0.05, SlopeDeg: 0, Vegetation: 1})
	assert.NotEqual(t, DefaultSeaColor(), at)

	below := p.Compute(Sample{Elevation: 0.0499, SlopeDeg: 0, Vegetation: 1})
	assert.Equal(t, DefaultSeaColor(), below)
}

func TestComputeBlendExtremes(t *testing.T) {
	p := unitPipeline(t)

	// flat and fully vegetated keeps the pure land color
	c := p.Compute(Sample{Elevation: 0.5, SlopeDeg: 0, Vegetation: 1})
	assert.Equal(t, palette.RGBA{G: 1, A: 1}, c)

	// no vegetation falls back to bare rock whatever the slope
	c = p.Compute(Sample{Elevation: 0.5, SlopeDeg: 0, Vegetation: 0})
	assert.Equal(t, palette.Gray(0.5), c)

	// a vertical face sheds its vegetation entirely
	c = p.Compute(Sample{Elevation: 0.5, SlopeDeg: 90, Vegetation: 1})
	assert.Equal(t, palette.Gray(0.5), c)
}

func TestComputeBlendMidpoint(t *testing.T) {
	p := unitPipeline(t)

	// density 0.5 on a 45 degree slope keeps a quarter of the vegetation
	c := p.Compute(Sample{Elevation: 0.5, SlopeDeg: 45, Vegetation: 0.5})
	assert.InDelta(t, 0.375, c.R, 1e-12)
	assert.InDelta(t, 0.625, c.G, 1e-12)
	assert.InDelta(t, 0.375, c.B, 1e-12)
}

func TestComputeMatchesManualComposition(t *testing.T) {
	cfg := DefaultConfig()
	p, err := NewPipeline(cfg)
	require.NoError(t, err)

	s := Sample{Elevation: 1400, SlopeDeg: 28, Vegetation: 0.8}

	h := 1400.0 / 2635.0
	land := cfg.Profile.Tone.Apply(cfg.Profile.Ramp.Sample(h), h)
	rock := cfg.RockRamp.Sample(h)
	want := palette.Lerp(rock, land, VegetationFactor(0.8, 28))

	assert.Equal(t, want, p.Compute(s))
}

func TestVegetationFactor(t *testing.T) {
	assert.Equal(t, 1.0, VegetationFactor(1, 0))
	assert.Equal(t, 0.0, VegetationFactor(1, 90))
	assert.Equal(t, 0.0, VegetationFactor(0, 10))
	assert.InDelta(t, 0.25, VegetationFactor(0.5, 45), 1e-12)

	// out-of-range inputs clamp instead of exploding
	assert.Equal(t, 1.0, VegetationFactor(2, -10))
	assert.Equal(t, 0.0, VegetationFactor(1, 120))
}

func TestClassifyUsesProfileThresholds(t *testing.T) {
	p, err := NewPipeline(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, biome.Vegetation, p.Classify(10))
	assert.Equal(t, biome.Scree, p.Classify(20))
	assert.Equal(t, biome.Rock, p.Classify(35))
}

func TestNewPipelineDegenerateBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds = dem.Bounds{Min: 500, Max: 500}

	var degenerate *dem.DegenerateRangeError
	p, err := NewPipeline(cfg)
	require.ErrorAs(t, err, &degenerate)
	assert.Nil(t, p)
}

func TestNewPipelineInvalidProfileRamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile.Ramp = palette.Ramp{}

	var invalid *palette.InvalidRampError
	_, err := NewPipeline(cfg)
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "temperate")
}

func TestNewPipelineInvalidRockRamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RockRamp = palette.Ramp{Stops: []palette.Stop{
		{Position: 0.9, Color: palette.Gray(0.4)},
		{Position: 0.1, Color: palette.Gray(0.6)},
	}}

	_, err := NewPipeline(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rock ramp")
}

func TestNewPipelineBadSeaLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeaLevel = 1.5
	_, err := NewPipeline(cfg)
	require.Error(t, err)

	cfg.SeaLevel = -0.1
	_, err = NewPipeline(cfg)
	require.Error(t, err)
}

func TestDefaultConfigIsValid(t *testing.T) {
	_, err := NewPipeline(DefaultConfig())
	assert.NoError(t, err)
}
