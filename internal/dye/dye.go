package dye

import (
	"fmt"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/dem"
	"github.com/terradye/terradye/internal/palette"
)

// DefaultMaxElevation is the canonical upper bound in meters, the summit
// elevation the stock profiles were tuned against.
const DefaultMaxElevation = 2635.0

// DefaultSeaLevel is the normalized height below which terrain drowns.
const DefaultSeaLevel = 0.05

// DefaultSeaColor returns the stock deep-water color.
func DefaultSeaColor() palette.RGBA {
	return palette.RGBA{R: 0, G: 0.05, B: 0.2, A: 1}
}

// DefaultRockRamp returns the stock bare-stone ramp, a gentle dark-to-light
// gray rise with elevation.
func DefaultRockRamp() palette.Ramp {
	return palette.MustRamp(
		palette.Stop{Position: 0, Color: palette.Gray(0.4)},
		palette.Stop{Position: 1, Color: palette.Gray(0.6)},
	)
}

// Config assembles the knobs for a shading pipeline.
type Config struct {
	Bounds   dem.Bounds
	Profile  biome.Profile
	RockRamp palette.Ramp
	SeaLevel float64 // normalized height, within [0,1]
	SeaColor palette.RGBA
}

// DefaultConfig is the stock shading setup: the canonical elevation range,
// the temperate biome and the standard rock and sea colors.
func DefaultConfig() Config {
	profile, _ := biome.DefaultBank().Lookup(biome.DefaultBiome)

	return Config{
		Bounds:   dem.Bounds{Min: 0, Max: DefaultMaxElevation},
		Profile:  profile,
		RockRamp: DefaultRockRamp(),
		SeaLevel: DefaultSeaLevel,
		SeaColor: DefaultSeaColor(),
	}
}

// Sample is one terrain element: its raw elevation in meters, the local
// slope in degrees and the vegetation density. Pass a density of 1 when no
// vegetation data exists.
type Sample struct {
	Elevation  float64
	SlopeDeg   float64
	Vegetation float64
}

// Pipeline shades terrain samples into colors. Build one with NewPipeline;
// all validation happens there, which keeps Compute total: a pipeline that
// exists can shade any sample.
type Pipeline struct {
	bounds   dem.Bounds
	profile  biome.Profile
	rockRamp palette.Ramp
	seaLevel float64
	seaColor palette.RGBA
	span     float64
}

// NewPipeline validates a configuration and builds a pipeline from it.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Bounds.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("biome %q: %w", cfg.Profile.Name, err)
	}
	if err := cfg.RockRamp.Validate(); err != nil {
		return nil, fmt.Errorf("rock ramp: %w", err)
	}
	if cfg.SeaLevel < 0 || cfg.SeaLevel > 1 {
		return nil, fmt.Errorf("sea level %g must be within [0, 1]", cfg.SeaLevel)
	}

	return &Pipeline{
		bounds:   cfg.Bounds,
		profile:  cfg.Profile,
		rockRamp: cfg.RockRamp,
		seaLevel: cfg.SeaLevel,
		seaColor: cfg.SeaColor,
		span:     cfg.Bounds.Max - cfg.Bounds.Min,
	}, nil
}

// Bounds returns the elevation range the pipeline normalizes against.
func (p *Pipeline) Bounds() dem.Bounds {
	return p.bounds
}

// Profile returns the biome profile the pipeline shades with.
func (p *Pipeline) Profile() biome.Profile {
	return p.profile
}

// Compute shades a single sample.
//
// The normalized height picks the land color off the biome ramp and tones
// it, while the rock ramp supplies the bare-stone color at the same height.
// The vegetation factor blends the two. Last, heights strictly below the
// sea level drown in the flat sea color; a sample exactly at sea level is
// still land.
func (p *Pipeline) Compute(s Sample) palette.RGBA {
	h := p.normalize(s.Elevation)

	land := p.profile.Ramp.Sample(h)
	land = p.profile.Tone.Apply(land, h)

	rock := p.rockRamp.Sample(h)

	factor := VegetationFactor(s.Vegetation, s.SlopeDeg)
	shaded := palette.Lerp(rock, land, factor)

	if h < p.seaLevel {
		return p.seaColor
	}
	return shaded
}

// Classify buckets a slope angle using the pipeline's biome thresholds.
func (p *Pipeline) Classify(slopeDeg float64) biome.Category {
	return p.profile.Classify(slopeDeg)
}

// VegetationFactor is how much of the vegetated land color survives at a
// sample: the full density on flat ground, fading linearly to nothing on a
// vertical face.
func VegetationFactor(density, slopeDeg float64) float64 {
	return palette.Clamp01(density) * (1 - palette.Clamp01(slopeDeg/90))
}

func (p *Pipeline) normalize(elevation float64) float64 {
	return palette.Clamp01((elevation - p.bounds.Min) / p.span)
}
