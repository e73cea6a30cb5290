package biome

import "github.com/terradye/terradye/internal/palette"

// DefaultBiome is the profile picked when the caller names none.
const DefaultBiome = "temperate"

// DefaultBank returns the built-in biome profiles.
//
// temperate is the general-purpose lowland look. alpine shares its ramp
// but pushes the scree and rock bands up, so only truly steep faces read
// as bare stone. verdant swaps in a five-stop ramp with distinct grass,
// meadow and forest bands for lusher terrain.
func DefaultBank() Bank {
	landRamp := palette.MustRamp(
		palette.Stop{Position: 0.0, Color: palette.RGBA{R: 0.75, G: 0.68, B: 0.48, A: 1}},
		palette.Stop{Position: 0.4, Color: palette.RGBA{R: 0.25, G: 0.50, B: 0.20, A: 1}},
		palette.Stop{Position: 1.0, Color: palette.RGBA{R: 0.05, G: 0.20, B: 0.05, A: 1}},
	)

	verdantRamp := palette.MustRamp(
		palette.Stop{Position: 0.0, Color: palette.RGBA{R: 0.96, G: 0.96, B: 0.86, A: 1}},
		palette.Stop{Position: 0.3, Color: palette.RGBA{R: 0.40, G: 0.80, B: 0.20, A: 1}},
		palette.Stop{Position: 0.5, Color: palette.RGBA{R: 0.20, G: 0.65, B: 0.10, A: 1}},
		palette.Stop{Position: 0.7, Color: palette.RGBA{R: 0.10, G: 0.45, B: 0.05, A: 1}},
		palette.Stop{Position: 1.0, Color: palette.RGBA{R: 0.05, G: 0.30, B: 0.02, A: 1}},
	)

	return Bank{
		"temperate": {
			Name:      "temperate",
			Ramp:      landRamp,
			SlopeLow:  20,
			SlopeHigh: 35,
			Tone:      DefaultTone(),
		},
		"alpine": {
			Name:      "alpine",
			Ramp:      landRamp,
			SlopeLow:  25,
			SlopeHigh: 45,
			Tone:      DefaultTone(),
		},
		"verdant": {
			Name:      "verdant",
			Ramp:      verdantRamp,
			SlopeLow:  20,
			SlopeHigh: 35,
			Tone:      DefaultTone(),
		},
	}
}
