package biome

import (
	"fmt"

	"github.com/terradye/terradye/internal/palette"
)

// Category labels a surface by how steep it stands.
type Category int

const (
	// Vegetation covers gentle ground below the lower slope threshold.
	Vegetation Category = iota
	// Scree is the loose transition band between the two thresholds.
	Scree
	// Rock is everything at or above the upper threshold.
	Rock
)

func (c Category) String() string {
	switch c {
	case Vegetation:
		return "vegetation"
	case Scree:
		return "scree"
	case Rock:
		return "rock"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Profile bundles everything a biome contributes to shading: the land
// color ramp, the slope thresholds that separate vegetation from scree and
// rock, and the toning coefficients.
type Profile struct {
	Name      string
	Ramp      palette.Ramp
	SlopeLow  float64 // degrees, start of the scree band
	SlopeHigh float64 // degrees, start of bare rock
	Tone      Tone
}

// Classify buckets a slope angle in degrees. Slopes below SlopeLow read as
// Vegetation, slopes from SlopeLow up to but not including SlopeHigh as
// Scree, and anything from SlopeHigh on as Rock.
func (p Profile) Classify(slopeDeg float64) Category {
	switch {
	case slopeDeg < p.SlopeLow:
		return Vegetation
	case slopeDeg < p.SlopeHigh:
		return Scree
	default:
		return Rock
	}
}

// Validate checks the profile's ramp, thresholds and toning. An equal pair
// of thresholds is allowed and simply leaves no scree band.
func (p Profile) Validate() error {
	if err := p.Ramp.Validate(); err != nil {
		return err
	}

	if p.SlopeLow < 0 || p.SlopeHigh > 90 || p.SlopeLow > p.SlopeHigh {
		return fmt.Errorf("slope thresholds [%g, %g] must satisfy 0 <= low <= high <= 90", p.SlopeLow, p.SlopeHigh)
	}

	if p.Tone.Desaturate < 0 || p.Tone.Desaturate > 1 {
		return fmt.Errorf("desaturate coefficient %g must be within [0, 1]", p.Tone.Desaturate)
	}
	if p.Tone.Brighten < 0 {
		return fmt.Errorf("brighten coefficient %g must not be negative", p.Tone.Brighten)
	}

	return nil
}
