package biome

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/terradye/terradye/internal/palette"
)

// Tone describes how elevation reshapes a sampled land color before the
// rock blend: high ground loses saturation, low ground gains a little
// brightness.
type Tone struct {
	Desaturate float64 // fraction of saturation lost at full height
	Brighten   float64 // fraction of value gained at zero height
}

// DefaultTone returns the stock toning coefficients.
func DefaultTone() Tone {
	return Tone{Desaturate: 0.6, Brighten: 0.2}
}

// Apply tones a color for the normalized height h. Hue and alpha pass
// through untouched; saturation and value are rescaled and clamped.
func (t Tone) Apply(c palette.RGBA, h float64) palette.RGBA {
	hue, sat, val := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()

	sat = palette.Clamp01(sat * (1 - t.Desaturate*h))
	val = palette.Clamp01(val * (1 + t.Brighten*(1-h)))

	toned := colorful.Hsv(hue, sat, val)

	return palette.RGBA{R: toned.R, G: toned.G, B: toned.B, A: c.A}
}
