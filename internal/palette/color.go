package palette

import "image/color"

// RGBA is a color with all four channels in [0,1].
type RGBA struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// Gray returns an opaque gray with all color channels set to v.
func Gray(v float64) RGBA {
	return RGBA{R: v, G: v, B: v, A: 1}
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamped returns the color with every channel clamped to [0,1].
func (c RGBA) Clamped() RGBA {
	return RGBA{
		R: Clamp01(c.R),
		G: Clamp01(c.G),
		B: Clamp01(c.B),
		A: Clamp01(c.A),
	}
}

// RGBA8 converts the color to 8-bit channels, rounding to nearest.
func (c RGBA) RGBA8() color.RGBA {
	cl := c.Clamped()
	return color.RGBA{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
		A: uint8(cl.A*255 + 0.5),
	}
}

// Lerp interpolates between a and b per channel. t=0 returns a, t=1 returns b.
func Lerp(a, b RGBA, t float64) RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
