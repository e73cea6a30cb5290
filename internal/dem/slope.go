package dem

import "math"

// SlopeAt estimates the slope angle at (c, r) in degrees.
//
// The gradient is taken with central differences over the immediate
// neighbors, falling back to one-sided differences at the grid border. The
// angle is the deviation of the local surface normal from vertical: 0 for
// flat terrain, approaching 90 for a cliff. A 1x1 grid is flat by
// definition.
func (f *Field) SlopeAt(c, r uint) float64 {
	dzdx := f.gradientX(c, r)
	dzdy := f.gradientY(c, r)

	// The surface normal is (-dzdx, -dzdy, 1) before normalization, so its
	// angle to straight up is acos(1 / |normal|).
	norm := math.Sqrt(dzdx*dzdx + dzdy*dzdy + 1)

	return math.Acos(1/norm) * 180 / math.Pi
}

// gradientX returns dz/dx at (c, r) in meters of rise per meter of run.
func (f *Field) gradientX(c, r uint) float64 {
	step := f.cellSize()

	switch {
	case f.Ncols < 2:
		return 0
	case c == 0:
		return (f.Z(1, r) - f.Z(0, r)) / step
	case c == f.Ncols-1:
		return (f.Z(c, r) - f.Z(c-1, r)) / step
	default:
		return (f.Z(c+1, r) - f.Z(c-1, r)) / (2 * step)
	}
}

// gradientY returns dz/dy at (c, r) in meters of rise per meter of run.
func (f *Field) gradientY(c, r uint) float64 {
	step := f.cellSize()

	switch {
	case f.Nrows < 2:
		return 0
	case r == 0:
		return (f.Z(c, 1) - f.Z(c, 0)) / step
	case r == f.Nrows-1:
		return (f.Z(c, r) - f.Z(c, r-1)) / step
	default:
		return (f.Z(c, r+1) - f.Z(c, r-1)) / (2 * step)
	}
}
