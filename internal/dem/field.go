package dem

import "fmt"

// DefaultCellSize is the horizontal sample spacing assumed when a source
// declares none, in meters. It matches the SRTM-1 pixel pitch.
const DefaultCellSize = 30.0

// Field is a width x height grid of elevation samples in meters.
type Field struct {
	Ncols, Nrows uint
	CellSize     float64 // horizontal sample spacing in meters
	NoDataValue  float64
	Data         [][]float64 // row-major, Data[row][col]
}

// Dims returns the dimensions of the grid.
func (f *Field) Dims() (c, r uint) {
	return f.Ncols, f.Nrows
}

// Z returns the elevation at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (f *Field) Z(c, r uint) float64 {
	return f.Data[r][c]
}

// Extrema scans the grid and returns its own elevation range.
func (f *Field) Extrema() Bounds {
	if f.Nrows == 0 || f.Ncols == 0 {
		return Bounds{}
	}

	min := f.Data[0][0]
	max := f.Data[0][0]
	for row := uint(0); row < f.Nrows; row++ {
		for col := uint(0); col < f.Ncols; col++ {
			d := f.Data[row][col]

			if d < min {
				min = d
			}

			if d > max {
				max = d
			}
		}
	}

	return Bounds{Min: min, Max: max}
}

// cellSize returns the declared sample spacing, or DefaultCellSize when the
// source declared none.
func (f *Field) cellSize() float64 {
	if f.CellSize > 0 {
		return f.CellSize
	}
	return DefaultCellSize
}

// Bounds declares the elevation range used to normalize raw elevations.
// The range may come from the grid's own extrema or from sidecar metadata.
type Bounds struct {
	Min float64 `json:"min_meters" yaml:"min"`
	Max float64 `json:"max_meters" yaml:"max"`
}

// DegenerateRangeError reports elevation bounds that span no range.
type DegenerateRangeError struct {
	Min, Max float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate elevation range [%g, %g]: max must be above min", e.Min, e.Max)
}

// Validate returns a DegenerateRangeError unless Max is above Min.
func (b Bounds) Validate() error {
	if b.Max <= b.Min {
		return &DegenerateRangeError{Min: b.Min, Max: b.Max}
	}
	return nil
}

// Normalize rescales an elevation into [0,1] within the bounds. The result
// is clamped, so elevations outside the bounds map to 0 or 1.
func (b Bounds) Normalize(elevation float64) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return clamp01((elevation - b.Min) / (b.Max - b.Min)), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
