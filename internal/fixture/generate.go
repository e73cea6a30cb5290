package fixture

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path"

	"github.com/aquilax/go-perlin"

	"github.com/terradye/terradye/internal/dem"
	"github.com/terradye/terradye/internal/dye"
	"github.com/terradye/terradye/internal/metajson"
	"github.com/terradye/terradye/internal/palette"
	"github.com/terradye/terradye/internal/utils"
	"github.com/terradye/terradye/internal/vegmap"
)

// Params shape a generated dataset.
type Params struct {
	Name     string // base name of the emitted files
	Size     uint   // square grid side in samples
	Seed     int64
	Min, Max float64 // elevation range in meters
	CellSize float64
}

// DefaultParams returns the stock generation setup: a 512 sample island
// spanning sea level to the canonical summit height.
func DefaultParams() Params {
	return Params{
		Name:     "fixture",
		Size:     512,
		Seed:     1,
		Min:      0,
		Max:      dye.DefaultMaxElevation,
		CellSize: 30,
	}
}

// Validate checks the generation parameters.
func (p Params) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("fixture name must not be empty")
	}
	if p.Size == 0 {
		return fmt.Errorf("fixture size must be above 0")
	}
	if p.CellSize <= 0 {
		return fmt.Errorf("cell size must be above 0")
	}
	return dem.Bounds{Min: p.Min, Max: p.Max}.Validate()
}

// Terrain generates a synthetic island: three octaves of Perlin noise
// shaped by a radial falloff that pushes the rim under water, scaled into
// the requested elevation range. The same parameters always generate the
// same island.
func Terrain(params Params) *dem.Field {
	noise := perlin.NewPerlin(2, 2, 3, params.Seed)

	side := params.Size
	span := params.Max - params.Min
	data := make([][]float64, side)

	for row := uint(0); row < side; row++ {
		line := make([]float64, side)
		for col := uint(0); col < side; col++ {
			x := float64(col) / float64(side)
			y := float64(row) / float64(side)

			n := 0.6*noise.Noise2D(3*x, 3*y) + 0.3*noise.Noise2D(7*x, 7*y) + 0.1*noise.Noise2D(13*x, 13*y)
			n = (n + 1) / 2

			dx := x - 0.5
			dy := y - 0.5
			falloff := 1 - 2.2*math.Sqrt(dx*dx+dy*dy)
			if falloff < 0 {
				falloff = 0
			}

			line[col] = params.Min + palette.Clamp01(n*falloff)*span
		}
		data[row] = line
	}

	return &dem.Field{
		Ncols:       side,
		Nrows:       side,
		CellSize:    params.CellSize,
		NoDataValue: -9999,
		Data:        data,
	}
}

// Vegetation derives a density map for a field: density thins with
// normalized height and a separate noise layer patches it, so the blend
// has something to chew on.
func Vegetation(field *dem.Field, bounds dem.Bounds, seed int64) (*dem.Field, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	noise := perlin.NewPerlin(2, 2, 3, seed)
	span := bounds.Max - bounds.Min

	cols, rows := field.Dims()
	data := make([][]float64, rows)

	for row := uint(0); row < rows; row++ {
		line := make([]float64, cols)
		for col := uint(0); col < cols; col++ {
			h := palette.Clamp01((field.Z(col, row) - bounds.Min) / span)

			patch := (noise.Noise2D(9*float64(col)/float64(cols), 9*float64(row)/float64(rows)) + 1) / 2
			line[col] = palette.Clamp01((1 - 0.7*h) * (0.6 + 0.4*patch))
		}
		data[row] = line
	}

	return &dem.Field{Ncols: cols, Nrows: rows, CellSize: field.CellSize, Data: data}, nil
}

// WriteASCGz writes a field as a gzip-compressed Esri ASCII grid.
func WriteASCGz(ascPath string, field *dem.Field) error {
	file, err := os.Create(ascPath)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(file)
	w := bufio.NewWriter(gz)

	fmt.Fprintf(w, "ncols %d\n", field.Ncols)
	fmt.Fprintf(w, "nrows %d\n", field.Nrows)
	fmt.Fprintf(w, "xllcorner 0\n")
	fmt.Fprintf(w, "yllcorner 0\n")
	fmt.Fprintf(w, "cellsize %g\n", field.CellSize)
	fmt.Fprintf(w, "NODATA_value %g\n", field.NoDataValue)

	for row := uint(0); row < field.Nrows; row++ {
		for col := uint(0); col < field.Ncols; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%.2f", field.Z(col, row))
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteVegetationPNG writes a density field as 8-bit grayscale.
func WriteVegetationPNG(pngPath string, field *dem.Field) error {
	cols, rows := field.Dims()

	img := image.NewGray(image.Rect(0, 0, int(cols), int(rows)))
	for row := uint(0); row < rows; row++ {
		for col := uint(0); col < cols; col++ {
			img.SetGray(int(col), int(row), color.Gray{Y: uint8(palette.Clamp01(field.Z(col, row))*255 + 0.5)})
		}
	}

	return utils.SavePNG(pngPath, img)
}

// Dataset generates and writes a complete synthetic dataset into dir: the
// compressed elevation grid, its vegetation map and a JSON record of the
// generation range. It returns the paths written.
func Dataset(dir string, params Params) ([]string, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := utils.EnsureDirectory(dir); err != nil {
		return nil, err
	}

	terrain := Terrain(params)
	bounds := dem.Bounds{Min: params.Min, Max: params.Max}

	vegetation, err := Vegetation(terrain, bounds, params.Seed+1)
	if err != nil {
		return nil, err
	}

	ascPath := path.Join(dir, params.Name+".asc.gz")
	if err := WriteASCGz(ascPath, terrain); err != nil {
		return nil, err
	}

	vegPath := path.Join(dir, params.Name+vegmap.Suffix)
	if err := WriteVegetationPNG(vegPath, vegetation); err != nil {
		return nil, err
	}

	extrema := terrain.Extrema()
	metaPath := path.Join(dir, params.Name+".json")
	err = metajson.Write(metaPath, metajson.Meta{
		SourceFile: params.Name + ".asc.gz",
		Dimensions: metajson.Dimensions{Width: params.Size, Height: params.Size},
		Elevation: metajson.Elevation{
			MinMeters:   params.Min,
			MaxMeters:   params.Max,
			RangeMeters: params.Max - params.Min,
			OriginalMin: extrema.Min,
			OriginalMax: extrema.Max,
		},
		Scaling: metajson.Scaling{
			PixelPitchMeters: params.CellSize,
			WorldSize: &metajson.WorldSize{
				Width:  float64(params.Size) * params.CellSize,
				Height: float64(params.Size) * params.CellSize,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return []string{ascPath, vegPath, metaPath}, nil
}
