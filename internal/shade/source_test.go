package shade

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/dem"
	"github.com/terradye/terradye/internal/dye"
	"github.com/terradye/terradye/internal/metajson"
)

const testGrid = `ncols 3
nrows 2
xllcorner 0
yllcorner 0
cellsize 30
10 500 900
400 700 1000
`

func writeTestGrid(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tile.asc")
	require.NoError(t, os.WriteFile(path, []byte(testGrid), 0o644))
	return path
}

func TestLoadSourceASC(t *testing.T) {
	src, err := LoadSource(writeTestGrid(t, t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, dem.Bounds{Min: 10, Max: 1000}, src.Bounds)
	cols, rows := src.Field.Dims()
	assert.Equal(t, uint(3), cols)
	assert.Equal(t, uint(2), rows)
}

func TestLoadSourceHeightmapPNG(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "tile.png")

	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0})
	img.SetGray16(1, 0, color.Gray16{Y: 65535})
	file, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())

	require.NoError(t, metajson.Write(filepath.Join(dir, "tile.json"), metajson.Meta{
		Dimensions: metajson.Dimensions{Width: 2, Height: 1},
		Elevation:  metajson.Elevation{MinMeters: 100, MaxMeters: 900},
		Scaling:    metajson.Scaling{PixelPitchMeters: 90},
	}))

	src, err := LoadSource(pngPath)
	require.NoError(t, err)

	assert.Equal(t, dem.Bounds{Min: 100, Max: 900}, src.Bounds)
	assert.Equal(t, 90.0, src.Field.CellSize)
	assert.Equal(t, 100.0, src.Field.Z(0, 0))
	assert.Equal(t, 900.0, src.Field.Z(1, 0))
}

func TestLoadSourcePNGWithoutSidecar(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "tile.png")
	require.NoError(t, os.WriteFile(pngPath, []byte("x"), 0o644))

	_, err := LoadSource(pngPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile.json")
}

func TestLoadSourceDegenerateSidecar(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "tile.png")
	require.NoError(t, os.WriteFile(pngPath, []byte("x"), 0o644))
	require.NoError(t, metajson.Write(filepath.Join(dir, "tile.json"), metajson.Meta{
		Elevation: metajson.Elevation{MinMeters: 500, MaxMeters: 500},
	}))

	var degenerate *dem.DegenerateRangeError
	_, err := LoadSource(pngPath)
	require.ErrorAs(t, err, &degenerate)
}

func TestOptionsPipelineDefaults(t *testing.T) {
	src, err := LoadSource(writeTestGrid(t, t.TempDir()))
	require.NoError(t, err)

	p, err := Options{SeaLevel: dye.DefaultSeaLevel}.Pipeline(src)
	require.NoError(t, err)

	assert.Equal(t, biome.DefaultBiome, p.Profile().Name)
	// without explicit bounds the grid's extrema hold
	assert.Equal(t, dem.Bounds{Min: 10, Max: 1000}, p.Bounds())
}

func TestOptionsPipelineExplicitBounds(t *testing.T) {
	src, err := LoadSource(writeTestGrid(t, t.TempDir()))
	require.NoError(t, err)

	p, err := Options{Min: 0, Max: 2635, SeaLevel: 0.05}.Pipeline(src)
	require.NoError(t, err)

	assert.Equal(t, dem.Bounds{Min: 0, Max: 2635}, p.Bounds())
}

func TestOptionsPipelineUnknownBiome(t *testing.T) {
	src, err := LoadSource(writeTestGrid(t, t.TempDir()))
	require.NoError(t, err)

	var unknown *biome.UnknownBiomeError
	_, err = Options{Biome: "lunar", SeaLevel: 0.05}.Pipeline(src)
	require.ErrorAs(t, err, &unknown)
}

func TestOptionsPipelineCustomBank(t *testing.T) {
	dir := t.TempDir()
	src, err := LoadSource(writeTestGrid(t, dir))
	require.NoError(t, err)

	bankPath := filepath.Join(dir, "biomes.yaml")
	doc := `biomes:
  - name: island
    slope_low: 15
    slope_high: 30
    ramp:
      - position: 0
        color: {r: 0.9, g: 0.85, b: 0.6}
      - position: 1
        color: {r: 0.1, g: 0.3, b: 0.1}
`
	require.NoError(t, os.WriteFile(bankPath, []byte(doc), 0o644))

	p, err := Options{Biome: "island", BankPath: bankPath, SeaLevel: 0.05}.Pipeline(src)
	require.NoError(t, err)
	assert.Equal(t, "island", p.Profile().Name)

	// the custom bank replaces the built-ins entirely
	_, err = Options{Biome: "temperate", BankPath: bankPath, SeaLevel: 0.05}.Pipeline(src)
	require.Error(t, err)
}

func TestResolveVegetation(t *testing.T) {
	dir := t.TempDir()
	srcPath := writeTestGrid(t, dir)
	src, err := LoadSource(srcPath)
	require.NoError(t, err)

	// nothing on disk means no vegetation field and no error
	field, mapPath, err := Options{}.ResolveVegetation(src)
	require.NoError(t, err)
	assert.Nil(t, field)
	assert.Empty(t, mapPath)

	// a conventionally named map next to the source gets picked up
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	vegPath := filepath.Join(dir, "tile_vegetation.png")
	file, err := os.Create(vegPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())

	field, mapPath, err = Options{}.ResolveVegetation(src)
	require.NoError(t, err)
	require.NotNil(t, field)
	assert.Equal(t, vegPath, mapPath)

	// -noveg turns it back off
	field, _, err = Options{NoVegetation: true}.ResolveVegetation(src)
	require.NoError(t, err)
	assert.Nil(t, field)
}

func TestRender(t *testing.T) {
	src, err := LoadSource(writeTestGrid(t, t.TempDir()))
	require.NoError(t, err)

	p, err := Options{Min: 0, Max: 1000, SeaLevel: 0.05}.Pipeline(src)
	require.NoError(t, err)

	img, err := Render(p, src, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	// the 10 m sample normalizes to 0.01 and drowns
	assert.Equal(t, dye.DefaultSeaColor().RGBA8(), img.RGBAAt(0, 0))
	// the 1000 m sample peaks well above sea level
	assert.NotEqual(t, dye.DefaultSeaColor().RGBA8(), img.RGBAAt(2, 1))
}

func TestRenderDimensionMismatch(t *testing.T) {
	src, err := LoadSource(writeTestGrid(t, t.TempDir()))
	require.NoError(t, err)

	p, err := Options{SeaLevel: 0.05}.Pipeline(src)
	require.NoError(t, err)

	wrong := &dem.Field{Ncols: 1, Nrows: 1, Data: [][]float64{{1}}}

	var mismatch *dye.DimensionMismatchError
	_, err = Render(p, src, wrong)
	require.ErrorAs(t, err, &mismatch)
}
