package shade

import (
	"fmt"
	"image"
	"strings"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/dem"
	"github.com/terradye/terradye/internal/dye"
	"github.com/terradye/terradye/internal/metajson"
	"github.com/terradye/terradye/internal/utils"
	"github.com/terradye/terradye/internal/validate"
	"github.com/terradye/terradye/internal/vegmap"
)

// Options carries everything the shade operation needs besides the input
// itself.
type Options struct {
	Input        string
	Output       string
	Biome        string
	BankPath     string  // optional YAML biome bank, "" for the built-ins
	Min, Max     float64 // explicit elevation bounds; honored when Max > Min
	SeaLevel     float64
	Vegetation   string // explicit vegetation map, "" to search by convention
	NoVegetation bool
}

// Source is a loaded elevation input plus the bounds suggested by its
// origin: the sidecar's declared range for heightmap PNGs, the grid's own
// extrema for everything else.
type Source struct {
	Field  *dem.Field
	Bounds dem.Bounds
	Path   string
}

// LoadSource reads any supported elevation input. Heightmap PNGs pull
// their elevation range and pixel pitch from the JSON sidecar.
func LoadSource(srcPath string) (*Source, error) {
	if err := validate.ElevationSource(srcPath); err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(srcPath), ".png") {
		meta, err := metajson.Read(metajson.SidecarPath(srcPath))
		if err != nil {
			return nil, err
		}
		if err := meta.Bounds().Validate(); err != nil {
			return nil, fmt.Errorf("sidecar %s: %w", metajson.SidecarPath(srcPath), err)
		}

		field, err := dem.ReadHeightmapPNGFile(srcPath, meta.Bounds())
		if err != nil {
			return nil, err
		}
		field.CellSize = meta.PixelPitch()

		return &Source{Field: field, Bounds: meta.Bounds(), Path: srcPath}, nil
	}

	field, err := dem.Read(srcPath)
	if err != nil {
		return nil, err
	}

	return &Source{Field: field, Bounds: field.Extrema(), Path: srcPath}, nil
}

// Profile resolves the biome profile the options name: from the YAML bank
// when one is given, from the built-ins otherwise.
func (o Options) Profile() (biome.Profile, error) {
	bank := biome.DefaultBank()
	if o.BankPath != "" {
		loaded, err := biome.LoadBank(o.BankPath)
		if err != nil {
			return biome.Profile{}, err
		}
		bank = loaded
	}

	name := o.Biome
	if name == "" {
		name = biome.DefaultBiome
	}
	return bank.Lookup(name)
}

// Pipeline assembles the dye pipeline for a loaded source. Explicit bounds
// win over the source's own; the biome profile comes from the bank.
func (o Options) Pipeline(src *Source) (*dye.Pipeline, error) {
	profile, err := o.Profile()
	if err != nil {
		return nil, err
	}
	return o.PipelineFor(src, profile)
}

// PipelineFor is Pipeline with an already resolved profile, for callers
// that shade many sources with the same biome.
func (o Options) PipelineFor(src *Source, profile biome.Profile) (*dye.Pipeline, error) {
	cfg := dye.DefaultConfig()
	cfg.Profile = profile
	cfg.Bounds = src.Bounds
	if o.Max > o.Min {
		cfg.Bounds = dem.Bounds{Min: o.Min, Max: o.Max}
	}
	cfg.SeaLevel = o.SeaLevel

	return dye.NewPipeline(cfg)
}

// ResolveVegetation finds the vegetation field for a source. An explicit
// map wins, otherwise the naming convention is searched; a map that simply
// does not exist means fully vegetated ground, not an error.
func (o Options) ResolveVegetation(src *Source) (*dem.Field, string, error) {
	if o.NoVegetation {
		return nil, "", nil
	}

	mapPath := o.Vegetation
	if mapPath == "" {
		located, ok := vegmap.Locate(src.Path)
		if !ok {
			return nil, "", nil
		}
		mapPath = located
	}

	field, err := vegmap.Read(mapPath)
	if err != nil {
		return nil, "", err
	}

	return field, mapPath, nil
}

// Render shades a source into an image.
func Render(pipeline *dye.Pipeline, src *Source, vegetation *dem.Field) (*image.RGBA, error) {
	colors, err := pipeline.ShadeField(src.Field, vegetation)
	if err != nil {
		return nil, err
	}

	cols, rows := src.Field.Dims()
	return utils.ToImage(colors, cols, rows)
}
