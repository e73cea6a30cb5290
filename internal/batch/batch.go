package batch

import (
	"fmt"
	"path"
	"strings"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/shade"
	"github.com/terradye/terradye/internal/utils"
	"github.com/terradye/terradye/internal/validate"
)

// Options carries the batch settings shared by every source in the run.
type Options struct {
	Input        string // dataset directory
	Output       string // output directory
	Biome        string
	BankPath     string
	Min, Max     float64
	SeaLevel     float64
	NoVegetation bool
}

// Item is the outcome for one elevation source.
type Item struct {
	Source string
	Output string
	Err    error
}

// Report sums up a batch run.
type Report struct {
	Items []Item
}

// Shaded counts the successfully shaded sources.
func (r Report) Shaded() int {
	n := 0
	for _, item := range r.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

// Skipped counts the sources that were skipped.
func (r Report) Skipped() int {
	return len(r.Items) - r.Shaded()
}

// Process shades every elevation source in the input directory into the
// output directory. A source with missing or broken data is skipped and
// reported in its item, never fatal; the error return is reserved for the
// run as a whole being impossible. progress, when not nil, is called once
// per finished item.
func Process(opts Options, progress func(Item)) (Report, error) {
	sources, err := validate.Sources(opts.Input)
	if err != nil {
		return Report{}, err
	}
	if len(sources) == 0 {
		return Report{}, fmt.Errorf("%s holds no elevation sources", opts.Input)
	}

	// settings shared by the whole run fail the run, not single items
	shared := shade.Options{
		Biome:        opts.Biome,
		BankPath:     opts.BankPath,
		Min:          opts.Min,
		Max:          opts.Max,
		SeaLevel:     opts.SeaLevel,
		NoVegetation: opts.NoVegetation,
	}
	profile, err := shared.Profile()
	if err != nil {
		return Report{}, err
	}

	if err := utils.EnsureDirectory(opts.Output); err != nil {
		return Report{}, err
	}

	report := Report{Items: make([]Item, 0, len(sources))}
	for _, srcPath := range sources {
		item := shadeOne(shared, profile, srcPath, opts.Output)
		report.Items = append(report.Items, item)

		if progress != nil {
			progress(item)
		}
	}

	return report, nil
}

func shadeOne(opts shade.Options, profile biome.Profile, srcPath, outDir string) Item {
	item := Item{Source: srcPath}

	outPath := path.Join(outDir, OutputName(srcPath))
	if outPath == srcPath {
		item.Err = fmt.Errorf("output %s would overwrite the source", outPath)
		return item
	}

	src, err := shade.LoadSource(srcPath)
	if err != nil {
		item.Err = err
		return item
	}

	pipeline, err := opts.PipelineFor(src, profile)
	if err != nil {
		item.Err = err
		return item
	}

	vegetation, _, err := opts.ResolveVegetation(src)
	if err != nil {
		item.Err = err
		return item
	}

	img, err := shade.Render(pipeline, src, vegetation)
	if err != nil {
		item.Err = err
		return item
	}

	if err := utils.SavePNG(outPath, img); err != nil {
		item.Err = err
		return item
	}

	item.Output = outPath
	return item
}

// OutputName derives the shaded image's file name from a source path.
func OutputName(srcPath string) string {
	base := path.Base(strings.TrimSuffix(srcPath, ".gz"))
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + ".png"
}
