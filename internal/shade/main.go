package shade

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/dye"
	"github.com/terradye/terradye/internal/utils"
)

// Run is the shade subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to elevation input (.asc, .asc.gz, .hgt or .png with sidecar)")
	outputPtr := flagSet.String("out", "", "Path of the shaded PNG to write")
	biomePtr := flagSet.String("biome", biome.DefaultBiome, "Biome profile to shade with")
	bankPtr := flagSet.String("biomes", "", "Path to a YAML biome bank")
	minPtr := flagSet.Float64("min", 0, "Lower elevation bound in meters (used when -max is above it)")
	maxPtr := flagSet.Float64("max", 0, "Upper elevation bound in meters")
	seaPtr := flagSet.Float64("sea", dye.DefaultSeaLevel, "Normalized sea level, terrain strictly below it drowns")
	vegPtr := flagSet.String("veg", "", "Path to a vegetation density map")
	noVegPtr := flagSet.Bool("noveg", false, "Ignore vegetation maps")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *inputPtr == "" || *outputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	opts := Options{
		Input:        *inputPtr,
		Output:       *outputPtr,
		Biome:        *biomePtr,
		BankPath:     *bankPtr,
		Min:          *minPtr,
		Max:          *maxPtr,
		SeaLevel:     *seaPtr,
		Vegetation:   *vegPtr,
		NoVegetation: *noVegPtr,
	}

	// load elevation data
	timer = time.Now()
	fmt.Println("▶️  Loading elevation data")
	src, err := LoadSource(opts.Input)
	if err != nil {
		log.Fatal(err)
	}
	cols, rows := src.Field.Dims()
	fmt.Printf("✔️  Loaded %dx%d samples in %s\n", cols, rows, time.Now().Sub(timer).String())

	// assemble pipeline
	pipeline, err := opts.Pipeline(src)
	if err != nil {
		log.Fatal(err)
	}
	bounds := pipeline.Bounds()
	fmt.Printf("ℹ️  Biome %s, elevation range %g m to %g m\n", pipeline.Profile().Name, bounds.Min, bounds.Max)

	// find vegetation
	vegetation, vegPath, err := opts.ResolveVegetation(src)
	if err != nil {
		log.Fatal(err)
	}
	if vegPath != "" {
		fmt.Println("✔️  Loaded vegetation map", vegPath)
	} else {
		fmt.Println("ℹ️  No vegetation map, assuming full density")
	}

	// shade
	timer = time.Now()
	fmt.Println("▶️  Shading terrain")
	img, err := Render(pipeline, src, vegetation)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Shaded in", time.Now().Sub(timer).String())

	census := pipeline.Census(src.Field)
	if total := census.Total(); total > 0 {
		fmt.Printf("ℹ️  Surface census: %.0f%% vegetation, %.0f%% scree, %.0f%% rock\n",
			100*float64(census.Vegetation)/float64(total),
			100*float64(census.Scree)/float64(total),
			100*float64(census.Rock)/float64(total))
	}

	// write output
	timer = time.Now()
	fmt.Println("▶️  Writing", opts.Output)
	if err := utils.SavePNG(opts.Output, img); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote image in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}
