package batch

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

// Run is the batch subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to a directory of elevation sources")
	outputPtr := flagSet.String("out", "", "Path to output directory")
	biomePtr := flagSet.String("biome", biome.DefaultBiome, "Biome profile to shade with")
	bankPtr := flagSet.String("biomes", "", "Path to a YAML biome bank")
	minPtr := flagSet.Float64("min", 0, "Lower elevation bound in meters (used when -max is above it)")
	maxPtr := flagSet.Float64("max", 0, "Upper elevation bound in meters")
	seaPtr := flagSet.Float64("sea", dye.DefaultSeaLevel, "Normalized sea level, terrain strictly below it drowns")
	noVegPtr := flagSet.Bool("noveg", false, "Ignore vegetation maps")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *inputPtr == "" || *outputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if !utils.IsDirectory(*inputPtr) {
		log.Fatal(fmt.Errorf("%s does not exists or is no directory", *inputPtr))
	}

	opts := Options{
		Input:        *inputPtr,
		Output:       *outputPtr,
		Biome:        *biomePtr,
		BankPath:     *bankPtr,
		Min:          *minPtr,
		Max:          *maxPtr,
		SeaLevel:     *seaPtr,
		NoVegetation: *noVegPtr,
	}

	fmt.Println("▶️  Shading all sources in", opts.Input)

	report, err := Process(opts, func(item Item) {
		if item.Err != nil {
			fmt.Printf("    ⚠️  Skipped %s: %s\n", item.Source, item.Err)
			return
		}
		fmt.Printf("    ✔️  Shaded %s\n", item.Output)
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("✔️  Shaded %d of %d sources in %s\n", report.Shaded(), len(report.Items), time.Now().Sub(start).String())

	if report.Shaded() == 0 {
		log.Fatal(fmt.Errorf("every source was skipped"))
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}
