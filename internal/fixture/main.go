package fixture

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/terradye/terradye/internal/dye"
)

// Run is the fixture subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	namePtr := flagSet.String("name", "fixture", "Base name of the emitted files")
	sizePtr := flagSet.Uint("size", 512, "Square grid side in samples")
	seedPtr := flagSet.Int64("seed", 1, "Noise seed")
	minPtr := flagSet.Float64("min", 0, "Lower elevation bound in meters")
	maxPtr := flagSet.Float64("max", dye.DefaultMaxElevation, "Upper elevation bound in meters")
	cellPtr := flagSet.Float64("cellsize", 30, "Sample spacing in meters")

	flagSet.Parse(os.Args[2:])

	if *outputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	params := Params{
		Name:     *namePtr,
		Size:     *sizePtr,
		Seed:     *seedPtr,
		Min:      *minPtr,
		Max:      *maxPtr,
		CellSize: *cellPtr,
	}

	timer := time.Now()
	fmt.Printf("▶️  Generating %dx%d dataset (seed %d)\n", params.Size, params.Size, params.Seed)

	paths, err := Dataset(*outputPtr, params)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range paths {
		fmt.Println("✔️  Wrote", p)
	}
	fmt.Println("✔️  Generated dataset in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}
