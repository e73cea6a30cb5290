package preview

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"time"

	"github.com/nfnt/resize"

	"github.com/terradye/terradye/internal/utils"
)

var sizes = []uint{128, 256, 512, 1024}

// Build writes the image plus downscaled copies into the output directory:
// preview.png at full size and preview_<height>.png for every stock height
// the source can fill. Widths follow the source's aspect ratio. It returns
// the paths written.
func Build(img image.Image, outputDirectory string) ([]string, error) {
	if err := utils.EnsureDirectory(outputDirectory); err != nil {
		return nil, err
	}

	full := path.Join(outputDirectory, "preview.png")
	if err := utils.SavePNG(full, img); err != nil {
		return nil, err
	}
	paths := []string{full}

	srcHeight := img.Bounds().Dy()
	for _, size := range sizes {
		if int(size) > srcHeight {
			continue
		}

		scaled := resize.Resize(0, size, img, resize.MitchellNetravali)

		scaledPath := path.Join(outputDirectory, fmt.Sprintf("preview_%d.png", size))
		if err := utils.SavePNG(scaledPath, scaled); err != nil {
			return nil, err
		}
		paths = append(paths, scaledPath)
	}

	return paths, nil
}

// Run is the preview subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to a shaded terrain PNG")
	outputPtr := flagSet.String("out", "", "Path to output directory")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *inputPtr == "" || *outputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	timer = time.Now()
	fmt.Println("▶️  Loading shaded image")

	file, err := os.Open(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	img, err := png.Decode(file)
	if err != nil {
		log.Fatal(err)
	}
	if err := file.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Loaded shaded image in", time.Now().Sub(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Building previews")

	paths, err := Build(img, *outputPtr)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range paths {
		fmt.Println("    ✔️  Wrote", p)
	}
	fmt.Println("✔️  Built previews in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}
