package utils

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/terradye/terradye/internal/palette"
)

// ToImage lays a row-major color slice out as an RGBA image of the given
// dimensions.
func ToImage(colors []palette.RGBA, cols, rows uint) (*image.RGBA, error) {
	if uint64(len(colors)) != uint64(cols)*uint64(rows) {
		return nil, fmt.Errorf("have %d colors for a %dx%d image", len(colors), cols, rows)
	}

	img := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{int(cols), int(rows)}})

	for row := uint(0); row < rows; row++ {
		for col := uint(0); col < cols; col++ {
			img.SetRGBA(int(col), int(row), colors[row*cols+col].RGBA8())
		}
	}

	return img, nil
}

// SavePNG writes an image to disk as PNG.
func SavePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
