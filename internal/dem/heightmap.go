package dem

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ReadHeightmapPNG decodes a grayscale heightmap and rescales its pixel
// values into elevations across the given bounds: black maps to Min, white
// to Max. 16-bit grayscale keeps its full precision; other image kinds go
// through their gray16 conversion first.
//
// PNGs carry no sample spacing, so CellSize is left at zero and the caller
// should fill it in from sidecar metadata.
func ReadHeightmapPNG(reader io.Reader, bounds Bounds) (*Field, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	img, err := png.Decode(reader)
	if err != nil {
		return nil, err
	}

	rect := img.Bounds()
	cols := rect.Dx()
	rows := rect.Dy()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("heightmap image is empty")
	}

	span := bounds.Max - bounds.Min

	field := Field{
		Ncols:       uint(cols),
		Nrows:       uint(rows),
		NoDataValue: -9999,
		Data:        make([][]float64, rows),
	}

	gray, isGray16 := img.(*image.Gray16)

	for row := 0; row < rows; row++ {
		line := make([]float64, cols)
		for col := 0; col < cols; col++ {
			var v uint16
			if isGray16 {
				v = gray.Gray16At(rect.Min.X+col, rect.Min.Y+row).Y
			} else {
				v = color.Gray16Model.Convert(img.At(rect.Min.X+col, rect.Min.Y+row)).(color.Gray16).Y
			}
			line[col] = bounds.Min + float64(v)/65535*span
		}
		field.Data[row] = line
	}

	return &field, nil
}

// ReadHeightmapPNGFile is ReadHeightmapPNG for a file on disk.
func ReadHeightmapPNGFile(path string, bounds Bounds) (*Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	field, err := ReadHeightmapPNG(file, bounds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return field, nil
}
