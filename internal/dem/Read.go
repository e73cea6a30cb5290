package dem

import (
	"compress/gzip"
	"fmt"
	"os"
	"strings"
)

// Read loads an elevation field from the given path, picking the parser by
// file extension: .asc for Esri ASCII grids, .asc.gz for gzip-compressed
// ones and .hgt for raw SRTM tiles.
func Read(path string) (*Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".asc.gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()

		field, err := ParseEsriASCIIRaster(gz)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return field, nil
	case strings.HasSuffix(lower, ".asc"):
		field, err := ParseEsriASCIIRaster(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return field, nil
	case strings.HasSuffix(lower, ".hgt"):
		field, err := ReadHGT(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return field, nil
	default:
		return nil, fmt.Errorf("%s: unsupported elevation format", path)
	}
}
