package validate

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/terradye/terradye/internal/metajson"
	"github.com/terradye/terradye/internal/utils"
)

// ElevationSource validates that given path points at a usable elevation
// input. Heightmap PNGs additionally need their JSON sidecar, since the
// PNG alone cannot say what elevations its samples span.
func ElevationSource(srcPath string) error {
	if !utils.IsFile(srcPath) {
		return fmt.Errorf("%s does not exists or is no file", srcPath)
	}

	lower := strings.ToLower(srcPath)
	switch {
	case strings.HasSuffix(lower, ".asc"), strings.HasSuffix(lower, ".asc.gz"), strings.HasSuffix(lower, ".hgt"):
		return nil
	case strings.HasSuffix(lower, ".png"):
		sidecar := metajson.SidecarPath(srcPath)
		if !utils.IsFile(sidecar) {
			return fmt.Errorf("%s is missing", sidecar)
		}
		return nil
	default:
		return fmt.Errorf("%s has no supported elevation format", srcPath)
	}
}

// Dataset validates that given directory holds at least one usable
// elevation source.
func Dataset(dirPath string) error {
	sources, err := Sources(dirPath)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		return fmt.Errorf("%s holds no elevation sources", dirPath)
	}

	return nil
}

// Sources lists the usable elevation sources in given directory, sorted by
// name. Vegetation maps and preview images are companions, not sources,
// and heightmap PNGs only count when their sidecar sits next to them.
func Sources(dirPath string) ([]string, error) {
	if !utils.IsDirectory(dirPath) {
		return nil, fmt.Errorf("%s does not exists or is no directory", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		lower := strings.ToLower(name)
		full := path.Join(dirPath, name)

		switch {
		case strings.HasSuffix(lower, ".asc"), strings.HasSuffix(lower, ".asc.gz"), strings.HasSuffix(lower, ".hgt"):
			sources = append(sources, full)
		case strings.HasSuffix(lower, ".png"):
			if isCompanion(lower) {
				continue
			}
			if utils.IsFile(metajson.SidecarPath(full)) {
				sources = append(sources, full)
			}
		}
	}

	return sources, nil
}

func isCompanion(lowerName string) bool {
	return lowerName == "vegetation.png" ||
		strings.HasSuffix(lowerName, "_vegetation.png") ||
		strings.HasPrefix(lowerName, "preview")
}
