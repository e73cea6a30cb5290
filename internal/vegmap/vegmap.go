package vegmap

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/terradye/terradye/internal/dem"
)

// Suffix is the naming convention for per-tile vegetation maps: the
// elevation source's base name plus this suffix.
const Suffix = "_vegetation.png"

// SharedName is the fallback vegetation map shared by a whole directory.
const SharedName = "vegetation.png"

// Read loads a vegetation density map: a grayscale image where black is
// bare ground and white is fully vegetated. Densities land in [0,1].
func Read(mapPath string) (*dem.Field, error) {
	field, err := dem.ReadHeightmapPNGFile(mapPath, dem.Bounds{Min: 0, Max: 1})
	if err != nil {
		return nil, fmt.Errorf("vegetation map %w", err)
	}
	return field, nil
}

// Locate finds the vegetation map belonging to an elevation source. Two
// spots are checked in order: <base>_vegetation.png next to the source,
// then a shared vegetation.png in the same directory.
func Locate(demPath string) (string, bool) {
	base := strings.TrimSuffix(demPath, ".gz")
	if idx := strings.LastIndex(base, "."); idx > strings.LastIndex(base, "/") {
		base = base[:idx]
	}

	candidates := []string{
		base + Suffix,
		path.Join(path.Dir(demPath), SharedName),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	return "", false
}
