package metajson

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/terradye/terradye/internal/dem"
)

// Dimensions is the pixel size of the converted heightmap.
type Dimensions struct {
	Width  uint `json:"width"`
	Height uint `json:"height"`
}

// Elevation records the range the 16-bit samples were scaled against,
// plus the range actually observed in the source tile.
type Elevation struct {
	MinMeters   float64 `json:"min_meters"`
	MaxMeters   float64 `json:"max_meters"`
	RangeMeters float64 `json:"range_meters,omitempty"`
	OriginalMin float64 `json:"original_min,omitempty"`
	OriginalMax float64 `json:"original_max,omitempty"`
}

// WorldSize is the covered ground area in meters.
type WorldSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scaling describes how pixels map onto the ground.
type Scaling struct {
	PixelPitchMeters float64    `json:"pixel_pitch_meters"`
	ScaleFactor      int        `json:"scale_factor,omitempty"`
	WorldSize        *WorldSize `json:"world_size_meters,omitempty"`
}

// Meta represents the structure of the JSON sidecar written next to
// converted heightmap PNGs. It records everything needed to interpret the
// PNG's gray samples as elevations again.
type Meta struct {
	SourceFile string     `json:"source_file,omitempty"`
	PNGFile    string     `json:"png_file,omitempty"`
	Dimensions Dimensions `json:"dimensions"`
	Elevation  Elevation  `json:"elevation"`
	Scaling    Scaling    `json:"scaling"`
}

// Bounds returns the elevation range the heightmap was scaled against.
func (m Meta) Bounds() dem.Bounds {
	return dem.Bounds{Min: m.Elevation.MinMeters, Max: m.Elevation.MaxMeters}
}

// PixelPitch returns the declared sample spacing, or the SRTM default when
// the sidecar carries none.
func (m Meta) PixelPitch() float64 {
	if m.Scaling.PixelPitchMeters > 0 {
		return m.Scaling.PixelPitchMeters
	}
	return dem.DefaultCellSize
}

// SidecarPath derives the sidecar location for a heightmap: the same path
// with the extension swapped for .json.
func SidecarPath(heightmapPath string) string {
	if idx := strings.LastIndex(heightmapPath, "."); idx > strings.LastIndex(heightmapPath, "/") {
		return heightmapPath[:idx] + ".json"
	}
	return heightmapPath + ".json"
}

// Read loads a sidecar from the given path.
func Read(path string) (Meta, error) {
	var meta Meta

	raw, err := os.ReadFile(path)
	if err != nil {
		return meta, err
	}

	if err := json.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("%s: %w", path, err)
	}

	return meta, nil
}

// Write stores a sidecar at the given path, pretty-printed so it stays
// readable next to the heightmap it describes.
func Write(path string, meta Meta) error {
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
