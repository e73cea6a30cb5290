package dye

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/terradye/terradye/internal/biome"
	"github.com/terradye/terradye/internal/dem"
	"github.com/terradye/terradye/internal/palette"
)

// DimensionMismatchError reports companion grids whose shapes disagree.
type DimensionMismatchError struct {
	FieldCols, FieldRows uint
	VegCols, VegRows     uint
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vegetation grid is %dx%d but the elevation grid is %dx%d",
		e.VegCols, e.VegRows, e.FieldCols, e.FieldRows)
}

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// ShadeField shades every sample of an elevation field and returns the
// colors row-major, top row first. The vegetation field may be nil, which
// shades as if the ground were fully vegetated everywhere; if present it
// must match the elevation grid sample for sample.
//
// Rows are shaded concurrently but the result is deterministic, since
// every sample depends only on its own neighborhood.
func (p *Pipeline) ShadeField(field, vegetation *dem.Field) ([]palette.RGBA, error) {
	cols, rows := field.Dims()

	if vegetation != nil {
		vcols, vrows := vegetation.Dims()
		if vcols != cols || vrows != rows {
			return nil, &DimensionMismatchError{
				FieldCols: cols, FieldRows: rows,
				VegCols: vcols, VegRows: vrows,
			}
		}
	}

	out := make([]palette.RGBA, uint64(cols)*uint64(rows))

	wg := sync.WaitGroup{}
	for row := uint(0); row < rows; row++ {
		wg.Add(1)
		go func(row uint) {
			defer wg.Done()
			sem.Acquire(context.Background(), 1)

			base := uint64(row) * uint64(cols)
			for col := uint(0); col < cols; col++ {
				s := Sample{
					Elevation:  field.Z(col, row),
					SlopeDeg:   field.SlopeAt(col, row),
					Vegetation: 1,
				}
				if vegetation != nil {
					s.Vegetation = vegetation.Z(col, row)
				}
				out[base+uint64(col)] = p.Compute(s)
			}

			sem.Release(1)
		}(row)
	}
	wg.Wait()

	return out, nil
}

// Census tallies how many samples of a field fall into each surface
// category under the pipeline's slope thresholds.
type Census struct {
	Vegetation, Scree, Rock uint64
}

// Total is the number of samples counted.
func (c Census) Total() uint64 {
	return c.Vegetation + c.Scree + c.Rock
}

// Census classifies every sample's slope and tallies the categories.
func (p *Pipeline) Census(field *dem.Field) Census {
	cols, rows := field.Dims()

	var census Census
	for row := uint(0); row < rows; row++ {
		for col := uint(0); col < cols; col++ {
			switch p.Classify(field.SlopeAt(col, row)) {
			case biome.Vegetation:
				census.Vegetation++
			case biome.Scree:
				census.Scree++
			case biome.Rock:
				census.Rock++
			}
		}
	}

	return census
}
