package dem

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HGTNoData is the void marker used by SRTM tiles.
const HGTNoData = -32768

// ReadHGT reads a raw SRTM .hgt tile: big-endian int16 elevations in a
// square grid. The two official sizes are 3601x3601 (SRTM-1, 30 m pitch)
// and 1201x1201 (SRTM-3, 90 m pitch); other square sizes are accepted and
// get the default pitch.
func ReadHGT(reader io.Reader) (*Field, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 || len(raw)%2 != 0 {
		return nil, fmt.Errorf("hgt tile has %d bytes, want an even non-zero count", len(raw))
	}

	samples := len(raw) / 2
	side := int(math.Round(math.Sqrt(float64(samples))))
	if side*side != samples {
		return nil, fmt.Errorf("hgt tile has %d samples, which is not a square grid", samples)
	}

	cellSize := DefaultCellSize
	switch side {
	case 3601:
		cellSize = 30
	case 1201:
		cellSize = 90
	}

	field := Field{
		Ncols:       uint(side),
		Nrows:       uint(side),
		CellSize:    cellSize,
		NoDataValue: HGTNoData,
		Data:        make([][]float64, side),
	}

	for row := 0; row < side; row++ {
		line := make([]float64, side)
		for col := 0; col < side; col++ {
			offset := (row*side + col) * 2
			line[col] = float64(int16(binary.BigEndian.Uint16(raw[offset : offset+2])))
		}
		field.Data[row] = line
	}

	return &field, nil
}
