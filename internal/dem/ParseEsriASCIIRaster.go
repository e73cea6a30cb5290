package dem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEsriASCIIRaster parses an Esri ASCII grid into an elevation Field.
//
// The header must declare NCOLS, NROWS, CELLSIZE and a lower-left anchor
// (either the CENTER or the CORNER variant); NODATA_VALUE is optional and
// defaults to -9999. The anchor coordinates are read but not kept, since
// shading never georeferences the grid.
func ParseEsriASCIIRaster(reader io.Reader) (*Field, error) {
	field := Field{NoDataValue: -9999}
	remainingHeaders := []string{"NCOLS", "NROWS", "XLLCENTER", "XLLCORNER", "YLLCENTER", "YLLCORNER", "CELLSIZE", "NODATA_VALUE"}
	stillIsHeader := true
	rowIndex := uint(0)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		keyword := strings.ToUpper(fields[0])

		if stillIsHeader && contains(remainingHeaders, keyword) {
			remainingHeaders = remove(remainingHeaders, keyword)

			// there can either be corner or center, not both
			if keyword == "XLLCENTER" || keyword == "YLLCENTER" {
				remainingHeaders = remove(remainingHeaders, "XLLCORNER")
				remainingHeaders = remove(remainingHeaders, "YLLCORNER")
			}
			if keyword == "XLLCORNER" || keyword == "YLLCORNER" {
				remainingHeaders = remove(remainingHeaders, "XLLCENTER")
				remainingHeaders = remove(remainingHeaders, "YLLCENTER")
			}

			if err := parseHeaderLine(fields, &field); err != nil {
				return nil, err
			}
		} else {
			if stillIsHeader { // this is the first data line, if stillIsHeader is true
				// NODATA_VALUE is optional, so drop it before checking completeness
				remainingHeaders = remove(remainingHeaders, "NODATA_VALUE")

				if len(remainingHeaders) > 0 {
					return nil, fmt.Errorf("grid is missing mandatory headers: %s", strings.Join(remainingHeaders, ", "))
				}

				stillIsHeader = false

				field.Data = make([][]float64, field.Nrows)
			}

			row, err := parseDataLine(fields, field.Ncols)
			if err != nil {
				return nil, fmt.Errorf("data row %d: %w", rowIndex, err)
			}

			field.Data[rowIndex] = row
			rowIndex++

			if rowIndex >= field.Nrows {
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if rowIndex < field.Nrows {
		return nil, fmt.Errorf("grid declares %d rows but only %d were present", field.Nrows, rowIndex)
	}

	return &field, nil
}

func parseHeaderLine(fields []string, field *Field) error {
	if len(fields) != 2 {
		return fmt.Errorf("header line must have exactly two fields")
	}

	switch strings.ToUpper(fields[0]) {
	case "NCOLS":
		i, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return err
		}
		if i == 0 {
			return fmt.Errorf("NCOLS must be greater than 0")
		}
		field.Ncols = uint(i)
	case "NROWS":
		i, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return err
		}
		if i == 0 {
			return fmt.Errorf("NROWS must be greater than 0")
		}
		field.Nrows = uint(i)
	case "XLLCENTER", "XLLCORNER", "YLLCENTER", "YLLCORNER":
		if _, err := strconv.ParseFloat(fields[1], 64); err != nil {
			return err
		}
	case "CELLSIZE":
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		if f <= 0.0 {
			return fmt.Errorf("CELLSIZE must be greater than 0")
		}
		field.CellSize = f
	case "NODATA_VALUE":
		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		field.NoDataValue = f
	default:
		return fmt.Errorf("unknown header keyword: %s", fields[0])
	}

	return nil
}

func parseDataLine(fields []string, cols uint) ([]float64, error) {
	row := make([]float64, cols)

	if uint(len(fields)) < cols {
		return nil, fmt.Errorf("row has %d samples, want %d", len(fields), cols)
	}

	for i := uint(0); i < cols; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		row[i] = f
	}

	return row, nil
}

// contains checks whether an array contains a string
func contains(array []string, element string) bool {
	for _, curElement := range array {
		if curElement == element {
			return true
		}
	}
	return false
}

// remove removes a string from an array
func remove(arr []string, element string) []string {
	var remaining []string

	for i := 0; i < len(arr); i++ {
		if element != arr[i] {
			remaining = append(remaining, arr[i])
		}
	}

	return remaining
}
