// Package decode turns raw DEM bytes into the (rows, cols, elevations)
// triple the core consumes. It never invokes the core and the core
// never imports it: I/O and parsing stay strictly on this side of the
// boundary, with sentinel errors checked via errors.Is.
package decode

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors, checked with errors.Is per this codebase's convention.
var (
	// ErrInputMalformed indicates the stream cannot be parsed into a
	// rectangular integer grid: odd byte length for binary, or a ragged
	// CSV row.
	ErrInputMalformed = errors.New("decode: input is not a rectangular integer grid")
	// ErrDimensionUnknown indicates a binary file's length matches no
	// known DEM shape and is not a perfect square.
	ErrDimensionUnknown = errors.New("decode: binary length matches no known shape")
	// ErrArithmeticOverflow indicates rows*cols overflows the index width.
	ErrArithmeticOverflow = errors.New("decode: rows*cols overflows int32")
)

// Format selects the wire encoding of the input stream.
type Format int

const (
	// Binary is a contiguous sequence of little-endian int16 elevations.
	Binary Format = iota
	// CSV is newline-delimited rows of comma-delimited integers.
	CSV
)

// knownShapes lists the DEM dimensions a binary file's length is allowed
// to be inferred against, before falling back to a perfect square.
var knownShapes = [][2]int{
	{6000, 4800},
	{1200, 1200},
}

// Raster is the decoded grid: Rows*Cols == len(Elevations), row-major.
// Elevations below 0 have already been clamped to 0.
type Raster struct {
	Rows, Cols int
	Elevations []int32
}

// ShapeHint pins an explicit rows/cols pair, bypassing the binary shape
// inference chain below. A zero value (Rows==0 && Cols==0) means "no
// hint": resolve from file length.
type ShapeHint struct {
	Rows, Cols int
}

// Decode reads all of r and parses it per format. shapeHint is only
// consulted for Binary; CSV shape is always derived from the rows
// actually present.
func Decode(r io.Reader, format Format, shapeHint ShapeHint) (Raster, error) {
	switch format {
	case Binary:
		return decodeBinary(r, shapeHint)
	case CSV:
		return decodeCSV(r)
	default:
		return Raster{}, fmt.Errorf("decode: unknown format %d", format)
	}
}

func decodeBinary(r io.Reader, hint ShapeHint) (Raster, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Raster{}, fmt.Errorf("decode: reading binary input: %w", err)
	}
	if len(raw)%2 != 0 {
		return Raster{}, ErrInputMalformed
	}
	cells := len(raw) / 2

	rows, cols, err := resolveShape(cells, hint)
	if err != nil {
		return Raster{}, err
	}

	elev := make([]int32, cells)
	for i := 0; i < cells; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		elev[i] = clamp(int32(v))
	}

	return Raster{Rows: rows, Cols: cols, Elevations: elev}, nil
}

// resolveShape implements the binary shape fallback chain: zero cells
// first (an empty file is a (0,0) raster, not DimensionUnknown), then
// explicit hint, then known DEM dimensions, then a perfect square. It
// never silently guesses a non-square rectangle.
func resolveShape(cells int, hint ShapeHint) (rows, cols int, err error) {
	if cells == 0 {
		return 0, 0, nil
	}

	if hint.Rows > 0 && hint.Cols > 0 {
		if hint.Rows > math.MaxInt32/hint.Cols {
			return 0, 0, ErrArithmeticOverflow
		}
		if hint.Rows*hint.Cols != cells {
			return 0, 0, ErrInputMalformed
		}

		return hint.Rows, hint.Cols, nil
	}

	for _, shape := range knownShapes {
		if shape[0]*shape[1] == cells {
			return shape[0], shape[1], nil
		}
	}

	root := int(math.Sqrt(float64(cells)))
	for _, candidate := range []int{root - 1, root, root + 1} {
		if candidate > 0 && candidate*candidate == cells {
			return candidate, candidate, nil
		}
	}

	return 0, 0, ErrDimensionUnknown
}

func decodeCSV(r io.Reader) (Raster, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var elev []int32
	cols := -1
	rows := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return Raster{}, ErrInputMalformed
		}
		for _, f := range fields {
			v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
			if err != nil {
				return Raster{}, fmt.Errorf("%w: %v", ErrInputMalformed, err)
			}
			elev = append(elev, clamp(int32(v)))
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return Raster{}, fmt.Errorf("decode: reading CSV input: %w", err)
	}
	if rows == 0 || cols <= 0 {
		return Raster{Rows: 0, Cols: 0}, nil
	}

	return Raster{Rows: rows, Cols: cols, Elevations: elev}, nil
}

// clamp maps elevations below sea level (0) to 0: sea level is fixed
// at elevation 0, and elevations below it are clamped upstream of the
// sweep.
func clamp(v int32) int32 {
	if v < 0 {
		return 0
	}

	return v
}
