package texture

import (
	"fmt"
	"image"
)

// Row holds the tokens of one image row, left to right.
type Row []string

// Table holds one Row per image row, top to bottom.
type Table []Row

// EmptyBlock selects where an extra empty row is placed in a Table.
type EmptyBlock int

const (
	EmptyNone EmptyBlock = iota
	EmptyLeading
	EmptyTrailing
)

var emptyBlockNames = map[string]EmptyBlock{
	"none":     EmptyNone,
	"leading":  EmptyLeading,
	"trailing": EmptyTrailing,
}

// ParseEmptyBlock maps a placement name (none, leading, trailing) to its value.
func ParseEmptyBlock(s string) (EmptyBlock, error) {
	if eb, ok := emptyBlockNames[s]; ok {
		return eb, nil
	}
	return EmptyNone, fmt.Errorf("unsupported empty block placement: %q", s)
}

func (eb EmptyBlock) String() string {
	for name, v := range emptyBlockNames {
		if v == eb {
			return name
		}
	}
	return fmt.Sprintf("EmptyBlock(%d)", int(eb))
}

// Format walks img in row-major order and returns one token per pixel.
// The result always has img.Bounds().Dy() rows of img.Bounds().Dx() tokens.
func Format(img image.Image) Table {
	bounds := img.Bounds()
	table := make(Table, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make(Row, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			row = append(row, PixelOf(img.At(x, y)).Token())
		}
		table = append(table, row)
	}
	return table
}

// Pad returns t with an empty row inserted at the given placement. The rows
// are shared with t; with EmptyNone t is returned as is.
func Pad(t Table, at EmptyBlock) Table {
	switch at {
	case EmptyLeading:
		return append(Table{Row{}}, t...)
	case EmptyTrailing:
		res := make(Table, len(t), len(t)+1)
		copy(res, t)
		return append(res, Row{})
	default:
		return t
	}
}
