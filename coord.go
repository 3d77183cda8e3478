package rainreport

import (
	"strconv"

	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// Columns of the report sheet. The layout never goes past M.
const (
	colA = iota
	colB
	colC
	colD
	colE
	colF
	colG
	colH
	colI
	colJ
	colK
	colL
	colM

	numColumns
)

// Coord is a 0-based (row, column) cell position.
type Coord struct {
	Row, Col int
}

// Address formats c in A1 notation: Coord{0, 0} is "A1".
func (c Coord) Address() string {
	return reference.IndexToColumn(uint32(c.Col)) + strconv.Itoa(c.Row+1)
}

// Range is a rectangular block of cells, From being the top-left (master)
// cell and To the bottom-right one.
type Range struct {
	From, To Coord
}

// span is a single-row range covering columns c0..c1.
func span(row, c0, c1 int) Range {
	return Range{From: Coord{row, c0}, To: Coord{row, c1}}
}

// Ref formats r as "A1:M1"; a one-cell range formats as its address.
func (r Range) Ref() string {
	if r.From == r.To {
		return r.From.Address()
	}
	return r.From.Address() + ":" + r.To.Address()
}

// Contains reports whether c lies inside r.
func (r Range) Contains(c Coord) bool {
	return c.Row >= r.From.Row && c.Row <= r.To.Row &&
		c.Col >= r.From.Col && c.Col <= r.To.Col
}

func (r Range) cells() []Coord {
	out := make([]Coord, 0, (r.To.Row-r.From.Row+1)*(r.To.Col-r.From.Col+1))
	for row := r.From.Row; row <= r.To.Row; row++ {
		for col := r.From.Col; col <= r.To.Col; col++ {
			out = append(out, Coord{row, col})
		}
	}
	return out
}
