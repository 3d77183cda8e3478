package rainreport

import (
	"fmt"

	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/spreadsheet"
)

// columnWidths are in characters, A through M.
var columnWidths = [numColumns]float64{10, 12, 14, 12, 12, 12, 12, 12, 12, 10, 10, 10, 10}

// sheetBounds is the area the report occupies.
var sheetBounds = Range{From: Coord{rowTitle, colA}, To: Coord{rowAbnormalStatus, colM}}

// sheetWriter writes cells and merged regions of one worksheet and refuses
// to touch a cell twice. The first overlap is kept in err.
type sheetWriter struct {
	sheet  spreadsheet.Sheet
	styles styleSet
	owner  map[Coord]Coord
	err    error
}

func newSheetWriter(sheet spreadsheet.Sheet, styles styleSet) *sheetWriter {
	for i, w := range columnWidths {
		sheet.Column(uint32(i + 1)).SetWidth(measurement.Distance(w) * measurement.Character)
	}
	return &sheetWriter{
		sheet:  sheet,
		styles: styles,
		owner:  make(map[Coord]Coord),
	}
}

// put writes a single cell. v is a string, a float64 or an int.
func (w *sheetWriter) put(c Coord, v any, kind StyleKind) {
	w.merge(Range{From: c, To: c}, v, kind)
}

// merge writes v into the master cell of r and styles every cell of r so
// the borders and fill cover the whole region.
func (w *sheetWriter) merge(r Range, v any, kind StyleKind) {
	if w.err != nil {
		return
	}
	if !sheetBounds.Contains(r.From) || !sheetBounds.Contains(r.To) {
		w.err = fmt.Errorf("layout: %s is outside %s", r.Ref(), sheetBounds.Ref())
		return
	}
	for _, c := range r.cells() {
		if prev, taken := w.owner[c]; taken {
			w.err = fmt.Errorf("layout: %s of %s already written by %s", c.Address(), r.Ref(), prev.Address())
			return
		}
	}
	for _, c := range r.cells() {
		w.owner[c] = r.From
		w.sheet.Cell(c.Address()).SetStyle(w.styles[kind])
	}
	if r.From != r.To {
		w.sheet.AddMergedCells(r.From.Address(), r.To.Address())
	}

	cell := w.sheet.Cell(r.From.Address())
	switch x := v.(type) {
	case string:
		cell.SetString(x)
	case float64:
		cell.SetNumber(x)
	case int:
		cell.SetNumber(float64(x))
	default:
		w.err = fmt.Errorf("layout: unsupported value %T at %s", v, r.From.Address())
	}
}
