package xlsx

import (
	"fmt"
)

// Intermediate representation of a parsed XLSX workbook.

// CellStyle captures the formatting the rainfall report uses.
type CellStyle struct {
	Bold            bool
	FontSizePt      float64 // size in points
	FontColor       string  // "RRGGBB"
	BackgroundColor string  // "RRGGBB", solid fills only
	BorderColor     string  // left-border color as representative
	HorizontalAlign string  // left|center|right|justify
	VerticalAlign   string  // top|middle|bottom
	WrapText        bool
}

func (s CellStyle) String() string {
	return fmt.Sprintf("Bold: %t, FontSizePt: %f, FontColor: %s, BackgroundColor: %s, BorderColor: %s, HorizontalAlign: %s, VerticalAlign: %s, WrapText: %t",
		s.Bold, s.FontSizePt, s.FontColor, s.BackgroundColor, s.BorderColor, s.HorizontalAlign, s.VerticalAlign, s.WrapText)
}

// RenderCell is the IR for a single cell (or merged master).
type RenderCell struct {
	Ref      string  // e.g. "A1"
	Value    string  // formatted value
	Number   float64 // raw value when IsNumber
	IsNumber bool
	ColSpan  int // 1 if not merged
	RowSpan  int // 1 if not merged
	Style    CellStyle
}

func (c RenderCell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %s, ColSpan: %d, RowSpan: %d, Style: %s", c.Ref, c.Value, c.ColSpan, c.RowSpan, c.Style.String())
}

// RenderRow represents one logical row in a sheet.
type RenderRow struct {
	HeightPx float64
	Cells    []*RenderCell // length == column count of the sheet; nil for blank or merge-covered cells
}

// RenderSheet is the intermediate representation of a worksheet.
type RenderSheet struct {
	Name      string
	ColWidths []float64 // pixels
	Rows      []RenderRow
	Merges    []string // "A1:M1" as stored in the sheet

	byRef map[string]*RenderCell
}

// Cell returns the cell at ref ("C41"), or nil when the address is blank or
// covered by a merged region that starts elsewhere.
func (s RenderSheet) Cell(ref string) *RenderCell {
	return s.byRef[ref]
}

func (s RenderSheet) String() string {
	return fmt.Sprintf("Name: %s, ColWidths: %v, Rows: %d, Merges: %d", s.Name, s.ColWidths, len(s.Rows), len(s.Merges))
}

// WorkbookModel is the top-level IR containing all sheets.
type WorkbookModel struct {
	Sheets []RenderSheet
}

// Sheet finds a sheet by name.
func (m WorkbookModel) Sheet(name string) (RenderSheet, bool) {
	for _, s := range m.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return RenderSheet{}, false
}
