package xlsx

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

const (
	charWidthPx     = 8.3
	defaultColChars = 8.43
	ptToPx          = 1.333
	defaultRowPt    = 15.0
)

type span struct{ rows, cols int }

// ParseWorkbookModel reads an XLSX from r/size and returns the intermediate representation.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return WorkbookModel{}, err
	}

	var model WorkbookModel
	for _, sheet := range wb.Sheets() {
		rs, err := parseSheet(wb, sheet)
		if err != nil {
			return WorkbookModel{}, fmt.Errorf("sheet %q: %w", sheet.Name(), err)
		}
		model.Sheets = append(model.Sheets, rs)
	}
	return model, nil
}

func parseSheet(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet) (RenderSheet, error) {
	rs := RenderSheet{
		Name:  sheet.Name(),
		byRef: make(map[string]*RenderCell),
	}

	// Merges: master cell gets the span, the rest are skipped.
	masters := make(map[[2]int]span)
	covered := make(map[[2]int]bool)
	if sheet.X().MergeCells != nil {
		for _, mc := range sheet.X().MergeCells.MergeCell {
			from, to, err := reference.ParseRangeReference(mc.RefAttr)
			if err != nil {
				return RenderSheet{}, fmt.Errorf("merge %q: %w", mc.RefAttr, err)
			}
			rs.Merges = append(rs.Merges, mc.RefAttr)
			fromRow, fromCol := int(from.RowIdx-1), int(from.ColumnIdx)
			toRow, toCol := int(to.RowIdx-1), int(to.ColumnIdx)
			masters[[2]int{fromRow, fromCol}] = span{toRow - fromRow + 1, toCol - fromCol + 1}
			for r := fromRow; r <= toRow; r++ {
				for c := fromCol; c <= toCol; c++ {
					if r != fromRow || c != fromCol {
						covered[[2]int{r, c}] = true
					}
				}
			}
		}
	}

	maxCols := 0
	for _, row := range sheet.Rows() {
		for _, cell := range row.Cells() {
			if col, err := cell.Column(); err == nil {
				if idx := int(reference.ColumnToIndex(col)) + 1; idx > maxCols {
					maxCols = idx
				}
			}
		}
	}

	rs.ColWidths = make([]float64, maxCols)
	for c := 0; c < maxCols; c++ {
		x := sheet.Column(uint32(c + 1)).X()
		if x.WidthAttr != nil {
			rs.ColWidths[c] = *x.WidthAttr * charWidthPx
		} else {
			rs.ColWidths[c] = defaultColChars * charWidthPx
		}
	}

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		// Rows absent from the sheet are blank rows of default height.
		for len(rs.Rows) <= rowIdx {
			rs.Rows = append(rs.Rows, RenderRow{
				HeightPx: defaultRowPt * ptToPx,
				Cells:    make([]*RenderCell, maxCols),
			})
		}
		rr := &rs.Rows[rowIdx]
		if row.X().CustomHeightAttr != nil && *row.X().CustomHeightAttr && row.X().HtAttr != nil {
			rr.HeightPx = *row.X().HtAttr * ptToPx
		}

		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			if covered[[2]int{rowIdx, colIdx}] {
				continue
			}

			rc := &RenderCell{
				Ref:     fmt.Sprintf("%s%d", colName, rowIdx+1),
				Value:   cell.GetFormattedValue(),
				ColSpan: 1,
				RowSpan: 1,
			}
			if cell.IsNumber() {
				if v, err := cell.GetValueAsNumber(); err == nil {
					rc.Number = v
					rc.IsNumber = true
				}
			}
			if cell.X().SAttr != nil {
				rc.Style = resolveStyle(wb.StyleSheet, *cell.X().SAttr)
			}
			if sp, ok := masters[[2]int{rowIdx, colIdx}]; ok {
				rc.RowSpan = sp.rows
				rc.ColSpan = sp.cols
			}

			rr.Cells[colIdx] = rc
			rs.byRef[rc.Ref] = rc
		}
	}
	return rs, nil
}
