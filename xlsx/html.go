package xlsx

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

// XLSXToHTML parses an XLSX document and renders its HTML preview.
func XLSXToHTML(r io.ReaderAt, size int64) (string, error) {
	m, err := ParseWorkbookModel(r, size)
	if err != nil {
		return "", err
	}
	return RenderWorkbookHTML(m), nil
}

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// sanitizeColor keeps only 6-digit hex colors so nothing from the workbook
// can break out of the CSS context.
func sanitizeColor(s string) string {
	if hexColorRe.MatchString(s) {
		return s
	}
	return ""
}

// RenderWorkbookHTML converts the IR into a standalone HTML preview. Each
// distinct cell style becomes one CSS class.
func RenderWorkbookHTML(m WorkbookModel) string {
	var builder strings.Builder

	classes := make(map[CellStyle]string)
	var order []CellStyle
	for _, sheet := range m.Sheets {
		for _, row := range sheet.Rows {
			for _, cell := range row.Cells {
				if cell == nil {
					continue
				}
				if _, ok := classes[cell.Style]; !ok {
					classes[cell.Style] = fmt.Sprintf("cellstyle%d", len(order)+1)
					order = append(order, cell.Style)
				}
			}
		}
	}

	builder.WriteString("<style>\n")
	builder.WriteString(".table { border-collapse: collapse; table-layout: fixed; margin-bottom: 2em; font-family: Calibri, sans-serif; }\n")
	builder.WriteString(".table td { padding: 2px 6px; white-space: nowrap; overflow: hidden; }\n")
	builder.WriteString(".sheet { margin-bottom: 2em; }\n")
	for _, st := range order {
		if css := styleToCSS(st); css != "" {
			builder.WriteString(fmt.Sprintf(".%s { %s }\n", classes[st], css))
		}
	}
	builder.WriteString("</style>\n")

	for _, sheet := range m.Sheets {
		totalPx := 0.0
		for _, w := range sheet.ColWidths {
			totalPx += w
		}
		builder.WriteString(fmt.Sprintf("<div class=\"sheet\" data-name=\"%s\">\n", html.EscapeString(sheet.Name)))
		builder.WriteString(fmt.Sprintf("<table class=\"table\" style=\"width:%.0fpx;\">\n", totalPx))
		builder.WriteString("  <colgroup>\n")
		for _, w := range sheet.ColWidths {
			builder.WriteString(fmt.Sprintf("    <col style=\"width:%.0fpx;\">\n", w))
		}
		builder.WriteString("  </colgroup>\n")

		// Cells covered by a rowspan from an earlier row must not be
		// emitted again.
		pending := make([]int, len(sheet.ColWidths))
		for _, row := range sheet.Rows {
			builder.WriteString(fmt.Sprintf("  <tr style=\"height:%.0fpx;\">\n", row.HeightPx))
			for colIdx := 0; colIdx < len(row.Cells); colIdx++ {
				if pending[colIdx] > 0 {
					pending[colIdx]--
					continue
				}
				cell := row.Cells[colIdx]
				if cell == nil {
					builder.WriteString("    <td></td>\n")
					continue
				}

				spanAttr := ""
				if cell.ColSpan > 1 {
					spanAttr += fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
				}
				if cell.RowSpan > 1 {
					spanAttr += fmt.Sprintf(" rowspan=\"%d\"", cell.RowSpan)
					for c := colIdx; c < colIdx+cell.ColSpan && c < len(pending); c++ {
						pending[c] = cell.RowSpan - 1
					}
				}
				escaped := strings.ReplaceAll(html.EscapeString(cell.Value), "\n", "<br>")
				builder.WriteString(fmt.Sprintf("    <td data-cell=\"%s\"%s class=\"%s\">%s</td>\n",
					cell.Ref, spanAttr, classes[cell.Style], escaped))

				if cell.ColSpan > 1 {
					colIdx += cell.ColSpan - 1
				}
			}
			builder.WriteString("  </tr>\n")
		}
		builder.WriteString("</table>\n</div>\n")
	}
	return builder.String()
}

// styleToCSS converts a CellStyle to a CSS declaration list.
func styleToCSS(s CellStyle) string {
	var b strings.Builder
	if s.Bold {
		b.WriteString("font-weight:bold;")
	}
	if s.FontSizePt > 0 {
		b.WriteString(fmt.Sprintf("font-size:%.1fpt;", s.FontSizePt))
	}
	if c := sanitizeColor(s.FontColor); c != "" {
		b.WriteString(fmt.Sprintf("color:#%s;", c))
	}
	if c := sanitizeColor(s.BackgroundColor); c != "" {
		b.WriteString(fmt.Sprintf("background-color:#%s;", c))
	}
	if c := sanitizeColor(s.BorderColor); c != "" {
		b.WriteString(fmt.Sprintf("border:1px solid #%s;", c))
	}
	switch s.HorizontalAlign {
	case "center", "centerContinuous", "distributed":
		b.WriteString("text-align:center;")
	case "right":
		b.WriteString("text-align:right;")
	case "justify":
		b.WriteString("text-align:justify;")
	}
	switch s.VerticalAlign {
	case "top":
		b.WriteString("vertical-align:top;")
	case "middle":
		b.WriteString("vertical-align:middle;")
	}
	if s.WrapText {
		b.WriteString("white-space:normal;")
	}
	return b.String()
}
