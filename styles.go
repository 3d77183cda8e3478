package rainreport

import (
	"strconv"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// StyleKind names one of the fixed visual styles of the report.
type StyleKind int

const (
	StyleNormal StyleKind = iota
	StyleTitle
	StyleSection
	StyleHeader
	StyleSuccess
	StyleWarning

	numStyles
)

// Colors are "RRGGBB", the form a parsed workbook reports them in.
const (
	fillSection = "D9E1F2"
	fillHeader  = "BDD7EE"
	fillSuccess = "C6EFCE"
	fillWarning = "FFC7CE"
	fontSuccess = "006100"
	fontWarning = "9C0006"
	borderColor = "000000"
)

type styleSpec struct {
	bold      bool
	sizePt    float64
	fontColor string
	fill      string
	border    bool
	align     sml.ST_HorizontalAlignment
	wrap      bool
}

// styleSpecs is indexed by StyleKind and never modified.
var styleSpecs = [numStyles]styleSpec{
	StyleNormal:  {sizePt: 11, border: true, align: sml.ST_HorizontalAlignmentCenter},
	StyleTitle:   {bold: true, sizePt: 14, align: sml.ST_HorizontalAlignmentCenter},
	StyleSection: {bold: true, sizePt: 12, fill: fillSection, border: true, align: sml.ST_HorizontalAlignmentLeft},
	StyleHeader:  {bold: true, sizePt: 11, fill: fillHeader, border: true, align: sml.ST_HorizontalAlignmentCenter, wrap: true},
	StyleSuccess: {bold: true, sizePt: 11, fontColor: fontSuccess, fill: fillSuccess, border: true, align: sml.ST_HorizontalAlignmentCenter},
	StyleWarning: {bold: true, sizePt: 11, fontColor: fontWarning, fill: fillWarning, border: true, align: sml.ST_HorizontalAlignmentCenter},
}

// styleSet holds the styles materialized in one workbook's stylesheet.
type styleSet [numStyles]spreadsheet.CellStyle

func newStyleSet(ss spreadsheet.StyleSheet) styleSet {
	var set styleSet
	for kind, spec := range styleSpecs {
		cs := ss.AddCellStyle()

		fnt := ss.AddFont()
		fnt.SetSize(spec.sizePt)
		if spec.bold {
			fnt.SetBold(true)
		}
		if spec.fontColor != "" {
			fnt.SetColor(rgb(spec.fontColor))
		}
		cs.SetFont(fnt)

		if spec.fill != "" {
			fill := ss.Fills().AddFill()
			pf := fill.SetPatternFill()
			pf.SetPattern(sml.ST_PatternTypeSolid)
			pf.SetFgColor(rgb(spec.fill))
			cs.SetFill(fill)
		}

		if spec.border {
			b := ss.AddBorder()
			c := rgb(borderColor)
			b.SetLeft(sml.ST_BorderStyleThin, c)
			b.SetRight(sml.ST_BorderStyleThin, c)
			b.SetTop(sml.ST_BorderStyleThin, c)
			b.SetBottom(sml.ST_BorderStyleThin, c)
			cs.SetBorder(b)
		}

		cs.SetHorizontalAlignment(spec.align)
		cs.SetVerticalAlignment(sml.ST_VerticalAlignmentCenter)
		if spec.wrap {
			cs.SetWrapped(true)
		}
		set[kind] = cs
	}
	return set
}

// rgb converts "RRGGBB" into a unioffice color. The inputs are the
// constants above, so a malformed value is a programming error.
func rgb(hex string) color.Color {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		panic("rainreport: bad color " + hex)
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
