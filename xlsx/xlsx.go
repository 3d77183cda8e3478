package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// Reports only carry explicit RGB colors, so theme and indexed colors are
// left unresolved.

func cellFormat(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Xf {
	x := ss.X()
	if x.CellXfs == nil || int(styleID) >= len(x.CellXfs.Xf) {
		return nil
	}
	return x.CellXfs.Xf[styleID]
}

// fontOf returns the font XML struct referenced by a style ID.
func fontOf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := cellFormat(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[idx]
}

// fillOf returns the fill XML struct referenced by a style ID.
func fillOf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := cellFormat(ss, styleID)
	if xf == nil || xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	idx := int(*xf.FillIdAttr)
	if idx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[idx]
}

// borderOf returns the border XML struct referenced by a style ID.
func borderOf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := cellFormat(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[idx]
}

// resolveStyle flattens the font, fill, border and alignment of a style ID.
func resolveStyle(ss spreadsheet.StyleSheet, styleID uint32) CellStyle {
	var st CellStyle
	if font := fontOf(ss, styleID); font != nil {
		if len(font.B) > 0 && (font.B[0].ValAttr == nil || *font.B[0].ValAttr) {
			st.Bold = true
		}
		if len(font.Sz) > 0 {
			st.FontSizePt = font.Sz[0].ValAttr
		}
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil {
			st.FontColor = normalizeColor(*font.Color[0].RgbAttr)
		}
	}
	if fill := fillOf(ss, styleID); fill != nil && fill.PatternFill != nil && fill.PatternFill.FgColor != nil {
		if fg := fill.PatternFill.FgColor; fg.RgbAttr != nil {
			st.BackgroundColor = normalizeColor(*fg.RgbAttr)
		}
	}
	if border := borderOf(ss, styleID); border != nil && border.Left != nil && border.Left.Color != nil && border.Left.Color.RgbAttr != nil {
		st.BorderColor = normalizeColor(*border.Left.Color.RgbAttr)
	}
	if xf := cellFormat(ss, styleID); xf != nil && xf.Alignment != nil {
		st.HorizontalAlign = xf.Alignment.HorizontalAttr.String()
		switch xf.Alignment.VerticalAttr.String() {
		case "top":
			st.VerticalAlign = "top"
		case "center":
			st.VerticalAlign = "middle"
		default:
			st.VerticalAlign = "bottom"
		}
		if xf.Alignment.WrapTextAttr != nil {
			st.WrapText = *xf.Alignment.WrapTextAttr
		}
	}
	return st
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit
// upper-case RGB string. Other lengths are returned upper-cased.
func normalizeColor(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
