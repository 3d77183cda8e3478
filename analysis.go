package rainreport

const (
	rowAnalysisCaption = rowTotals + 7
	rowAnalysisHeader  = rowAnalysisCaption + 1
	rowAnalysisFirst   = rowAnalysisHeader + 1
	rowAnalysisSummary = rowAnalysisFirst + monthsPerYear
	rowCheckHeader     = rowAnalysisSummary + 5
	rowCheckFirst      = rowCheckHeader + 1
)

var monthNames = [monthsPerYear]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// analysisColumns fill columns C onwards of the consistency table; the
// input keys are prefix_0 .. prefix_11.
var analysisColumns = []struct {
	prefix string
	label  string
}{
	{"curah_hujan", "Curah Hujan"},
	{"sk", "Sk*"},
	{"sk_brackets", "[Sk*]"},
	{"dy2", "Dy²"},
	{"dy", "Dy"},
	{"sk_star", "Sk**"},
	{"sk_star_brackets", "[Sk**]"},
}

type summaryCell struct {
	col int
	key string
}

type summaryRow struct {
	label string
	cells []summaryCell
}

var analysisSummary = []summaryRow{
	{"Rerata", []summaryCell{{colC, "rerata"}}},
	{"Jumlah", []summaryCell{{colC, "jumlah"}, {colF, "jumlah_dy2"}, {colG, "dy"}}},
	{"Maksimum", []summaryCell{{colC, "curah_hujan_max"}, {colH, "sk_star_max"}, {colI, "sk_star_brackets_max"}}},
	{"Minimum", []summaryCell{{colC, "curah_hujan_min"}, {colH, "sk_star_min"}}},
}

// check is one RAPS hypothesis test: it passes when the computed ratio is
// strictly below the critical value.
type check struct {
	label        string
	ratioKey     string
	thresholdKey string
	okKey        string
	notOKKey     string
}

var checks = []check{
	{"Q/n^0.5", "q_over_n", "q_value", "q_status_ok", "q_status_not_ok"},
	{"R/n^0.5", "r_over_n", "r_value", "r_status_ok", "r_status_not_ok"},
}

func (c check) passed(rec *Record) bool {
	return rec.Number(c.ratioKey) < rec.Number(c.thresholdKey)
}

// status is the text and style of the check's result cell.
func (c check) status(rec *Record) (string, StyleKind) {
	if c.passed(rec) {
		return rec.Text(c.okKey), StyleSuccess
	}
	return rec.Text(c.notOKKey), StyleWarning
}

func writeAnalysis(w *sheetWriter, rec *Record) {
	w.merge(span(rowAnalysisCaption, colA, colM), "ANALISIS KONSISTENSI DATA (RAPS)", StyleSection)

	w.put(Coord{rowAnalysisHeader, colA}, "No", StyleHeader)
	w.put(Coord{rowAnalysisHeader, colB}, "Bulan", StyleHeader)
	for j, col := range analysisColumns {
		w.put(Coord{rowAnalysisHeader, colC + j}, col.label, StyleHeader)
	}

	for i := 0; i < monthsPerYear; i++ {
		row := rowAnalysisFirst + i
		w.put(Coord{row, colA}, i+1, StyleNormal)
		w.put(Coord{row, colB}, monthNames[i], StyleNormal)
		for j, col := range analysisColumns {
			w.put(Coord{row, colC + j}, rec.Number(indexedKey(col.prefix, i)), StyleNormal)
		}
	}

	for i, sr := range analysisSummary {
		row := rowAnalysisSummary + i
		w.merge(span(row, colA, colB), sr.label, StyleHeader)
		for _, c := range sr.cells {
			w.put(Coord{row, c.col}, rec.Number(c.key), StyleNormal)
		}
	}
}

func writeChecks(w *sheetWriter, rec *Record) {
	w.merge(span(rowCheckHeader, colA, colB), "Uji", StyleHeader)
	w.put(Coord{rowCheckHeader, colC}, "Hitungan", StyleHeader)
	w.put(Coord{rowCheckHeader, colD}, "Nilai Kritis", StyleHeader)
	w.merge(span(rowCheckHeader, colE, colF), "Status", StyleHeader)

	for i, c := range checks {
		row := rowCheckFirst + i
		w.merge(span(row, colA, colB), c.label, StyleHeader)
		w.put(Coord{row, colC}, rec.Number(c.ratioKey), StyleNormal)
		w.put(Coord{row, colD}, rec.Number(c.thresholdKey), StyleNormal)
		text, kind := c.status(rec)
		w.merge(span(row, colE, colF), text, kind)
	}
}
