package rainreport

const (
	rowAbnormalCaption = rowReferenceFirst + 6
	rowAbnormalHeader  = rowAbnormalCaption + 1
	rowAbnormalFirst   = rowAbnormalHeader + 1
	rowAbnormalSummary = rowAbnormalFirst + monthsPerYear
	rowAbnormalStatus  = rowAbnormalSummary + 5

	prefixAbnormalRain = "curah_hujan_x"
	prefixAbnormalLog  = "log_x"
)

// abnormalitySummary rows carry the log-space value in D and, for the
// thresholds, the value back in millimetres in E.
var abnormalitySummary = []summaryRow{
	{"Standar Deviasi (S)", []summaryCell{{colD, "std_dev_log"}}},
	{"Rerata Log X", []summaryCell{{colD, "mean_log"}}},
	{"Kn", []summaryCell{{colD, keyKn}}},
	{"Batas Atas (XH)", []summaryCell{{colD, "xh_log"}, {colE, "xh"}}},
	{"Batas Bawah (XL)", []summaryCell{{colD, "xl_log"}, {colE, "xl"}}},
}

func writeAbnormality(w *sheetWriter, rec *Record) {
	w.merge(span(rowAbnormalCaption, colA, colM), "UJI ABNORMALITAS DATA", StyleSection)

	w.put(Coord{rowAbnormalHeader, colA}, "No", StyleHeader)
	w.put(Coord{rowAbnormalHeader, colB}, "Bulan", StyleHeader)
	w.put(Coord{rowAbnormalHeader, colC}, "Curah Hujan (X)", StyleHeader)
	w.put(Coord{rowAbnormalHeader, colD}, "Log X", StyleHeader)

	for i := 0; i < monthsPerYear; i++ {
		row := rowAbnormalFirst + i
		w.put(Coord{row, colA}, i+1, StyleNormal)
		w.put(Coord{row, colB}, monthNames[i], StyleNormal)
		w.put(Coord{row, colC}, rec.Number(indexedKey(prefixAbnormalRain, i)), StyleNormal)
		w.put(Coord{row, colD}, rec.Number(indexedKey(prefixAbnormalLog, i)), StyleNormal)
	}

	for i, sr := range abnormalitySummary {
		row := rowAbnormalSummary + i
		w.merge(span(row, colA, colC), sr.label, StyleHeader)
		for _, c := range sr.cells {
			w.put(Coord{row, c.col}, rec.Number(c.key), StyleNormal)
		}
	}

	w.put(Coord{rowAbnormalStatus, colA}, "Keterangan", StyleHeader)
	w.merge(span(rowAbnormalStatus, colB, colM), rec.Text(keyAbnormalStatus), StyleNormal)
}
