package rainreport

const (
	rowReferenceCaption = rowCheckFirst + 3
	rowReferenceHeader  = rowReferenceCaption + 1
	rowReferenceLevels  = rowReferenceHeader + 1
	rowReferenceFirst   = rowReferenceLevels + 1
)

// referenceRow holds the critical values of Q/n^0.5 and R/n^0.5 for a
// sample size at 90, 95 and 99 percent confidence.
type referenceRow struct {
	n int
	q [3]float64
	r [3]float64
}

var referenceLevels = [3]string{"90%", "95%", "99%"}

// referenceTable is Sri Harto (1993). It is printed as is, never
// interpolated.
var referenceTable = []referenceRow{
	{10, [3]float64{1.05, 1.14, 1.29}, [3]float64{1.21, 1.28, 1.38}},
	{20, [3]float64{1.10, 1.22, 1.42}, [3]float64{1.34, 1.43, 1.60}},
	{30, [3]float64{1.12, 1.24, 1.46}, [3]float64{1.40, 1.50, 1.70}},
	{40, [3]float64{1.13, 1.26, 1.50}, [3]float64{1.42, 1.53, 1.74}},
	{100, [3]float64{1.17, 1.29, 1.55}, [3]float64{1.50, 1.62, 1.86}},
}

func writeReferenceTable(w *sheetWriter) {
	w.merge(span(rowReferenceCaption, colA, colG), "Nilai Kritis Q/n^0.5 dan R/n^0.5 (Sri Harto, 1993)", StyleSection)

	w.merge(Range{From: Coord{rowReferenceHeader, colA}, To: Coord{rowReferenceLevels, colA}}, "n", StyleHeader)
	w.merge(span(rowReferenceHeader, colB, colD), "Q/n^0.5", StyleHeader)
	w.merge(span(rowReferenceHeader, colE, colG), "R/n^0.5", StyleHeader)
	// Cells go left to right within a row.
	for j, level := range referenceLevels {
		w.put(Coord{rowReferenceLevels, colB + j}, level, StyleHeader)
	}
	for j, level := range referenceLevels {
		w.put(Coord{rowReferenceLevels, colE + j}, level, StyleHeader)
	}

	for i, ref := range referenceTable {
		row := rowReferenceFirst + i
		w.put(Coord{row, colA}, ref.n, StyleHeader)
		for j, v := range ref.q {
			w.put(Coord{row, colB + j}, v, StyleNormal)
		}
		for j, v := range ref.r {
			w.put(Coord{row, colE + j}, v, StyleNormal)
		}
	}
}
