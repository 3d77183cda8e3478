package rainreport

const (
	rowGridHeader = 11
	rowGridMonths = 12
	rowFirstDay   = 13
	rowTotals     = rowFirstDay + daysPerMonth
)

type metric struct {
	key   string
	label string
}

var totalsMetrics = []metric{
	{"total", "Total"},
	{"periode1", "Periode 1"},
	{"periode2", "Periode 2"},
	{"periode3", "Periode 3"},
	{"maksimum", "Maksimum"},
	{"datahujan", "Data Hujan"},
}

// dayCell is where the reading of the given day (1-31) and month (1-12)
// lands. Every month gets 31 rows regardless of its length.
func dayCell(day, month int) Coord {
	return Coord{Row: rowFirstDay + day - 1, Col: colA + month}
}

func writeDailyGrid(w *sheetWriter, rec *Record) {
	w.merge(Range{From: Coord{rowGridHeader, colA}, To: Coord{rowGridMonths, colA}}, "Tanggal", StyleHeader)
	w.merge(span(rowGridHeader, colB, colM), "Bulan", StyleHeader)
	for m := 1; m <= monthsPerYear; m++ {
		w.put(Coord{rowGridMonths, colA + m}, m, StyleHeader)
	}

	for d := 1; d <= daysPerMonth; d++ {
		w.put(Coord{rowFirstDay + d - 1, colA}, d, StyleHeader)
		for m := 1; m <= monthsPerYear; m++ {
			w.put(dayCell(d, m), rec.Number(DayKey(d, m)), StyleNormal)
		}
	}
}

func writeTotals(w *sheetWriter, rec *Record) {
	for i, mt := range totalsMetrics {
		row := rowTotals + i
		w.put(Coord{row, colA}, mt.label, StyleHeader)
		for m := 1; m <= monthsPerYear; m++ {
			w.put(Coord{row, colA + m}, rec.Number(TotalsKey(mt.key, m)), StyleNormal)
		}
	}
}
