package rainreport

const (
	rowTitle        = 0
	rowYear         = 1
	rowStation      = 3
	stationLeftRows = 7
)

type stationField struct {
	key   string
	label string
}

// stationFields are laid out top to bottom, the first stationLeftRows in
// the left pair of columns and the rest on the right.
var stationFields = []stationField{
	{"nama_stasiun", "Nama Stasiun"},
	{"kode_stasiun", "Kode Stasiun"},
	{"das", "DAS"},
	{"desa", "Desa"},
	{"kecamatan", "Kecamatan"},
	{"kabupaten", "Kabupaten"},
	{"lintang", "Lintang"},
	{"bujur", "Bujur"},
	{"elevasi", "Elevasi"},
	{"kode_database", "Kode Database"},
	{"tahun_pendirian", "Tahun Pendirian"},
	{"tipe_alat", "Tipe Alat"},
	{"pengamat", "Pengamat"},
}

func writeTitle(w *sheetWriter, title string, rec *Record) {
	w.merge(span(rowTitle, colA, colM), title, StyleTitle)
	w.merge(span(rowYear, colA, colM), "Tahun : "+rec.Text(keyYear), StyleTitle)
}

// stationCells returns the label and value ranges of the i-th station field.
func stationCells(i int) (label, value Range) {
	if i < stationLeftRows {
		row := rowStation + i
		return span(row, colA, colB), span(row, colC, colF)
	}
	row := rowStation + i - stationLeftRows
	return span(row, colH, colI), span(row, colJ, colM)
}

func writeStation(w *sheetWriter, rec *Record) {
	for i, f := range stationFields {
		label, value := stationCells(i)
		w.merge(label, f.label, StyleHeader)
		w.merge(value, rec.Value(f.key), StyleNormal)
	}
}
