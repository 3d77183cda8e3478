package rainreport

import (
	"fmt"
	"strconv"
)

const (
	daysPerMonth  = 31
	monthsPerYear = 12

	keyYear           = "tahun"
	keyKn             = "kn"
	keyAbnormalStatus = "status_abnormalitas"

	defaultKn        = 2.13
	defaultOKText    = "OK!"
	defaultNotOKText = "NOT OK!"
)

type fieldKind int

const (
	kindNumber fieldKind = iota
	kindText
)

func (k fieldKind) String() string {
	if k == kindText {
		return "text"
	}
	return "number"
}

// fieldSpec describes one accepted input key and what an absent value
// resolves to.
type fieldSpec struct {
	kind   fieldKind
	number float64
	text   string
}

// schema holds every key the report reads, expanded from the key patterns
// of each block.
var schema = buildSchema()

func buildSchema() map[string]fieldSpec {
	s := make(map[string]fieldSpec)
	add := func(key string, spec fieldSpec) {
		if _, dup := s[key]; dup {
			panic(fmt.Sprintf("rainreport: field %q registered twice", key))
		}
		s[key] = spec
	}
	text := func(key, def string) { add(key, fieldSpec{kind: kindText, text: def}) }
	num := func(key string) { add(key, fieldSpec{kind: kindNumber}) }

	text(keyYear, placeholder("Tahun"))
	for _, f := range stationFields {
		text(f.key, placeholder(f.label))
	}

	for d := 1; d <= daysPerMonth; d++ {
		for m := 1; m <= monthsPerYear; m++ {
			num(DayKey(d, m))
		}
	}
	for _, mt := range totalsMetrics {
		for m := 1; m <= monthsPerYear; m++ {
			num(TotalsKey(mt.key, m))
		}
	}

	for _, col := range analysisColumns {
		for i := 0; i < monthsPerYear; i++ {
			num(indexedKey(col.prefix, i))
		}
	}
	for _, row := range analysisSummary {
		for _, c := range row.cells {
			num(c.key)
		}
	}
	for _, c := range checks {
		num(c.ratioKey)
		num(c.thresholdKey)
		text(c.okKey, defaultOKText)
		text(c.notOKKey, defaultNotOKText)
	}

	for i := 0; i < monthsPerYear; i++ {
		num(indexedKey(prefixAbnormalRain, i))
		num(indexedKey(prefixAbnormalLog, i))
	}
	for _, row := range abnormalitySummary {
		for _, c := range row.cells {
			num(c.key)
		}
	}
	s[keyKn] = fieldSpec{kind: kindNumber, number: defaultKn}
	text(keyAbnormalStatus, placeholder("Keterangan"))

	return s
}

// DayKey is the input key of the rainfall reading for one day of one month.
func DayKey(day, month int) string {
	return "day" + strconv.Itoa(day) + "_month" + strconv.Itoa(month)
}

// TotalsKey is the input key of a monthly aggregate such as "total" or
// "periode2".
func TotalsKey(metric string, month int) string {
	return metric + "_month" + strconv.Itoa(month)
}

// indexedKey names a per-month statistic, indexed 0-11 in month order.
func indexedKey(prefix string, i int) string {
	return prefix + "_" + strconv.Itoa(i)
}

func placeholder(label string) string {
	return "[" + label + "]"
}
