package rainreport

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxCellChars is the longest text a spreadsheet cell holds.
const maxCellChars = 32767

// Record is the validated input of one report. It is built once per request
// and only read afterwards, so a Record may be shared between goroutines.
type Record struct {
	numbers map[string]float64
	texts   map[string]string
	unknown []string
}

// NewRecord validates a flat field mapping. Absent, nil and blank values
// fall back to the field default when the report is rendered. Keys the
// report does not use are kept aside and reported by Unknown.
func NewRecord(fields map[string]any) (*Record, error) {
	rec := &Record{
		numbers: make(map[string]float64),
		texts:   make(map[string]string),
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		spec, ok := schema[key]
		if !ok {
			rec.unknown = append(rec.unknown, key)
			continue
		}
		switch spec.kind {
		case kindNumber:
			v, present, err := parseNumber(key, fields[key])
			if err != nil {
				return nil, err
			}
			if present {
				rec.numbers[key] = v
			}
		case kindText:
			s, present, err := parseText(key, fields[key])
			if err != nil {
				return nil, err
			}
			if present {
				rec.texts[key] = s
			}
		}
	}
	return rec, nil
}

// Number returns the numeric field or its default. It panics if key is not
// a numeric field of the report.
func (r *Record) Number(key string) float64 {
	spec := lookup(key, kindNumber)
	if r != nil {
		if v, ok := r.numbers[key]; ok {
			return v
		}
	}
	return spec.number
}

// Text returns the descriptive field or its placeholder. It panics if key is
// not a text field of the report.
func (r *Record) Text(key string) string {
	spec := lookup(key, kindText)
	if r != nil {
		if v, ok := r.texts[key]; ok {
			return v
		}
	}
	return spec.text
}

// Value returns the field as a float64 or a string depending on its kind,
// falling back to the default.
func (r *Record) Value(key string) any {
	spec, ok := schema[key]
	if !ok {
		panic(fmt.Sprintf("rainreport: unknown field %q", key))
	}
	if spec.kind == kindText {
		return r.Text(key)
	}
	return r.Number(key)
}

// Has reports whether the field was supplied with a non-blank value.
func (r *Record) Has(key string) bool {
	if r == nil {
		return false
	}
	if _, ok := r.numbers[key]; ok {
		return true
	}
	_, ok := r.texts[key]
	return ok
}

// Unknown lists, sorted, the supplied keys the report does not read.
func (r *Record) Unknown() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.unknown...)
}

func lookup(key string, kind fieldKind) fieldSpec {
	spec, ok := schema[key]
	if !ok || spec.kind != kind {
		panic(fmt.Sprintf("rainreport: %q is not a %s field", key, kind))
	}
	return spec
}

func parseNumber(key string, raw any) (float64, bool, error) {
	var v float64
	switch x := raw.(type) {
	case nil:
		return 0, false, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, &InvalidFieldValueError{Field: key, Value: raw, Reason: "not a number"}
		}
		v = f
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false, &InvalidFieldValueError{Field: key, Value: raw, Reason: "not a number"}
		}
		v = f
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int8:
		v = float64(x)
	case int16:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint8:
		v = float64(x)
	case uint16:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	default:
		return 0, false, &InvalidFieldValueError{Field: key, Value: raw, Reason: "not a scalar number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, &InvalidFieldValueError{Field: key, Value: raw, Reason: "not a finite number"}
	}
	return v, true, nil
}

func parseText(key string, raw any) (string, bool, error) {
	switch x := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return "", false, nil
		}
		if utf8.RuneCountInString(x) > maxCellChars {
			return "", false, &InvalidFieldValueError{
				Field:  key,
				Value:  string([]rune(x)[:32]) + "...",
				Reason: fmt.Sprintf("longer than %d characters", maxCellChars),
			}
		}
		return x, true, nil
	case json.Number:
		return string(x), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true, nil
	case int:
		return strconv.Itoa(x), true, nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x), true, nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), true, nil
	}
	return "", false, &InvalidFieldValueError{Field: key, Value: raw, Reason: "not a scalar value"}
}
