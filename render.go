// Package rainreport renders daily rainfall observations of one monitoring
// station, together with their precomputed consistency and abnormality
// statistics, into a fixed-layout XLSX report.
package rainreport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/unidoc/unioffice/spreadsheet"
)

// Options controls the parts of the report that do not come from the input.
type Options struct {
	Title     string
	SheetName string
}

// DefaultOptions are used by Render.
func DefaultOptions() Options {
	return Options{
		Title:     "DATA CURAH HUJAN HARIAN",
		SheetName: "Curah Hujan",
	}
}

// Renderer turns records into XLSX documents. It holds no mutable state and
// may be used from several goroutines at once.
type Renderer struct {
	opts Options
}

// New returns a Renderer. Empty option fields take the defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.SheetName == "" {
		opts.SheetName = def.SheetName
	}
	return &Renderer{opts: opts}
}

// Render renders rec with the default options.
func Render(rec *Record) ([]byte, error) {
	return New(DefaultOptions()).Render(rec)
}

// Render builds the report for rec and returns the complete XLSX document.
// A nil record renders every field with its default.
func (r *Renderer) Render(rec *Record) ([]byte, error) {
	wb := spreadsheet.New()
	wb.CoreProperties.SetTitle(r.opts.Title)

	sheet := wb.AddSheet()
	sheet.SetName(r.opts.SheetName)

	w := newSheetWriter(sheet, newStyleSet(wb.StyleSheet))
	writeTitle(w, r.opts.Title, rec)
	writeStation(w, rec)
	writeDailyGrid(w, rec)
	writeTotals(w, rec)
	writeAnalysis(w, rec)
	writeChecks(w, rec)
	writeReferenceTable(w)
	writeAbnormality(w, rec)
	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := wb.Save(&buf); err != nil {
		return nil, &RenderIOError{Err: err}
	}
	out, err := normalizeArchive(buf.Bytes())
	if err != nil {
		return nil, &RenderIOError{Err: err}
	}
	return out, nil
}

// dosEpoch is 1980-01-01 00:00 in MS-DOS date format.
const dosEpoch = 1<<5 | 1

// normalizeArchive rewrites the XLSX container with fixed entry timestamps
// so identical records always produce identical bytes. Entries are copied
// without recompression.
func normalizeArchive(b []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		fh := f.FileHeader
		fh.Modified = time.Time{}
		fh.ModifiedDate = dosEpoch
		fh.ModifiedTime = 0
		fh.Extra = nil

		src, err := f.OpenRaw()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Name, err)
		}
		dst, err := zw.CreateRaw(&fh)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", f.Name, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			return nil, fmt.Errorf("copying %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return out.Bytes(), nil
}
