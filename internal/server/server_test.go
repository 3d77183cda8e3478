package server

import (
	"bytes"
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aerissecure/rainreport/internal/config"
	"github.com/aerissecure/rainreport/internal/metrics"
	"github.com/aerissecure/rainreport/xlsx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewMetricsForTesting()
	return New(config.Default(), m, zap.NewNop().Sugar()), m
}

func parseReport(t *testing.T, body []byte) xlsx.RenderSheet {
	t.Helper()
	model, err := xlsx.ParseWorkbookModel(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	require.NotEmpty(t, model.Sheets)
	return model.Sheets[0]
}

func TestReportFromForm(t *testing.T) {
	srv, m := newTestServer(t)

	form := url.Values{}
	form.Set("tahun", "2023")
	form.Set("nama_stasiun", "Stasiun A")
	form.Set("day1_month1", "12.5")
	form.Set("day2_month1", "")
	form.Set("csrf_token", "ignored")

	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))

	_, params, err := mime.ParseMediaType(rr.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "Data_Curah_Hujan_Harian.xlsx", params["filename"])

	sheet := parseReport(t, rr.Body.Bytes())
	assert.Equal(t, "Tahun : 2023", sheet.Cell("A2").Value)
	assert.Equal(t, "Stasiun A", sheet.Cell("C4").Value)
	assert.Equal(t, 12.5, sheet.Cell("B14").Number)
	assert.Equal(t, 0.0, sheet.Cell("B15").Number)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsRendered))
}

func TestReportFromJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"tahun": 2024, "q_over_n": 0.9, "q_value": 1.14, "day31_month12": 88}`
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	sheet := parseReport(t, rr.Body.Bytes())
	assert.Equal(t, "Tahun : 2024", sheet.Cell("A2").Value)
	assert.Equal(t, "OK!", sheet.Cell("E72").Value)
	assert.Equal(t, 88.0, sheet.Cell("M44").Number)
}

func TestReportFromMultipart(t *testing.T) {
	srv, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("kabupaten", "Sleman"))
	require.NoError(t, mw.WriteField("day5_month6", "3"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/report", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	sheet := parseReport(t, rr.Body.Bytes())
	assert.Equal(t, "Sleman", sheet.Cell("C9").Value)
	assert.Equal(t, 3.0, sheet.Cell("G18").Number)
}

func TestReportInvalidField(t *testing.T) {
	srv, m := newTestServer(t)

	form := url.Values{"day5_month2": {"abc"}}
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "day5_month2", resp["field"])
	assert.Contains(t, resp["error"], "not a number")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RenderFailures.WithLabelValues("invalid_field")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ReportsRendered))
}

func TestReportBadRequest(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json array", "application/json", `[1, 2]`},
		{"broken json", "application/json", `{"tahun":`},
		{"xml", "application/xml", `<tahun>2023</tahun>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rr := httptest.NewRecorder()
			srv.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.RenderFailures.WithLabelValues("bad_request")))
		})
	}
}

func TestReportMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/report", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestPreview(t *testing.T) {
	srv, _ := newTestServer(t)

	form := url.Values{"nama_stasiun": {"<Stasiun & A>"}}
	req := httptest.NewRequest(http.MethodPost, "/preview", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "<title>DATA CURAH HUJAN HARIAN</title>")
	assert.Contains(t, body, "&lt;Stasiun &amp; A&gt;")
	assert.Contains(t, body, `data-cell="A1" colspan="13"`)
	assert.NotContains(t, body, "height:0px")
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
