// Package server exposes the report renderer over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"mime"
	"net/http"
	"time"

	"github.com/aerissecure/rainreport"
	"github.com/aerissecure/rainreport/internal/config"
	"github.com/aerissecure/rainreport/internal/metrics"
	"github.com/aerissecure/rainreport/xlsx"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// identityFields are logged when a request leaves them out.
var identityFields = []string{"tahun", "nama_stasiun", "kode_stasiun"}

// Server serves report downloads and previews.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	renderer   *rainreport.Renderer
	cfg        config.Config
	metrics    *metrics.Metrics
	logger     *zap.SugaredLogger
}

// New wires the routes:
//
//	POST /report   form or JSON fields -> XLSX attachment
//	POST /preview  form or JSON fields -> HTML preview
//	GET  /healthz
//	GET  /metrics
func New(cfg config.Config, m *metrics.Metrics, logger *zap.SugaredLogger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		renderer: rainreport.New(rainreport.Options{
			Title:     cfg.Report.Title,
			SheetName: cfg.Report.SheetName,
		}),
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}

	s.router.HandleFunc("/report", s.handleReport).Methods(http.MethodPost)
	s.router.HandleFunc("/preview", s.handlePreview).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router.Use(s.logRequests)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     zap.NewStdLog(logger.Desugar()),
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Infow("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the router, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	data, ok := s.render(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": s.cfg.Report.Filename}))
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warnw("writing report", "error", err)
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	data, ok := s.render(w, r)
	if !ok {
		return
	}
	model, err := xlsx.ParseWorkbookModel(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.metrics.RenderFailures.WithLabelValues("internal").Inc()
		s.logger.Errorw("parsing rendered report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "preview failed"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head><body>\n", html.EscapeString(s.cfg.Report.Title))
	fmt.Fprint(w, xlsx.RenderWorkbookHTML(model))
	fmt.Fprint(w, "</body></html>\n")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// render reads the request fields and renders the report. On failure it has
// already written the error response.
func (s *Server) render(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	fields, err := readFields(w, r, s.cfg.Server.MaxFormBytes)
	if err != nil {
		s.metrics.RenderFailures.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, false
	}

	rec, err := rainreport.NewRecord(fields)
	if err != nil {
		s.fail(w, err)
		return nil, false
	}
	if unknown := rec.Unknown(); len(unknown) > 0 {
		s.logger.Debugw("ignoring unknown fields", "fields", unknown)
	}
	for _, key := range identityFields {
		if !rec.Has(key) {
			s.logger.Debugw("field not supplied, using placeholder", "field", key)
		}
	}

	start := time.Now()
	data, err := s.renderer.Render(rec)
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail(w, err)
		return nil, false
	}
	s.metrics.ReportsRendered.Inc()
	s.metrics.ReportBytes.Observe(float64(len(data)))
	return data, true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	var fieldErr *rainreport.InvalidFieldValueError
	switch {
	case errors.As(err, &fieldErr):
		s.metrics.RenderFailures.WithLabelValues("invalid_field").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
			"field": fieldErr.Field,
		})
	case errors.Is(err, rainreport.ErrRenderIO):
		s.metrics.RenderFailures.WithLabelValues("io").Inc()
		s.logger.Errorw("rendering report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rendering failed"})
	default:
		s.metrics.RenderFailures.WithLabelValues("internal").Inc()
		s.logger.Errorw("rendering report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rendering failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort error response
}
