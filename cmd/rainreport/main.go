package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerissecure/rainreport"
	"github.com/aerissecure/rainreport/internal/config"
	"github.com/aerissecure/rainreport/internal/log"
	"github.com/aerissecure/rainreport/internal/metrics"
	"github.com/aerissecure/rainreport/internal/server"
	"gopkg.in/yaml.v3"
)

func main() {
	cfgFile := flag.String("config", "", "Path to config file (defaults are used when empty)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	input := flag.String("input", "", "Render the fields in this YAML or JSON file instead of serving HTTP")
	out := flag.String("out", "", "Output file for -input (default: report.filename from the config)")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()
	logger := log.GetSugaredLogger()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		logger.Errorf("error reading config file: %v", err)
		os.Exit(1)
	}

	if *input != "" {
		dest := outputPath(cfg, *out)
		if err := renderFile(cfg, *input, dest); err != nil {
			logger.Errorf("rendering %s: %v", *input, err)
			os.Exit(1)
		}
		logger.Infow("report written", "input", *input, "output", dest)
		return
	}

	srv := server.New(*cfg, metrics.NewMetrics(), logger)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Infof("received %v, shutting down", sig)
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("http server: %v", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}

// outputPath is -out, or the configured report filename when it is empty.
func outputPath(cfg *config.Config, out string) string {
	if out != "" {
		return out
	}
	return cfg.Report.Filename
}

// renderFile renders the flat field map stored in path. JSON input is read
// by the YAML decoder as well.
func renderFile(cfg *config.Config, path, dest string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	rec, err := rainreport.NewRecord(fields)
	if err != nil {
		return err
	}
	logger := log.GetSugaredLogger()
	if unknown := rec.Unknown(); len(unknown) > 0 {
		logger.Warnw("ignoring unknown fields", "fields", unknown)
	}
	for _, key := range []string{"tahun", "nama_stasiun", "kode_stasiun"} {
		if !rec.Has(key) {
			logger.Warnw("field not supplied, using placeholder", "field", key)
		}
	}

	data, err := rainreport.New(rainreport.Options{
		Title:     cfg.Report.Title,
		SheetName: cfg.Report.SheetName,
	}).Render(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}
