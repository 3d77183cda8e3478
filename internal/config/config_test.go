package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: "127.0.0.1:9090"
  read_timeout: 5s
report:
  title: "LAPORAN CURAH HUJAN"
  filename: "laporan.XLSX"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "LAPORAN CURAH HUJAN", cfg.Report.Title)
	assert.Equal(t, "laporan.XLSX", cfg.Report.Filename)

	// Keys not in the file keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxFormBytes)
	assert.Equal(t, "Curah Hujan", cfg.Report.SheetName)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "server: [", "parsing config"},
		{"empty listen", "server:\n  listen_addr: \"\"\n", "listen_addr"},
		{"zero form size", "server:\n  max_form_bytes: 0\n", "max_form_bytes"},
		{"bad filename", "report:\n  filename: report.pdf\n", "report.filename"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
