// Package config loads the YAML configuration of the report service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Report ReportConfig `yaml:"report"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	ListenAddr   string        `yaml:"listen_addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxFormBytes int64         `yaml:"max_form_bytes"`
}

// ReportConfig configures the generated document.
type ReportConfig struct {
	Title     string `yaml:"title"`
	SheetName string `yaml:"sheet_name"`
	Filename  string `yaml:"filename"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:   ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			MaxFormBytes: 1 << 20,
		},
		Report: ReportConfig{
			Title:     "DATA CURAH HUJAN HARIAN",
			SheetName: "Curah Hujan",
			Filename:  "Data_Curah_Hujan_Harian.xlsx",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return errors.New("server.listen_addr must not be empty")
	}
	if c.Server.MaxFormBytes <= 0 {
		return errors.New("server.max_form_bytes must be positive")
	}
	if !strings.HasSuffix(strings.ToLower(c.Report.Filename), ".xlsx") {
		return fmt.Errorf("report.filename %q must end in .xlsx", c.Report.Filename)
	}
	return nil
}
