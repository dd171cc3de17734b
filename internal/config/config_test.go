package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration(t *testing.T) {
	content := `---
logging:
  level: debug
  format: console
server:
  listen: ":9090"
  maxBodyBytes: 1024
solver:
  backend: simplex
  tolerance: 1e-8
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", conf.Logging.Level)
	}
	if conf.Logging.Format != "console" {
		t.Errorf("logging.format = %q, want console", conf.Logging.Format)
	}
	if conf.Server.Listen != ":9090" {
		t.Errorf("server.listen = %q, want :9090", conf.Server.Listen)
	}
	if conf.Server.MaxBodyBytes != 1024 {
		t.Errorf("server.maxBodyBytes = %d, want 1024", conf.Server.MaxBodyBytes)
	}
	if conf.Solver.Backend != "simplex" {
		t.Errorf("solver.backend = %q, want simplex", conf.Solver.Backend)
	}
	if conf.Solver.Tolerance != 1e-8 {
		t.Errorf("solver.tolerance = %v, want 1e-8", conf.Solver.Tolerance)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("solver:\n  backend: simplex\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader failed: %v", err)
	}
	if conf.Solver.Backend != "simplex" {
		t.Errorf("solver.backend = %q, want simplex", conf.Solver.Backend)
	}
	if conf.Logging.Level != "" {
		t.Errorf("expected empty logging.level, got %q", conf.Logging.Level)
	}
}

func TestLoadConfigurationFromReaderEmpty(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty config should load with defaults: %v", err)
	}
	if conf.Server.Listen != "" {
		t.Errorf("expected empty listen address, got %q", conf.Server.Listen)
	}
}
