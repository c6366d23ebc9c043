package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLimitsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write limits file: %v", err)
	}
	return path
}

func TestLoadLimits(t *testing.T) {
	path := writeLimitsFile(t, `
scopes:
  generate:
    - window: 1m
      max: 10
  global:
    - window: 1h
      max: 50
    - window: 24h
      max: 200
`)

	scopes, err := LoadLimits(path)
	if err != nil {
		t.Fatalf("LoadLimits: %v", err)
	}

	gen := scopes["generate"]
	if len(gen) != 1 || gen[0].Duration != time.Minute || gen[0].Max != 10 {
		t.Errorf("generate windows = %+v", gen)
	}
	global := scopes["global"]
	if len(global) != 2 {
		t.Fatalf("global windows = %+v", global)
	}
	if global[1].Duration != 24*time.Hour || global[1].Max != 200 {
		t.Errorf("daily window = %+v", global[1])
	}
}

func TestLoadLimitsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad duration", "scopes:\n  generate:\n    - window: soon\n      max: 10\n"},
		{"zero max", "scopes:\n  generate:\n    - window: 1m\n      max: 0\n"},
		{"no scopes", "scopes: {}\n"},
		{"not yaml", "{{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLimitsFile(t, tt.content)
			if _, err := LoadLimits(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadLimitsMissingFile(t *testing.T) {
	if _, err := LoadLimits(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Cache.Capacity != 100 {
		t.Errorf("capacity = %d", cfg.Cache.Capacity)
	}
	if cfg.Generation.Timeout != 60*time.Second {
		t.Errorf("timeout = %v", cfg.Generation.Timeout)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q", cfg.Environment)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("VOYAGO_HTTP_ADDR", ":9090")
	t.Setenv("VOYAGO_CACHE_CAPACITY", "5")
	t.Setenv("VOYAGO_GEN_TIMEOUT", "15s")
	t.Setenv("VOYAGO_LOG_PRETTY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Cache.Capacity != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Generation.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.Generation.Timeout)
	}
	if !cfg.Log.Pretty {
		t.Error("pretty override not applied")
	}
}
