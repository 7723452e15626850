// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
root: /data/miso
workers: 4
ids: [a, b]
timeout: 30s
normalize_tool: /usr/local/bin/ffmpeg-normalize
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != "/data/miso" || cfg.Workers != 4 || len(cfg.IDs) != 2 {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.RecordsURL != Default().RecordsURL {
		t.Errorf("RecordsURL = %q, want default", cfg.RecordsURL)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if d, _ := cfg.HTTPTimeout(); d != 30*time.Second {
		t.Errorf("HTTPTimeout() = %v, want 30s", d)
	}

	ds := cfg.Dataset()
	if ds.Root != "/data/miso" || ds.Workers != 4 || ds.OriginalSuffix != "_original" {
		t.Errorf("Dataset() = %+v", ds)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SOUNDBANK_ROOT", "/env/root")
	t.Setenv("SOUNDBANK_WORKERS", "8")
	t.Setenv("SOUNDBANK_LABEL_URL", "https://example.org/labels")

	cfg, err := Load(writeFile(t, "root: /file/root\nworkers: 2\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != "/env/root" || cfg.Workers != 8 || cfg.LabelURL != "https://example.org/labels" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing custom path) error = nil")
	}
	if _, err := Load(writeFile(t, "workers: [1\n")); err == nil {
		t.Error("Load(bad yaml) error = nil")
	}
	if _, err := Load(writeFile(t, "timeout: soon\n")); err == nil {
		t.Error("Load(bad timeout) error = nil")
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path() != "" || cfg.Root != Default().Root {
		t.Errorf("Load() = %+v", cfg)
	}
}
