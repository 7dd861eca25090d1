package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/velem/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Server.Host != DefaultHost || cfg.Server.Port != DefaultPort {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d", cfg.Server.MaxBodyBytes)
	}
	if cfg.Render.Indent != "  " {
		t.Errorf("Indent = %q", cfg.Render.Indent)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Namespace = %q", cfg.Metrics.Namespace)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log = %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Publish.Dir != DefaultOutput {
		t.Errorf("Publish.Dir = %q", cfg.Publish.Dir)
	}
	if cfg.Address() != "localhost:4000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"server": {"host": "0.0.0.0", "port": 8080, "strictTags": true},
		"render": {"pretty": true},
		"log": {"level": "debug", "format": "json"},
		"publish": {"s3": {"bucket": "site", "prefix": "pages", "region": "eu-west-1"}}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if cfg.Address() != "0.0.0.0:8080" || !cfg.Server.StrictTags {
		t.Errorf("server = %+v", cfg.Server)
	}
	if !cfg.Render.Pretty || cfg.Render.Indent != "  " {
		t.Errorf("render = %+v", cfg.Render)
	}
	if level, _ := cfg.LogLevel(); level != slog.LevelDebug {
		t.Errorf("LogLevel = %v", level)
	}
	if cfg.Publish.S3.Bucket != "site" || cfg.Publish.S3.Prefix != "pages" || cfg.Publish.S3.Region != "eu-west-1" {
		t.Errorf("s3 = %+v", cfg.Publish.S3)
	}
	if cfg.Publish.Dir != DefaultOutput {
		t.Errorf("Publish.Dir = %q", cfg.Publish.Dir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"syntax", `{"server":`, "E120"},
		{"port range", `{"server": {"port": 70000}}`, "E120"},
		{"negative body limit", `{"server": {"maxBodyBytes": -1}}`, "E120"},
		{"log level", `{"log": {"level": "loud"}}`, "E120"},
		{"log format", `{"log": {"format": "xml"}}`, "E120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
		})
	}

	if _, err := Load(t.TempDir()); !errors.Is(err, "E121") {
		t.Errorf("missing file: err = %v, want E121", err)
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindRoot = %q, want %q", got, want)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists reported the wrong directories")
	}
}

func TestLoadOrDefault(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"server": {"port": 9000}}`)

	cfg, err := LoadOrDefault(root)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		cfg := New()
		cfg.Log.Level = tt.level
		got, err := cfg.LogLevel()
		if err != nil || got != tt.want {
			t.Errorf("LogLevel(%q) = %v, %v", tt.level, got, err)
		}
	}
}
