package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 2000 {
		t.Errorf("Render.Width = %d, want 2000", cfg.Render.Width)
	}
	if cfg.Render.Samples != 20 {
		t.Errorf("Render.Samples = %d, want 20", cfg.Render.Samples)
	}
	if cfg.Render.Depth != 15 {
		t.Errorf("Render.Depth = %d, want 15", cfg.Render.Depth)
	}
	if cfg.Render.Seed != 42 {
		t.Errorf("Render.Seed = %d, want 42", cfg.Render.Seed)
	}
	if cfg.Output.Prefix != "render" {
		t.Errorf("Output.Prefix = %q, want %q", cfg.Output.Prefix, "render")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Upload.Enabled {
		t.Error("Upload should be disabled by default")
	}
}

func TestLoad_MergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
render:
  width: 640
  samples: 8
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Render.Width != 640 {
		t.Errorf("Render.Width = %d, want 640", cfg.Render.Width)
	}
	if cfg.Render.Samples != 8 {
		t.Errorf("Render.Samples = %d, want 8", cfg.Render.Samples)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	// Fields absent from the file keep their defaults.
	if cfg.Render.Depth != 15 {
		t.Errorf("Render.Depth = %d, want default 15", cfg.Render.Depth)
	}
	if cfg.Output.Prefix != "render" {
		t.Errorf("Output.Prefix = %q, want default", cfg.Output.Prefix)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	// Even on error the returned config is usable.
	if cfg.Render.Width != 2000 {
		t.Errorf("Render.Width = %d, want default 2000", cfg.Render.Width)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("render: [not a map]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Expected a parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := Default()
	want.Render.Width = 800
	want.Render.Scene = "scenes/simple.yaml"
	want.Output.Preview = true
	want.Upload.Enabled = true
	want.Upload.Bucket = "renders"

	if err := want.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}
