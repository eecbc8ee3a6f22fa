package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MatthiasKunnen/turtle/basedir"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	want := &Config{Version: "1.0", LogLevel: "info", FirstRun: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("overwrite: true\napps_dir: /tmp/apps\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		ApplicationsDir: "/tmp/apps",
		Version:         "1.0",
		Overwrite:       true,
		LogLevel:        "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "overwrite: [\n"},
		{"unknown log level", "log_level: loud\n"},
		{"empty version", "version: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(path); err == nil {
				t.Errorf("Load() returned no error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turtle", "config.yaml")

	cfg := &Config{
		ApplicationsDir: "~/apps",
		Version:         "1.5",
		Overwrite:       true,
		LogLevel:        "debug",
		FirstRun:        true,
	}
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := *cfg
	want.FirstRun = false
	if diff := cmp.Diff(&want, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAppsDir(t *testing.T) {
	t.Cleanup(basedir.Reinit)
	t.Setenv("HOME", "/home/turtle")
	t.Setenv("XDG_DATA_HOME", "/data")
	basedir.Reinit()

	tests := []struct {
		value string
		want  string
	}{
		{"", "/data/applications"},
		{"  ", "/data/applications"},
		{"~/apps", "/home/turtle/apps"},
		{"/srv/apps", "/srv/apps"},
	}

	for _, tt := range tests {
		cfg := &Config{ApplicationsDir: tt.value}
		if got := cfg.AppsDir(); got != tt.want {
			t.Errorf("AppsDir() with %q = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPath(t *testing.T) {
	configHome := t.TempDir()
	t.Cleanup(basedir.Reinit)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	basedir.Reinit()

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(configHome, "turtle", "config.yaml"); path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}
