package basedir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReinit(t *testing.T) {
	t.Cleanup(Reinit)
	t.Setenv("HOME", "/home/turtle")
	t.Setenv("XDG_CONFIG_HOME", "relative/config")
	t.Setenv("XDG_CONFIG_DIRS", "/etc/a:relative:/etc/b:")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_DATA_DIRS", "")
	Reinit()

	if ConfigHome != "/home/turtle/.config" {
		t.Errorf("ConfigHome = %q, want the default for a relative value", ConfigHome)
	}

	if diff := cmp.Diff([]string{"/etc/a", "/etc/b"}, ConfigDirs); diff != "" {
		t.Errorf("ConfigDirs mismatch (-want +got):\n%s", diff)
	}

	if DataHome != "/data" {
		t.Errorf("DataHome = %q, want /data", DataHome)
	}

	if diff := cmp.Diff([]string{"/usr/local/share/", "/usr/share/"}, DataDirs); diff != "" {
		t.Errorf("DataDirs mismatch (-want +got):\n%s", diff)
	}

	if got := ApplicationsDir(); got != "/data/applications" {
		t.Errorf("ApplicationsDir() = %q, want /data/applications", got)
	}
}

func TestReinitDefaults(t *testing.T) {
	t.Cleanup(Reinit)
	t.Setenv("HOME", "/home/turtle")
	t.Setenv("XDG_DATA_HOME", "")
	Reinit()

	if got := ApplicationsDir(); got != "/home/turtle/.local/share/applications" {
		t.Errorf("ApplicationsDir() = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	t.Cleanup(Reinit)
	t.Setenv("HOME", "/home/turtle")
	Reinit()

	tests := []struct {
		path string
		want string
	}{
		{"~", "/home/turtle"},
		{"~/apps", "/home/turtle/apps"},
		{"~other/apps", "~other/apps"},
		{"/opt/~/apps", "/opt/~/apps"},
		{"apps", "apps"},
	}

	for _, tt := range tests {
		if got := ExpandHome(tt.path); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	home := t.TempDir()
	system := t.TempDir()

	t.Cleanup(Reinit)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", system)
	Reinit()

	path, err := FindConfigFile("turtle/config.yaml")
	if err != nil || path != "" {
		t.Fatalf("FindConfigFile() = %q, %v, want no file", path, err)
	}

	systemFile := filepath.Join(system, "turtle", "config.yaml")
	writeFile(t, systemFile)

	if path, _ := FindConfigFile("turtle/config.yaml"); path != systemFile {
		t.Errorf("FindConfigFile() = %q, want %q", path, systemFile)
	}

	homeFile := filepath.Join(home, "turtle", "config.yaml")
	writeFile(t, homeFile)

	if path, _ := FindConfigFile("turtle/config.yaml"); path != homeFile {
		t.Errorf("FindConfigFile() = %q, want %q", path, homeFile)
	}
}

func TestCreateTemp(t *testing.T) {
	target := filepath.Join(t.TempDir(), "Htop.desktop")

	file, err := CreateTemp(target)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	if filepath.Dir(file.Name()) != filepath.Dir(target) {
		t.Errorf("temporary file %s not next to %s", file.Name(), target)
	}

	missing := filepath.Join(t.TempDir(), "missing", "Htop.desktop")
	if _, err := CreateTemp(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("CreateTemp() in a missing directory error = %v, want fs.ErrNotExist", err)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "applications")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}

	if info.Mode().Perm() != dirMode {
		t.Errorf("directory mode = %o, want %o", info.Mode().Perm(), dirMode)
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}
