// Package basedir resolves the directories of the [XDG Base Directory Specification] that turtle
// reads from and writes to.
//
// [XDG Base Directory Specification]: https://specifications.freedesktop.org/basedir-spec/0.8/
package basedir

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	// ConfigHome is the single base directory relative to which user-specific configuration files
	// should be written. This directory is defined by the environment variable $XDG_CONFIG_HOME.
	ConfigHome string

	// ConfigDirs is a set of preference ordered base directories relative to which configuration
	// files should be searched. This set of directories is defined by the environment
	// variable $XDG_CONFIG_DIRS.
	ConfigDirs []string

	// DataHome is a single base directory relative to which user-specific data files should be
	// written. This directory is defined by the environment variable $XDG_DATA_HOME.
	// Launchers created by turtle live in DataHome/applications.
	DataHome string

	// DataDirs is a set of preference ordered base directories relative to which data files should
	// be searched. This set of directories is defined by the environment variable $XDG_DATA_DIRS.
	DataDirs []string

	// Home is the equivalent of $HOME. It will always be non-empty.
	Home string
)

func init() {
	Reinit()
}

// Reinit reinitializes the basedir values. Use this if you change XDG environment variables.
func Reinit() {
	home := os.Getenv("HOME")
	if home == "" {
		// $HOME must always be set in a POSIX environment.
		panic("$HOME environment variable not set")
	}

	ConfigHome = singleVar("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	ConfigDirs = listVar("XDG_CONFIG_DIRS", []string{"/etc/xdg"})
	DataDirs = listVar("XDG_DATA_DIRS", []string{"/usr/local/share/", "/usr/share/"})
	DataHome = singleVar("XDG_DATA_HOME", filepath.Join(home, ".local/share"))
	Home = home
}

// ApplicationsDir returns the per-user directory in which desktop entries are installed, usually
// ~/.local/share/applications.
// See the [Desktop Menu Specification].
//
// [Desktop Menu Specification]: https://specifications.freedesktop.org/menu-spec/latest/paths.html
func ApplicationsDir() string {
	return filepath.Join(DataHome, "applications")
}

// ExpandHome replaces a leading ~ with Home.
func ExpandHome(path string) string {
	switch {
	case path == "~":
		return Home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(Home, path[2:])
	default:
		return path
	}
}

func singleVar(envName string, defaultValue string) string {
	envValue := os.Getenv(envName)
	if envValue == "" || !filepath.IsAbs(envValue) {
		return defaultValue
	}

	return envValue
}

func listVar(envName string, defaultValue []string) []string {
	envValue := os.Getenv(envName)
	if envValue == "" {
		return defaultValue
	}

	result := make([]string, 0)
	for _, path := range strings.Split(envValue, ":") {
		if path == "" || !filepath.IsAbs(path) {
			continue
		}

		result = append(result, path)
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
