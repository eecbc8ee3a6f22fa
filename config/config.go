// Package config reads and writes the turtle configuration file,
// $XDG_CONFIG_HOME/turtle/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatthiasKunnen/turtle/basedir"
	"github.com/MatthiasKunnen/turtle/desktop"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// fileSuffix is the location of the config file relative to a config base directory.
const fileSuffix = "turtle/config.yaml"

const fileMode = 0o644

// Config holds the user's preferences.
type Config struct {
	// ApplicationsDir is where launchers are written. Empty means $XDG_DATA_HOME/applications.
	ApplicationsDir string `yaml:"apps_dir"`

	// Version is written as the Version key of new launchers.
	Version string `yaml:"version"`

	// Overwrite allows creating a launcher over an existing one with the same name.
	Overwrite bool `yaml:"overwrite"`

	// LogLevel is a zerolog level name such as debug or warn.
	LogLevel string `yaml:"log_level"`

	// FirstRun is set when no config file existed.
	FirstRun bool `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:  desktop.DefaultVersion,
		LogLevel: zerolog.InfoLevel.String(),
		FirstRun: true,
	}
}

// Path returns the config file to read: the first existing one in $XDG_CONFIG_HOME and
// $XDG_CONFIG_DIRS, or the $XDG_CONFIG_HOME location when there is none yet.
func Path() (string, error) {
	path, err := basedir.FindConfigFile(fileSuffix)
	if err != nil {
		return "", fmt.Errorf("Path: %w", err)
	}

	if path == "" {
		path = filepath.Join(basedir.ConfigHome, fileSuffix)
	}

	return path, nil
}

// Load reads the config file at path. A missing file results in Default.
// Keys missing from the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	case err != nil:
		return nil, fmt.Errorf("Load: failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Load: failed to parse %s: %w", path, err)
	}
	cfg.FirstRun = false

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that can not be corrected silently.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Version) == "" {
		return errors.New("version must not be empty")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}

// Save writes the configuration to path, creating the parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Save: failed to encode config: %w", err)
	}

	if err := basedir.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("Save: failed to write %s: %w", path, err)
	}

	return nil
}

// AppsDir returns the directory launchers are written to, with a leading ~ expanded.
func (c *Config) AppsDir() string {
	if strings.TrimSpace(c.ApplicationsDir) == "" {
		return basedir.ApplicationsDir()
	}

	return basedir.ExpandHome(c.ApplicationsDir)
}
