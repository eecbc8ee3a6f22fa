package basedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindConfigFile finds the given suffix in order of priority. First, XDG_CONFIG_HOME is checked,
// then, each dir in XDG_CONFIG_DIRS is checked.
// If the file exists nowhere, an empty string is returned without error.
// Example for suffix: turtle/config.yaml.
func FindConfigFile(suffix string) (string, error) {
	return findFile(suffix, ConfigHome, ConfigDirs)
}

func findFile(suffix string, primary string, secondary []string) (string, error) {
	for _, dir := range append([]string{primary}, secondary...) {
		path := filepath.Join(dir, suffix)
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return path, nil
		case os.IsNotExist(err):
		default:
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	return "", nil
}
