package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "ymsp"

// candidateNames are tried in order by Discover.
var candidateNames = []string{
	"ymsp.config.json",
	"ymsp.config.yaml",
	"ymsp.config.yml",
	"ymsp.config.toml",
}

// Dir returns ~/.config/ymsp, which holds the config, state and lock files.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// EnsureDir creates dir if missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// Discover returns the first config file present in dir.
func Discover(dir string) (string, error) {
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (tried %v)", ErrNotFound, dir, candidateNames)
}

// StatePath returns the per-space master count file.
func StatePath(dir string) string { return filepath.Join(dir, "state.json") }

// LockPath returns the exclusivity lock file.
func LockPath(dir string) string { return filepath.Join(dir, appName+".lock") }

// LogPath returns the default log file location,
// ~/.local/share/ymsp/logs/ymsp.log.
func LogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName, "logs", appName+".log"), nil
}
