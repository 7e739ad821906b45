// Package config loads the ymsp configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultYabaiPath is used when the config file does not name a binary.
const DefaultYabaiPath = "/usr/local/bin/yabai"

// ErrNotFound is returned when no config file exists.
var ErrNotFound = errors.New("config file not found")

// Config is the user configuration. It is loaded once per process and
// passed explicitly to whatever needs it.
type Config struct {
	YabaiPath              string               `json:"yabaiPath"              yaml:"yabaiPath"              toml:"yabaiPath"`
	Debug                  bool                 `json:"debug"                  yaml:"debug"                  toml:"debug"`
	MoveNewWindowsToMaster bool                 `json:"moveNewWindowsToMaster" yaml:"moveNewWindowsToMaster" toml:"moveNewWindowsToMaster"`
	MasterPosition         model.MasterPosition `json:"masterPosition"         yaml:"masterPosition"         toml:"masterPosition"`
	LogLevel               string               `json:"logLevel,omitempty"     yaml:"logLevel,omitempty"     toml:"logLevel,omitempty"`
	LogFile                string               `json:"logFile,omitempty"      yaml:"logFile,omitempty"      toml:"logFile,omitempty"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() Config {
	return Config{
		YabaiPath:      DefaultYabaiPath,
		MasterPosition: model.PositionRight,
	}
}

// Load reads the config file at path. The format is picked by extension:
// .json, .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q (use .json, .yaml, .yml, or .toml)", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that decoding alone cannot.
func (c Config) Validate() error {
	if strings.TrimSpace(c.YabaiPath) == "" {
		return errors.New("yabaiPath must not be empty")
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("logLevel: %w", err)
		}
	}
	return nil
}

// Level returns the log level: debug when Debug is set, the configured
// LogLevel otherwise, info by default.
func (c Config) Level() log.Level {
	if c.Debug {
		return log.DebugLevel
	}
	if c.LogLevel != "" {
		if level, err := log.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return log.InfoLevel
}
