// Package config reads and writes the hyprbind user configuration and
// resolves the paths of the files hyprbind keeps under the user's config
// directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/hyprland"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

const appName = "hyprbind"

// File and directory names under Dir.
const (
	configFile = "config.toml"
	themeFile  = "theme.toml"
	logFile    = "hyprbind.log"
	exportDir  = "exports"
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the top-level config.toml configuration.
type Config struct {
	Theme   string                `toml:"theme"`
	Minimal bool                  `toml:"minimal"`
	Columns ColumnsConfig         `toml:"columns"`
	Search  keybind.SearchOptions `toml:"search"`
	Source  SourceConfig          `toml:"source"`
	Log     LogConfig             `toml:"log"`
	Export  ExportConfig          `toml:"export"`
}

// ColumnsConfig controls which table columns are shown.
type ColumnsConfig struct {
	Keybind     bool `toml:"keybind"`
	Description bool `toml:"description"`
	Command     bool `toml:"command"`
}

// SourceConfig controls how the bind report is obtained.
type SourceConfig struct {
	Command string `toml:"command"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level"`
}

// ExportConfig controls exports written from the UI.
type ExportConfig struct {
	Retention int `toml:"retention"` // number of exports to keep; 0 = unlimited
}

// Defaults returns a Config with the built-in defaults.
func Defaults() Config {
	return Config{
		Theme:   ThemeDark,
		Minimal: false,
		Columns: ColumnsConfig{
			Keybind:     true,
			Description: true,
			Command:     false,
		},
		Search: keybind.DefaultSearchOptions(),
		Source: SourceConfig{Command: hyprland.DefaultCommand},
		Log:    LogConfig{Level: "info"},
		Export: ExportConfig{Retention: 20},
	}
}

// validLogLevels mirrors the levels accepted by the logging package.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values hyprbind cannot use. It
// returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		errs = append(errs, fmt.Errorf("theme must be %q or %q", ThemeDark, ThemeLight))
	}
	if strings.TrimSpace(c.Source.Command) == "" {
		errs = append(errs, fmt.Errorf("source.command must not be empty"))
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s", strings.Join(validLogLevels, ", ")))
	}

	if c.Export.Retention < 0 {
		errs = append(errs, fmt.Errorf("export.retention must be >= 0 (0 = unlimited)"))
	}

	return errors.Join(errs...)
}

// Load reads config.toml from path. A missing file yields the defaults with
// no error. A file that cannot be decoded, has unknown keys or fails
// validation yields the defaults together with the error, so callers can
// report it and carry on.
func Load(path string) (Config, error) {
	cfg := Defaults()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Defaults(), fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Dir returns the hyprbind config directory: $XDG_CONFIG_HOME/hyprbind,
// falling back to $HOME/.config/hyprbind and finally a relative
// .config/hyprbind.
func Dir() string {
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		return filepath.Join(base, appName)
	}
	return filepath.Join(".config", appName)
}

// Path returns the default config.toml location.
func Path() string { return filepath.Join(Dir(), configFile) }

// ThemePath returns the theme override file location.
func ThemePath() string { return filepath.Join(Dir(), themeFile) }

// LogPath returns the log file location.
func LogPath() string { return filepath.Join(Dir(), logFile) }

// ExportDir returns the directory the UI writes exports to.
func ExportDir() string { return filepath.Join(Dir(), exportDir) }
