package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrThemeExists is returned by WriteDefaultTheme when the file is already
// present and force is not set.
var ErrThemeExists = errors.New("config: theme file already exists")

// hexColorRe matches a 6-digit hex color string like "#7aa2f7".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ThemeOverride holds user colors that replace the built-in palette. Empty
// fields keep the palette color.
type ThemeOverride struct {
	Bg        string `toml:"bg"`
	Fg        string `toml:"fg"`
	Panel     string `toml:"panel"`
	Accent    string `toml:"accent"`
	Stroke    string `toml:"stroke"`
	Selection string `toml:"selection"`
}

// IsZero reports whether the override sets no colors.
func (t ThemeOverride) IsZero() bool {
	return t == ThemeOverride{}
}

type themeFileData struct {
	Colors ThemeOverride `toml:"colors"`
}

// DefaultThemeOverride returns the colors written by WriteDefaultTheme.
func DefaultThemeOverride() ThemeOverride {
	return ThemeOverride{
		Bg:        "#0f1117",
		Fg:        "#d4d7dc",
		Panel:     "#151922",
		Accent:    "#7aa2f7",
		Stroke:    "#3b4261",
		Selection: "#283457",
	}
}

// LoadTheme reads a theme override file. A missing file yields a zero
// override with no error. Colors that are not #RRGGBB are dropped.
func LoadTheme(path string) (ThemeOverride, error) {
	var f themeFileData
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ThemeOverride{}, nil
		}
		return ThemeOverride{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	t := f.Colors
	for _, c := range []*string{&t.Bg, &t.Fg, &t.Panel, &t.Accent, &t.Stroke, &t.Selection} {
		if !hexColorRe.MatchString(*c) {
			*c = ""
		}
	}
	return t, nil
}

// WriteDefaultTheme writes a theme override file with the default colors to
// path and returns path. It refuses to replace an existing file unless force
// is set.
func WriteDefaultTheme(path string, force bool, now time.Time) (string, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w at %s (use --force to overwrite)", ErrThemeExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("config: create dir: %w", err)
	}

	d := DefaultThemeOverride()
	content := fmt.Sprintf(`# hyprbind theme override, generated %s
# Colors must be "#RRGGBB". Remove a line to keep the built-in color.
# Changes are picked up while hyprbind is running.

[colors]
bg = %q         # window background
fg = %q         # text
panel = %q      # header, search bar and footer background
accent = %q     # titles, sort arrows, focused borders
stroke = %q     # borders and separators
selection = %q  # selected table row
`, now.Format(time.RFC3339), d.Bg, d.Fg, d.Panel, d.Accent, d.Stroke, d.Selection)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
