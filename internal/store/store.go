// Package store writes keybinding exports as timestamped JSON files and
// manages the export directory. Exports are created from the TUI; the
// directory lives under the user config dir (see config.ExportDir).
package store

import "time"

// filePrefix and fileExt frame the Unix timestamp in export file names:
// keybindings_<unix seconds>.json.
const (
	filePrefix = "keybindings_"
	fileExt    = ".json"
)

// ExportFile describes one export found on disk.
type ExportFile struct {
	Path      string
	CreatedAt time.Time // decoded from the file name
}
