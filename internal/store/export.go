package store

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

// FileName returns the export file name for a given time.
func FileName(now time.Time) string {
	return filePrefix + strconv.FormatInt(now.Unix(), 10) + fileExt
}

// WriteExport writes b as JSON to dir/keybindings_<unix>.json and returns the
// path. dir is created with os.MkdirAll if it does not exist. An export made
// within the same second as an earlier one replaces it.
func WriteExport(dir string, b keybind.Bindings, now time.Time) (string, error) {
	data, err := b.JSON()
	if err != nil {
		return "", fmt.Errorf("store: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("store: mkdir %q: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("store: write %q: %w", path, err)
	}
	return path, nil
}

// ReadExport loads a file written by WriteExport.
func ReadExport(path string) (keybind.Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keybind.Bindings{}, fmt.Errorf("store: read %q: %w", path, err)
	}
	b, err := keybind.ParseJSON(data)
	if err != nil {
		return keybind.Bindings{}, fmt.Errorf("store: %q: %w", path, err)
	}
	return b, nil
}

// List returns the exports in dir, oldest first. Files that do not follow
// the export naming scheme are ignored. A missing dir yields no exports.
func List(dir string) ([]ExportFile, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read dir %q: %w", dir, err)
	}

	var files []ExportFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ts, ok := parseFileName(e.Name())
		if !ok {
			continue
		}
		files = append(files, ExportFile{
			Path:      filepath.Join(dir, e.Name()),
			CreatedAt: time.Unix(ts, 0),
		})
	}

	slices.SortFunc(files, func(a, b ExportFile) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return files, nil
}

// EnforceRetention removes the oldest exports in dir, keeping at most
// maxKeep files. If maxKeep is 0, no files are removed.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	files, err := List(dir)
	if err != nil {
		return err
	}

	toDelete := len(files) - maxKeep
	for i := 0; i < toDelete; i++ {
		if err := os.Remove(files[i].Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("store: remove %q: %w", files[i].Path, err)
		}
	}
	return nil
}

func parseFileName(name string) (int64, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	ts, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || ts < 0 {
		return 0, false
	}
	return ts, true
}
