package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/store"
)

func sampleBindings() keybind.Bindings {
	var b keybind.Bindings
	b.Add(keybind.NewEntry("SUPER", "Return", "exec kitty", "Terminal"))
	b.Add(keybind.NewEntry("SUPER+SHIFT", "Q", "killactive", ""))
	return b
}

func TestWriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Unix(1767225600, 0)

	path, err := store.WriteExport(dir, sampleBindings(), now)
	if err != nil {
		t.Fatalf("WriteExport: %v", err)
	}
	if want := filepath.Join(dir, "keybindings_1767225600.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	got, err := store.ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport: %v", err)
	}
	if got.Len() != 2 || got.Entries[0] != sampleBindings().Entries[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestWriteExport_Empty(t *testing.T) {
	dir := t.TempDir()
	path, err := store.WriteExport(dir, keybind.Bindings{}, time.Unix(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\n  \"entries\": []\n}" {
		t.Errorf("got %q", data)
	}
}

func TestWriteExport_DirIsFile(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "exports")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.WriteExport(blocker, sampleBindings(), time.Now()); err == nil {
		t.Fatal("expected error when export dir is a file")
	}
}

func TestReadExport_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := store.ReadExport(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.ReadExport(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, ts := range []int64{300, 100, 200} {
		if _, err := store.WriteExport(dir, sampleBindings(), time.Unix(ts, 0)); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"notes.txt", "keybindings_abc.json", "keybindings_5.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "keybindings_7.json"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := store.List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 exports, got %d", len(files))
	}
	for i, want := range []int64{100, 200, 300} {
		if got := files[i].CreatedAt.Unix(); got != want {
			t.Errorf("files[%d].CreatedAt = %d, want %d", i, got, want)
		}
	}
}

func TestList_MissingDir(t *testing.T) {
	files, err := store.List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestEnforceRetention(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		maxKeep  int
		want     int
	}{
		{"unlimited", 5, 0, 5},
		{"under limit", 2, 5, 2},
		{"at limit", 3, 3, 3},
		{"over limit", 6, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for i := 0; i < tt.existing; i++ {
				if _, err := store.WriteExport(dir, sampleBindings(), time.Unix(int64(1000+i), 0)); err != nil {
					t.Fatal(err)
				}
			}

			if err := store.EnforceRetention(dir, tt.maxKeep); err != nil {
				t.Fatal(err)
			}

			files, err := store.List(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(files) != tt.want {
				t.Fatalf("expected %d files, got %d", tt.want, len(files))
			}
			if tt.want > 0 {
				newest := files[len(files)-1].CreatedAt.Unix()
				if newest != int64(1000+tt.existing-1) {
					t.Errorf("newest export should survive, got %d", newest)
				}
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := store.FileName(time.Unix(42, 0)); got != "keybindings_42.json" {
		t.Errorf("got %q", got)
	}
}
