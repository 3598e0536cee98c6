package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher signals when the theme override file changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors that replace the file on save, and a file created after startup,
// are both seen.
type ThemeWatcher struct {
	watcher *fsnotify.Watcher
	path    string

	changes chan struct{}
	errors  chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// WatchTheme starts watching path. The parent directory is created if it
// does not exist yet.
func WatchTheme(path string) (*ThemeWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("config: create dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", dir, err)
	}

	w := &ThemeWatcher{
		watcher: fsw,
		path:    abs,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Changes delivers a value after the theme file is created, written,
// renamed or removed. Bursts of events coalesce into one signal.
func (w *ThemeWatcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watcher errors. Only the most recent unread error is kept.
func (w *ThemeWatcher) Errors() <-chan error { return w.errors }

// Close stops the watcher. It is safe to call more than once.
func (w *ThemeWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *ThemeWatcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
