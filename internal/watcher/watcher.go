// Package watcher watches source trees and signals, debounced, when a
// relevant file changes.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors directory trees and sends notifications on change.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	roots     []string
	match     func(path string) bool
	debounce  time.Duration
	log       *zap.Logger
	onChange  chan struct{}
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Roots       []string               // directories watched recursively
	Match       func(path string) bool // nil matches every file
	DebounceDur time.Duration
	Logger      *zap.Logger
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(roots ...string) Config {
	return Config{
		Roots:       roots,
		DebounceDur: 200 * time.Millisecond,
	}
}

// New creates a new watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	match := cfg.Match
	if match == nil {
		match = func(string) bool { return true }
	}

	return &Watcher{
		fsWatcher: fsw,
		roots:     cfg.Roots,
		match:     match,
		debounce:  cfg.DebounceDur,
		log:       log.Named("watcher"),
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching every root and its subdirectories.
// Returns a channel that receives a signal when a matching file changes.
func (w *Watcher) Start() (<-chan struct{}, error) {
	for _, root := range w.roots {
		if err := w.addTree(root); err != nil {
			return nil, err
		}
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// addTree watches dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			// New directories are watched too, so files created in them count
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.log.Warn("cannot watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}

			if !w.isRelevantEvent(event) {
				continue
			}
			w.log.Debug("change detected", zap.String("file", event.Name), zap.Stringer("op", event.Op))

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				// Non-blocking send - drop if channel full
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent checks if the event should trigger a regeneration.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return w.match(event.Name)
}
