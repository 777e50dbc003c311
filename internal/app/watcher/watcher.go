//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"fanmenu/internal/config"
	"fanmenu/internal/config/logger"
)

// changeBuffer is the number of undelivered changes kept before new ones are dropped
const changeBuffer = 8

// Change lists files that changed under a watched root, relative to it
type Change struct {
	Root  string
	Files []string
}

// Has reports whether a file with the given base name changed
func (c Change) Has(name string) bool {
	for _, f := range c.Files {
		if filepath.Base(f) == name {
			return true
		}
	}

	return false
}

// Watcher reports debounced file changes under registered roots
type Watcher interface {
	Watch(root string, includes, ignores []string) error
	Unwatch(root string)
	Changes() <-chan Change
	Close()
}

type root struct {
	dir       string
	matcher   Matcher
	debouncer Debouncer
}

type manager struct {
	mu        sync.RWMutex
	fsWatcher *fsnotify.Watcher
	roots     map[string]*root
	changes   chan Change
	delay     time.Duration
	log       logger.Logger
	closed    bool
}

// NewWatcher creates a Watcher using the default debounce delay
func NewWatcher(log logger.Logger) (Watcher, error) {
	return NewWatcherWithDelay(config.WatchDebounce, log)
}

// NewWatcherWithDelay creates a Watcher with a custom debounce delay
func NewWatcherWithDelay(delay time.Duration, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	m := &manager{
		fsWatcher: fsw,
		roots:     make(map[string]*root),
		changes:   make(chan Change, changeBuffer),
		delay:     delay,
		log:       log.WithComponent("WATCHER"),
	}

	go m.processEvents()

	return m, nil
}

// Watch starts reporting changes of matching files below dir
func (m *manager) Watch(dir string, includes, ignores []string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	matcher, err := NewMatcher(includes, ignores)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	if _, exists := m.roots[absDir]; exists {
		return nil
	}

	r := &root{dir: absDir, matcher: matcher}
	r.debouncer = NewDebouncer(m.delay, func(files []string) {
		m.emit(Change{Root: absDir, Files: files})
	})

	if err := m.addDirRecursive(r); err != nil {
		r.debouncer.Stop()
		return err
	}

	m.roots[absDir] = r
	m.log.Info().Msgf("Watching %s", absDir)

	return nil
}

// Unwatch stops reporting changes below dir
func (m *manager) Unwatch(dir string) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.roots[absDir]
	if !exists {
		return
	}

	r.debouncer.Stop()
	delete(m.roots, absDir)

	if err := m.fsWatcher.Remove(absDir); err != nil {
		m.log.Debug().Err(err).Msgf("Failed to remove watch on %s", absDir)
	}

	m.log.Info().Msgf("Stopped watching %s", absDir)
}

// Changes returns the stream of debounced changes; it is closed by Close
func (m *manager) Changes() <-chan Change {
	return m.changes
}

// Close stops every root and releases the file system watcher
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true

	for dir, r := range m.roots {
		r.debouncer.Stop()
		delete(m.roots, dir)
	}

	m.fsWatcher.Close()
}

// processEvents routes fsnotify events until the watcher is closed
func (m *manager) processEvents() {
	defer close(m.changes)

	for {
		select {
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}

			m.handleEvent(event)
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (m *manager) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.roots {
		rel, err := filepath.Rel(r.dir, event.Name)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}

		if r.matcher.Match(rel) {
			r.debouncer.Trigger(rel)
		}

		if event.Has(fsnotify.Create) {
			m.handleCreate(r, event.Name)
		}
	}
}

// handleCreate adds newly created directories to the watch list
func (m *manager) handleCreate(r *root, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	rel, err := filepath.Rel(r.dir, path)
	if err == nil && r.matcher.MatchDir(rel) {
		return
	}

	if err := m.fsWatcher.Add(path); err != nil {
		m.log.Warn().Err(err).Msgf("Failed to watch new directory: %s", path)
	}
}

// emit delivers a change without blocking the debouncer
func (m *manager) emit(change Change) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return
	}

	select {
	case m.changes <- change:
		m.log.Debug().Msgf("Change in %s: %v", change.Root, change.Files)
	default:
		m.log.Warn().Msgf("Dropped change in %s, consumer is behind", change.Root)
	}
}

// addDirRecursive adds the root and its subdirectories, skipping ignored ones
func (m *manager) addDirRecursive(r *root) error {
	return filepath.WalkDir(r.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != r.dir {
			if shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}

			if rel, err := filepath.Rel(r.dir, path); err == nil && r.matcher.MatchDir(rel) {
				return filepath.SkipDir
			}
		}

		if err := m.fsWatcher.Add(path); err != nil {
			m.log.Warn().Err(err).Msgf("Failed to watch directory: %s", path)
		}

		return nil
	})
}

// isRelevantEvent returns true if the event can change file contents
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}

// shouldSkipDir returns true for directories that never hold menu resources
func shouldSkipDir(name string) bool {
	switch name {
	case ".git", "node_modules", "vendor", ".idea", ".vscode":
		return true
	default:
		return false
	}
}
