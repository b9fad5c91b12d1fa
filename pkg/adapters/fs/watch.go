package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ChangeFunc receives the paths that changed since the last call.
type ChangeFunc func(ctx context.Context, paths []string)

// Watch observes the directories behind patterns and calls onChange, debounced,
// whenever a matching file is written, created, removed or renamed.
// It returns once the watcher is registered. The returned channel is closed
// when the watch loop exits, which happens when ctx is cancelled.
func (l *Loader) Watch(ctx context.Context, patterns []string, onChange ChangeFunc) (<-chan struct{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	for _, root := range watchRoots(patterns) {
		if err := addRecursive(watcher, root); err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	done := make(chan struct{})
	w := &scenarioWatcher{
		loader:   l,
		patterns: patterns,
		watcher:  watcher,
		onChange: onChange,
		pending:  make(map[string]bool),
	}

	l.watchers.Add(1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(done)
		defer l.watchers.Add(-1)
		return w.run(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		l.config.Logger.Error("watcher failed", "error", err)
		l.reportError(err)
	}))

	return done, nil
}

type scenarioWatcher struct {
	loader   *Loader
	patterns []string
	watcher  *fsnotify.Watcher
	onChange ChangeFunc
	pending  map[string]bool
}

func (w *scenarioWatcher) run(ctx context.Context) (err error) {
	log := w.loader.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if log.Enabled(ctx, slog.LevelDebug) {
				log.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				log.Error("watcher panic", "error", err)
			}
		}
	}()
	defer w.watcher.Close()

	timer := time.NewTimer(w.loader.config.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if w.handle(event) {
				timer.Reset(w.loader.config.Debounce)
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Error("fsnotify error", "error", wErr)
			w.loader.reportError(wErr)

		case <-timer.C:
			w.flush(ctx)
		}
	}
}

// handle records a relevant event. It returns false for events to ignore.
func (w *scenarioWatcher) handle(event fsnotify.Event) bool {
	log := w.loader.config.Logger
	log.Debug("event received", "name", event.Name, "op", event.Op.String())

	if event.Has(fsnotify.Create) {
		if isDir(event.Name) {
			if err := addRecursive(w.watcher, event.Name); err != nil {
				log.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return false
		}
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), TempFilePrefix) {
		return false
	}

	name := filepath.Clean(event.Name)
	if !matchesAny(w.patterns, name) {
		return false
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.loader.cache.Delete(name)
	}
	w.pending[name] = true
	return true
}

func (w *scenarioWatcher) flush(ctx context.Context) {
	if len(w.pending) == 0 {
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	clear(w.pending)

	w.loader.config.Logger.Debug("scenarios changed", "paths", paths)
	w.onChange(ctx, paths)
}

// watchRoots returns the static directory prefix of each pattern.
func watchRoots(patterns []string) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, p := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		root := filepath.FromSlash(base)
		if !isDir(root) {
			root = filepath.Dir(root)
		}
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	return roots
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func matchesAny(patterns []string, name string) bool {
	slashed := filepath.ToSlash(name)
	for _, p := range patterns {
		clean := filepath.ToSlash(filepath.Clean(p))
		if clean == slashed {
			return true
		}
		if ok, err := doublestar.Match(clean, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (l *Loader) reportError(err error) {
	if l.config.ErrorHandler != nil {
		l.config.ErrorHandler(err)
	}
}
