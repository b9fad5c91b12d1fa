// Package fs loads scenario files from the local filesystem.
package fs

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/overload/pkg/scenario"
)

// Config holds the loader configuration.
type Config struct {
	Logger *slog.Logger
	// Strict rejects unknown YAML keys.
	Strict bool
	// Debounce coalesces bursts of filesystem events in Watch.
	Debounce time.Duration
	// ErrorHandler, if set, receives runtime watcher errors in addition to the log.
	ErrorHandler func(error)
}

// Loader resolves glob patterns to scenario files and decodes them.
type Loader struct {
	config     Config
	serializer *YAMLSerializer
	cache      *cache
	watchers   atomic.Int32
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(config Config) *Loader {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Loader{
		config:     config,
		serializer: NewYAMLSerializer(config.Strict),
		cache:      newCache(),
	}
}

// Serializer returns the serializer used for scenario files.
func (l *Loader) Serializer() *YAMLSerializer { return l.serializer }

// Expand resolves doublestar patterns (e.g. "scenarios/**/*.yaml") to a
// sorted, de-duplicated list of regular files. A pattern without glob
// characters must name an existing file.
func (l *Loader) Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(p); err != nil {
				return nil, fmt.Errorf("no scenario files match %q: %w", p, err)
			}
			matches = []string{p}
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			clean := filepath.Clean(m)
			if !seen[clean] {
				seen[clean] = true
				out = append(out, clean)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Load reads a single scenario file. Unchanged files are served from cache.
func (l *Loader) Load(path string) (*scenario.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if entry, ok := l.cache.Get(path, info.ModTime()); ok {
		l.config.Logger.Debug("scenario cache hit", "path", path)
		return entry.Scenario, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	sc, err := l.serializer.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Source = path
	if sc.Name == "" {
		sc.Name = nameFromPath(path)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.cache.Set(path, &cacheEntry{Scenario: sc, LastModified: info.ModTime()})
	l.config.Logger.Debug("scenario loaded", "path", path, "calls", len(sc.Calls))
	return sc, nil
}

// LoadAll expands patterns and loads every matched file. Cache entries for
// files no longer matched are dropped.
func (l *Loader) LoadAll(patterns []string) ([]*scenario.Scenario, error) {
	paths, err := l.Expand(patterns)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(paths))
	out := make([]*scenario.Scenario, 0, len(paths))
	for _, p := range paths {
		keep[p] = true
		sc, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	l.cache.Prune(keep)
	return out, nil
}

// Save writes a scenario to path atomically.
func (l *Loader) Save(path string, sc *scenario.Scenario) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	err := writeAtomic(path, 0644, func(w io.Writer) error {
		return l.serializer.Encode(w, sc)
	})
	if err != nil {
		return err
	}
	l.cache.Delete(path)
	return nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
