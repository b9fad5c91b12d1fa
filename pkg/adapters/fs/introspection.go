package fs

import (
	"github.com/aretw0/introspection"
)

// LoaderState exposes internal state for observability.
type LoaderState struct {
	CacheSize   int  `json:"cache_size"`
	CacheHits   int  `json:"cache_hits"`
	CacheMisses int  `json:"cache_misses"`
	Strict      bool `json:"strict"`
	Watchers    int  `json:"watchers"`
}

// State implements introspection.Introspectable.
func (l *Loader) State() any {
	hits, misses := l.cache.stats()
	return LoaderState{
		CacheSize:   l.cache.Len(),
		CacheHits:   hits,
		CacheMisses: misses,
		Strict:      l.config.Strict,
		Watchers:    int(l.watchers.Load()),
	}
}

// ComponentType implements introspection.Component.
func (l *Loader) ComponentType() string {
	return "loader"
}

var _ introspection.Introspectable = (*Loader)(nil)
var _ introspection.Component = (*Loader)(nil)
