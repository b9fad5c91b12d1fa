package platform

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/scenario"
)

func saveBuiltin(t *testing.T, e *Engine, path string) {
	t.Helper()
	require.NoError(t, e.Loader.Save(path, scenario.Builtin()))
}

func TestEngine_RunBuiltin(t *testing.T) {
	e := New()
	report, err := e.RunBuiltin(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Len(t, report.Results, 6)
}

func TestEngine_RunFiles(t *testing.T) {
	dir := t.TempDir()
	e := New()
	saveBuiltin(t, e, filepath.Join(dir, "a", "builtin.yaml"))
	saveBuiltin(t, e, filepath.Join(dir, "b", "builtin.yaml"))

	reports, err := e.RunFiles(context.Background(), []string{filepath.Join(dir, "**", "*.yaml")})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.True(t, r.OK(), r.Source)
	}
}

func TestEngine_RunFilesStrictMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wrong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: wrong
values:
  a: {trait1: 1}
  b: {trait2: x}
calls:
  - op: f
    args: [{value: b, as: trait2}, {value: a, as: trait1}]
    expect: {str: y}
`), 0644))

	_, err := New(WithStrict(true)).RunFiles(context.Background(), []string{path})
	assert.ErrorIs(t, err, core.ErrMismatch)

	reports, err := New().RunFiles(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Failed)
}

func TestEngine_RunFilesLoadError(t *testing.T) {
	_, err := New().RunFiles(context.Background(), []string{filepath.Join(t.TempDir(), "none.yaml")})
	assert.Error(t, err)
}

func TestEngine_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "builtin.yaml")
	e := New(WithWatchDebounce(20 * time.Millisecond))
	saveBuiltin(t, e, path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rounds atomic.Int32
	results := make(chan []scenario.Report, 8)
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Watch(ctx, []string{filepath.Join(dir, "*.yaml")}, func(reports []scenario.Report, err error) {
			rounds.Add(1)
			results <- reports
		})
	}()

	select {
	case reports := <-results:
		require.Len(t, reports, 1)
		assert.True(t, reports[0].OK())
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for initial run")
	}

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	saveBuiltin(t, e, path)

	select {
	case <-results:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for rerun")
	}
	assert.GreaterOrEqual(t, rounds.Load(), int32(2))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestOptions(t *testing.T) {
	var handled error
	o := defaultOptions()
	for _, opt := range []Option{
		WithStrict(true),
		WithStrictYAML(false),
		WithWatchDebounce(time.Second),
		WithWatcherErrorHandler(func(err error) { handled = err }),
	} {
		opt(o)
	}
	assert.True(t, o.strict)
	assert.False(t, o.strictYAML)
	assert.Equal(t, time.Second, o.debounce)
	require.NotNil(t, o.errorHandler)
	o.errorHandler(core.ErrMismatch)
	assert.ErrorIs(t, handled, core.ErrMismatch)
}

func TestEngine_ExampleScenarios(t *testing.T) {
	reports, err := New(WithStrict(true)).RunFiles(context.Background(),
		[]string{filepath.Join("..", "..", "examples", "scenarios", "**", "*.yaml")})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.True(t, r.OK(), "%s: %+v", r.Source, r.Results)
	}
}
