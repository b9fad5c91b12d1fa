package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/overload/pkg/adapters/fs"
	"github.com/aretw0/overload/pkg/scenario"
)

// Engine wires a scenario loader to a runner.
type Engine struct {
	Loader *fs.Loader
	Runner *scenario.Runner
	logger *slog.Logger
}

// New creates an Engine.
//
//	engine := platform.New(platform.WithLogger(logger), platform.WithStrict(true))
//	reports, err := engine.RunFiles(ctx, []string{"scenarios/**/*.yaml"})
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		Loader: fs.NewLoader(fs.Config{
			Logger:       logger,
			Strict:       o.strictYAML,
			Debounce:     o.debounce,
			ErrorHandler: o.errorHandler,
		}),
		Runner: scenario.NewRunner(scenario.Config{
			Logger: logger,
			Strict: o.strict,
		}),
		logger: logger,
	}
}

// RunFiles loads every scenario matched by patterns and runs them.
func (e *Engine) RunFiles(ctx context.Context, patterns []string) ([]scenario.Report, error) {
	scenarios, err := e.Loader.LoadAll(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}
	return e.Runner.RunAll(ctx, scenarios)
}

// RunBuiltin runs the built-in reference scenario.
func (e *Engine) RunBuiltin(ctx context.Context) (scenario.Report, error) {
	return e.Runner.Run(ctx, scenario.Builtin())
}

// Watch runs patterns once, then again after every change, passing each
// round's outcome to onResult. It blocks until ctx is cancelled.
func (e *Engine) Watch(ctx context.Context, patterns []string, onResult func([]scenario.Report, error)) error {
	onResult(e.RunFiles(ctx, patterns))

	done, err := e.Loader.Watch(ctx, patterns, func(ctx context.Context, paths []string) {
		e.logger.Info("rerunning scenarios", "changed", len(paths))
		onResult(e.RunFiles(ctx, patterns))
	})
	if err != nil {
		return err
	}
	<-done
	return nil
}
