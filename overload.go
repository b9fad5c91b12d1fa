package overload

import (
	"log/slog"
	"time"

	"github.com/aretw0/overload/internal/platform"
	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/dispatch"
	"github.com/aretw0/overload/pkg/scenario"
)

// --- Capabilities ---

// Trait1 is the capability of reporting an unsigned count.
type Trait1 = core.Trait1

// Trait2 is the capability of rendering as text.
type Trait2 = core.Trait2

// --- Wrappers ---

// AsTrait1 presents a borrowed value as Trait1.
type AsTrait1[T Trait1] = dispatch.AsTrait1[T]

// AsTrait2 presents a borrowed value as Trait2.
type AsTrait2[T Trait2] = dispatch.AsTrait2[T]

// AsTrait1Or2 is the constraint satisfied by both wrappers.
type AsTrait1Or2 = dispatch.AsTrait1Or2

// Pair12 and Pair21 are the two valid argument shapes of FXor.
type (
	Pair12[T1 Trait1, T2 Trait2] = dispatch.Pair12[T1, T2]
	Pair21[T1 Trait2, T2 Trait1] = dispatch.Pair21[T1, T2]
)

// PairAsTraits1Xor2 is the constraint satisfied by Pair12 and Pair21 only.
type PairAsTraits1Xor2 = dispatch.PairAsTraits1Xor2

// As1 wraps v as a Trait1 argument.
func As1[T Trait1](v *T) AsTrait1[T] { return dispatch.As1(v) }

// As2 wraps v as a Trait2 argument.
func As2[T Trait2](v *T) AsTrait2[T] { return dispatch.As2(v) }

// Xor12 builds a (Trait1, Trait2) pair for FXor.
func Xor12[T1 Trait1, T2 Trait2](x AsTrait1[T1], y AsTrait2[T2]) Pair12[T1, T2] {
	return dispatch.Xor12(x, y)
}

// Xor21 builds a (Trait2, Trait1) pair for FXor.
func Xor21[T1 Trait2, T2 Trait1](x AsTrait2[T1], y AsTrait1[T2]) Pair21[T1, T2] {
	return dispatch.Xor21(x, y)
}

// --- Results ---

type (
	FResult    = dispatch.FResult
	Str        = dispatch.Str
	IntInt     = dispatch.IntInt
	FXorResult = dispatch.FXorResult
	IntStr     = dispatch.IntStr
	StrInt     = dispatch.StrInt
)

// --- Entry points ---

// F is the commutative overload: text of the first Trait2 operand (left wins),
// or both Trait1 values.
func F[X, Y AsTrait1Or2](x X, y Y) FResult { return dispatch.F(x, y) }

// FXor is the exclusive-pair overload.
func FXor[P PairAsTraits1Xor2](p P) FXorResult { return dispatch.FXor(p) }

// --- Scenarios ---

// Scenario is a declarative list of f / f_xor calls.
type Scenario = scenario.Scenario

// Report summarizes a scenario run.
type Report = scenario.Report

// Engine loads and runs scenario files.
type Engine = platform.Engine

// Option configures an Engine.
type Option = platform.Option

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStrict stops a run at the first mismatching call.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithStrictYAML rejects unknown keys in scenario files (default true).
func WithStrictYAML(strict bool) Option {
	return platform.WithStrictYAML(strict)
}

// WithWatchDebounce sets the debounce window used in watch mode.
func WithWatchDebounce(d time.Duration) Option {
	return platform.WithWatchDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	return platform.New(opts...)
}
