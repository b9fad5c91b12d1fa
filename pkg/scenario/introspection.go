package scenario

import (
	"github.com/aretw0/introspection"
)

// RunnerState exposes internal state for observability.
type RunnerState struct {
	Runs         int    `json:"runs"`
	Calls        int    `json:"calls"`
	Failures     int    `json:"failures"`
	Strict       bool   `json:"strict"`
	LastScenario string `json:"last_scenario,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Runner) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RunnerState{
		Runs:         r.runs,
		Calls:        r.calls,
		Failures:     r.failures,
		Strict:       r.config.Strict,
		LastScenario: r.last,
	}
}

// ComponentType implements introspection.Component.
func (r *Runner) ComponentType() string {
	return "runner"
}

var _ introspection.Introspectable = (*Runner)(nil)
var _ introspection.Component = (*Runner)(nil)
