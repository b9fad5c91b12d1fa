package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/dispatch"
)

func TestRunner_Builtin(t *testing.T) {
	r := NewRunner(Config{})

	report, err := r.Run(context.Background(), Builtin())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 6, report.Passed)
	assert.Equal(t, `IntStr(7, "asd")`, report.Results[4].Got)
	assert.Equal(t, `StrInt("asd", 3)`, report.Results[5].Got)
}

func mismatching() *Scenario {
	s := testScenario()
	s.Calls = []Call{
		{Op: OpF, Args: args("a", "trait1", "c", "trait1"), Expect: &Expect{IntInt: &dispatch.IntInt{Left: 3, Right: 7}}},
		{Op: OpF, Args: args("a", "trait1", "b", "trait2")},
	}
	return s
}

func TestRunner_ReportsMismatch(t *testing.T) {
	r := NewRunner(Config{})

	report, err := r.Run(context.Background(), mismatching())
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)

	first := report.Results[0]
	assert.False(t, first.OK)
	assert.Equal(t, "IntInt(7, 3)", first.Got)
	assert.Equal(t, "IntInt(3, 7)", first.Want)
	assert.Equal(t, core.ErrMismatch.Error(), first.Err)

	second := report.Results[1]
	assert.True(t, second.OK, "calls without expectation pass")
	assert.Equal(t, `Str("asd")`, second.Got)
}

func TestRunner_StrictStopsEarly(t *testing.T) {
	r := NewRunner(Config{Strict: true})

	report, err := r.Run(context.Background(), mismatching())
	assert.ErrorIs(t, err, core.ErrMismatch)
	assert.Len(t, report.Results, 1)
}

func TestRunner_InvalidScenario(t *testing.T) {
	r := NewRunner(Config{})
	s := testScenario()
	s.Calls = []Call{call(OpFXor, "b", "trait2", "b", "trait2")}

	_, err := r.Run(context.Background(), s)
	assert.ErrorIs(t, err, core.ErrSameCapability)
}

func TestRunner_Cancelled(t *testing.T) {
	r := NewRunner(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx, Builtin())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestRunner_RunAllAndState(t *testing.T) {
	r := NewRunner(Config{})

	reports, err := r.RunAll(context.Background(), []*Scenario{Builtin(), mismatching()})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	state, ok := r.State().(RunnerState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Runs)
	assert.Equal(t, 8, state.Calls)
	assert.Equal(t, 1, state.Failures)
	assert.Equal(t, "test", state.LastScenario)
	assert.Equal(t, "runner", r.ComponentType())
}

func TestRunner_Concurrent(t *testing.T) {
	r := NewRunner(Config{})
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = r.Run(context.Background(), Builtin())
			_ = r.State()
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	state := r.State().(RunnerState)
	assert.Equal(t, 8, state.Runs)
	assert.Equal(t, 48, state.Calls)
}
