package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/overload/pkg/core"
)

// Config holds the runner configuration.
type Config struct {
	Logger *slog.Logger
	// Strict stops a run at the first failing call.
	Strict bool
}

// CallResult is the outcome of one call.
type CallResult struct {
	Index int    `json:"index"`
	Op    Op     `json:"op"`
	Args  []Arg  `json:"args"`
	Got   string `json:"got,omitempty"`
	Want  string `json:"want,omitempty"`
	Err   string `json:"error,omitempty"`
	OK    bool   `json:"ok"`
}

// Report summarizes a scenario run.
type Report struct {
	Scenario string       `json:"scenario"`
	Source   string       `json:"source,omitempty"`
	Results  []CallResult `json:"results"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
}

// OK reports whether every call passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Runner evaluates scenarios. It is safe for concurrent use.
type Runner struct {
	config Config

	mu       sync.RWMutex
	runs     int
	calls    int
	failures int
	last     string
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(config Config) *Runner {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{config: config}
}

// Run evaluates every call in s. Calls without an expectation pass when they
// dispatch without error. The returned error is non-nil only for invalid
// scenarios, context cancellation, or a mismatch in strict mode.
func (r *Runner) Run(ctx context.Context, s *Scenario) (Report, error) {
	report := Report{Scenario: s.Name, Source: s.Source}
	if err := s.Validate(); err != nil {
		return report, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	log := r.config.Logger.With("scenario", s.Name)
	log.Debug("running scenario", "calls", len(s.Calls))

	var runErr error
	for i, c := range s.Calls {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		res := r.runCall(i, s, c)
		report.Results = append(report.Results, res)
		if res.OK {
			report.Passed++
			log.Debug("call passed", "index", i, "op", c.Op, "got", res.Got)
			continue
		}

		report.Failed++
		log.Warn("call failed", "index", i, "op", c.Op, "got", res.Got, "want", res.Want, "error", res.Err)
		if r.config.Strict {
			runErr = fmt.Errorf("scenario %q call %d: %w", s.Name, i, core.ErrMismatch)
			break
		}
	}

	r.record(report)
	log.Info("scenario finished", "passed", report.Passed, "failed", report.Failed)
	return report, runErr
}

// RunAll runs each scenario in order. Reports for every scenario that ran are
// returned along with the joined errors.
func (r *Runner) RunAll(ctx context.Context, scenarios []*Scenario) ([]Report, error) {
	reports := make([]Report, 0, len(scenarios))
	var errs []error
	for _, s := range scenarios {
		rep, err := r.Run(ctx, s)
		reports = append(reports, rep)
		if err != nil {
			errs = append(errs, err)
			if r.config.Strict || ctx.Err() != nil {
				break
			}
		}
	}
	return reports, errors.Join(errs...)
}

func (r *Runner) runCall(i int, s *Scenario, c Call) CallResult {
	res := CallResult{Index: i, Op: c.Op, Args: c.Args}

	got, err := s.Eval(c)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Got = got.String()

	if c.Expect == nil {
		res.OK = true
		return res
	}
	want, err := c.Expect.Result()
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Want = want.String()
	res.OK = got == want
	if !res.OK {
		res.Err = core.ErrMismatch.Error()
	}
	return res
}

func (r *Runner) record(rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	r.calls += len(rep.Results)
	r.failures += rep.Failed
	r.last = rep.Scenario
}
