// Package scenario drives the dispatch package from declarative call lists.
//
// A Scenario names a set of values and a list of f / f_xor calls over them.
// Each call picks, per argument, which capability the value is presented as;
// the runner turns that choice into the matching wrapper type and lets
// dispatch resolve the overload.
package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/dispatch"
)

// Op names an entry point.
type Op string

const (
	OpF    Op = "f"
	OpFXor Op = "f_xor"
)

// Scenario is a named list of calls.
type Scenario struct {
	Name   string           `yaml:"name" json:"name"`
	Values map[string]Value `yaml:"values" json:"values"`
	Calls  []Call           `yaml:"calls" json:"calls"`

	// Source is the file the scenario was loaded from, if any.
	Source string `yaml:"-" json:"source,omitempty"`
}

// Arg selects a value and the capability it is presented as.
type Arg struct {
	Value string `yaml:"value" json:"value"`
	As    string `yaml:"as" json:"as"`
}

// Call is one invocation of f or f_xor.
type Call struct {
	Op     Op      `yaml:"op" json:"op"`
	Args   []Arg   `yaml:"args" json:"args"`
	Expect *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect holds the expected result of a call. Exactly one field is set.
type Expect struct {
	Str    *string          `yaml:"str,omitempty" json:"str,omitempty"`
	IntInt *dispatch.IntInt `yaml:"intint,omitempty" json:"intint,omitempty"`
	IntStr *dispatch.IntStr `yaml:"intstr,omitempty" json:"intstr,omitempty"`
	StrInt *dispatch.StrInt `yaml:"strint,omitempty" json:"strint,omitempty"`
}

// Result returns the expected value in the same shape F or FXor produces.
func (e Expect) Result() (fmt.Stringer, error) {
	var (
		out fmt.Stringer
		n   int
	)
	if e.Str != nil {
		out, n = dispatch.Str{Value: *e.Str}, n+1
	}
	if e.IntInt != nil {
		out, n = *e.IntInt, n+1
	}
	if e.IntStr != nil {
		out, n = *e.IntStr, n+1
	}
	if e.StrInt != nil {
		out, n = *e.StrInt, n+1
	}
	if n != 1 {
		return nil, fmt.Errorf("%w: expect must set exactly one of str, intint, intstr, strint (got %d)", core.ErrInvalidScenario, n)
	}
	return out, nil
}

// Validate checks that every call is well formed and can be dispatched.
// All problems are reported together.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, fmt.Errorf("%w: missing name", core.ErrInvalidScenario))
	}

	names := make([]string, 0, len(s.Values))
	for name := range s.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := s.Values[name].bind(); err != nil {
			errs = append(errs, fmt.Errorf("value %q: %w", name, err))
		}
	}

	for i, c := range s.Calls {
		if _, err := s.resolve(c); err != nil {
			errs = append(errs, fmt.Errorf("call %d: %w", i, err))
			continue
		}
		if c.Expect != nil {
			if _, err := c.Expect.Result(); err != nil {
				errs = append(errs, fmt.Errorf("call %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// operand is an argument resolved against the scenario's values.
type operand struct {
	as core.Tag
	binding
}

func (s *Scenario) resolve(c Call) ([2]operand, error) {
	var ops [2]operand
	if c.Op != OpF && c.Op != OpFXor {
		return ops, fmt.Errorf("%w: unknown op %q", core.ErrInvalidScenario, c.Op)
	}
	if len(c.Args) != 2 {
		return ops, fmt.Errorf("%w: %s takes 2 arguments, got %d", core.ErrInvalidScenario, c.Op, len(c.Args))
	}
	for i, a := range c.Args {
		v, ok := s.Values[a.Value]
		if !ok {
			return ops, fmt.Errorf("%w: %q", core.ErrUnknownValue, a.Value)
		}
		tag, ok := core.ParseTag(a.As)
		if !ok {
			return ops, fmt.Errorf("%w: argument %d: unknown capability %q", core.ErrInvalidScenario, i, a.As)
		}
		b, err := v.bind()
		if err != nil {
			return ops, fmt.Errorf("value %q: %w", a.Value, err)
		}
		if (tag == core.TagTrait1 && b.t1 == nil) || (tag == core.TagTrait2 && b.t2 == nil) {
			return ops, fmt.Errorf("%w: %q as %s", core.ErrCapabilityMissing, a.Value, tag)
		}
		ops[i] = operand{as: tag, binding: b}
	}
	if c.Op == OpFXor && ops[0].as == ops[1].as {
		return ops, fmt.Errorf("%w: both arguments are %s", core.ErrSameCapability, ops[0].as)
	}
	return ops, nil
}
