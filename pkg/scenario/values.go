package scenario

import (
	"fmt"

	"github.com/aretw0/overload/pkg/core"
)

// Number implements Trait1.
type Number uint32

func (n Number) Method1() uint32 { return uint32(n) }

// Text implements Trait2.
type Text string

func (t Text) Method2() string { return string(t) }

// Dual implements both capabilities and may be presented as either.
type Dual struct {
	N Number
	T Text
}

func (d Dual) Method1() uint32 { return d.N.Method1() }
func (d Dual) Method2() string { return d.T.Method2() }

var (
	_ core.Trait1 = Number(0)
	_ core.Trait2 = Text("")
	_ core.Trait1 = Dual{}
	_ core.Trait2 = Dual{}
)

// Value is the YAML description of a named value. At least one field is set.
type Value struct {
	Trait1 *uint32 `yaml:"trait1,omitempty" json:"trait1,omitempty"`
	Trait2 *string `yaml:"trait2,omitempty" json:"trait2,omitempty"`
}

// binding holds the capability views of a resolved Value. A nil view means
// the value does not implement that capability.
type binding struct {
	t1 core.Trait1
	t2 core.Trait2
}

func (v Value) bind() (binding, error) {
	switch {
	case v.Trait1 != nil && v.Trait2 != nil:
		d := Dual{N: Number(*v.Trait1), T: Text(*v.Trait2)}
		return binding{t1: d, t2: d}, nil
	case v.Trait1 != nil:
		return binding{t1: Number(*v.Trait1)}, nil
	case v.Trait2 != nil:
		return binding{t2: Text(*v.Trait2)}, nil
	default:
		return binding{}, fmt.Errorf("%w: value implements neither trait1 nor trait2", core.ErrInvalidScenario)
	}
}

// Num and Str build Values in code.
func Num(n uint32) Value { return Value{Trait1: &n} }

func Str(s string) Value { return Value{Trait2: &s} }

// Both builds a Value implementing both capabilities.
func Both(n uint32, s string) Value { return Value{Trait1: &n, Trait2: &s} }
