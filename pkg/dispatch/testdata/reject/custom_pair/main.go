package main

import (
	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/dispatch"
)

// sameSame tries to pass two Trait1 values as an exclusive pair.
type sameSame struct{ a, b core.Trait1 }

func (sameSame) Tags() core.XorTag                 { return core.Traits1And2 }
func (p sameSame) T12() (core.Trait1, core.Trait2) { return p.a, nil }
func (sameSame) T21() (core.Trait2, core.Trait1)   { return nil, nil }

func main() {
	_ = dispatch.FXor(sameSame{})
}
