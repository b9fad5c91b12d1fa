package core

import "fmt"

// noImplTrait1 and noImplTrait2 stand in for the capability a wrapper does not
// carry. Following them is a wiring defect in the dispatch tables.
type noImplTrait1 struct{}

type noImplTrait2 struct{}

func (noImplTrait1) Method1() uint32 {
	panic(fmt.Errorf("%w: Method1 called on the Trait1 sentinel", ErrNotImplemented))
}

func (noImplTrait2) Method2() string {
	panic(fmt.Errorf("%w: Method2 called on the Trait2 sentinel", ErrNotImplemented))
}

var (
	noImpl1 noImplTrait1
	noImpl2 noImplTrait2
)

// NoImplTrait1 returns the shared Trait1 sentinel.
func NoImplTrait1() Trait1 { return noImpl1 }

// NoImplTrait2 returns the shared Trait2 sentinel.
func NoImplTrait2() Trait2 { return noImpl2 }
