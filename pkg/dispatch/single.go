package dispatch

import "github.com/aretw0/overload/pkg/core"

// AsTrait1Or2 is implemented by exactly the two wrapper types.
//
// Every method of the contract is unexported, so a type from another package
// can satisfy it only by embedding a wrapper, and then it inherits that
// wrapper's tag and accessors unchanged. Redeclaring Tag on the outer type has
// no effect on dispatch.
//
// The tag is a property of the type: it must not read the receiver, so it can
// be evaluated on a zero value (see TagOf). The accessor for the capability the
// wrapper does not carry returns the matching sentinel.
type AsTrait1Or2 interface {
	tag() core.Tag
	t1() core.Trait1
	t2() core.Trait2
}

// TagOf returns the static tag of wrapper type W without an instance.
func TagOf[W AsTrait1Or2]() core.Tag {
	var zero W
	return zero.tag()
}

func (AsTrait1[T]) tag() core.Tag { return core.TagTrait1 }

func (w AsTrait1[T]) t1() core.Trait1 { return *w.ref }

func (AsTrait1[T]) t2() core.Trait2 { return core.NoImplTrait2() }

func (AsTrait2[T]) tag() core.Tag { return core.TagTrait2 }

func (AsTrait2[T]) t1() core.Trait1 { return core.NoImplTrait1() }

func (w AsTrait2[T]) t2() core.Trait2 { return *w.ref }

// Tag reports TagTrait1.
func (w AsTrait1[T]) Tag() core.Tag { return w.tag() }

// T1 returns the wrapped value.
func (w AsTrait1[T]) T1() core.Trait1 { return w.t1() }

// T2 returns the Trait2 sentinel.
func (w AsTrait1[T]) T2() core.Trait2 { return w.t2() }

// Tag reports TagTrait2.
func (w AsTrait2[T]) Tag() core.Tag { return w.tag() }

// T1 returns the Trait1 sentinel.
func (w AsTrait2[T]) T1() core.Trait1 { return w.t1() }

// T2 returns the wrapped value.
func (w AsTrait2[T]) T2() core.Trait2 { return w.t2() }

var (
	_ AsTrait1Or2 = AsTrait1[core.Trait1]{}
	_ AsTrait1Or2 = AsTrait2[core.Trait2]{}
)
