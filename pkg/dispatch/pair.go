package dispatch

import "github.com/aretw0/overload/pkg/core"

// PairAsTraits1Xor2 is implemented only by Pair12 and Pair21, the two pair
// shapes that cover each capability exactly once. A pair of two Trait1 (or two
// Trait2) wrappers has no type that satisfies it, so such a call does not compile.
// As with AsTrait1Or2, the methods are unexported and cannot be overridden
// from another package.
//
// t12 returns the real references when the ordering is Traits1And2 and
// sentinels otherwise; t21 is the mirror image.
type PairAsTraits1Xor2 interface {
	tags() core.XorTag
	t12() (core.Trait1, core.Trait2)
	t21() (core.Trait2, core.Trait1)
}

// Pair12 is a (Trait1, Trait2) argument pair.
type Pair12[T1 core.Trait1, T2 core.Trait2] struct {
	First  AsTrait1[T1]
	Second AsTrait2[T2]
}

// Pair21 is a (Trait2, Trait1) argument pair.
type Pair21[T1 core.Trait2, T2 core.Trait1] struct {
	First  AsTrait2[T1]
	Second AsTrait1[T2]
}

// Xor12 builds the Trait1-then-Trait2 pair.
func Xor12[T1 core.Trait1, T2 core.Trait2](x AsTrait1[T1], y AsTrait2[T2]) Pair12[T1, T2] {
	return Pair12[T1, T2]{First: x, Second: y}
}

// Xor21 builds the Trait2-then-Trait1 pair.
func Xor21[T1 core.Trait2, T2 core.Trait1](x AsTrait2[T1], y AsTrait1[T2]) Pair21[T1, T2] {
	return Pair21[T1, T2]{First: x, Second: y}
}

// XorTagOf returns the static ordering of pair type P without an instance.
func XorTagOf[P PairAsTraits1Xor2]() core.XorTag {
	var zero P
	return zero.tags()
}

func (Pair12[T1, T2]) tags() core.XorTag { return core.Traits1And2 }

func (p Pair12[T1, T2]) t12() (core.Trait1, core.Trait2) {
	return p.First.t1(), p.Second.t2()
}

func (Pair12[T1, T2]) t21() (core.Trait2, core.Trait1) {
	return core.NoImplTrait2(), core.NoImplTrait1()
}

func (Pair21[T1, T2]) tags() core.XorTag { return core.Traits2And1 }

func (Pair21[T1, T2]) t12() (core.Trait1, core.Trait2) {
	return core.NoImplTrait1(), core.NoImplTrait2()
}

func (p Pair21[T1, T2]) t21() (core.Trait2, core.Trait1) {
	return p.First.t2(), p.Second.t1()
}

// Tags reports Traits1And2.
func (p Pair12[T1, T2]) Tags() core.XorTag { return p.tags() }

// T12 returns the first and second elements.
func (p Pair12[T1, T2]) T12() (core.Trait1, core.Trait2) { return p.t12() }

// T21 returns sentinels.
func (p Pair12[T1, T2]) T21() (core.Trait2, core.Trait1) { return p.t21() }

// Tags reports Traits2And1.
func (p Pair21[T1, T2]) Tags() core.XorTag { return p.tags() }

// T12 returns sentinels.
func (p Pair21[T1, T2]) T12() (core.Trait1, core.Trait2) { return p.t12() }

// T21 returns the first and second elements.
func (p Pair21[T1, T2]) T21() (core.Trait2, core.Trait1) { return p.t21() }

var (
	_ PairAsTraits1Xor2 = Pair12[core.Trait1, core.Trait2]{}
	_ PairAsTraits1Xor2 = Pair21[core.Trait2, core.Trait1]{}
)
