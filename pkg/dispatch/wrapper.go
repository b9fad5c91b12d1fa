package dispatch

import "github.com/aretw0/overload/pkg/core"

// AsTrait1 presents a borrowed *T as a Trait1 argument.
type AsTrait1[T core.Trait1] struct {
	ref *T
}

// AsTrait2 presents a borrowed *T as a Trait2 argument.
type AsTrait2[T core.Trait2] struct {
	ref *T
}

// As1 wraps v so that dispatch treats it as a Trait1 value.
// The wrapper borrows v; it must stay valid for the duration of the call.
func As1[T core.Trait1](v *T) AsTrait1[T] {
	return AsTrait1[T]{ref: v}
}

// As2 wraps v so that dispatch treats it as a Trait2 value.
func As2[T core.Trait2](v *T) AsTrait2[T] {
	return AsTrait2[T]{ref: v}
}

// Value returns the borrowed pointer.
func (w AsTrait1[T]) Value() *T { return w.ref }

// Value returns the borrowed pointer.
func (w AsTrait2[T]) Value() *T { return w.ref }
