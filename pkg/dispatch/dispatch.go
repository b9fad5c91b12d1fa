// Package dispatch resolves overloads from the wrapper types of the arguments.
//
// F and FXor are generic over the wrapper types, so each instantiation sees
// constant tags. No type switch or reflection takes part in picking a branch.
package dispatch

import (
	"fmt"

	"github.com/aretw0/overload/pkg/core"
)

// F returns the text of the first Trait2 operand, checking x before y, or the
// Trait1 values of both operands when neither carries Trait2.
// When x carries Trait2, y is never invoked.
func F[X, Y AsTrait1Or2](x X, y Y) FResult {
	// Keep this exhaustive over core.Tags() x core.Tags(). With two tags the
	// third case always holds once both Trait2 cases fail; default only guards
	// against a tag added to core without a branch here.
	switch tx, ty := TagOf[X](), TagOf[Y](); {
	case tx == core.TagTrait2:
		return Str{Value: x.t2().Method2()}
	case ty == core.TagTrait2:
		return Str{Value: y.t2().Method2()}
	case tx == core.TagTrait1 && ty == core.TagTrait1:
		return IntInt{Left: x.t1().Method1(), Right: y.t1().Method1()}
	default:
		panic(fmt.Errorf("%w: f(%s, %s)", core.ErrUnreachable, tx, ty))
	}
}

// FXor returns (int, text) or (text, int) depending on which element of the
// pair carries which capability.
func FXor[P PairAsTraits1Xor2](p P) FXorResult {
	switch tags := XorTagOf[P](); tags {
	case core.Traits1And2:
		x, y := p.t12()
		return IntStr{Int: x.Method1(), Str: y.Method2()}
	case core.Traits2And1:
		x, y := p.t21()
		return StrInt{Str: x.Method2(), Int: y.Method1()}
	default:
		panic(fmt.Errorf("%w: f_xor(%s)", core.ErrUnreachable, tags))
	}
}
