package scenario

import (
	"fmt"

	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/dispatch"
)

// Eval runs a single call against the scenario's values.
//
// The per-argument capability is only known at runtime here, so Eval picks
// the wrapper type with an ordinary branch and hands a fully typed call to
// dispatch. Inside dispatch the choice is carried by the type alone.
func (s *Scenario) Eval(c Call) (fmt.Stringer, error) {
	ops, err := s.resolve(c)
	if err != nil {
		return nil, err
	}
	if c.Op == OpFXor {
		return evalFXor(ops[0], ops[1]), nil
	}
	return evalF(ops[0], ops[1]), nil
}

func evalF(x, y operand) dispatch.FResult {
	if x.as == core.TagTrait1 {
		return evalFWith(dispatch.As1(&x.t1), y)
	}
	return evalFWith(dispatch.As2(&x.t2), y)
}

func evalFWith[X dispatch.AsTrait1Or2](x X, y operand) dispatch.FResult {
	if y.as == core.TagTrait1 {
		return dispatch.F(x, dispatch.As1(&y.t1))
	}
	return dispatch.F(x, dispatch.As2(&y.t2))
}

// evalFXor expects operands already checked by resolve.
func evalFXor(x, y operand) dispatch.FXorResult {
	if x.as == core.TagTrait1 {
		return dispatch.FXor(dispatch.Xor12(dispatch.As1(&x.t1), dispatch.As2(&y.t2)))
	}
	return dispatch.FXor(dispatch.Xor21(dispatch.As2(&x.t2), dispatch.As1(&y.t1)))
}
