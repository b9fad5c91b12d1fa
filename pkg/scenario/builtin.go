package scenario

import "github.com/aretw0/overload/pkg/dispatch"

// Builtin returns the reference scenario: two Trait1 values (7 and 3) and one
// Trait2 value ("asd") exercised through every valid shape of f and f_xor.
func Builtin() *Scenario {
	asd := "asd"
	return &Scenario{
		Name: "builtin",
		Values: map[string]Value{
			"t1": Num(7),
			"t2": Str(asd),
			"t3": Num(3),
		},
		Calls: []Call{
			{Op: OpF, Args: args("t1", "trait1", "t3", "trait1"), Expect: &Expect{IntInt: &dispatch.IntInt{Left: 7, Right: 3}}},
			{Op: OpF, Args: args("t1", "trait1", "t1", "trait1"), Expect: &Expect{IntInt: &dispatch.IntInt{Left: 7, Right: 7}}},
			{Op: OpF, Args: args("t1", "trait1", "t2", "trait2"), Expect: &Expect{Str: &asd}},
			{Op: OpF, Args: args("t2", "trait2", "t1", "trait1"), Expect: &Expect{Str: &asd}},
			{Op: OpFXor, Args: args("t1", "trait1", "t2", "trait2"), Expect: &Expect{IntStr: &dispatch.IntStr{Int: 7, Str: asd}}},
			{Op: OpFXor, Args: args("t2", "trait2", "t3", "trait1"), Expect: &Expect{StrInt: &dispatch.StrInt{Str: asd, Int: 3}}},
		},
	}
}

func args(v1, as1, v2, as2 string) []Arg {
	return []Arg{{Value: v1, As: as1}, {Value: v2, As: as2}}
}
