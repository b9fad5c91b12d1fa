// Package overload simulates ad-hoc function overloading with Go generics.
//
// A call dispatches to different behavior depending on which of two
// capabilities (Trait1, Trait2) each argument is presented as. The choice is
// made by the argument's wrapper type, so every instantiation of F or FXor
// sees constant tags and no runtime type inspection takes place.
//
// Features:
//
//   - **Tagging wrappers**: As1 / As2 borrow a value and fix the capability it is presented as.
//   - **F**: commutative binary overload. Text of the first Trait2 operand, or both Trait1 values.
//   - **FXor**: exclusive-pair overload. Only (Trait1, Trait2) and (Trait2, Trait1)
//     pairs type-check; two arguments of the same capability do not compile.
//   - **Sentinels**: the accessor for an absent capability returns a stand-in that
//     panics with core.ErrNotImplemented if followed.
//   - **Scenarios**: YAML call lists evaluated by an Engine (see cmd/overload).
//
// Usage:
//
//	type Seven struct{}
//	func (Seven) Method1() uint32 { return 7 }
//
//	type Asd struct{}
//	func (Asd) Method2() string { return "asd" }
//
//	a, b := Seven{}, Asd{}
//	overload.F(overload.As1(&a), overload.As2(&b))                   // Str("asd")
//	overload.FXor(overload.Xor12(overload.As1(&a), overload.As2(&b))) // IntStr(7, "asd")
//	overload.FXor(overload.Xor12(overload.As1(&a), overload.As1(&a))) // does not compile
package overload
