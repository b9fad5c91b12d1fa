package dispatch

import "fmt"

// FResult is the outcome of F: either Str or IntInt.
type FResult interface {
	fmt.Stringer
	fResult()
}

// Str carries the text of the first Trait2 operand.
type Str struct {
	Value string `json:"str" yaml:"str"`
}

// IntInt carries the Trait1 values of both operands, left then right.
type IntInt struct {
	Left  uint32 `json:"left" yaml:"left"`
	Right uint32 `json:"right" yaml:"right"`
}

func (Str) fResult()    {}
func (IntInt) fResult() {}

func (r Str) String() string    { return fmt.Sprintf("Str(%q)", r.Value) }
func (r IntInt) String() string { return fmt.Sprintf("IntInt(%d, %d)", r.Left, r.Right) }

// FXorResult is the outcome of FXor: either IntStr or StrInt.
type FXorResult interface {
	fmt.Stringer
	fXorResult()
}

// IntStr is produced for a (Trait1, Trait2) pair.
type IntStr struct {
	Int uint32 `json:"int" yaml:"int"`
	Str string `json:"str" yaml:"str"`
}

// StrInt is produced for a (Trait2, Trait1) pair.
type StrInt struct {
	Str string `json:"str" yaml:"str"`
	Int uint32 `json:"int" yaml:"int"`
}

func (IntStr) fXorResult() {}
func (StrInt) fXorResult() {}

func (r IntStr) String() string { return fmt.Sprintf("IntStr(%d, %q)", r.Int, r.Str) }
func (r StrInt) String() string { return fmt.Sprintf("StrInt(%q, %d)", r.Str, r.Int) }
