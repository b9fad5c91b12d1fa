// Package core defines the two capabilities, their static tags, the
// sentinels that stand in for an absent capability, and shared errors.
package core

// Trait1 is the first capability: a value that can report an unsigned count.
type Trait1 interface {
	Method1() uint32
}

// Trait2 is the second capability: a value that can render itself as text.
type Trait2 interface {
	Method2() string
}
