package main

import "github.com/aretw0/overload/pkg/dispatch"

type one struct{}

func (one) Method1() uint32 { return 1 }

func main() {
	a := one{}
	_ = dispatch.F(a, dispatch.As1(&a))
}
