package main

import "github.com/aretw0/overload/pkg/dispatch"

type one struct{}

func (one) Method1() uint32 { return 1 }

func main() {
	a, c := one{}, one{}
	_ = dispatch.FXor(dispatch.Xor12(dispatch.As1(&a), dispatch.As1(&c)))
}
