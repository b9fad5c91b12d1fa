package main

import "github.com/aretw0/overload/pkg/dispatch"

type two struct{}

func (two) Method2() string { return "two" }

func main() {
	b := two{}
	_ = dispatch.FXor(dispatch.Xor21(dispatch.As2(&b), dispatch.As2(&b)))
}
