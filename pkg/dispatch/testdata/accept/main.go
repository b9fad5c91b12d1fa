package main

import (
	"fmt"

	"github.com/aretw0/overload/pkg/dispatch"
)

type one struct{}

func (one) Method1() uint32 { return 1 }

type two struct{}

func (two) Method2() string { return "two" }

func main() {
	a, b := one{}, two{}
	fmt.Println(dispatch.F(dispatch.As1(&a), dispatch.As2(&b)))
	fmt.Println(dispatch.FXor(dispatch.Xor12(dispatch.As1(&a), dispatch.As2(&b))))
	fmt.Println(dispatch.FXor(dispatch.Xor21(dispatch.As2(&b), dispatch.As1(&a))))
}
