// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"fmt"
)

func ExampleFromString() {
	v, err := FromString("1.25")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 1.25
}

func ExampleNumber_Add() {
	x, _ := FromString("1.5")
	y, _ := FromString("2.25")
	fmt.Println(x.Add(y))
	// Output: 3.75
}

func ExampleNumber_Sub() {
	x, _ := FromString("1")
	y, _ := FromString("0.0000001")
	fmt.Println(x.Sub(y))
	// Output: 0.9999999
}

func ExampleNumber_Mul() {
	x, _ := FromString("123456789")
	y, _ := FromString("987654321")
	fmt.Println(x.Mul(y))
	// Output: 121932631112635269
}

func ExampleNumber_Div() {
	x, _ := FromString("1")
	y, _ := FromString("3")
	quotient, err := x.Div(y, 10, false)
	if err != nil {
		panic(err)
	}

	// the result approaches the exact value from below.
	product := quotient.Mul(y)
	fmt.Println(product.Greater(Number{}))
	fmt.Println(product.Less(x) || product.Eq(x))
	// Output:
	// true
	// true
}

func ExampleNumber_Round() {
	v, _ := FromString("1.2345")
	fmt.Println(v.Round(2, true))
	fmt.Println(v.Round(2, false))
	// Output:
	// 1.3
	// 1.1
}
