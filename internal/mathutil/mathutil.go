// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil provides widening helpers for digit arithmetic
// in bases up to 2^63.
package mathutil

import (
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// MulMod returns (a*b)%base for digits a, b < base.
// The 128-bit product narrows safely: a, b < base guarantees
// that the high word is below the divisor.
func MulMod(a, b, base uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, base)
	return rem
}

// MulDiv returns (a*b)/base for digits a, b < base.
func MulDiv(a, b, base uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	quo, _ := bits.Div64(hi, lo, base)
	return quo
}

// DivStep divides rem*base+digit by divisor, where rem < divisor and
// digit < base. It folds one more dividend digit into a running
// remainder during short division.
func DivStep(rem, digit, divisor, base uint64) (quo, newRem uint64) {
	hi, lo := bits.Mul64(rem, base)
	var carry uint64
	lo, carry = bits.Add64(lo, digit, 0)
	hi += carry
	return bits.Div64(hi, lo, divisor)
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
