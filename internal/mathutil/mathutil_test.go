// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const workingBase = uint64(math.MaxUint64/4) * 2

func TestPow10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		pow int
		res uint64
	}{
		{0, 1},
		{1, 10},
		{5, 100000},
		{19, 10000000000000000000},
		{-1, 0},
		{20, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Pow10(test.pow))
		})
	}
}

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		value uint64
		res   int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{math.MaxUint32, 10},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.value))
		})
	}
}

func TestMulModDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, base uint64
		quo, rem   uint64
	}{
		{0, 5, 10, 0, 0},
		{7, 8, 10, 5, 6},
		{9, 9, 10, 8, 1},
		{3, 3, workingBase, 0, 9},
		// (B-1)^2 = B*(B-2) + 1.
		{workingBase - 1, workingBase - 1, workingBase, workingBase - 2, 1},
		{workingBase - 1, 2, workingBase, 1, workingBase - 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.quo, MulDiv(test.x, test.y, test.base))
			a.Equal(test.rem, MulMod(test.x, test.y, test.base))
		})
	}
}

func TestDivStep(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		rem, digit, divisor, base uint64
		quo, newRem               uint64
	}{
		// 0*10+7 / 2
		{0, 7, 2, 10, 3, 1},
		// 1*10+3 / 7
		{1, 3, 7, 10, 1, 6},
		// 5*10+6 / 56
		{5, 6, 56, 10, 1, 0},
		// one step of dividing in workingBase by 3:
		// 2*(2^63-2)+5 = 2^64+1 = 3*6148914691236517205 + 2.
		{2, 5, 3, workingBase, 6148914691236517205, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			quo, rem := DivStep(test.rem, test.digit, test.divisor, test.base)
			a.Equal(test.quo, quo)
			a.Equal(test.newRem, rem)
		})
	}
}

func TestAbsInt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		val, res int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{math.MinInt32, -math.MinInt32},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, AbsInt(test.val))
		})
	}
}
