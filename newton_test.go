// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivTrivial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y string
		res  string
	}{
		{"0", "3", "0"},
		{"5", "1", "5"},
		{"5", "-1", "-5"},
		{"-5", "-1", "5"},
		{"-2.5", "1", "-2.5"},
		{"7", "7", "1"},
		{"-0.125", "-0.125", "1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := mustParse(t, test.x), mustParse(t, test.y)
			for _, up := range []bool{false, true} {
				res, err := x.Div(y, 10, up)
				a.NoError(err)
				a.Equal(test.res, res.String())
			}
		})
	}
}

func TestDivErrors(t *testing.T) {
	a := assert.New(t)
	_, err := mustParse(t, "1").Div(mustParse(t, "0"), 10, false)
	a.True(errors.Is(err, ErrDivideByZero))

	_, err = mustParse(t, "1").Div(mustParse(t, "0.000"), 10, true)
	a.True(errors.Is(err, ErrDivideByZero))

	_, err = mustParse(t, "1").Div(mustParse(t, "3"), maxPrecision+1, false)
	a.True(errors.Is(err, ErrExponentOverflow))
}

// divErrorBound is the absolute division error bound, base^(-precision).
func divErrorBound(precision int) Number {
	return Number{digits: []uint64{1}, exp: 1 - precision, pos: true}
}

func TestDivResidual(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y      string
		precision int
	}{
		{"1", "3", 10},
		{"2", "7", 12},
		{"10", "3", 5},
		{"1", "7", 15},
		{"355", "113", 20},
		{"0.5", "0.3", 8},
		{"123.456", "7.89", 10},
		{"1", "999983", 12},
		{"4882.182", "303.01", 7},
		{"9999.9999", "0.0003", 6},
		{"0.001", "7", 8},
	}
	zero := mustParse(t, "0")
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := mustParse(t, test.x), mustParse(t, test.y)
			bound := divErrorBound(test.precision)

			lower, err := x.Div(y, test.precision, false)
			a.NoError(err)
			residual := lower.Mul(y).Sub(x)
			a.False(residual.Greater(zero))
			a.False(residual.Abs().Greater(bound))

			upper, err := x.Div(y, test.precision, true)
			a.NoError(err)
			residual = upper.Mul(y).Sub(x)
			a.False(residual.Less(zero))
			a.False(residual.Abs().Greater(bound))

			a.False(lower.Greater(upper))
		})
	}
}

func TestDivNegativeResidual(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y      string
		precision int
	}{
		{"-1", "3", 10},
		{"1", "-3", 10},
		{"-1", "-3", 10},
		{"-10", "7", 8},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := mustParse(t, test.x), mustParse(t, test.y)
			bound := divErrorBound(test.precision)
			zero := mustParse(t, "0")
			for _, up := range []bool{false, true} {
				res, err := x.Div(y, test.precision, up)
				a.NoError(err)
				a.Equal(x.Sign()*y.Sign(), res.Sign())
				residual := res.Mul(y).Sub(x)
				if up {
					a.False(residual.Less(zero))
				} else {
					a.False(residual.Greater(zero))
				}
				a.False(residual.Abs().Greater(bound))
			}
		})
	}
}

func TestDivWorkingBase(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y      uint64
		precision int
	}{
		{10, 4, 6},
		{1, 3, 5},
		{math.MaxUint64, 7, 8},
		{1, WorkingBase - 1, 4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := FromUint64(test.x), FromUint64(test.y)
			bound := divErrorBound(test.precision)
			for _, up := range []bool{false, true} {
				res, err := x.Div(y, test.precision, up)
				a.NoError(err)
				a.Equal(WorkingBase, res.Base())
				residual := res.Mul(y).Sub(x)
				a.False(residual.Abs().Greater(bound))
			}
		})
	}
}

func BenchmarkDiv(b *testing.B) {
	f0, _ := FromString("1")
	f1, _ := FromString("3")

	for i := 0; i < b.N; i++ {
		if _, err := f0.Div(f1, 10, false); err != nil {
			b.Fatal(err)
		}
	}
}

func TestBinarySearchDivide(t *testing.T) {
	a := assert.New(t)

	res, err := binarySearchDivide(
		Number{digits: []uint64{1}, exp: 1, pos: true},
		Number{digits: []uint64{2}, exp: 1, pos: true},
		10, 10,
	)
	a.NoError(err)
	a.True(res.Eq(Number{digits: []uint64{5}, exp: 0, pos: true}))

	res, err = binarySearchDivide(
		Number{digits: []uint64{1}, exp: 1, pos: true},
		Number{digits: []uint64{4}, exp: 1, pos: true},
		10, 10,
	)
	a.NoError(err)
	a.True(res.Eq(Number{digits: []uint64{2, 5}, exp: 0, pos: true}))

	_, err = binarySearchDivide(
		Number{digits: []uint64{1}, exp: 1, pos: true},
		Number{digits: []uint64{0}, pos: true},
		10, 10,
	)
	a.True(errors.Is(err, ErrDivideByZero))

	res, err = binarySearchDivide(
		Number{digits: []uint64{0}, pos: true},
		Number{digits: []uint64{3}, exp: 1, pos: true},
		10, 10,
	)
	a.NoError(err)
	a.True(res.IsZero())
}
