// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package exact implements a base-parameterized, arbitrary-precision,
// signed fixed-point number. Addition, subtraction, and multiplication
// are exact, division is exact up to a requested precision with a
// chosen rounding direction.
package exact

import (
	"math"

	"github.com/avdva/exact/internal/mathutil"
)

// WorkingBase is the default base of the digit vector.
// One code point of uint64 is reserved, so that digits of additive
// carries stay representable: a digit lies in [0, WorkingBase-1].
const WorkingBase = uint64(math.MaxUint64/4) * 2

// maxPrecision bounds the precision argument of Div, keeping
// exponent arithmetic far from the int range.
const maxPrecision = math.MaxInt32

// Number is an immutable arbitrary-precision fixed-point number.
// It holds a vector of digits in some base, most significant first,
// an exponent, which is the count of digits to the left of the radix
// point, and a sign. The numeric value is
//
//	sign * Σ digits[i] * base^(exp-1-i)
//
// Values built with FromDigits and FromUint64 use WorkingBase,
// values built with FromString keep their digits in base 10.
// Binary operations panic if the operands' bases differ.
// The zero value of the type represents the number zero.
type Number struct {
	digits []uint64
	exp    int
	pos    bool
	base   uint64
}

// FromDigits returns a number built from a digit vector in WorkingBase,
// most significant digit first, an exponent, and a sign.
// Digit values must be less than WorkingBase, this is not validated.
func FromDigits(digits []uint64, exp int, positive bool) Number {
	if len(digits) == 0 {
		return Number{digits: []uint64{0}, pos: true, base: WorkingBase}
	}
	d := make([]uint64, len(digits))
	copy(d, digits)
	result := Number{digits: d, exp: exp, pos: positive, base: WorkingBase}
	result.normalize()
	return result
}

// FromUint64 returns a number in WorkingBase equal to v.
func FromUint64(v uint64) Number {
	result := fromSmallUint(v, WorkingBase)
	result.base = WorkingBase
	result.normalize()
	return result
}

// fromSmallUint decomposes v into base-'base' digits.
// The result carries no explicit base and adopts one from the context.
func fromSmallUint(v, base uint64) Number {
	if v == 0 {
		return Number{digits: []uint64{0}, pos: true}
	}
	var digits []uint64
	for v > 0 {
		digits = append(digits, v%base)
		v /= base
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return Number{digits: digits, exp: len(digits), pos: true}
}

// Base returns the base of the digit vector.
func (n Number) Base() uint64 {
	return n.radix()
}

// Exponent returns the count of digits to the left of the radix point.
func (n Number) Exponent() int {
	return n.exp
}

// Positive returns true for non-negative values.
func (n Number) Positive() bool {
	return n.IsZero() || n.pos
}

// Digits returns a copy of the digit vector, most significant first.
func (n Number) Digits() []uint64 {
	if len(n.digits) == 0 {
		return []uint64{0}
	}
	d := make([]uint64, len(n.digits))
	copy(d, n.digits)
	return d
}

func (n Number) radix() uint64 {
	if n.base == 0 {
		return WorkingBase
	}
	return n.base
}

// sameBase resolves the base for a binary operation.
// A value with an unset base adopts the other operand's base.
func sameBase(a, b Number) uint64 {
	switch {
	case a.base == b.base:
		if a.base == 0 {
			return WorkingBase
		}
		return a.base
	case a.base == 0:
		return b.base
	case b.base == 0:
		return a.base
	default:
		panic("exact: operands have different bases")
	}
}

func (n Number) clone() Number {
	if n.digits != nil {
		digits := make([]uint64, len(n.digits))
		copy(digits, n.digits)
		n.digits = digits
	}
	return n
}

// normalize strips leading zeros, decrementing the exponent per strip,
// and trailing zeros. The canonical zero is {[0], 0, +}.
func (n *Number) normalize() {
	for len(n.digits) > 1 && n.digits[0] == 0 {
		n.digits = n.digits[1:]
		n.exp--
	}
	for len(n.digits) > 1 && n.digits[len(n.digits)-1] == 0 {
		n.digits = n.digits[:len(n.digits)-1]
	}
	if len(n.digits) == 1 && n.digits[0] == 0 {
		n.exp = 0
		n.pos = true
	}
}

// normalizeLeft strips leading zeros only, keeping the value intact.
func (n *Number) normalizeLeft() {
	for len(n.digits) > 1 && n.digits[0] == 0 {
		n.digits = n.digits[1:]
		n.exp--
	}
}

// padIntegral appends zeros until the digit vector covers the whole
// integral part, turning the number into a plain integer vector.
func (n *Number) padIntegral() {
	for n.exp > len(n.digits) {
		n.digits = append(n.digits, 0)
	}
}

// digitAt returns the digit at the aligned position i, counted from
// the radix point: i = -1 addresses the lowest integral digit, i = 0
// the highest fractional one. Positions outside the vector are zero.
func (n Number) digitAt(i int) uint64 {
	idx := n.exp + i
	if idx >= 0 && idx < len(n.digits) {
		return n.digits[idx]
	}
	return 0
}

func allZero(digits []uint64) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether the value is zero.
// An empty digit vector counts as zero.
func (n Number) IsZero() bool {
	return allZero(n.digits)
}

// IsIntegral reports whether the value has no fractional digits.
func (n Number) IsIntegral() bool {
	if n.IsZero() {
		return true
	}
	if n.exp < 0 {
		return false
	}
	return len(n.digits) <= n.exp
}

// Abs returns the absolute value.
func (n Number) Abs() Number {
	n.pos = true
	return n
}

// Neg returns the value with the opposite sign.
func (n Number) Neg() Number {
	if n.IsZero() {
		return n
	}
	n.pos = !n.pos
	return n
}

// Sign returns -1 for negative values, 0 for zero, and 1 for positive ones.
func (n Number) Sign() int {
	if n.IsZero() {
		return 0
	}
	if n.pos {
		return 1
	}
	return -1
}

// alignedLess compares two digit vectors sharing a radix alignment.
// The first divergent position decides. If one vector ends first,
// the lower one is the one whose remaining tail is all zero.
// The contract is strict less-than: equal vectors compare false.
func alignedLess(lhs, rhs []uint64) bool {
	i := 0
	for i < len(lhs) && i < len(rhs) {
		if lhs[i] != rhs[i] {
			return lhs[i] < rhs[i]
		}
		i++
	}
	return allZero(lhs[i:]) && !allZero(rhs[i:])
}

// Less reports whether n < other.
func (n Number) Less(other Number) bool {
	if n.IsZero() {
		return !other.IsZero() && other.pos
	}
	if other.IsZero() {
		return !n.pos
	}
	if n.pos != other.pos {
		return !n.pos
	}
	if n.pos {
		if n.exp == other.exp {
			return alignedLess(n.digits, other.digits)
		}
		return n.exp < other.exp
	}
	if n.exp == other.exp {
		return alignedLess(other.digits, n.digits)
	}
	return other.exp < n.exp
}

// Greater reports whether n > other.
func (n Number) Greater(other Number) bool {
	return other.Less(n)
}

// Eq reports whether both values represent the same number.
func (n Number) Eq(other Number) bool {
	return !n.Less(other) && !other.Less(n)
}

// Cmp compares two values.
// Returns -1 if n < other, 0 if n == other, 1 if n > other.
func (n Number) Cmp(other Number) int {
	if n.Less(other) {
		return -1
	}
	if other.Less(n) {
		return 1
	}
	return 0
}

// roundUpAbs adds one unit at the least significant digit, carrying
// through digits equal to bound, the highest digit value of the base.
// A terminal carry prepends a digit and increments the exponent.
func (n *Number) roundUpAbs(bound uint64) {
	index := len(n.digits) - 1
	keepCarrying := true

	for index > 0 && keepCarrying {
		if n.digits[index] != bound {
			n.digits[index]++
			keepCarrying = false
		} else {
			n.digits[index] = 0
		}
		index--
	}

	if index == 0 && keepCarrying {
		if n.digits[0] == bound {
			n.digits[0] = 0
			n.digits = append([]uint64{1}, n.digits...)
			n.exp++
		} else {
			n.digits[0]++
		}
	}
}

// roundDownAbs subtracts one unit at the least significant digit,
// borrowing through zeros, which become bound.
func (n *Number) roundDownAbs(bound uint64) {
	index := len(n.digits) - 1
	keepCarrying := true

	for index > 0 && keepCarrying {
		if n.digits[index] != 0 {
			n.digits[index]--
			keepCarrying = false
		} else {
			n.digits[index] = bound
		}
		index--
	}
	// the leading digit is nonzero here for any normalized value.
	if index == 0 && keepCarrying {
		n.digits[0]--
	}
}

func (n *Number) roundUp(bound uint64) {
	if n.pos {
		n.roundUpAbs(bound)
	} else {
		n.roundDownAbs(bound)
	}
}

func (n *Number) roundDown(bound uint64) {
	if n.pos {
		n.roundDownAbs(bound)
	} else {
		n.roundUpAbs(bound)
	}
}

// Round truncates the digit vector to at most 'precision' digits and,
// if truncation happened, rounds the result towards +infinity when up
// is true, towards -infinity otherwise.
func (n Number) Round(precision int, up bool) Number {
	if precision < 0 {
		precision = 0
	}
	if precision >= len(n.digits) {
		return n
	}
	ret := n.clone()
	ret.digits = ret.digits[:precision]
	bound := ret.radix() - 1
	if up {
		ret.roundUp(bound)
	} else {
		ret.roundDown(bound)
	}
	return ret
}

// Float64 returns the nearest float64 value, with no exactness claim.
func (n Number) Float64() float64 {
	b := float64(n.radix())
	var f float64
	for _, d := range n.digits {
		f = f*b + float64(d)
	}
	shift := n.exp - len(n.digits)
	switch {
	case shift == 0:
	case n.radix() == 10 && mathutil.AbsInt(shift) < 20:
		// small powers of ten are exact in a float64
		if shift > 0 {
			f *= float64(mathutil.Pow10(shift))
		} else {
			f /= float64(mathutil.Pow10(-shift))
		}
	default:
		f *= math.Pow(b, float64(shift))
	}
	if !n.pos && f != 0 {
		f = -f
	}
	return f
}
