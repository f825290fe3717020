// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"github.com/avdva/exact/internal/mathutil"
)

// mulVector multiplies n by other with the grade-school algorithm.
// Each 1x1 digit product is split into a quotient and a remainder of
// the base with widening arithmetic, and the running cell value plus
// the previous carry is folded into the pair without overflowing
// uint64.
func (n *Number) mulVector(other Number, base uint64) {
	newSize := len(n.digits) + len(other.digits)
	if n.exp < 0 {
		newSize -= n.exp
	}
	if other.exp < 0 {
		newSize -= other.exp
	}
	temp := make([]uint64, newSize)

	pos1 := len(temp) - 1
	// go from the right to the left in n
	for i := len(n.digits) - 1; i >= 0; i-- {
		var carry uint64
		pos2 := 0
		// go from the right to the left in other
		for j := len(other.digits) - 1; j >= 0; j-- {
			rem := mathutil.MulMod(n.digits[i], other.digits[j], base)
			q := mathutil.MulDiv(n.digits[i], other.digits[j], base)

			// fold the stored cell and the carry into (q, rem),
			// keeping every intermediate value below the base.
			cell := temp[pos1-pos2]
			var remS uint64
			if cell >= base-carry {
				remS = carry - (base - cell)
				q++
			} else {
				remS = cell + carry
			}
			if rem >= base-remS {
				rem -= base - remS
				q++
			} else {
				rem += remS
			}

			carry = q
			temp[pos1-pos2] = rem
			pos2++
		}
		// store the remaining carry in the next cell
		if carry > 0 {
			temp[pos1-pos2] += carry
		}
		pos1--
	}

	fractional := (len(n.digits) - n.exp) + (len(other.digits) - other.exp)
	n.digits = temp
	n.exp = len(temp) - fractional
	n.normalize()
}

// mulIn multiplies two numbers whose digits are in base 'base'.
func mulIn(a, b Number, base uint64) Number {
	result := a.clone()
	result.mulVector(b, base)
	result.pos = a.pos == b.pos
	result.normalize()
	return result
}

// Mul returns n * other. The result is exact.
// Mul panics if the operands' bases differ.
func (n Number) Mul(other Number) Number {
	base := sameBase(n, other)
	result := mulIn(n, other, base)
	result.base = base
	return result
}
