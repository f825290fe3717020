// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

// addVector adds the absolute value of other to n, aligning both
// numbers on the radix point. bound is the highest digit value of the
// base, so a digit lies in [0, bound]. Signs are resolved by callers.
//
// When the digit sum would not fit uint64, it is computed relative to
// bound/2 in two halves, each fitting uint64 and preserving the value
// modulo the base. This keeps the routine correct for bases close to
// the uint64 range, WorkingBase included.
func (n *Number) addVector(other Number, bound uint64) {
	fractional := len(n.digits) - n.exp
	if l := len(other.digits) - other.exp; l > fractional {
		fractional = l
	}
	integral := n.exp
	if other.exp > integral {
		integral = other.exp
	}

	temp := make([]uint64, fractional+integral)
	var carry uint64
	// walk the numbers from the lowest to the highest digit.
	for i := fractional - 1; i >= -integral; i-- {
		lhs, rhs := n.digitAt(i), other.digitAt(i)

		var digit uint64
		origCarry := carry
		carry = 0
		if bound-lhs < rhs { // lhs+rhs exceeds the base
			mn, mx := lhs, rhs
			if mn > mx {
				mn, mx = mx, mn
			}
			if mn <= bound/2 {
				remaining := bound/2 - mn
				digit = (mx - bound/2) - remaining - 2
			} else {
				digit = (mn - bound/2) + (mx - bound/2) - 2
			}
			carry = 1
		} else {
			digit = lhs + rhs
		}
		if digit < bound || origCarry == 0 {
			digit += origCarry
		} else {
			carry = 1
			digit = 0
		}
		temp[integral+i] = digit
	}
	if carry == 1 {
		temp = append([]uint64{1}, temp...)
		integral++
	}
	n.digits = temp
	n.exp = integral
	n.normalize()
}

// subtractVector subtracts the absolute value of other from n.
// Precondition: |n| >= |other|. Signs are resolved by callers.
func (n *Number) subtractVector(other Number, bound uint64) {
	fractional := len(n.digits) - n.exp
	if l := len(other.digits) - other.exp; l > fractional {
		fractional = l
	}
	integral := n.exp
	if other.exp > integral {
		integral = other.exp
	}

	result := make([]uint64, fractional+integral)
	var borrow uint64
	// walk the numbers from the lowest to the highest digit.
	for i := fractional - 1; i >= -integral; i-- {
		lhs, rhs := n.digitAt(i), other.digitAt(i)

		var digit uint64
		if lhs < borrow {
			digit = (bound - rhs) + 1 - borrow
		} else {
			lhs -= borrow
			borrow = 0
			if lhs < rhs {
				borrow++
				digit = (bound - (rhs - 1)) + lhs
			} else {
				digit = lhs - rhs
			}
		}
		result[integral+i] = digit
	}
	n.digits = result
	n.exp = integral
	n.normalize()
}

// addIn adds two numbers whose digits are in base 'base',
// resolving signs: magnitudes are added when the signs agree,
// otherwise the smaller magnitude is subtracted from the larger one,
// which donates the sign.
func addIn(a, b Number, base uint64) Number {
	bound := base - 1
	var result Number
	switch {
	case a.pos == b.pos:
		result = a.clone()
		result.addVector(b, bound)
		result.pos = a.pos
	case b.Abs().Less(a.Abs()):
		result = a.clone()
		result.subtractVector(b, bound)
		result.pos = a.pos
	default:
		result = b.clone()
		result.subtractVector(a, bound)
		result.pos = !a.pos
	}
	result.normalize()
	return result
}

// subIn subtracts b from a in base 'base', resolving signs.
func subIn(a, b Number, base uint64) Number {
	bound := base - 1
	var result Number
	switch {
	case a.pos != b.pos:
		result = a.clone()
		result.addVector(b, bound)
		result.pos = a.pos
	case b.Abs().Less(a.Abs()):
		result = a.clone()
		result.subtractVector(b, bound)
		result.pos = a.pos
	default:
		result = b.clone()
		result.subtractVector(a, bound)
		result.pos = !a.pos
	}
	result.normalize()
	return result
}

// Add returns n + other. The result is exact.
// Add panics if the operands' bases differ.
func (n Number) Add(other Number) Number {
	base := sameBase(n, other)
	result := addIn(n, other, base)
	result.base = base
	return result
}

// Sub returns n - other. The result is exact.
// Sub panics if the operands' bases differ.
func (n Number) Sub(other Number) Number {
	base := sameBase(n, other)
	result := subIn(n, other, base)
	result.base = base
	return result
}
