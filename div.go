// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"github.com/avdva/exact/internal/mathutil"
)

func trimLeadingZeros(digits []uint64) []uint64 {
	i := 0
	for i < len(digits) && digits[i] == 0 {
		i++
	}
	return digits[i:]
}

// divideBySingleDigit divides an integer digit vector by a one-digit
// divisor with short division, folding one dividend digit at a time
// into the running remainder with a widening divide.
func divideBySingleDigit(dividend []uint64, divisor, base uint64) (quotient, remainder []uint64, err error) {
	if divisor == 0 {
		return nil, nil, ErrDivideByZero
	}
	if divisor == 1 {
		quotient = make([]uint64, len(dividend))
		copy(quotient, dividend)
		return quotient, []uint64{0}, nil
	}
	if len(dividend) == 0 {
		return []uint64{0}, []uint64{0}, nil
	}
	if len(dividend) == 1 {
		return []uint64{dividend[0] / divisor}, []uint64{dividend[0] % divisor}, nil
	}

	var rem uint64
	quotient = make([]uint64, 0, len(dividend))
	for _, d := range dividend {
		var q uint64
		q, rem = mathutil.DivStep(rem, d, divisor, base)
		quotient = append(quotient, q)
	}
	quotient = trimLeadingZeros(quotient)
	if len(quotient) == 0 {
		quotient = []uint64{0}
	}
	return quotient, []uint64{rem}, nil
}

// quotientDigit binary-searches the quotient digit m in [1, base-1]
// such that m*divisor <= dividend < (m+1)*divisor, for two integer
// operands of the same digit length. It returns m and the residual
// dividend - m*divisor. Precondition: divisor <= dividend.
func quotientDigit(dividend, divisor Number, base uint64) (uint64, Number) {
	zero := Number{digits: []uint64{0}, pos: true}
	left, right := uint64(1), base-1
	mid := (right-left)/2 + left
	var tempDividend Number
	for left <= right {
		mid = (right-left)/2 + left
		tempQuotient := Number{digits: []uint64{mid}, exp: 1, pos: true}
		tempDividend = dividend.clone()
		tempQuotient = mulIn(tempQuotient, divisor, base)

		if tempQuotient.Greater(tempDividend) {
			right = mid - 1
		} else if tempQuotient.Eq(tempDividend) {
			tempDividend = zero
			break
		} else {
			tempDividend.subtractVector(tempQuotient, base-1)
			if tempDividend.Less(divisor) {
				break
			} else if tempDividend.Eq(divisor) {
				mid++
				tempDividend = zero
				break
			} else {
				left = mid + 1
			}
		}
	}
	return mid, tempDividend
}

// knuthDivide divides two non-negative integer digit vectors,
// returning the integer quotient and remainder.
// See The Art of Computer Programming, Vol 2, 4.3.1, Algorithm D.
//
// The divisor must not carry leading zeros: a zero leading digit is
// reported as ErrDivideByZero.
//
// The divisor is pre-scaled by doubling both operands until its
// leading digit reaches base/2, which Knuth's per-step quotient
// estimate requires, and the remainder is scaled back at the end.
func knuthDivide(dividend, divisor []uint64, base uint64) (quotient, remainder []uint64, err error) {
	if len(divisor) == 0 || divisor[0] == 0 {
		return nil, nil, ErrDivideByZero
	}
	u := trimLeadingZeros(dividend)
	if len(u) == 0 {
		return nil, nil, nil
	}
	if len(u) < len(divisor) || (len(u) == len(divisor) && alignedLess(u, divisor)) {
		remainder = make([]uint64, len(u))
		copy(remainder, u)
		return nil, remainder, nil
	}
	if len(divisor) == 1 {
		return divideBySingleDigit(dividend, divisor[0], base)
	}

	eDividend := Number{digits: append([]uint64(nil), dividend...), exp: len(dividend), pos: true}
	eDividend.normalize()
	eDivisor := Number{digits: append([]uint64(nil), divisor...), exp: len(divisor), pos: true}
	eDivisor.normalize()

	two := Number{digits: []uint64{2}, exp: 1, pos: true}
	normalizationFactor := 0
	for eDivisor.digits[0] < base/2 {
		eDivisor = mulIn(eDivisor, two, base)
		eDividend = mulIn(eDividend, two, base)
		normalizationFactor++
	}
	eDivisor.padIntegral()
	eDividend.padIntegral()

	n, m := len(eDivisor.digits), len(eDividend.digits)

	switch {
	case m < n:
		quotient = []uint64{0}
		remainder = eDividend.digits
	case m == n:
		if eDividend.Less(eDivisor) {
			quotient = []uint64{0}
			remainder = eDividend.digits
		} else {
			mid, rem := quotientDigit(eDividend, eDivisor, base)
			quotient = append(quotient, mid)
			rem.normalize()
			rem.padIntegral()
			remainder = rem.digits
		}
	default:
		quotient, remainder = knuthDivideGeneral(eDividend, eDivisor, base)
	}

	if normalizationFactor >= 1 {
		factor := uint64(1) << uint(normalizationFactor)
		remainder, _, err = divideBySingleDigit(remainder, factor, base)
		if err != nil {
			return nil, nil, err
		}
	}
	return quotient, remainder, nil
}

// knuthDivideGeneral handles dividends longer than the divisor: it
// slides a window over the dividend, producing one or two quotient
// digits per step from a two-digit estimate corrected downwards until
// the product fits under the window.
func knuthDivideGeneral(eDividend, eDivisor Number, base uint64) (quotient, remainder []uint64) {
	zero := Number{digits: []uint64{0}, pos: true}
	one := Number{digits: []uint64{1}, exp: 1, pos: true}

	n, m := len(eDivisor.digits), len(eDividend.digits)
	tempDividend := Number{
		digits: append([]uint64(nil), eDividend.digits[:n]...),
		exp:    n,
		pos:    true,
	}

	for j := n; j < m; j++ {
		tempDividend.digits = append(tempDividend.digits, eDividend.digits[j])
		tempDividend.exp++
		if tempDividend.IsZero() {
			tempDividend.digits = nil
			tempDividend.exp = 0
		}
		for tempDividend.Less(eDivisor) {
			if j == m-1 {
				break
			}
			j++
			tempDividend.digits = append(tempDividend.digits, eDividend.digits[j])
			tempDividend.exp++
			// a window must not carry leading zeros: they would skew
			// the exponent-based comparisons below.
			tempDividend.normalizeLeft()
			quotient = append(quotient, 0)
		}

		if tempDividend.Less(eDivisor) { // the dividend is exhausted
			quotient = append(quotient, 0)
			tempDividend.normalize()
			tempDividend.padIntegral()
			remainder = tempDividend.digits
			break
		}

		if len(tempDividend.digits) == n {
			mid, rem := quotientDigit(tempDividend, eDivisor, base)
			quotient = append(quotient, mid)
			tempDividend = rem
			tempDividend.normalize()
			if tempDividend.IsZero() {
				tempDividend.digits = nil
				continue
			}
			tempDividend.padIntegral()
			if j == m-1 {
				remainder = tempDividend.digits
				break
			}
			continue
		}

		// estimate the quotient digit from the leading two digits of
		// the window and the leading digit of the divisor.
		w := []uint64{tempDividend.digits[0], tempDividend.digits[1]}
		estimate, _, _ := divideBySingleDigit(w, eDivisor.digits[0], base)

		tempQuotient := Number{digits: estimate, exp: len(estimate), pos: true}
		temp := mulIn(tempQuotient, eDivisor, base)
		for temp.Greater(tempDividend) {
			tempQuotient.subtractVector(one, base-1)
			temp = mulIn(tempQuotient, eDivisor, base)
		}
		tempQuotient.padIntegral()
		quotient = append(quotient, tempQuotient.digits...)

		tempDividend.subtractVector(temp, base-1)
		tempDividend.normalize()
		tempDividend.padIntegral()
		if j == m-1 {
			remainder = tempDividend.digits
		}
		if tempDividend.Eq(zero) {
			tempDividend.digits = nil
		}
	}
	return quotient, remainder
}

// longDivide divides two non-negative integer digit vectors and
// reports zero results as empty vectors, which suits the renderer's
// accumulation loops.
func longDivide(dividend, divisor []uint64, base uint64) (quotient, remainder []uint64, err error) {
	quotient, remainder, err = knuthDivide(dividend, divisor, base)
	if err != nil {
		return nil, nil, err
	}
	if len(quotient) == 1 && quotient[0] == 0 {
		quotient = nil
	}
	if len(remainder) == 1 && remainder[0] == 0 {
		remainder = nil
	}
	return quotient, remainder, nil
}
