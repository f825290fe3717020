// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"fmt"
	"strings"

	"github.com/avdva/exact/internal/mathutil"
)

// String returns the exact decimal representation of the value.
// For values in WorkingBase the digit vector is converted to base 10
// with exact integer arithmetic, which is quadratic in the number of
// digits.
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}
	if n.radix() == 10 {
		return n.formatDecimal()
	}
	return n.convertToDecimal()
}

// GoString returns a debug representation exposing the digit vector.
func (n Number) GoString() string {
	return fmt.Sprintf("{digits: %v, exp: %d, pos: %v, base: %d}", n.digits, n.exp, n.pos, n.radix())
}

// formatDecimal renders a value whose digits are already decimal.
func (n Number) formatDecimal() string {
	var b strings.Builder
	if !n.pos {
		b.WriteByte('-')
	}
	writeDigits := func(digits []uint64) {
		for _, d := range digits {
			b.WriteByte(byte('0' + d))
		}
	}
	writeZeros := func(count int) {
		for i := 0; i < count; i++ {
			b.WriteByte('0')
		}
	}
	switch {
	case n.exp <= 0: // add leading zeros and a delimiter
		b.WriteString("0.")
		writeZeros(-n.exp)
		writeDigits(n.digits)
	case n.exp >= len(n.digits): // append trailing zeros
		writeDigits(n.digits)
		writeZeros(n.exp - len(n.digits))
	default: // insert a delimiter
		writeDigits(n.digits[:n.exp])
		b.WriteByte('.')
		writeDigits(n.digits[n.exp:])
	}
	return b.String()
}

// convertToDecimal renders a value kept in a base other than 10.
// The integral half is accumulated with base-10 multiplies and adds,
// one internal digit at a time. Each fractional digit d at depth k
// contributes floor(d * 10^pad / base^k), computed with long division
// and padded with len(base^k)+1 zeros to keep enough quotient
// resolution, into a base-10 fraction accumulator.
func (n Number) convertToDecimal() string {
	base := n.radix()
	baseVec := fromSmallUint(base, 10).digits
	baseNum := Number{digits: baseVec, exp: len(baseVec), pos: true}

	var intDigits, fracDigits []uint64
	switch {
	case n.exp <= 0:
		fracDigits = append(make([]uint64, -n.exp), n.digits...)
	case n.exp >= len(n.digits):
		intDigits = append(append([]uint64(nil), n.digits...), make([]uint64, n.exp-len(n.digits))...)
	default:
		intDigits = n.digits[:n.exp]
		fracDigits = n.digits[n.exp:]
	}

	acc := Number{digits: []uint64{0}, pos: true}
	for _, d := range intDigits {
		acc = mulIn(acc, baseNum, 10)
		acc = addIn(acc, fromSmallUint(d, 10), 10)
	}
	acc.padIntegral()

	var b strings.Builder
	b.Grow(len(n.digits)*mathutil.DecimalDigits(base-1) + 3)
	if !n.pos {
		b.WriteByte('-')
	}
	for _, d := range acc.digits {
		b.WriteByte(byte('0' + d))
	}

	fraction, pad := n.convertFraction(fracDigits, baseNum)
	if len(fraction) > 0 {
		b.WriteByte('.')
		for i := len(fraction); i < pad; i++ {
			b.WriteByte('0')
		}
		for _, d := range fraction {
			b.WriteByte(byte('0' + d))
		}
	}
	return b.String()
}

// convertFraction returns the base-10 digits of the fractional part
// as an integer scaled by 10^pad, trailing zeros removed.
func (n Number) convertFraction(fracDigits []uint64, baseNum Number) (fraction []uint64, pad int) {
	if len(fracDigits) == 0 {
		return nil, 0
	}

	// powers[k] holds base^(k+1) as a base-10 integer vector.
	powers := make([][]uint64, len(fracDigits))
	powers[0] = baseNum.digits
	for k := 1; k < len(fracDigits); k++ {
		next := mulIn(Number{digits: powers[k-1], exp: len(powers[k-1]), pos: true}, baseNum, 10)
		next.padIntegral()
		powers[k] = trimLeadingZeros(next.digits)
	}
	pad = len(powers[len(powers)-1]) + 1

	acc := Number{digits: []uint64{0}, pos: true}
	for k, d := range fracDigits {
		if d == 0 {
			continue
		}
		scaled := append(fromSmallUint(d, 10).digits, make([]uint64, pad)...)
		quotient, _, _ := longDivide(scaled, powers[k], 10)
		if len(quotient) == 0 {
			continue
		}
		acc = addIn(acc, Number{digits: quotient, exp: len(quotient), pos: true}, 10)
	}
	acc.padIntegral()

	fraction = acc.digits
	for len(fraction) > 0 && fraction[len(fraction)-1] == 0 {
		fraction = fraction[:len(fraction)-1]
		pad--
	}
	return fraction, pad
}
