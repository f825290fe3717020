// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

// Div returns n/other computed to the requested precision: the
// residual result*other - n lies within [0, base^-precision] when up
// is true and within [-base^-precision, 0] otherwise, so the result
// approaches the exact quotient from above or from below.
// Div panics if the operands' bases differ.
func (n Number) Div(other Number, precision int, up bool) (Number, error) {
	base := sameBase(n, other)
	result, err := newtonDivide(n, other, precision, up, base)
	if err != nil {
		return Number{}, err
	}
	result.base = base
	return result, nil
}

// newtonDivide computes num/div with the Newton-Raphson reciprocal
// iteration. The divisor is scaled into [0.5, 1), the reciprocal is
// seeded with the affine estimate (48 - 32*d)/17, and the iteration
// r <- r*(2 - r*d) doubles the correct digits each round. A final
// residual check shifts the result one unit in the last place at a
// time until the residual lands on the requested error side.
func newtonDivide(num, div Number, precision int, upper bool, base uint64) (Number, error) {
	if precision > maxPrecision {
		return Number{}, ErrExponentOverflow
	}
	if precision < 1 {
		precision = 1
	}
	if div.IsZero() {
		return Number{}, ErrDivideByZero
	}

	zero := Number{digits: []uint64{0}, pos: true}
	if num.IsZero() {
		return zero, nil
	}

	one := Number{digits: []uint64{1}, exp: 1, pos: true}
	if div.Eq(one) {
		return num.clone(), nil
	}

	pos := num.pos == div.pos

	minusOne := Number{digits: []uint64{1}, exp: 1, pos: false}
	if div.Eq(minusOne) {
		result := num.clone()
		result.pos = pos
		result.normalize()
		return result, nil
	}

	if div.Eq(num) {
		return one, nil
	}

	// the residual correction below works on magnitudes; a negative
	// numerator mirrors the residual's sign.
	if !num.pos {
		upper = !upper
	}

	// scale so that 0.5 <= denominator < 1, the convergence condition
	// of the iteration. The exponent difference is restored at the end.
	numerator := num.Abs().clone()
	denominator := div.Abs().clone()
	exponentDiff := numerator.exp - denominator.exp

	// guard digits keep the residual bound absolute: an answer good to
	// base^-p against the scaled operands is only good to base^(exp-p)
	// once the numerator's exponent is restored.
	precision += numerator.exp - 1
	if precision < 1 {
		precision = 1
	}

	numerator.exp = 0
	denominator.exp = 0

	two := Number{digits: []uint64{2}, exp: 1, pos: true}
	for denominator.digits[0] < base/2 {
		denominator = mulIn(denominator, two, base)
		numerator = mulIn(numerator, two, base)
	}

	c48 := fromSmallUint(48, base)
	c32 := fromSmallUint(32, base)
	c17 := fromSmallUint(17, base)

	reciprocal := subIn(c48, mulIn(c32, denominator, base), base)
	reciprocal, err := binarySearchDivide(reciprocal, c17, precision, base)
	if err != nil {
		return Number{}, err
	}

	maxError := Number{digits: []uint64{1}, exp: -precision, pos: true}
	answer := mulIn(reciprocal, numerator, base)

	for {
		reciprocal = mulIn(reciprocal, subIn(two, mulIn(reciprocal, denominator, base), base), base)
		reciprocal.normalize()
		// truncate insignificant digits from the reciprocal
		for len(reciprocal.digits) > 1 &&
			len(reciprocal.digits)-reciprocal.exp-numerator.exp > precision+1 {
			reciprocal.digits = reciprocal.digits[:len(reciprocal.digits)-1]
		}

		morePrecise := mulIn(reciprocal, numerator, base)
		morePrecise.normalize()
		// truncate insignificant digits from the answer
		for len(morePrecise.digits) > 1 &&
			len(morePrecise.digits)-morePrecise.exp > precision+1 {
			morePrecise.digits = morePrecise.digits[:len(morePrecise.digits)-1]
		}

		// no improvement, the iteration converged
		if morePrecise.Eq(answer) {
			break
		}
		improvement := subIn(morePrecise, answer, base).Abs()
		answer = morePrecise
		if !improvement.Greater(maxError) {
			break
		}
	}

	result := answer
	residual := subIn(mulIn(result, denominator, base), numerator, base)
	residual.normalize()

	if upper { // the residual must end up in [0, +eps]
		for residual.Less(zero) {
			result = addIn(result, maxError, base)
			residual = subIn(mulIn(result, denominator, base), numerator, base)
			residual.normalize()
		}
		if residual.Greater(zero) {
			// prefer the exact quotient if one unit down reaches it
			lower := subIn(result, maxError, base)
			lowResidual := subIn(mulIn(lower, denominator, base), numerator, base)
			lowResidual.normalize()
			if lowResidual.Eq(zero) {
				result = lower
			}
		}
	} else { // the residual must end up in [-eps, 0]
		for residual.Greater(zero) {
			result = subIn(result, maxError, base)
			residual = subIn(mulIn(result, denominator, base), numerator, base)
			residual.normalize()
		}
		if residual.Less(zero) {
			higher := addIn(result, maxError, base)
			highResidual := subIn(mulIn(higher, denominator, base), numerator, base)
			highResidual.normalize()
			if highResidual.Eq(zero) {
				result = higher
			}
		}
	}

	result.exp += exponentDiff
	result.pos = pos
	result.normalize()
	return result, nil
}

// binarySearchDivide computes num/div by searching the quotient in a
// shrinking bracket. It is slow and serves as the seed of the Newton
// iteration, where the divisor is a small constant.
func binarySearchDivide(num, div Number, precision int, base uint64) (Number, error) {
	if precision > maxPrecision {
		return Number{}, ErrExponentOverflow
	}
	if div.IsZero() {
		return Number{}, ErrDivideByZero
	}

	zero := Number{digits: []uint64{0}, pos: true}
	if num.IsZero() {
		return zero, nil
	}

	one := Number{digits: []uint64{1}, exp: 1, pos: true}
	if div.Eq(one) {
		return num.clone(), nil
	}

	pos := num.pos == div.pos

	minusOne := Number{digits: []uint64{1}, exp: 1, pos: false}
	if div.Eq(minusOne) {
		result := num.clone()
		result.pos = pos
		result.normalize()
		return result, nil
	}

	if div.Eq(num) {
		return one, nil
	}

	half := Number{digits: []uint64{base / 2}, pos: true} // one half: base/2 * base^-1

	numerator := num.Abs().clone()
	denominator := div.Abs().clone()
	exponentDiff := numerator.exp - denominator.exp
	numerator.exp = 1
	denominator.exp = 1

	var left, right Number
	if numerator.Greater(denominator) {
		left, right = one, numerator
	} else {
		left, right = zero, one
	}

	length := mulIn(subIn(right, left, base), half, base)
	result := addIn(length, left, base)

	residual := subIn(mulIn(result, denominator, base), numerator, base)
	if residual.IsZero() {
		result.exp += exponentDiff
		result.pos = pos
		result.normalize()
		return result, nil
	}

	maxError := Number{digits: []uint64{1}, exp: -precision, pos: true}
	negMaxError := Number{digits: []uint64{1}, exp: -precision, pos: false}
	// residual = (q+e)*den - num = e*den, so the residual bound scales
	// with the denominator.
	maxResidualError := mulIn(maxError, denominator, base)

	for !residual.Abs().Less(maxResidualError) && length.exp >= maxError.exp {
		if residual.Less(negMaxError) {
			left = result
		}

		length = mulIn(length, half, base)
		length.normalize()
		if len(length.digits) > precision+1 {
			length.digits = length.digits[:precision+1]
		}

		result = addIn(left, length, base)
		if len(result.digits) > precision+1 {
			result.digits = result.digits[:precision+1]
		}

		residual = subIn(mulIn(result, denominator, base), numerator, base)
		residual.normalize()
	}

	result.normalize()
	if len(result.digits) > precision+1 {
		result.digits = result.digits[:precision+1]
	}

	residual = subIn(mulIn(result, denominator, base), numerator, base)
	residual.normalize()

	if residual.Less(zero) {
		result.roundUp(base - 1)
	}
	if residual.Greater(zero) {
		result.roundDown(base - 1)
	}

	result.pos = pos
	result.exp += exponentDiff
	result.normalize()
	return result, nil
}
