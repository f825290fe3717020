// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// FromString parses a decimal string of the form
//
//	[sign] digits [. digits] [e [sign] digits]
//
// into a Number with base-10 digits. A leading zero followed by more
// digits is rejected with ErrOctalNotSupported, any other malformed
// input fails with ErrInvalidNumber, and an exponent that does not
// fit the int range fails with ErrExponentOverflow.
func FromString(s string) (Number, error) {
	s, offset, neg, err := prepareString(s)
	if err != nil {
		return Number{}, err
	}
	digits, e, err := parseString(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Number{}, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	result := Number{digits: digits, exp: e, pos: !neg, base: 10}
	result.normalize()
	return result, nil
}

// prepareString cleans the string from spaces and a sign.
func prepareString(s string) (prepared string, offset int, neg bool, err error) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset = len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false, fmt.Errorf("empty input: %w", ErrInvalidNumber)
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg, nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// parseString converts a prepared string, sign and spaces removed,
// into a digit vector and an exponent. The vector holds one decimal
// digit per slot and is not normalized.
func parseString(s string) (digits []uint64, e int, err error) {
	if len(s) == 0 || !isDigit(s[0]) {
		return nil, 0, newPosError(ErrInvalidNumber, 0)
	}
	// a leading zero makes sense only right before the radix point
	// or the exponent. Anything else may have been octal.
	if s[0] == '0' && len(s) > 1 && isDigit(s[1]) {
		return nil, 0, newPosError(ErrOctalNotSupported, 0)
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		digits = append(digits, uint64(s[i]-'0'))
		i++
	}
	intLen := i

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			digits = append(digits, uint64(s[i]-'0'))
			i++
		}
	}

	var exponent int
	if i < len(s) && s[i] == 'e' {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		if i == len(s) || !isDigit(s[i]) {
			return nil, 0, newPosError(ErrInvalidNumber, i)
		}
		for i < len(s) && isDigit(s[i]) {
			if exponent > (math.MaxInt32-9)/10 {
				return nil, 0, newPosError(ErrExponentOverflow, i)
			}
			exponent = exponent*10 + int(s[i]-'0')
			i++
		}
		if expNeg {
			exponent = -exponent
		}
	}

	if i != len(s) {
		return nil, 0, newPosError(ErrInvalidNumber, i)
	}
	return digits, intLen + exponent, nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(data []byte) error {
	v, err := FromString(string(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
