// Copyright 2020 Aleksandr Demakin. All rights reserved.

package exact

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("exact")

var (
	// ErrDivideByZero is returned when a divisor is zero.
	ErrDivideByZero = Error.New("divide by zero")
	// ErrExponentOverflow is returned when an exponent does not fit its range.
	ErrExponentOverflow = Error.New("exponent overflow")
	// ErrInvalidNumber is returned for malformed textual input.
	ErrInvalidNumber = Error.New("invalid number")
	// ErrOctalNotSupported is returned for integers with a leading zero.
	ErrOctalNotSupported = Error.New("octal numbers are not supported")
)

// posError carries the position of the offending symbol in the input.
type posError struct {
	pos int
	err error
}

func newPosError(err error, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe *posError) Error() string {
	return fmt.Sprintf("%v at pos %d", pe.err, pe.pos)
}

func (pe *posError) Unwrap() error {
	return pe.err
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}
