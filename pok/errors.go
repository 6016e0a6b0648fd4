/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	// Validation indicates that the caller supplied a malformed request
	// (length mismatches, out-of-range indices); no cryptographic work
	// was performed.
	Validation ErrorType = iota
	// CryptoOperation indicates a failure of the underlying primitive:
	// a bad key, a malformed signature or proof, or a failed check.
	CryptoOperation
	// Internal indicates a programming-contract breach, such as reusing
	// a consumed proof state.
	Internal
)

type Error struct {
	Type     ErrorType
	ErrorMsg string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.ErrorMsg, e.Cause)
	}

	return e.ErrorMsg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(t ErrorType, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:     t,
		ErrorMsg: fmt.Sprintf(format, args...),
		Cause:    cause,
	}
}

func errorType(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}

	return 0, false
}

// IsValidationError reports whether err originates from malformed caller input.
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == Validation
}

// IsCryptoOperationError reports whether err originates from the signature primitive.
func IsCryptoOperationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == CryptoOperation
}

// IsInternalError reports whether err is a programming-contract breach.
func IsInternalError(err error) bool {
	t, ok := errorType(err)
	return ok && t == Internal
}
