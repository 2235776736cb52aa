// Package errors provides structured error types for the permkit library.
//
// This package defines error codes and types that enable:
//   - Machine-readable error codes for programmatic handling
//   - Precise diagnostics naming the offending cycle and point
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - EMPTY_*, INVALID_*: Input validation failures
//   - DUPLICATE_*: Disjointness violations
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPoint, "cycle 0: point %d is not positive", p)
//	if errors.Is(err, errors.ErrCodeInvalidPoint) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeEmptyAction  Code = "EMPTY_ACTION"
	ErrCodeInvalidPoint Code = "INVALID_POINT"

	// Disjointness violations
	ErrCodeDuplicatePoint Code = "DUPLICATE_POINT"
)

// Error is a structured error with a code and a human-readable message.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
