// Package errors provides structured error types for the phyloreduce engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, matrix reader, and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - STRUCTURAL_*: red-black graph construction/validation failures
//   - PARSE_*: matrix-file reader failures
//   - REDUCTION_*: driver-level failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownVertex, "no such vertex: %s", name)
//	if errors.Is(err, errors.ErrCodeUnknownVertex) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeBadHeader, origErr, "line 1: %s", line)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Red-black graph structural errors
	ErrCodeDuplicateVertex Code = "STRUCTURAL_DUPLICATE_VERTEX"
	ErrCodeUnknownVertex    Code = "STRUCTURAL_UNKNOWN_VERTEX"
	ErrCodeInvalidEdge      Code = "STRUCTURAL_INVALID_EDGE"
	ErrCodeWrongKind        Code = "STRUCTURAL_WRONG_KIND"

	// Matrix file parse errors
	ErrCodeFileOpen            Code = "PARSE_FILE_OPEN"
	ErrCodeEmptyFile           Code = "PARSE_EMPTY_FILE"
	ErrCodeBadHeader           Code = "PARSE_BAD_HEADER"
	ErrCodePreActiveOutOfRange Code = "PARSE_PRE_ACTIVE_OUT_OF_RANGE"
	ErrCodeMatrixSize          Code = "PARSE_MATRIX_SIZE"
	ErrCodeBadCell             Code = "PARSE_BAD_CELL"

	// Reduction driver errors
	ErrCodeNoReduction Code = "REDUCTION_NO_SAFE_SOURCE"
	ErrCodeBadPolicy   Code = "REDUCTION_BAD_POLICY"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
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
