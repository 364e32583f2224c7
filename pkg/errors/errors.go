// Package errors provides structured error types shared by the CLI and the
// viewer server.
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: input validation failures
//   - NOT_FOUND_*: resources that do not exist
//   - ANALYZER_*: failures of the external analysis collaborators
//   - INTERNAL_*: unexpected internal errors
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

// Error codes for the conversion and viewing pipeline.
const (
	// Input validation
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidLanguage Code = "INVALID_LANGUAGE"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Missing resources
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeArtifactNotFound Code = "ARTIFACT_NOT_FOUND"

	// Overlay resolution: every candidate location failed
	ErrCodeResolutionExhausted Code = "RESOLUTION_EXHAUSTED"

	// External collaborator failures (fatal for the batch)
	ErrCodeAnalyzerFailed Code = "ANALYZER_FAILED"
	ErrCodeParserFailed   Code = "PARSER_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code, or empty if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
