// Package serrors provides custom error types for Smartcmd.
package serrors

import (
	"fmt"
)

// Error is the base interface for all Smartcmd errors.
type Error interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all Smartcmd errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// CatalogError represents errors while assembling the command catalog
type CatalogError struct {
	baseError
	Source string
}

// NewCatalogError creates a new catalog error
func NewCatalogError(source string, message string, cause error) *CatalogError {
	return &CatalogError{
		baseError: baseError{
			code:    "CATALOG_ERROR",
			message: message,
			cause:   cause,
		},
		Source: source,
	}
}

// ParseError represents errors while parsing a definition source file
type ParseError struct {
	baseError
	Path string
}

// NewParseError creates a new parse error
func NewParseError(path string, message string, cause error) *ParseError {
	return &ParseError{
		baseError: baseError{
			code:    "PARSE_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors during definition validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// NotFoundError represents errors when a command or resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}

// AlreadyExistsError represents errors when a resource already exists
type AlreadyExistsError struct {
	baseError
	Resource string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource string, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{
			code:    "ALREADY_EXISTS",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}
