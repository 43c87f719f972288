// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package apperr defines the centralized error taxonomy for OtakuHaven.

It provides a rich error type that bridges the gap between low-level storage
errors and the messages shown to the person using the application.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-friendly message.
  - Values, not panics: Every expected failure (bad input, duplicate identity,
    rejected credentials) travels back to the caller as an [AppError] value.
  - Causes: Internal causes are carried for logging only and never rendered.

Every error that leaves a service should be wrapped as an [AppError] so the
consuming surface (CLI today, anything else tomorrow) can render it directly.
*/
package apperr

import "errors"

// # Error Codes

// Machine-readable identifiers for every failure class the store can produce.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeDuplicateUsername    = "DUPLICATE_USERNAME"
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeNotFound             = "NOT_FOUND"
	CodeStorageCorrupted     = "STORAGE_CORRUPTED"
	CodeInternal             = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the OtakuHaven account store.
//
// It carries a machine-readable code, a client-safe message, and an optional
// slice of field-level validation errors.
//
// # Security
//
// The Cause field is for logging only and is never rendered to the person
// using the application, to avoid leaking internal implementation details.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to show directly.
	Message string `json:"error"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR values.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Registration Errors

// ValidationError creates a VALIDATION_ERROR with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// DuplicateUsername creates the conflict error for an already-taken username.
func DuplicateUsername() *AppError {
	return &AppError{
		Code:    CodeDuplicateUsername,
		Message: "Username already exists",
	}
}

// DuplicateEmail creates the conflict error for an already-registered email.
func DuplicateEmail() *AppError {
	return &AppError{
		Code:    CodeDuplicateEmail,
		Message: "Email already registered",
	}
}

// # Authentication Errors

// AuthenticationFailed creates the login failure error.
//
// The message is deliberately non-specific: it must never reveal whether the
// username or the secret was the field that did not match.
func AuthenticationFailed() *AppError {
	return &AppError{
		Code:    CodeAuthenticationFailed,
		Message: "Invalid username or password",
	}
}

// # Storage Errors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Account") // Returns "Account not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// StorageCorrupted creates a STORAGE_CORRUPTED [AppError].
//
// Callers are expected to recover from this locally (treat the key as absent)
// rather than propagate it; the constructor exists so the recovery sites can
// log a uniform error value.
func StorageCorrupted(cause error) *AppError {
	return &AppError{
		Code:    CodeStorageCorrupted,
		Message: "Persisted state is unreadable",
		Cause:   cause,
	}
}

// Internal creates an INTERNAL_ERROR wrapping an unexpected failure.
// The cause is stored for logging but is never rendered.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsCode reports whether err is an [*AppError] carrying the given code.
func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
