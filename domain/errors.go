package domain

import (
	"fmt"
)

// ErrorCode represents the type of domain error
type ErrorCode string

const (
	// ErrCodeInvalidTimezone indicates that an identifier could not be
	// resolved to a real timezone
	ErrCodeInvalidTimezone ErrorCode = "INVALID_TIMEZONE"

	// ErrCodeUnparsableTimestamp indicates that a timestamp did not match
	// any supported encoding
	ErrCodeUnparsableTimestamp ErrorCode = "UNPARSABLE_TIMESTAMP"

	// ErrCodeInvalidConfiguration indicates an unsupported granularity,
	// reference mode or other caller-side configuration bug
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"

	// ErrCodeInsufficientData indicates a bucket ended up shorter than the
	// interval count expected for its day kind
	ErrCodeInsufficientData ErrorCode = "INSUFFICIENT_DATA"

	// ErrCodeFileOperation indicates a file operation error
	ErrCodeFileOperation ErrorCode = "FILE_OPERATION_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// NewDomainErrorWithCause creates a new domain error with an underlying cause
func NewDomainErrorWithCause(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// Timezone errors

// ErrInvalidTimezone creates an invalid timezone error
func ErrInvalidTimezone(identifier string, reason string) *DomainError {
	return NewDomainError(ErrCodeInvalidTimezone, fmt.Sprintf("cannot resolve timezone %q: %s", identifier, reason)).
		WithDetails("identifier", identifier).
		WithDetails("reason", reason)
}

// ErrInvalidTimezoneWithCause creates an invalid timezone error with cause
func ErrInvalidTimezoneWithCause(identifier string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeInvalidTimezone, fmt.Sprintf("cannot resolve timezone %q", identifier), err).
		WithDetails("identifier", identifier)
}

// Timestamp errors

// ErrUnparsableTimestamp creates an unparsable timestamp error
func ErrUnparsableTimestamp(raw interface{}) *DomainError {
	return NewDomainError(ErrCodeUnparsableTimestamp, fmt.Sprintf("timestamp %v matches no supported encoding", raw)).
		WithDetails("raw", fmt.Sprintf("%v", raw))
}

// Configuration errors

// ErrInvalidConfiguration creates an invalid configuration error
func ErrInvalidConfiguration(field string, reason string) *DomainError {
	return NewDomainError(ErrCodeInvalidConfiguration, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetails("field", field).
		WithDetails("reason", reason)
}

// Data completeness errors

// ErrInsufficientData creates an insufficient data error
func ErrInsufficientData(bucket string, got int, expected int) *DomainError {
	return NewDomainError(ErrCodeInsufficientData,
		fmt.Sprintf("bucket %s holds %d of %d expected intervals", bucket, got, expected)).
		WithDetails("bucket", bucket).
		WithDetails("got", got).
		WithDetails("expected", expected)
}

// File operation errors

// ErrFileOperation creates a file operation error
func ErrFileOperation(operation string, path string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeFileOperation, fmt.Sprintf("file operation error in %s", operation), err).
		WithDetails("operation", operation).
		WithDetails("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code
	}
	return ""
}
