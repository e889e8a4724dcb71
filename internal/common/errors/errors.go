// Package errors provides standardized error handling for the client core.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Transport failures: the request never produced a usable response.
	ErrCodeTransport      ErrorCode = "TRANSPORT_FAILED"
	ErrCodeDecodeFailed   ErrorCode = "RESPONSE_DECODE_FAILED"
	ErrCodeRequestTimeout ErrorCode = "REQUEST_TIMEOUT"

	// Business failures: the API answered with success=false.
	ErrCodeAPIRejected  ErrorCode = "API_REJECTED"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Client-side validation failures.
	ErrCodeRequiredFieldMissing ErrorCode = "REQUIRED_FIELD_MISSING"
	ErrCodeValueOutOfRange      ErrorCode = "VALUE_OUT_OF_RANGE"

	// Payment flow.
	ErrCodePaymentCancelled ErrorCode = "PAYMENT_CANCELLED"
	ErrCodePaymentFailed    ErrorCode = "PAYMENT_FAILED"

	// Media uploads.
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"

	// Local device store.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeTokenNotFound    ErrorCode = "TOKEN_NOT_FOUND"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Alert Presentation
// ==========================

// Alert is the uniform user-facing shape of every failure: a blocking
// dialog with a title and a dismissable message. No retry loop is attached.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ToAlert maps any error onto the alert surface. API-rejected errors carry
// the server message verbatim; everything else uses the standard message.
func ToAlert(err error) Alert {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return Alert{Title: "Error", Message: err.Error()}
	}

	title := "Error"
	switch GetErrorCategory(stdErr.Code) {
	case "VALIDATION":
		title = "Invalid Input"
	case "PAYMENT":
		title = "Payment"
	case "TRANSPORT":
		title = "Connection Error"
	}
	return Alert{Title: title, Message: stdErr.Message}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewTransportError wraps a network-level failure.
func NewTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransport,
		Message:   "Network request failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewDecodeFailedError wraps a malformed response body.
func NewDecodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecodeFailed,
		Message:   "Unexpected response from server",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewAPIRejectedError carries the server-provided message verbatim, as every
// screen surfaces it unmodified.
func NewAPIRejectedError(message string) *StandardError {
	if message == "" {
		message = "Request was rejected"
	}
	return &StandardError{
		Code:      ErrCodeAPIRejected,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthorizedError creates an authentication failure.
func NewUnauthorizedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "Session expired, please sign in again",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequiredFieldError creates the uniform missing-field validation error.
func NewRequiredFieldError(fields ...string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequiredFieldMissing,
		Message:   "Please fill in all fields",
		Details:   strings.Join(fields, ", "),
		Timestamp: time.Now().UTC(),
	}
}

// NewValueOutOfRangeError creates a numeric-range validation error.
func NewValueOutOfRangeError(field string, min, max float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeValueOutOfRange,
		Message:   fmt.Sprintf("%s must be between %g and %g", field, min, max),
		Details:   fmt.Sprintf("field: %s", field),
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentCancelledError marks a checkout the user abandoned.
func NewPaymentCancelledError() *StandardError {
	return &StandardError{
		Code:      ErrCodePaymentCancelled,
		Message:   "Payment was cancelled",
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentFailedError marks a checkout the gateway declined.
func NewPaymentFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePaymentFailed,
		Message:   "Payment failed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadFailedError wraps a media-host upload failure.
func NewUploadFailedError(kind string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadFailed,
		Message:   fmt.Sprintf("Could not upload %s", kind),
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreUnavailableError wraps a local key-value store failure.
func NewStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Local storage unavailable",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenNotFoundError marks a missing session token.
func NewTokenNotFoundError() *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenNotFound,
		Message:   "No active session",
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// IsValidationError reports whether the error is a client-side validation
// failure, which must never reach the network.
func IsValidationError(err error) bool {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return false
	}
	return GetErrorCategory(stdErr.Code) == "VALIDATION"
}

// IsAPIRejected reports whether the error is a success=false response.
func IsAPIRejected(err error) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == ErrCodeAPIRejected
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "TRANSPORT") || strings.Contains(codeStr, "TIMEOUT") || strings.Contains(codeStr, "DECODE"):
		return "TRANSPORT"
	case strings.Contains(codeStr, "REQUIRED") || strings.Contains(codeStr, "RANGE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "PAYMENT"):
		return "PAYMENT"
	case strings.Contains(codeStr, "UPLOAD"):
		return "MEDIA"
	case strings.Contains(codeStr, "STORE") || strings.Contains(codeStr, "TOKEN"):
		return "STORAGE"
	case strings.Contains(codeStr, "REJECTED") || strings.Contains(codeStr, "UNAUTHORIZED"):
		return "API"
	default:
		return "OTHER"
	}
}
