package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the unified runtime error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// InvalidParameter reports parameter names rejected by an endpoint whitelist.
// The message wording differs for one and for several invalid names.
func InvalidParameter(invalid, allowed []string) *AppError {
	format := `"%s" is not a valid parameter. Allowed parameters are "%s".`
	if len(invalid) > 1 {
		format = `"%s" are not valid parameters. Allowed parameters are "%s".`
	}
	return &AppError{
		Code:    ErrCodeInvalidParameter,
		Message: fmt.Sprintf(format, strings.Join(invalid, `", "`), strings.Join(allowed, `", "`)),
		Details: map[string]any{"invalid": invalid, "allowed": allowed},
	}
}

// MissingRouteParameter reports a URI placeholder that has no value.
func MissingRouteParameter(endpoint, name string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingRouteParameter,
		Message: fmt.Sprintf("route parameter %q of endpoint %q has no value", name, endpoint),
		Details: map[string]any{"endpoint": endpoint, "parameter": name},
	}
}

// UnknownEndpoint reports a lookup of an unregistered endpoint name.
func UnknownEndpoint(name string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownEndpoint,
		Message: fmt.Sprintf("no endpoint registered as %q", name),
		Details: map[string]any{"endpoint": name},
	}
}

// InvalidEndpoint reports a malformed endpoint definition.
func InvalidEndpoint(name, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidEndpoint,
		Message: fmt.Sprintf("endpoint %q: %s", name, reason),
		Details: map[string]any{"endpoint": name},
	}
}

// Transport wraps a failed send that no error mapper replaced.
func Transport(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: "request failed",
		Cause:   cause,
	}
}

// NoResponseBody reports a transport failure without a response payload.
func NoResponseBody(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeNoResponseBody,
		Message: "client error raised without a response",
		Cause:   cause,
	}
}

// DecodeFailed reports a response body that could not be decoded.
func DecodeFailed(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeDecodeFailed,
		Message: "response body is not valid JSON",
		Cause:   cause,
	}
}

// NoMatchingVariant reports a payload that no union variant accepted.
func NoMatchingVariant(union string, variants []string) *AppError {
	return &AppError{
		Code:    ErrCodeNoMatchingVariant,
		Message: fmt.Sprintf("no variant of %s matches the given data", union),
		Details: map[string]any{"union": union, "variants": variants},
	}
}

// MissingLastResponse reports introspection before any completed request.
func MissingLastResponse() *AppError {
	return &AppError{
		Code:    ErrCodeMissingLastResponse,
		Message: "no last response found",
	}
}

// InvalidConfig reports an invalid client configuration.
func InvalidConfig(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// --- Inspection ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
