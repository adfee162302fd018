package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
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

// Is matches any *AppError with the same code, which lets the sentinel values
// below stand in for a whole class of errors.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
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

// Sentinels for errors.Is. They compare by code only; never mutate them.
var (
	ErrInvalidArgument = New(ErrCodeInvalidArgument, "invalid argument")
	ErrMissingArgument = New(ErrCodeMissingArgument, "missing argument")
	ErrEmptySequence   = New(ErrCodeEmptySequence, "sequence is empty")
	ErrExhausted       = New(ErrCodeExhausted, "iterator is exhausted")
	ErrAlreadyConsumed = New(ErrCodeAlreadyConsumed, "sequence can only be iterated once")
	ErrInvalidInput    = New(ErrCodeInvalidInput, "invalid input")
)

// --- Constructors ---

// InvalidArgument creates a new AppError for an argument outside its accepted range.
func InvalidArgument(name, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s %s", name, reason),
		Details: map[string]any{"argument": name},
	}
}

// MissingArgument creates a new AppError for a nil required argument.
func MissingArgument(name string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingArgument,
		Message: fmt.Sprintf("%s is nil", name),
		Details: map[string]any{"argument": name},
	}
}

// EmptySequence creates a new AppError for a terminal operation that found no elements.
func EmptySequence(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptySequence,
		Message: fmt.Sprintf("%s of an empty sequence", operation),
		Details: map[string]any{"operation": operation},
	}
}

// Exhausted creates a new AppError for a Next call past the last element.
func Exhausted() *AppError {
	return &AppError{Code: ErrCodeExhausted, Message: "no more elements"}
}

// AlreadyConsumed creates a new AppError for a second iterator request on a single-use sequence.
func AlreadyConsumed() *AppError {
	return &AppError{Code: ErrCodeAlreadyConsumed, Message: "sequence can only be iterated once"}
}

// Validation creates a new AppError for invalid input.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

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
