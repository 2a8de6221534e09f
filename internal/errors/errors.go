package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError. Each kind maps to exactly one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
	KindRateLimited
)

// Error codes
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeAlreadyExists      = "ALREADY_EXISTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
)

// AppError is the typed error every service returns to the transport layer.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError with the same kind and code, so wrapped
// sentinels compare equal through errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code && e.Message == t.Message
}

// Status returns the HTTP status code for the error kind.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to show to clients.
func (e *AppError) PublicMessage() string {
	if e.Kind == KindInternal {
		return "Internal server error"
	}
	return e.Message
}

func newError(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Validation(message string) *AppError {
	return newError(KindValidation, ErrCodeInvalidInput, message)
}

func Unauthenticated(message string) *AppError {
	return newError(KindUnauthenticated, ErrCodeUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return newError(KindForbidden, ErrCodeForbidden, message)
}

func NotFound(message string) *AppError {
	return newError(KindNotFound, ErrCodeNotFound, message)
}

func Conflict(message string) *AppError {
	return newError(KindConflict, ErrCodeAlreadyExists, message)
}

func Unavailable(message string) *AppError {
	return newError(KindUnavailable, ErrCodeServiceUnavailable, message)
}

// Internal wraps an unexpected failure. The cause is kept for logging only.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Code: ErrCodeInternalError, Message: message, Err: err}
}

// Wrap attaches a cause to a sentinel without changing its identity.
func Wrap(sentinel *AppError, err error) *AppError {
	return &AppError{Kind: sentinel.Kind, Code: sentinel.Code, Message: sentinel.Message, Err: err}
}

// From converts any error to an AppError, treating unknown errors as internal.
func From(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

// Predefined errors
var (
	ErrUnauthorized         = Unauthenticated("Authentication failed: Invalid token")
	ErrMissingToken         = Unauthenticated("Authentication failed: No token provided")
	ErrUserNotFoundForToken = Unauthenticated("Authentication failed: User not found")
	ErrInvalidCredentials   = &AppError{Kind: KindUnauthenticated, Code: ErrCodeInvalidCredentials, Message: "Invalid email or password"}
	ErrForbidden            = Forbidden("Forbidden: You do not have permission to perform this action")
	ErrInvalidInput         = Validation("Invalid request body")
	ErrTooManyRequests      = &AppError{Kind: KindRateLimited, Code: ErrCodeTooManyRequests, Message: "Too many requests, please try again later"}
	ErrDuplicateField       = Conflict("Duplicate field value entered")
	ErrServiceUnavailable   = Unavailable("Service temporarily unavailable")
)
