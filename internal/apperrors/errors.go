package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrorKind is the machine-readable category reported to callers.
type ErrorKind string

const (
	KindValidation  ErrorKind = "VALIDATION_ERROR"
	KindSkuNotFound ErrorKind = "SKU_NOT_FOUND"
	KindNoCost      ErrorKind = "NO_COST"
	KindNoRate      ErrorKind = "NO_RATE"
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindInternal    ErrorKind = "INTERNAL_ERROR"
)

// AppError is an error carrying an explicit kind and the HTTP status class it maps to.
// Err holds the underlying cause and is never shown to callers for internal errors.
type AppError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is lets errors.Is match the package sentinels by kind.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound || e.Kind == KindSkuNotFound
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

// NewAppError creates an error for an unexpected failure with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Kind: KindInternal, Message: message, Err: err}
}

// NewNotFoundError reports an absent record.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: message}
}

// NewValidationError reports malformed input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

func NewSkuNotFoundError(sku string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: KindSkuNotFound, Message: fmt.Sprintf("SKU not found: %s", sku)}
}

func NewNoCostError() *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindNoCost, Message: "No cost found for conditions"}
}

func NewNoRateError(base, quote string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindNoRate, Message: fmt.Sprintf("Exchange rate not found for %s to %s", base, quote)}
}

// NewInternalError hides err behind a generic message.
func NewInternalError(err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal Server Error", Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusOf returns the HTTP status for err. Errors without an AppError map to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the message safe to show a caller: 5xx messages are withheld.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code >= http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return appErr.Message
}
