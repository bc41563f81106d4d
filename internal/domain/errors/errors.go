// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface implemented by application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code associated with the failure
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Cart and checkout errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"the cart is empty",
	)

	// Session errors
	ErrNoSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_SESSION",
		"not signed in",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"admin privileges required",
	)

	// Browser errors
	ErrNoActiveProduct = NewBaseError(
		http.StatusBadRequest,
		"NO_ACTIVE_PRODUCT",
		"no product is open",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
	)
)

// genericAPIMessage is surfaced when the remote API fails without a usable
// message field in its response body.
const genericAPIMessage = "request failed"

// APIError represents a failure reported by the remote storefront API,
// implementing the AppError interface. The message is taken verbatim from
// the response body when present.
type APIError struct {
	status  int
	message string
}

// NewAPIError creates an error for a non-success API response. An empty
// message falls back to a generic notice.
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = genericAPIMessage
	}

	return &APIError{status: status, message: message}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.message
}

// HTTPCode returns the status code of the failed response.
func (e *APIError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code.
func (e *APIError) ErrorCode() string {
	return "API_ERROR"
}

// Message returns the user-facing error message.
func (e *APIError) Message() string {
	return e.message
}

// UserMessage extracts the message to surface for err: the AppError message
// when err carries one, otherwise a generic notice. All user-visible
// failures funnel through this so remote messages surface verbatim.
func UserMessage(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return genericAPIMessage
}
