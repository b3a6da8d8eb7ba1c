package apperrors

import (
	"fmt"
	"net/http"
)

// AppError represents an error that maps directly onto an HTTP response
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Internal error for logging
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the internal error to errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest creates a 400 error
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden creates a 403 error
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

// NotFound creates a 404 error
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Unprocessable creates a 422 error
func Unprocessable(message string) *AppError {
	return New(http.StatusUnprocessableEntity, message, nil)
}

// Internal creates a 500 error
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Errors returned by the services. Compare with errors.Is.
var (
	ErrDuplicateEmail     = BadRequest("Email already in use.")
	ErrInvalidCredentials = Unauthorized("Invalid credentials.")
	ErrUnauthenticated    = Unauthorized("Unauthenticated.")
	ErrTooManyRequests    = New(http.StatusTooManyRequests, "Too many requests.", nil)

	// Update and delete share one message on purpose.
	ErrToolForbidden = Forbidden("You do not have permission to delete this tool.")
	ErrToolNotFound  = NotFound("Tool not found.")
)

// ValidationMessage is the message of every 422 response
const ValidationMessage = "Validation errors"
