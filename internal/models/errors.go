package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewRateLimitedError is returned when a caller exceeds a request throttle.
func NewRateLimitedError() *AppError {
	return &AppError{
		Code:    "RATE_LIMITED",
		Message: "Too many requests, please try again later",
	}
}

// NewTokenNotFoundError covers unknown, already-decided and expired approval
// tokens with one indistinguishable message. Callers must not be able to tell
// which case they hit.
func NewTokenNotFoundError() *AppError {
	return &AppError{
		Code:    "NOT_FOUND_OR_EXPIRED",
		Message: "Invalid or expired approval token",
	}
}

// NewUpstreamError wraps a failure in an external collaborator (database,
// mail provider). The wrapped error is logged, never returned to the caller.
func NewUpstreamError(err error) *AppError {
	return &AppError{
		Code:    "UPSTREAM_FAILURE",
		Message: "Service temporarily unavailable",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response. Wrapped internal
// detail is intentionally omitted from the body; it belongs in logs only.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
