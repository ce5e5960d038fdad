package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes exposed to clients. Every error carries a stable machine
// readable code plus a human readable message; internal identifiers and
// stack traces never surface.
const (
	CodeSelfFollow           = "SELF_FOLLOW"
	CodeDuplicateEdge        = "DUPLICATE_EDGE"
	CodeDuplicateLike        = "DUPLICATE_LIKE"
	CodeEdgeNotFound         = "EDGE_NOT_FOUND"
	CodeLikeNotFound         = "LIKE_NOT_FOUND"
	CodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	CodeDataIntegrity        = "DATA_INTEGRITY"
	CodeFeedUnavailable      = "FEED_UNAVAILABLE"
	CodeNotFound             = "NOT_FOUND"
	CodeValidation           = "VALIDATION_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternal             = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
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

func NewSelfFollowError() *AppError {
	return &AppError{
		Code:    CodeSelfFollow,
		Message: "You cannot follow yourself",
	}
}

func NewDuplicateEdgeError() *AppError {
	return &AppError{
		Code:    CodeDuplicateEdge,
		Message: "You are already following this user",
	}
}

func NewDuplicateLikeError() *AppError {
	return &AppError{
		Code:    CodeDuplicateLike,
		Message: "You have already liked this post",
	}
}

func NewEdgeNotFoundError() *AppError {
	return &AppError{
		Code:    CodeEdgeNotFound,
		Message: "No follow relationship found to delete",
	}
}

func NewLikeNotFoundError() *AppError {
	return &AppError{
		Code:    CodeLikeNotFound,
		Message: "No like found for this post from your account",
	}
}

func NewReferentialIntegrityError(message string) *AppError {
	return &AppError{
		Code:    CodeReferentialIntegrity,
		Message: message,
	}
}

// NewDataIntegrityError marks corrupted state, e.g. a post whose author row
// is missing. Surfaced as a 5xx and never retried.
func NewDataIntegrityError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeDataIntegrity,
		Message: message,
		Err:     err,
	}
}

// NewFeedUnavailableError marks a transient storage failure or timeout while
// building a feed. The caller may retry with backoff; the core never does.
func NewFeedUnavailableError(err error) *AppError {
	return &AppError{
		Code:    CodeFeedUnavailable,
		Message: "Feed is temporarily unavailable",
		Err:     err,
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
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
