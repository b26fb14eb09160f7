package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/company/domain"
)

// ValidationError is a request rejected before any backend call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AuthError is a missing, invalid or expired session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

const unavailableMessage = "Unable to connect to backend gRPC service. Please ensure the company service is running on port 50051."

// ErrorHandlingMiddleware turns the last recorded error into the portal's
// {success:false, message} failure body. Handlers that already wrote a
// response are left alone.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, body := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, body)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, gin.H) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, gin.H{"success": false, "message": vErr.Message}
	}

	var aErr *AuthError
	if errors.As(err, &aErr) {
		message := aErr.Message
		if message == "" {
			message = "Not authenticated"
		}
		return http.StatusUnauthorized, gin.H{"success": false, "message": message}
	}

	detail := domain.BackendDetail(err)

	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		message := detail
		if message == "" {
			message = "Company with this ID or Email already exists"
		}
		return http.StatusConflict, gin.H{"success": false, "message": message}

	case errors.Is(err, domain.ErrInvalidArgument):
		message := detail
		if message == "" {
			message = "Invalid request data"
		}
		return http.StatusBadRequest, gin.H{"success": false, "message": message}

	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": unavailableMessage,
			"error":   "Service unavailable",
			"hint":    "Start the company service backend, then retry",
		}

	case errors.Is(err, domain.ErrInvalidCredentials):
		message := detail
		if message == "" {
			message = "Invalid credentials"
		}
		return http.StatusUnauthorized, gin.H{"success": false, "message": message}

	case errors.Is(err, domain.ErrNotFound):
		message := detail
		if message == "" {
			message = "Not found"
		}
		return http.StatusNotFound, gin.H{"success": false, "message": message}

	default:
		message := detail
		if message == "" {
			message = "Internal server error"
		}
		return http.StatusInternalServerError, gin.H{"success": false, "message": message}
	}
}
