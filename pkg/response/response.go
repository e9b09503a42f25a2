// Package response writes the uniform error envelope:
// {"error": ..., "status": "error", "statusCode": ..., "stack"?: ...}.
// Successful payloads are endpoint-specific and bypass this package.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Error      string `json:"error"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Stack      string `json:"stack,omitempty"`
}

// Error writes the envelope without a stack trace.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Error:      message,
		Status:     "error",
		StatusCode: status,
	})
}

// ErrorWithStack attaches a stack trace. Callers must only use this outside
// production.
func ErrorWithStack(c *gin.Context, status int, message, stack string) {
	c.JSON(status, Envelope{
		Error:      message,
		Status:     "error",
		StatusCode: status,
		Stack:      stack,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(c, http.StatusInternalServerError, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}
