package main

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prepforge/prepforge/pkg/response"
)

// requestLogger logs every request with a generated id.
func (app *application) requestLogger() gin.HandlerFunc {
	sugar := app.Logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Next()
		sugar.Infow("http",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// recovery turns panics into the error envelope. The stack is exposed only
// outside production.
func (app *application) recovery() gin.HandlerFunc {
	sugar := app.Logger.Sugar()
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		sugar.Errorw("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		if app.Config.IsProduction() {
			response.InternalError(c, "internal server error")
		} else {
			response.ErrorWithStack(c, http.StatusInternalServerError, "internal server error", string(debug.Stack()))
		}
		c.Abort()
	})
}
