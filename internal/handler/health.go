package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health is the unauthenticated liveness probe. Always 200.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
