package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/internal/store"
)

func (h *Handler) ListMCQs(c *gin.Context) {
	q := store.MCQQuery{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Company:    c.Query("company"),
		Role:       c.Query("role"),
	}
	c.JSON(http.StatusOK, h.Store.MCQs(q))
}
