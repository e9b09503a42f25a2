package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/pkg/response"
)

func (h *Handler) ListProblems(c *gin.Context) {
	q := store.ProblemQuery{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	c.JSON(http.StatusOK, h.Store.Problems(q))
}

func (h *Handler) GetProblem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid problem id")
		return
	}

	p, ok := h.Store.ProblemByID(id)
	if !ok {
		response.NotFound(c, "problem not found")
		return
	}
	c.JSON(http.StatusOK, p)
}
