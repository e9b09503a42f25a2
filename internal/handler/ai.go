package handler

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/internal/ai"
	"github.com/prepforge/prepforge/pkg/model"
	"github.com/prepforge/prepforge/pkg/response"
)

// aiError maps generator failures onto the error envelope. A missing
// credential is a configuration problem and gets its own message.
func (h *Handler) aiError(c *gin.Context, action string, err error) {
	if errors.Is(err, ai.ErrNotConfigured) {
		response.InternalError(c, "AI service is not configured")
		return
	}
	h.Logger.Sugar().Errorw("ai request failed", "action", action, "err", err)
	response.InternalError(c, "failed to "+action)
}

func (h *Handler) AnalyzeCode(c *gin.Context) {
	var req struct {
		Code     string `json:"code" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code is required")
		return
	}
	if req.Language == "" {
		req.Language = "JavaScript"
	}

	result, err := h.AI.AnalyzeCode(c.Request.Context(), req.Code, req.Language)
	if err != nil {
		h.aiError(c, "analyze code", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Hint(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Code        string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title is required")
		return
	}

	result, err := h.AI.Hint(c.Request.Context(), req.Title, req.Description, req.Code)
	if err != nil {
		h.aiError(c, "generate a hint", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GenerateMCQs(c *gin.Context) {
	var req struct {
		Topic      string `json:"topic" binding:"required"`
		Difficulty string `json:"difficulty"`
		Count      int    `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "topic is required")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "Medium"
	}
	if req.Count <= 0 || req.Count > 20 {
		req.Count = 5
	}

	mcqs, err := h.AI.GenerateMCQs(c.Request.Context(), req.Topic, req.Difficulty, req.Count)
	if err != nil {
		h.aiError(c, "generate MCQs", err)
		return
	}

	// the model rarely numbers its questions
	mcqs = slice.Map(mcqs, func(idx int, m model.MCQ) model.MCQ {
		if m.ID == 0 {
			m.ID = idx + 1
		}
		return m
	})
	c.JSON(http.StatusOK, gin.H{"mcqs": mcqs})
}

func (h *Handler) MockInterview(c *gin.Context) {
	var req struct {
		Role  string `json:"role"`
		Level string `json:"level"`
	}
	// both fields are optional; an empty body is fine
	_ = c.ShouldBindJSON(&req)
	if req.Role == "" {
		req.Role = "Software Engineer"
	}
	if req.Level == "" {
		req.Level = "mid-level"
	}

	result, err := h.AI.MockInterview(c.Request.Context(), req.Role, req.Level)
	if err != nil {
		h.aiError(c, "prepare a mock interview", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) AnalyzeResume(c *gin.Context) {
	var req struct {
		Resume string `json:"resume" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "resume is required")
		return
	}

	result, err := h.AI.AnalyzeResume(c.Request.Context(), req.Resume)
	if err != nil {
		h.aiError(c, "analyze the resume", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) StudyPlan(c *gin.Context) {
	var req struct {
		Goal  string `json:"goal" binding:"required"`
		Weeks int    `json:"weeks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "goal is required")
		return
	}
	if req.Weeks <= 0 || req.Weeks > 26 {
		req.Weeks = 4
	}

	result, err := h.AI.StudyPlan(c.Request.Context(), req.Goal, req.Weeks)
	if err != nil {
		h.aiError(c, "build a study plan", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CompanyInsights(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "company name is required")
		return
	}

	result, err := h.AI.CompanyInsights(c.Request.Context(), name)
	if err != nil {
		h.aiError(c, "fetch company insights", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
