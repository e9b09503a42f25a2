package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/pkg/model"
	"github.com/prepforge/prepforge/pkg/response"
)

// ListReviews serves seed (and submitted) reviews, falling through to the
// cache and then the AI generator when a company+role pair has no stored
// match. Partial filters never trigger generation.
func (h *Handler) ListReviews(c *gin.Context) {
	q := store.ReviewQuery{
		Company: c.Query("company"),
		Role:    c.Query("role"),
	}

	if q.IsZero() {
		c.JSON(http.StatusOK, h.Store.Reviews())
		return
	}

	matched := h.Store.FilterReviews(q)
	if len(matched) > 0 {
		c.JSON(http.StatusOK, matched)
		return
	}

	if q.Company == "" || q.Role == "" {
		c.JSON(http.StatusOK, []model.Review{})
		return
	}

	if cached, ok := h.Cache.Get(q.Company, q.Role); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	review, err := h.AI.GenerateReview(c.Request.Context(), q.Company, q.Role)
	if err != nil {
		h.Logger.Sugar().Errorw("review generation unavailable", "company", q.Company, "role", q.Role, "err", err)
		response.InternalError(c, "review generation is unavailable: AI credential is not configured")
		return
	}

	generated := []model.Review{review}
	h.Cache.Put(q.Company, q.Role, generated)
	c.JSON(http.StatusOK, generated)
}

// CreateReview accepts a user submission. Company and role are the only
// required fields; everything else is defaulted by the sanitizer. Insights
// are best-effort and never fail the request.
func (h *Handler) CreateReview(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	company, _ := raw["company"].(string)
	role, _ := raw["role"].(string)
	if strings.TrimSpace(company) == "" || strings.TrimSpace(role) == "" {
		response.BadRequest(c, "company and role are required")
		return
	}

	raw["author"] = model.AuthorUser
	review := model.SanitizeReview(raw)
	h.Store.AddReview(review)

	var insights *model.Insights
	if ins, err := h.AI.GenerateInsights(c.Request.Context(), review); err != nil {
		h.Logger.Sugar().Debugw("insights unavailable", "company", review.Company, "err", err)
	} else {
		insights = ins
	}

	c.JSON(http.StatusCreated, model.SubmitReviewResponse{
		Review:     review,
		AIInsights: insights,
		Message:    "Review submitted successfully",
	})
}

// ImportReview fetches an interview-experience page and has the AI extract
// a structured review from it.
func (h *Handler) ImportReview(c *gin.Context) {
	var req model.ImportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "url is required")
		return
	}

	page, err := h.Fetcher.Fetch(req.URL, c.Request.UserAgent())
	if err != nil {
		response.BadRequest(c, "fetch failed: "+err.Error())
		return
	}

	review, err := h.AI.ExtractReview(c.Request.Context(), page.Title+"\n\n"+page.Content)
	if err != nil {
		h.aiError(c, "extract a review from the page", err)
		return
	}

	review.Author = model.AuthorUser
	h.Store.AddReview(review)

	c.JSON(http.StatusCreated, gin.H{
		"review":  review,
		"message": "Review imported successfully",
	})
}
