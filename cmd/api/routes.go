package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/internal/auth"
	"github.com/prepforge/prepforge/internal/ratelimit"
	"github.com/prepforge/prepforge/pkg/response"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(app.recovery())
	r.Use(app.requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     app.Config.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	// health stays outside the limiter and auth
	h := app.Handler
	r.GET("/health", h.Health)
	r.GET("/api/health", h.Health)

	api := r.Group("/api")
	if app.Config.Limiter.Enabled {
		api.Use(ratelimit.Middleware(app.Limiter))
	}
	api.Use(auth.APIKey(app.Config.APIKey))
	{
		api.GET("/reviews", h.ListReviews)
		api.POST("/reviews", h.CreateReview)
		api.POST("/reviews/import", h.ImportReview)

		api.GET("/problems", h.ListProblems)
		api.GET("/problems/:id", h.GetProblem)
		api.GET("/mcqs", h.ListMCQs)

		api.GET("/dashboard/stats", h.DashboardStats)
		api.GET("/dashboard/activity", h.DashboardActivity)
		api.GET("/user/progress", h.UserProgress)
		api.GET("/analytics", h.Analytics)
		api.GET("/leaderboard", h.Leaderboard)

		api.POST("/ai/analyze-code", h.AnalyzeCode)
		api.POST("/ai/hint", h.Hint)
		api.POST("/ai/generate-mcqs", h.GenerateMCQs)
		api.POST("/mock-interview", h.MockInterview)
		api.POST("/resume/analyze", h.AnalyzeResume)
		api.POST("/study-plan", h.StudyPlan)
		api.GET("/company/:name/insights", h.CompanyInsights)
	}

	return r
}
