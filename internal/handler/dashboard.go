package handler

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

// The dashboard endpoints return fabricated demo payloads. Only their shape
// matters; no real computation happens behind them.

func (h *Handler) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"totalProblems":   h.Store.ProblemCount(),
		"solvedProblems":  12,
		"totalMCQs":       h.Store.MCQCount(),
		"answeredMCQs":    34,
		"reviewsBrowsed":  h.Store.ReviewCount(),
		"streakDays":      4,
		"accuracy":        78.5,
		"hoursPracticed":  26,
		"weeklyGoalHours": 10,
	})
}

func (h *Handler) DashboardActivity(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"type": "problem_solved", "title": "Two Sum", "difficulty": "Easy", "when": "2h ago"},
		{"type": "mcq_session", "title": "System Design quiz", "score": "8/10", "when": "yesterday"},
		{"type": "review_read", "title": "Google - Software Engineer", "when": "2 days ago"},
		{"type": "mock_interview", "title": "Backend mock interview", "when": "4 days ago"},
	})
}

func (h *Handler) UserProgress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"level":          "Intermediate",
		"xp":             1240,
		"nextLevelXp":    2000,
		"badges":         []string{"First Solve", "7-Day Streak", "Quiz Whiz"},
		"topicsMastered": []string{"Arrays", "Strings"},
		"topicsInFlight": []string{"Graphs", "System Design"},
	})
}

func (h *Handler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"solvesByDifficulty": gin.H{"Easy": 7, "Medium": 4, "Hard": 1},
		"weeklySolves":       []int{2, 3, 1, 4, 0, 2, 3},
		"averageSolveTime":   "24m",
		"strongestCategory":  "Arrays",
		"weakestCategory":    "Graphs",
	})
}

func (h *Handler) Leaderboard(c *gin.Context) {
	names := []string{"dev_ninja", "code_wizard", "algo_queen", "stack_smasher", "null_pointer"}
	board := slice.Map(names, func(idx int, name string) gin.H {
		return gin.H{
			"rank":   idx + 1,
			"user":   name,
			"score":  5000 - idx*650,
			"solved": 120 - idx*17,
		}
	})
	c.JSON(http.StatusOK, board)
}
