package model

// Review provenance tags.
const (
	AuthorSample = "Sample Data"
	AuthorUser   = "User Submitted"
	AuthorAI     = "AI Generated"
	AuthorSystem = "System Generated"
)

// Conventional experience values (free-form, not enforced).
const (
	ExperiencePositive = "Positive"
	ExperienceNeutral  = "Neutral"
	ExperienceNegative = "Negative"
	ExperienceMixed    = "Mixed"
)

// Review is a single interview report. Every review handed to a client,
// whatever its origin, must have passed through SanitizeReview or
// Review.Sanitize first.
type Review struct {
	ID               int64    `json:"id"`
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Experience       string   `json:"experience"`
	Difficulty       string   `json:"difficulty"`
	Rating           int      `json:"rating"`
	Date             string   `json:"date"`
	InterviewProcess string   `json:"interview_process"`
	QuestionsAsked   []string `json:"questions_asked"`
	PreparationTips  string   `json:"preparation_tips"`
	Author           string   `json:"author"`
}

// Insights is the optional AI enrichment attached to a submitted review.
// It is best-effort everywhere: callers must tolerate a nil value.
type Insights struct {
	Summary              string   `json:"summary"`
	Sentiment            string   `json:"sentiment"`
	KeyTakeaways         []string `json:"key_takeaways"`
	SuggestedPreparation []string `json:"suggested_preparation"`
}

type SubmitReviewResponse struct {
	Review     Review    `json:"review"`
	AIInsights *Insights `json:"aiInsights"`
	Message    string    `json:"message"`
}

type ImportReviewRequest struct {
	URL string `json:"url" binding:"required"`
}
