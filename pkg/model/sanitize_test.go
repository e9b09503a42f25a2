package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeReviewDefaults(t *testing.T) {
	r := SanitizeReview(map[string]any{
		"company": "Acme",
		"role":    "Engineer",
	})

	assert.Equal(t, "Acme", r.Company)
	assert.Equal(t, "Engineer", r.Role)
	assert.Equal(t, 3, r.Rating)
	assert.Equal(t, "Neutral", r.Experience)
	assert.Equal(t, "Medium", r.Difficulty)
	assert.Equal(t, "Sample Data", r.Author)
	assert.NotZero(t, r.ID)
	assert.NotEmpty(t, r.Date)
	assert.NotNil(t, r.QuestionsAsked)
	assert.Empty(t, r.QuestionsAsked)
}

func TestSanitizeReviewRating(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"in range", float64(4), 4},
		{"above range", float64(11), 5},
		{"below range", float64(-2), 1},
		{"zero", float64(0), 1},
		{"numeric string", "5", 5},
		{"fractional", 4.7, 4},
		{"non numeric string", "great", 3},
		{"wrong type", []any{1}, 3},
		{"missing", nil, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"company": "Acme", "role": "Engineer"}
			if tt.in != nil {
				raw["rating"] = tt.in
			}
			r := SanitizeReview(raw)
			assert.Equal(t, tt.want, r.Rating)
		})
	}
}

func TestSanitizeReviewQuestions(t *testing.T) {
	r := SanitizeReview(map[string]any{
		"company":         "Acme",
		"role":            "Engineer",
		"questions_asked": []any{" Two sum ", "", "   ", "Design a URL shortener", 42},
	})

	require.Len(t, r.QuestionsAsked, 3)
	assert.Equal(t, []string{"Two sum", "Design a URL shortener", "42"}, r.QuestionsAsked)
}

func TestSanitizeReviewQuestionsWrongType(t *testing.T) {
	r := SanitizeReview(map[string]any{
		"company":         "Acme",
		"role":            "Engineer",
		"questions_asked": "not a list",
	})
	assert.Empty(t, r.QuestionsAsked)
}

func TestSanitizeReviewCoercesTextFields(t *testing.T) {
	r := SanitizeReview(map[string]any{
		"company":    float64(123),
		"role":       true,
		"experience": "Positive",
	})
	assert.Equal(t, "123", r.Company)
	assert.Equal(t, "true", r.Role)
	assert.Equal(t, "Positive", r.Experience)
}

func TestSanitizeReviewKeepsProvidedID(t *testing.T) {
	r := SanitizeReview(map[string]any{"id": float64(42), "company": "Acme", "role": "SRE"})
	assert.Equal(t, int64(42), r.ID)
}

func TestReviewSanitizeMethod(t *testing.T) {
	r := Review{
		Company:        "Acme",
		Role:           "Engineer",
		Rating:         9,
		QuestionsAsked: []string{"", "Reverse a list", "  "},
	}.Sanitize()

	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "Neutral", r.Experience)
	assert.Equal(t, "Medium", r.Difficulty)
	assert.Equal(t, []string{"Reverse a list"}, r.QuestionsAsked)
	assert.NotZero(t, r.ID)
}
