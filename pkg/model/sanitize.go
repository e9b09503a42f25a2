package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	defaultRating     = 3
	defaultExperience = ExperienceNeutral
	defaultDifficulty = "Medium"
)

// SanitizeReview coerces an arbitrary decoded JSON object into a fully
// defaulted Review. It is the single funnel for every review entering the
// system: seed rows, user submissions, AI output and imports all pass
// through here (or through Review.Sanitize for already-typed values).
func SanitizeReview(raw map[string]any) Review {
	now := time.Now()
	r := Review{
		ID:               intField(raw, "id", now.UnixMilli()),
		Company:          stringField(raw, "company", ""),
		Role:             stringField(raw, "role", ""),
		Experience:       stringField(raw, "experience", defaultExperience),
		Difficulty:       stringField(raw, "difficulty", defaultDifficulty),
		Rating:           ratingField(raw, "rating"),
		Date:             stringField(raw, "date", now.Format("2006-01-02")),
		InterviewProcess: stringField(raw, "interview_process", ""),
		QuestionsAsked:   questionsField(raw, "questions_asked"),
		PreparationTips:  stringField(raw, "preparation_tips", ""),
		Author:           stringField(raw, "author", AuthorSample),
	}
	return r
}

// Sanitize re-applies the defaulting and clamping rules to an already-typed
// Review. Used for seed rows and anything built in code rather than decoded
// from JSON.
func (r Review) Sanitize() Review {
	now := time.Now()
	if r.ID == 0 {
		r.ID = now.UnixMilli()
	}
	if r.Rating < 1 {
		r.Rating = 1
	}
	if r.Rating > 5 {
		r.Rating = 5
	}
	if strings.TrimSpace(r.Experience) == "" {
		r.Experience = defaultExperience
	}
	if strings.TrimSpace(r.Difficulty) == "" {
		r.Difficulty = defaultDifficulty
	}
	if strings.TrimSpace(r.Date) == "" {
		r.Date = now.Format("2006-01-02")
	}
	r.QuestionsAsked = cleanQuestions(r.QuestionsAsked)
	return r
}

func stringField(raw map[string]any, key, def string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intField(raw map[string]any, key string, def int64) int64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i
		}
	}
	return def
}

// ratingField applies the parseInt-then-clamp rule: non-numeric input falls
// back to 3, everything else lands in [1,5].
func ratingField(raw map[string]any, key string) int {
	v, ok := raw[key]
	if !ok || v == nil {
		return defaultRating
	}
	var n int
	switch t := v.(type) {
	case float64:
		n = int(t)
	case int:
		n = t
	case int64:
		n = int(t)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return defaultRating
		}
		n = i
	default:
		return defaultRating
	}
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

func questionsField(raw map[string]any, key string) []string {
	v, ok := raw[key]
	if !ok || v == nil {
		return []string{}
	}
	switch qs := v.(type) {
	case []any:
		out := make([]string, 0, len(qs))
		for _, q := range qs {
			s, ok := q.(string)
			if !ok {
				s = fmt.Sprintf("%v", q)
			}
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return cleanQuestions(qs)
	default:
		return []string{}
	}
}

func cleanQuestions(qs []string) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		q = strings.TrimSpace(q)
		if q != "" {
			out = append(out, q)
		}
	}
	return out
}
