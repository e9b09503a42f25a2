package store

import (
	"strings"

	"github.com/prepforge/prepforge/pkg/model"
)

// Query parameter bundles. An empty field means "no constraint"; all
// provided constraints are ANDed. Company and role match by case-insensitive
// substring, category and difficulty by case-insensitive equality.

type ReviewQuery struct {
	Company string
	Role    string
}

func (q ReviewQuery) IsZero() bool { return q.Company == "" && q.Role == "" }

type ProblemQuery struct {
	Category   string
	Difficulty string
}

type MCQQuery struct {
	Category   string
	Difficulty string
	Company    string
	Role       string
}

// FilterReviews returns the reviews matching q, preserving input order. It
// never fails; no match yields an empty slice.
func FilterReviews(reviews []model.Review, q ReviewQuery) []model.Review {
	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if containsFold(r.Company, q.Company) && containsFold(r.Role, q.Role) {
			out = append(out, r)
		}
	}
	return out
}

func FilterProblems(problems []model.Problem, q ProblemQuery) []model.Problem {
	out := make([]model.Problem, 0, len(problems))
	for _, p := range problems {
		if equalsFold(p.Category, q.Category) && equalsFold(p.Difficulty, q.Difficulty) {
			out = append(out, p)
		}
	}
	return out
}

func FilterMCQs(mcqs []model.MCQ, q MCQQuery) []model.MCQ {
	out := make([]model.MCQ, 0, len(mcqs))
	for _, m := range mcqs {
		if equalsFold(m.Category, q.Category) &&
			equalsFold(m.Difficulty, q.Difficulty) &&
			containsFold(m.Company, q.Company) &&
			containsFold(m.Role, q.Role) {
			out = append(out, m)
		}
	}
	return out
}

// containsFold is the substring predicate; an empty query always matches.
func containsFold(field, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

// equalsFold is the exact-match predicate; an empty query always matches.
func equalsFold(field, query string) bool {
	if query == "" {
		return true
	}
	return strings.EqualFold(field, query)
}
