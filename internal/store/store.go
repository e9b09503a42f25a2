// Package store holds the in-memory sample data: interview reviews, coding
// problems and MCQs, seeded at construction. Nothing is persisted; a process
// restart discards user submissions.
package store

import (
	"sync"

	"github.com/prepforge/prepforge/pkg/model"
)

// Store owns the seeded collections. Problems and MCQs are immutable after
// seeding; reviews accept prepended user submissions. Construct one per
// process (or per test) — there are no package-level singletons.
type Store struct {
	mu       sync.RWMutex
	reviews  []model.Review
	problems []model.Problem
	mcqs     []model.MCQ
}

func New() *Store {
	s := &Store{
		reviews:  seedReviews(),
		problems: seedProblems(),
		mcqs:     seedMCQs(),
	}
	for i, r := range s.reviews {
		s.reviews[i] = r.Sanitize()
	}
	return s
}

// Reviews returns a copy of all stored reviews, newest submissions first.
func (s *Store) Reviews() []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// FilterReviews applies q over the stored reviews.
func (s *Store) FilterReviews(q ReviewQuery) []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterReviews(s.reviews, q)
}

// AddReview prepends a review so recent submissions list first. The caller
// is responsible for sanitizing beforehand.
func (s *Store) AddReview(r model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]model.Review{r}, s.reviews...)
}

func (s *Store) ReviewCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

func (s *Store) Problems(q ProblemQuery) []model.Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterProblems(s.problems, q)
}

func (s *Store) ProblemByID(id int) (model.Problem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.problems {
		if p.ID == id {
			return p, true
		}
	}
	return model.Problem{}, false
}

func (s *Store) ProblemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.problems)
}

func (s *Store) MCQs(q MCQQuery) []model.MCQ {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterMCQs(s.mcqs, q)
}

func (s *Store) MCQCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mcqs)
}
