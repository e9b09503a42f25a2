package client

import "github.com/prepforge/prepforge/pkg/model"

// Local mock data served when the API is unreachable. Deliberately smaller
// than the server's seed set; the UI only needs something plausible to
// render.

func MockReviews() []model.Review {
	return []model.Review{
		{
			ID:               9001,
			Company:          "Google",
			Role:             "Software Engineer",
			Experience:       "Positive",
			Difficulty:       "Hard",
			Rating:           4,
			Date:             "2025-01-10",
			InterviewProcess: "Phone screen followed by four onsite rounds.",
			QuestionsAsked:   []string{"Reverse a linked list", "Design a URL shortener"},
			PreparationTips:  "Practice coding on a whiteboard and talk through your approach.",
			Author:           model.AuthorSample,
		},
		{
			ID:               9002,
			Company:          "Amazon",
			Role:             "SDE II",
			Experience:       "Mixed",
			Difficulty:       "Medium",
			Rating:           3,
			Date:             "2025-02-14",
			InterviewProcess: "Online assessment, then a virtual loop heavy on leadership principles.",
			QuestionsAsked:   []string{"Top K frequent elements", "Tell me about a time you disagreed with your manager"},
			PreparationTips:  "Prepare STAR stories for every leadership principle.",
			Author:           model.AuthorSample,
		},
	}
}

func MockProblems() []model.Problem {
	return []model.Problem{
		{
			ID:          9001,
			Title:       "FizzBuzz",
			Description: "Print the numbers 1 to n, replacing multiples of 3 with Fizz, multiples of 5 with Buzz, and multiples of both with FizzBuzz.",
			Difficulty:  "Easy",
			Category:    "Basics",
			TestCases:   []model.TestCase{{Input: 5, Output: []string{"1", "2", "Fizz", "4", "Buzz"}}},
			Solution:    "// left as an exercise",
		},
	}
}

func MockMCQs() []model.MCQ {
	return []model.MCQ{
		{
			ID:          9001,
			Question:    "Which data structure uses FIFO ordering?",
			Options:     []string{"Stack", "Queue", "Tree", "Heap"},
			Correct:     1,
			Category:    "Data Structures",
			Difficulty:  "Easy",
			Company:     "Google",
			Explanation: "A queue dequeues elements in the order they were enqueued.",
		},
	}
}
