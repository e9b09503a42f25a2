package store

import "github.com/prepforge/prepforge/pkg/model"

// Seed data bundled at startup. It doubles as demo content and as the
// first-choice match source before the AI generation fallback kicks in.

func seedReviews() []model.Review {
	return []model.Review{
		{
			ID:         1,
			Company:    "Google",
			Role:       "Software Engineer",
			Experience: "Positive",
			Difficulty: "Hard",
			Rating:     4,
			Date:       "2025-03-12",
			InterviewProcess: "Phone screen with a coding exercise, then a virtual onsite of " +
				"four rounds: two coding, one system design, one behavioral.",
			QuestionsAsked: []string{
				"Find the longest substring without repeating characters",
				"Design a distributed rate limiter",
				"Tell me about a time you disagreed with a teammate",
			},
			PreparationTips: "Grind medium/hard array and string problems, and be ready to talk through trade-offs out loud.",
			Author:          model.AuthorSample,
		},
		{
			ID:         2,
			Company:    "Amazon",
			Role:       "Software Development Engineer",
			Experience: "Mixed",
			Difficulty: "Medium",
			Rating:     3,
			Date:       "2025-02-03",
			InterviewProcess: "Online assessment with two coding questions, followed by three " +
				"video rounds heavy on leadership principles.",
			QuestionsAsked: []string{
				"Merge k sorted lists",
				"Describe a situation where you took ownership of a failing project",
			},
			PreparationTips: "Have a STAR story ready for every leadership principle. The coding bar is standard LeetCode medium.",
			Author:          model.AuthorSample,
		},
		{
			ID:         3,
			Company:    "Microsoft",
			Role:       "Frontend Engineer",
			Experience: "Positive",
			Difficulty: "Medium",
			Rating:     5,
			Date:       "2025-04-21",
			InterviewProcess: "Recruiter chat, one technical screen, then a half-day loop with " +
				"two coding rounds and a design discussion about a component library.",
			QuestionsAsked: []string{
				"Implement a debounce function",
				"How would you architect a design system used by 20 teams?",
			},
			PreparationTips: "Know the DOM and event loop cold. They cared more about reasoning than syntax.",
			Author:          model.AuthorSample,
		},
		{
			ID:         4,
			Company:    "Netflix",
			Role:       "Senior Software Engineer",
			Experience: "Negative",
			Difficulty: "Very Hard",
			Rating:     2,
			Date:       "2025-01-17",
			InterviewProcess: "Single marathon day: systems deep dive, culture interview, and a " +
				"pair-programming session on a real service.",
			QuestionsAsked: []string{
				"Design a video CDN edge cache",
				"Debug a memory leak in a streaming service",
			},
			PreparationTips: "Expect very senior interviewers and little hand-holding. Brush up on JVM internals if the team runs Java.",
			Author:          model.AuthorSample,
		},
		{
			ID:         5,
			Company:    "Stripe",
			Role:       "Backend Engineer",
			Experience: "Positive",
			Difficulty: "Hard",
			Rating:     4,
			Date:       "2025-05-08",
			InterviewProcess: "Practical take-home style screen in the browser, then an onsite " +
				"with an integration debugging round and an API design round.",
			QuestionsAsked: []string{
				"Build a small HTTP API against a spec",
				"Walk through idempotency for a payments endpoint",
			},
			PreparationTips: "Their rounds mirror day-to-day work: readable code and careful edge-case handling beat cleverness.",
			Author:          model.AuthorSample,
		},
	}
}

func seedProblems() []model.Problem {
	return []model.Problem{
		{
			ID:          1,
			Title:       "Two Sum",
			Description: "Given an array of integers nums and an integer target, return the indices of the two numbers that add up to target. Exactly one solution exists and an element may not be used twice.",
			Difficulty:  "Easy",
			Category:    "Arrays",
			TestCases: []model.TestCase{
				{Input: map[string]any{"nums": []int{2, 7, 11, 15}, "target": 9}, Output: []int{0, 1}},
				{Input: map[string]any{"nums": []int{3, 2, 4}, "target": 6}, Output: []int{1, 2}},
			},
			Solution: `func twoSum(nums []int, target int) []int {
	seen := make(map[int]int, len(nums))
	for i, n := range nums {
		if j, ok := seen[target-n]; ok {
			return []int{j, i}
		}
		seen[n] = i
	}
	return nil
}`,
		},
		{
			ID:          2,
			Title:       "Valid Parentheses",
			Description: "Given a string containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid: brackets must close in the correct order.",
			Difficulty:  "Easy",
			Category:    "Stacks",
			TestCases: []model.TestCase{
				{Input: "()[]{}", Output: true},
				{Input: "(]", Output: false},
				{Input: "([)]", Output: false},
			},
			Solution: `func isValid(s string) bool {
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	var stack []rune
	for _, c := range s {
		if open, ok := pairs[c]; ok {
			if len(stack) == 0 || stack[len(stack)-1] != open {
				return false
			}
			stack = stack[:len(stack)-1]
		} else {
			stack = append(stack, c)
		}
	}
	return len(stack) == 0
}`,
		},
		{
			ID:          3,
			Title:       "Longest Substring Without Repeating Characters",
			Description: "Given a string s, find the length of the longest substring without repeating characters.",
			Difficulty:  "Medium",
			Category:    "Strings",
			TestCases: []model.TestCase{
				{Input: "abcabcbb", Output: 3},
				{Input: "bbbbb", Output: 1},
				{Input: "pwwkew", Output: 3},
			},
			Solution: `func lengthOfLongestSubstring(s string) int {
	last := make(map[byte]int)
	best, start := 0, 0
	for i := 0; i < len(s); i++ {
		if j, ok := last[s[i]]; ok && j >= start {
			start = j + 1
		}
		last[s[i]] = i
		if i-start+1 > best {
			best = i - start + 1
		}
	}
	return best
}`,
		},
		{
			ID:          4,
			Title:       "Merge Intervals",
			Description: "Given an array of intervals, merge all overlapping intervals and return an array of the non-overlapping intervals that cover all the intervals in the input.",
			Difficulty:  "Medium",
			Category:    "Arrays",
			TestCases: []model.TestCase{
				{Input: [][]int{{1, 3}, {2, 6}, {8, 10}, {15, 18}}, Output: [][]int{{1, 6}, {8, 10}, {15, 18}}},
				{Input: [][]int{{1, 4}, {4, 5}}, Output: [][]int{{1, 5}}},
			},
			Solution: `func merge(intervals [][]int) [][]int {
	sort.Slice(intervals, func(i, j int) bool { return intervals[i][0] < intervals[j][0] })
	var out [][]int
	for _, iv := range intervals {
		if n := len(out); n > 0 && iv[0] <= out[n-1][1] {
			if iv[1] > out[n-1][1] {
				out[n-1][1] = iv[1]
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}`,
		},
		{
			ID:          5,
			Title:       "Word Ladder",
			Description: "Given two words, beginWord and endWord, and a dictionary wordList, return the number of words in the shortest transformation sequence from beginWord to endWord, changing one letter at a time.",
			Difficulty:  "Hard",
			Category:    "Graphs",
			TestCases: []model.TestCase{
				{Input: map[string]any{"beginWord": "hit", "endWord": "cog", "wordList": []string{"hot", "dot", "dog", "lot", "log", "cog"}}, Output: 5},
				{Input: map[string]any{"beginWord": "hit", "endWord": "cog", "wordList": []string{"hot", "dot", "dog", "lot", "log"}}, Output: 0},
			},
			Solution: `func ladderLength(beginWord, endWord string, wordList []string) int {
	dict := make(map[string]bool, len(wordList))
	for _, w := range wordList {
		dict[w] = true
	}
	if !dict[endWord] {
		return 0
	}
	queue := []string{beginWord}
	steps := 1
	for len(queue) > 0 {
		var next []string
		for _, w := range queue {
			if w == endWord {
				return steps
			}
			b := []byte(w)
			for i := range b {
				orig := b[i]
				for c := byte('a'); c <= 'z'; c++ {
					b[i] = c
					cand := string(b)
					if dict[cand] {
						delete(dict, cand)
						next = append(next, cand)
					}
				}
				b[i] = orig
			}
		}
		queue = next
		steps++
	}
	return 0
}`,
		},
	}
}

func seedMCQs() []model.MCQ {
	return []model.MCQ{
		{
			ID:          1,
			Question:    "What is the average time complexity of lookups in a hash table?",
			Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
			Correct:     0,
			Category:    "Data Structures",
			Difficulty:  "Easy",
			Company:     "Google",
			Explanation: "With a good hash function and load factor, lookups touch a constant number of buckets on average.",
		},
		{
			ID:          2,
			Question:    "Which HTTP status code indicates that a resource was created?",
			Options:     []string{"200", "201", "204", "301"},
			Correct:     1,
			Category:    "Web",
			Difficulty:  "Easy",
			Company:     "Amazon",
			Role:        "Backend Engineer",
			Explanation: "201 Created is returned when a request results in a new resource.",
		},
		{
			ID:          3,
			Question:    "In a relational database, what does an index primarily improve?",
			Options:     []string{"Write throughput", "Read query speed", "Storage efficiency", "Transaction isolation"},
			Correct:     1,
			Category:    "Databases",
			Difficulty:  "Medium",
			Company:     "Microsoft",
			Explanation: "Indexes let the engine locate rows without scanning the whole table, at the cost of extra writes and storage.",
		},
		{
			ID:          4,
			Question:    "Which consistency model does a typical DNS deployment provide?",
			Options:     []string{"Strong consistency", "Eventual consistency", "Linearizability", "Serializability"},
			Correct:     1,
			Category:    "System Design",
			Difficulty:  "Medium",
			Company:     "Netflix",
			Role:        "Senior Software Engineer",
			Explanation: "DNS caches propagate updates lazily via TTLs, so resolvers converge eventually.",
		},
		{
			ID:          5,
			Question:    "What problem does idempotency solve for a payments API?",
			Options:     []string{"Slow responses", "Duplicate charges on retry", "Schema migrations", "Currency conversion"},
			Correct:     1,
			Category:    "Web",
			Difficulty:  "Hard",
			Company:     "Stripe",
			Role:        "Backend Engineer",
			Explanation: "An idempotency key lets a client safely retry a request without the side effect happening twice.",
		},
		{
			ID:          6,
			Question:    "Which traversal visits a binary search tree's keys in sorted order?",
			Options:     []string{"Pre-order", "In-order", "Post-order", "Level-order"},
			Correct:     1,
			Category:    "Data Structures",
			Difficulty:  "Easy",
			Company:     "Google",
			Role:        "Software Engineer",
			Explanation: "In-order traversal of a BST yields keys in ascending order.",
		},
	}
}
