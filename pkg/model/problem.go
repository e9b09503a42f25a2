package model

// TestCase input/output shapes are problem-specific, so both sides stay
// loosely typed.
type TestCase struct {
	Input  any `json:"input"`
	Output any `json:"output"`
}

// Problem is a coding exercise. Problems are seeded at startup and immutable
// afterwards.
type Problem struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"`
	Category    string     `json:"category"`
	TestCases   []TestCase `json:"testCases"`
	Solution    string     `json:"solution"`
}
