package model

// MCQ is a multiple-choice question. Correct is a zero-based index into
// Options. Seed data always carries four options but the length is not
// enforced anywhere.
type MCQ struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Company     string   `json:"company"`
	Role        string   `json:"role,omitempty"`
	Explanation string   `json:"explanation"`
}
