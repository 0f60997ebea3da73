package models

// TestResult is one candidate attempt at a practice test. Tip is the
// test category ("teorija", "znak", "raskrsnica", ...) as named by the
// upstream API.
type TestResult struct {
	ID          int          `json:"id"`
	CandidateID int          `json:"candidate_id"`
	Tip         string       `json:"tip"`
	SubType     string       `json:"sub_type,omitempty"`
	Correct     int          `json:"correct"`
	Total       int          `json:"total"`
	Score       float64      `json:"score"` // percentage
	Passed      bool         `json:"passed"`
	DurationSec int          `json:"duration_sec"`
	Answers     []TestAnswer `json:"answers,omitempty"`
}

type TestAnswer struct {
	QuestionID int    `json:"question_id"`
	Given      string `json:"given"`
	Correct    bool   `json:"correct"`
}
