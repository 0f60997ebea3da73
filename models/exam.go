package models

// Exam session types as used by the upstream API.
const (
	ExamTypeTheory   = "teorija"
	ExamTypeFirstAid = "prva_pomoc"
	ExamTypeDriving  = "voznja"
)

type ExamSession struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	CandidateIDs []int  `json:"candidate_ids"` // never exceeds Capacity, enforced upstream
	Status       string `json:"status"`        // open | closed
}

type ExamRegistration struct {
	ID          int     `json:"id"`
	CandidateID int     `json:"candidate_id"`
	ExamID      int     `json:"exam_id"`
	Outcome     string  `json:"outcome"` // pending | passed | failed
	Score       float64 `json:"score"`
}
