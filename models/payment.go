package models

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID          int     `json:"id"`
	CandidateID int     `json:"candidate_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Type        string  `json:"type"` // deposit | installment | full
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}
