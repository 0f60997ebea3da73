package models

// ActivitySlot is one scheduled driving slot on a daily report.
type ActivitySlot struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DailyReport is the bookkeeping record produced alongside a generated
// driving-log document. The document itself is never stored, only this
// summary.
type DailyReport struct {
	ID           int            `json:"id"`
	InstructorID int            `json:"instructor_id"`
	Date         string         `json:"date"`
	Activities   []ActivitySlot `json:"activities"`
	TotalHours   int            `json:"total_hours"`
	CreatedAt    string         `json:"created_at,omitempty"`
}
