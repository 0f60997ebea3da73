package models

type Instructor struct {
	ID             int      `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	LicenseNumber  string   `json:"license_number"`
	DecisionNumber string   `json:"decision_number"`
	SchoolName     string   `json:"school_name"`
	SchoolAddress  string   `json:"school_address"`
	Vehicle        *Vehicle `json:"vehicle,omitempty"` // at most one active assignment
}

type Vehicle struct {
	ID           int    `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Plate        string `json:"plate"`
	InstructorID *int   `json:"instructor_id,omitempty"`
}
