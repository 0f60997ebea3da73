package models

// CandidateStatus tracks a candidate's progress through the three exam
// milestones plus per-session driving grades and earned badges.
type CandidateStatus struct {
	TheoryPassed      bool     `json:"theory_passed"`
	FirstAidPassed    bool     `json:"first_aid_passed"`
	DrivingExamPassed bool     `json:"driving_exam_passed"`
	DrivingGrades     []int    `json:"driving_grades"`
	Badges            []string `json:"badges"`
}

type Candidate struct {
	ID               int             `json:"id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	FatherName       string          `json:"father_name"`
	BirthDate        string          `json:"birth_date"`
	BirthPlace       string          `json:"birth_place"`
	Address          string          `json:"address"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email"`
	Category         string          `json:"category"`
	EnrollmentNumber string          `json:"enrollment_number"`
	StartDate        string          `json:"start_date"`
	EndDate          *string         `json:"end_date,omitempty"`
	TheoryHours      int             `json:"theory_hours"`
	DrivingHours     int             `json:"driving_hours"`
	PackagePrice     float64         `json:"package_price"`
	InstructorID     *int            `json:"instructor_id,omitempty"`
	Status           CandidateStatus `json:"status"`
}
