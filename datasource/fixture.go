package datasource

import (
	"context"

	"autoskola_dashboard/models"
)

// FixtureSource serves a fixed in-memory snapshot of records. It stands
// in for the upstream API when it is unreachable, and backs handler
// tests.
type FixtureSource struct {
	candidates  []models.Candidate
	instructors []models.Instructor
	vehicles    []models.Vehicle
	exams       []models.ExamSession
	payments    []models.Payment
	results     []models.TestResult
}

func NewFixtureSource() *FixtureSource {
	instructorOne := 1
	instructorTwo := 2
	endDate := "2024-03-01"

	return &FixtureSource{
		instructors: []models.Instructor{
			{
				ID: 1, FirstName: "Amir", LastName: "Hodžić",
				LicenseNumber: "INS-0042", DecisionNumber: "UP-1-27-88/23",
				SchoolName: "Autoškola Start", SchoolAddress: "Zmaja od Bosne 12, Sarajevo",
				Vehicle: &models.Vehicle{ID: 1, Make: "Volkswagen", Model: "Golf VII", Plate: "T77-A-123", InstructorID: &instructorOne},
			},
			{
				ID: 2, FirstName: "Selma", LastName: "Čavić",
				LicenseNumber: "INS-0051", DecisionNumber: "UP-1-31-04/23",
				SchoolName: "Autoškola Start", SchoolAddress: "Zmaja od Bosne 12, Sarajevo",
				Vehicle: &models.Vehicle{ID: 2, Make: "Škoda", Model: "Fabia", Plate: "A11-K-456", InstructorID: &instructorTwo},
			},
		},
		vehicles: []models.Vehicle{
			{ID: 1, Make: "Volkswagen", Model: "Golf VII", Plate: "T77-A-123", InstructorID: &instructorOne},
			{ID: 2, Make: "Škoda", Model: "Fabia", Plate: "A11-K-456", InstructorID: &instructorTwo},
		},
		candidates: []models.Candidate{
			{
				ID: 1, FirstName: "Lejla", LastName: "Džafić", FatherName: "Mirsad",
				BirthDate: "2001-07-09", BirthPlace: "Zenica", Address: "Maršala Tita 4, Zenica",
				Phone: "+387 61 222 333", Email: "lejla.dzafic@example.com",
				Category: "B", EnrollmentNumber: "2024/015",
				StartDate: "2024-01-10", EndDate: &endDate,
				TheoryHours: 30, DrivingHours: 35, PackagePrice: 1200,
				InstructorID: &instructorOne,
				Status: models.CandidateStatus{
					TheoryPassed:  true,
					DrivingGrades: []int{4, 5, 5},
					Badges:        []string{"teorija"},
				},
			},
			{
				ID: 2, FirstName: "Tarik", LastName: "Šabanović", FatherName: "Adnan",
				BirthDate: "2000-11-23", BirthPlace: "Sarajevo", Address: "Ferhadija 18, Sarajevo",
				Phone: "+387 62 444 555", Email: "tarik.sabanovic@example.com",
				Category: "B", EnrollmentNumber: "2024/016",
				StartDate: "2024-01-22",
				TheoryHours: 30, DrivingHours: 12, PackagePrice: 1100,
				InstructorID: &instructorTwo,
				Status: models.CandidateStatus{
					TheoryPassed:   true,
					FirstAidPassed: true,
					DrivingGrades:  []int{3, 4},
					Badges:         []string{"teorija", "prva pomoć"},
				},
			},
			{
				// Newly enrolled, no instructor assigned yet.
				ID: 3, FirstName: "Emina", LastName: "Kovačević", FatherName: "Senad",
				BirthDate: "2003-02-14", BirthPlace: "Tuzla", Address: "Turalibegova 7, Tuzla",
				Phone: "+387 63 777 888", Email: "emina.kovacevic@example.com",
				Category: "B", EnrollmentNumber: "2024/021",
				StartDate: "2024-02-05",
				TheoryHours: 8, PackagePrice: 1200,
			},
		},
		exams: []models.ExamSession{
			{
				ID: 1, Type: models.ExamTypeTheory, Date: "2024-03-20", Time: "10:00",
				Location: "Sala 2, MUP Sarajevo", Capacity: 20,
				CandidateIDs: []int{1, 2}, Status: "open",
			},
			{
				ID: 2, Type: models.ExamTypeFirstAid, Date: "2024-03-25", Time: "09:00",
				Location: "Crveni križ, Sarajevo", Capacity: 15,
				CandidateIDs: []int{1}, Status: "open",
			},
			{
				ID: 3, Type: models.ExamTypeDriving, Date: "2024-02-12", Time: "08:30",
				Location: "Poligon Stup", Capacity: 10,
				CandidateIDs: []int{1}, Status: "closed",
			},
		},
		payments: []models.Payment{
			{ID: 1, CandidateID: 1, Amount: 500, Method: "cash", Type: "deposit", Status: models.PaymentStatusCompleted, CreatedAt: "2024-01-10T09:15:00Z"},
			{ID: 2, CandidateID: 1, Amount: 300, Method: "card", Type: "installment", Status: models.PaymentStatusPending, CreatedAt: "2024-02-01T14:30:00Z"},
			{ID: 3, CandidateID: 2, Amount: 1100, Method: "bank", Type: "full", Status: models.PaymentStatusCompleted, CreatedAt: "2024-01-22T11:00:00Z"},
		},
		results: []models.TestResult{
			{ID: 1, CandidateID: 1, Tip: "teorija", Correct: 36, Total: 40, Score: 90, Passed: true, DurationSec: 1450},
			{ID: 2, CandidateID: 1, Tip: "teorija", Correct: 32, Total: 40, Score: 80, Passed: true, DurationSec: 1620},
			{ID: 3, CandidateID: 2, Tip: "znak", Correct: 14, Total: 20, Score: 70, Passed: false, DurationSec: 900},
			{ID: 4, CandidateID: 2, Tip: "raskrsnica", Correct: 11, Total: 20, Score: 55, Passed: false, DurationSec: 1100},
		},
	}
}

func (s *FixtureSource) Mode() string { return "fixture" }

func (s *FixtureSource) Health(ctx context.Context) error { return nil }

func (s *FixtureSource) Candidates(ctx context.Context) ([]models.Candidate, error) {
	return s.candidates, nil
}

func (s *FixtureSource) CandidateByID(ctx context.Context, id int) (*models.Candidate, error) {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			return &s.candidates[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FixtureSource) Instructors(ctx context.Context) ([]models.Instructor, error) {
	return s.instructors, nil
}

func (s *FixtureSource) InstructorByID(ctx context.Context, id int) (*models.Instructor, error) {
	for i := range s.instructors {
		if s.instructors[i].ID == id {
			return &s.instructors[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FixtureSource) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles, nil
}

func (s *FixtureSource) ExamSessions(ctx context.Context) ([]models.ExamSession, error) {
	return s.exams, nil
}

func (s *FixtureSource) ExamSessionByID(ctx context.Context, id int) (*models.ExamSession, error) {
	for i := range s.exams {
		if s.exams[i].ID == id {
			return &s.exams[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FixtureSource) Payments(ctx context.Context) ([]models.Payment, error) {
	return s.payments, nil
}

func (s *FixtureSource) PaymentsByCandidate(ctx context.Context, candidateID int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.payments {
		if p.CandidateID == candidateID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *FixtureSource) TestResults(ctx context.Context) ([]models.TestResult, error) {
	return s.results, nil
}
