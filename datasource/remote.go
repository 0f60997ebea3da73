package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"autoskola_dashboard/models"
)

// RemoteSource reads records from the upstream school API as JSON,
// attaching the configured bearer token to every request.
type RemoteSource struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRemoteSource(baseURL, token string) *RemoteSource {
	return &RemoteSource{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{},
	}
}

func (s *RemoteSource) Mode() string { return "remote" }

func (s *RemoteSource) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned %d for %s", resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (s *RemoteSource) Health(ctx context.Context) error {
	return s.getJSON(ctx, "/health", nil)
}

func (s *RemoteSource) Candidates(ctx context.Context) ([]models.Candidate, error) {
	var out []models.Candidate
	if err := s.getJSON(ctx, "/candidates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RemoteSource) CandidateByID(ctx context.Context, id int) (*models.Candidate, error) {
	var out models.Candidate
	if err := s.getJSON(ctx, fmt.Sprintf("/candidates/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RemoteSource) Instructors(ctx context.Context) ([]models.Instructor, error) {
	var out []models.Instructor
	if err := s.getJSON(ctx, "/instructors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RemoteSource) InstructorByID(ctx context.Context, id int) (*models.Instructor, error) {
	var out models.Instructor
	if err := s.getJSON(ctx, fmt.Sprintf("/instructors/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RemoteSource) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := s.getJSON(ctx, "/vehicles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RemoteSource) ExamSessions(ctx context.Context) ([]models.ExamSession, error) {
	var out []models.ExamSession
	if err := s.getJSON(ctx, "/exams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RemoteSource) ExamSessionByID(ctx context.Context, id int) (*models.ExamSession, error) {
	var out models.ExamSession
	if err := s.getJSON(ctx, fmt.Sprintf("/exams/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RemoteSource) Payments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := s.getJSON(ctx, "/payments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RemoteSource) PaymentsByCandidate(ctx context.Context, candidateID int) ([]models.Payment, error) {
	var out []models.Payment
	if err := s.getJSON(ctx, fmt.Sprintf("/payments?candidate_id=%d", candidateID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RemoteSource) TestResults(ctx context.Context) ([]models.TestResult, error) {
	var out []models.TestResult
	if err := s.getJSON(ctx, "/results", &out); err != nil {
		return nil, err
	}
	return out, nil
}
