package datasource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoskola_dashboard/models"
)

func TestRemoteSource(t *testing.T) {
	candidates := []models.Candidate{
		{ID: 1, FirstName: "Lejla", LastName: "Džafić", Category: "B"},
		{ID: 2, FirstName: "Tarik", LastName: "Šabanović", Category: "B"},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/candidates":
			json.NewEncoder(w).Encode(candidates)
		case "/candidates/1":
			json.NewEncoder(w).Encode(candidates[0])
		case "/payments":
			if r.URL.Query().Get("candidate_id") == "1" {
				json.NewEncoder(w).Encode([]models.Payment{{ID: 1, CandidateID: 1, Amount: 500}})
				return
			}
			json.NewEncoder(w).Encode([]models.Payment{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewRemoteSource(srv.URL, "sekrit")
	ctx := context.Background()

	if err := src.Health(ctx); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization header = %q, want bearer token", gotAuth)
	}

	got, err := src.Candidates(ctx)
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	if len(got) != 2 || got[1].LastName != "Šabanović" {
		t.Errorf("Candidates() = %+v", got)
	}

	one, err := src.CandidateByID(ctx, 1)
	if err != nil {
		t.Fatalf("CandidateByID(1) error = %v", err)
	}
	if one.FirstName != "Lejla" {
		t.Errorf("CandidateByID(1) = %+v", one)
	}

	if _, err := src.CandidateByID(ctx, 99); err != ErrNotFound {
		t.Errorf("CandidateByID(99) error = %v, want ErrNotFound", err)
	}

	payments, err := src.PaymentsByCandidate(ctx, 1)
	if err != nil {
		t.Fatalf("PaymentsByCandidate(1) error = %v", err)
	}
	if len(payments) != 1 || payments[0].Amount != 500 {
		t.Errorf("PaymentsByCandidate(1) = %+v", payments)
	}
}

func TestRemoteSourceUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewRemoteSource(srv.URL, "")
	if _, err := src.Candidates(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestFixtureSource(t *testing.T) {
	src := NewFixtureSource()
	ctx := context.Background()

	if src.Mode() != "fixture" {
		t.Errorf("Mode() = %q", src.Mode())
	}
	if err := src.Health(ctx); err != nil {
		t.Errorf("Health() error = %v", err)
	}

	candidates, err := src.Candidates(ctx)
	if err != nil || len(candidates) == 0 {
		t.Fatalf("Candidates() = %v, %v", candidates, err)
	}

	// Instructor references must resolve within the snapshot.
	for _, c := range candidates {
		if c.InstructorID == nil {
			continue
		}
		if _, err := src.InstructorByID(ctx, *c.InstructorID); err != nil {
			t.Errorf("candidate %d references missing instructor %d", c.ID, *c.InstructorID)
		}
	}

	// Exam capacity invariant holds in the snapshot too.
	exams, _ := src.ExamSessions(ctx)
	for _, e := range exams {
		if len(e.CandidateIDs) > e.Capacity {
			t.Errorf("exam %d over capacity: %d > %d", e.ID, len(e.CandidateIDs), e.Capacity)
		}
	}

	if _, err := src.ExamSessionByID(ctx, 999); err != ErrNotFound {
		t.Errorf("ExamSessionByID(999) error = %v, want ErrNotFound", err)
	}

	payments, _ := src.PaymentsByCandidate(ctx, 1)
	for _, p := range payments {
		if p.CandidateID != 1 {
			t.Errorf("payment %d belongs to candidate %d", p.ID, p.CandidateID)
		}
	}
}

func TestSelectFallsBackToFixture(t *testing.T) {
	// Health check against a closed port must yield the fixture source.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	src := Select(srv.URL, "")
	if src.Mode() != "fixture" {
		t.Errorf("Mode() = %q, want fixture", src.Mode())
	}
}

func TestSelectPrefersRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := Select(srv.URL, "")
	if src.Mode() != "remote" {
		t.Errorf("Mode() = %q, want remote", src.Mode())
	}
}
