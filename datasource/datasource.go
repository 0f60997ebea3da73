// Package datasource supplies domain records to the dashboard. Records
// are owned by the upstream school API; this package either proxies it
// (RemoteSource) or serves a built-in snapshot (FixtureSource) when the
// upstream is unreachable. The fallback decision is made once, at
// startup, by Select.
package datasource

import (
	"context"
	"errors"
	"log"
	"time"

	"autoskola_dashboard/models"
)

// ErrNotFound is returned when a record does not exist in the source.
var ErrNotFound = errors.New("datasource: record not found")

type Source interface {
	Candidates(ctx context.Context) ([]models.Candidate, error)
	CandidateByID(ctx context.Context, id int) (*models.Candidate, error)
	Instructors(ctx context.Context) ([]models.Instructor, error)
	InstructorByID(ctx context.Context, id int) (*models.Instructor, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	ExamSessions(ctx context.Context) ([]models.ExamSession, error)
	ExamSessionByID(ctx context.Context, id int) (*models.ExamSession, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	PaymentsByCandidate(ctx context.Context, candidateID int) ([]models.Payment, error)
	TestResults(ctx context.Context) ([]models.TestResult, error)

	Health(ctx context.Context) error
	Mode() string
}

// Select health-checks the upstream API and returns the remote source
// when it answers, the fixture source otherwise. There is no retry: an
// unreachable upstream means the whole process runs on fixture data.
func Select(baseURL, token string) Source {
	remote := NewRemoteSource(baseURL, token)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := remote.Health(ctx); err != nil {
		log.Printf("Upstream API unreachable, serving fixture data: %v", err)
		return NewFixtureSource()
	}
	log.Printf("Using upstream API at %s", baseURL)
	return remote
}
