package storage

import (
	"context"
	"sync"

	"autoskola_dashboard/models"
)

// MemReportStore is an in-memory ReportStore used by tests and by
// deployments without a database.
type MemReportStore struct {
	mu      sync.Mutex
	nextID  int
	reports []models.DailyReport
}

func NewMemReportStore() *MemReportStore {
	return &MemReportStore{nextID: 1}
}

func (s *MemReportStore) SaveDailyReport(ctx context.Context, report models.DailyReport) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = s.nextID
	s.nextID++
	s.reports = append(s.reports, report)
	return report.ID, nil
}

func (s *MemReportStore) ListDailyReports(ctx context.Context) ([]models.DailyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.DailyReport, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *MemReportStore) DailyReportByID(ctx context.Context, id int) (*models.DailyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			r := s.reports[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}
