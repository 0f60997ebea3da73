package storage

import (
	"context"
	"testing"

	"autoskola_dashboard/models"
)

func TestMemReportStore(t *testing.T) {
	store := NewMemReportStore()
	ctx := context.Background()

	report := models.DailyReport{
		InstructorID: 1,
		Date:         "2024-01-15",
		TotalHours:   6,
		Activities: []models.ActivitySlot{
			{Start: "08:00", End: "09:00", DurationMinutes: 60},
		},
	}

	id, err := store.SaveDailyReport(ctx, report)
	if err != nil {
		t.Fatalf("SaveDailyReport() error = %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}

	got, err := store.DailyReportByID(ctx, id)
	if err != nil {
		t.Fatalf("DailyReportByID(%d) error = %v", id, err)
	}
	if got.InstructorID != 1 || got.Date != "2024-01-15" || len(got.Activities) != 1 {
		t.Errorf("report = %+v", got)
	}

	if _, err := store.DailyReportByID(ctx, 42); err != ErrNotFound {
		t.Errorf("DailyReportByID(42) error = %v, want ErrNotFound", err)
	}

	reports, err := store.ListDailyReports(ctx)
	if err != nil {
		t.Fatalf("ListDailyReports() error = %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("got %d reports, want 1", len(reports))
	}
}
