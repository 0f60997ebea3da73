// Package storage keeps the dashboard's own records: the daily-report
// summaries written whenever a driving-log document is generated.
// Domain records (candidates, exams, ...) are never stored here; they
// belong to the upstream API.
package storage

import (
	"context"
	"errors"

	"autoskola_dashboard/models"
)

var ErrNotFound = errors.New("storage: report not found")

type ReportStore interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) (int, error)
	ListDailyReports(ctx context.Context) ([]models.DailyReport, error)
	DailyReportByID(ctx context.Context, id int) (*models.DailyReport, error)
}
