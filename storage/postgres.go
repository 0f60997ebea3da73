package storage

import (
	"context"
	"database/sql"
	"fmt"

	"autoskola_dashboard/models"
)

type PostgresReportStore struct {
	db *sql.DB
}

func NewPostgresReportStore(db *sql.DB) *PostgresReportStore {
	return &PostgresReportStore{db: db}
}

func (s *PostgresReportStore) SaveDailyReport(ctx context.Context, report models.DailyReport) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var reportID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO daily_reports (instructor_id, report_date, total_hours, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id
	`, report.InstructorID, report.Date, report.TotalHours).Scan(&reportID)
	if err != nil {
		return 0, fmt.Errorf("error inserting daily report: %w", err)
	}

	for _, a := range report.Activities {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO report_activities (report_id, start_time, end_time, duration_minutes)
			VALUES ($1, $2, $3, $4)
		`, reportID, a.Start, a.End, a.DurationMinutes)
		if err != nil {
			return 0, fmt.Errorf("error inserting report activity: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing transaction: %w", err)
	}
	return reportID, nil
}

func (s *PostgresReportStore) ListDailyReports(ctx context.Context) ([]models.DailyReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, instructor_id, report_date::text, total_hours, created_at::text
		FROM daily_reports
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying daily reports: %w", err)
	}
	defer rows.Close()

	var reports []models.DailyReport
	for rows.Next() {
		var r models.DailyReport
		if err := rows.Scan(&r.ID, &r.InstructorID, &r.Date, &r.TotalHours, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning daily report: %w", err)
		}
		if r.Activities, err = s.activities(ctx, r.ID); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *PostgresReportStore) DailyReportByID(ctx context.Context, id int) (*models.DailyReport, error) {
	var r models.DailyReport
	err := s.db.QueryRowContext(ctx, `
		SELECT id, instructor_id, report_date::text, total_hours, created_at::text
		FROM daily_reports
		WHERE id = $1
	`, id).Scan(&r.ID, &r.InstructorID, &r.Date, &r.TotalHours, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying daily report: %w", err)
	}

	if r.Activities, err = s.activities(ctx, r.ID); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PostgresReportStore) activities(ctx context.Context, reportID int) ([]models.ActivitySlot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT start_time, end_time, duration_minutes
		FROM report_activities
		WHERE report_id = $1
		ORDER BY id
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("error querying report activities: %w", err)
	}
	defer rows.Close()

	var slots []models.ActivitySlot
	for rows.Next() {
		var a models.ActivitySlot
		if err := rows.Scan(&a.Start, &a.End, &a.DurationMinutes); err != nil {
			return nil, fmt.Errorf("error scanning report activity: %w", err)
		}
		slots = append(slots, a)
	}
	return slots, rows.Err()
}
