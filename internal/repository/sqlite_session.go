package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stintdev/stint/internal/clock"
	"github.com/stintdev/stint/internal/db"
	"github.com/stintdev/stint/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// The clock is injected so "today" can be simulated in tests.
type SQLiteSessionRepo struct {
	db    db.DBTX
	clock clock.Clock
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX, clk clock.Clock) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx, clock: clk}
}

func (r *SQLiteSessionRepo) SessionsForToday(ctx context.Context) ([]domain.WorkSession, error) {
	query := `SELECT start_time, stop_time FROM worksessions WHERE date = ?`
	rows, err := r.db.QueryContext(ctx, query, r.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("listing today's sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.WorkSession
	for rows.Next() {
		var s domain.WorkSession
		var stop sql.NullFloat64
		if err := rows.Scan(&s.StartTime, &stop); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		s.StopTime = nullableFloat(stop)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) CurrentSession(ctx context.Context) (*domain.WorkSessionRecord, error) {
	query := `SELECT id, date, start_time, stop_time FROM worksessions
		WHERE date = ? ORDER BY start_time DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, r.clock.Today())

	var rec domain.WorkSessionRecord
	var stop sql.NullFloat64
	err := row.Scan(&rec.ID, &rec.Date, &rec.StartTime, &stop)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}
	rec.StopTime = nullableFloat(stop)
	return &rec, nil
}

func (r *SQLiteSessionRepo) CreateSession(ctx context.Context) error {
	// The date is derived from the start instant's calendar day, so
	// both columns come from the same clock reading.
	now := r.clock.Now()
	query := `INSERT INTO worksessions (date, start_time) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, now.Format(domain.DateLayout), unixSeconds(now))
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) EndSession(ctx context.Context, id int64) error {
	query := `UPDATE worksessions SET stop_time = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, unixSeconds(r.clock.Now()), id)
	if err != nil {
		return fmt.Errorf("ending work session %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DailyAggregates(ctx context.Context) ([]domain.DailyHours, error) {
	query := `SELECT date, ROUND(SUM(stop_time - start_time) * 1.0 / 3600, 2)
		FROM worksessions WHERE stop_time IS NOT NULL GROUP BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregating daily hours: %w", err)
	}
	defer rows.Close()

	var totals []domain.DailyHours
	for rows.Next() {
		var d domain.DailyHours
		if err := rows.Scan(&d.Date, &d.Hours); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}
		totals = append(totals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily totals: %w", err)
	}
	return totals, nil
}
