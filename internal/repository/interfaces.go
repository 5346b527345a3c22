package repository

import (
	"context"

	"github.com/stintdev/stint/internal/domain"
)

// SessionRepo is the session store: durable reads and writes over
// work-session records, keyed implicitly by "today" for mutation and
// by date for aggregation. It performs no state-machine validation;
// that lives entirely in the service layer.
type SessionRepo interface {
	// SessionsForToday returns every session (open or closed) whose
	// date equals the current calendar day.
	SessionsForToday(ctx context.Context) ([]domain.WorkSession, error)

	// CurrentSession returns the most recently started session for
	// today, or an error wrapping ErrNotFound when no session exists
	// for today at all.
	CurrentSession(ctx context.Context) (*domain.WorkSessionRecord, error)

	// CreateSession inserts a new open session dated and timed from
	// the store's clock.
	CreateSession(ctx context.Context) error

	// EndSession sets the stop time on the record with the given id.
	// The caller is responsible for passing an open session's id.
	EndSession(ctx context.Context, id int64) error

	// DailyAggregates returns, for every date with at least one closed
	// session, the total hours rounded to two decimals. Open sessions
	// are excluded from the sum.
	DailyAggregates(ctx context.Context) ([]domain.DailyHours, error)
}
