package service

import (
	"context"

	"github.com/stintdev/stint/internal/domain"
)

// TrackerService enforces the start/stop state machine over the
// session store and produces the daily summaries. It holds no state of
// its own; every decision is made against the store's latest record.
type TrackerService interface {
	// Start opens a new session for today. Legal when no session
	// exists for today yet or the latest one is closed; returns
	// ErrSessionAlreadyOpen otherwise, without mutating the store.
	Start(ctx context.Context) error

	// Stop ends today's open session. Returns ErrNoOpenSession when
	// nothing is running, without mutating the store.
	Stop(ctx context.Context) error

	// HoursToday renders the total hours across today's closed
	// sessions as a human-readable message.
	HoursToday(ctx context.Context) (string, error)

	// DailyHistory returns the per-day aggregates for every date with
	// at least one closed session. An empty result is valid.
	DailyHistory(ctx context.Context) ([]domain.DailyHours, error)

	// OpenSession returns today's currently running session, or
	// ErrNoOpenSession when the latest session is closed or absent.
	OpenSession(ctx context.Context) (*domain.WorkSessionRecord, error)
}
