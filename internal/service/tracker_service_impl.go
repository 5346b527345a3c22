package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stintdev/stint/internal/domain"
	"github.com/stintdev/stint/internal/repository"
)

type trackerService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

// NewTrackerService creates a TrackerService over the given store.
func NewTrackerService(sessions repository.SessionRepo, observers ...UseCaseObserver) TrackerService {
	return &trackerService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) Start(ctx context.Context) error {
	return s.observed(ctx, "start", func() error {
		current, err := s.sessions.CurrentSession(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// First session of the day.
				return s.sessions.CreateSession(ctx)
			}
			return err
		}
		if current.Open() {
			return ErrSessionAlreadyOpen
		}
		return s.sessions.CreateSession(ctx)
	})
}

func (s *trackerService) Stop(ctx context.Context) error {
	return s.observed(ctx, "stop", func() error {
		current, err := s.sessions.CurrentSession(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNoOpenSession
			}
			return err
		}
		if !current.Open() {
			return ErrNoOpenSession
		}
		return s.sessions.EndSession(ctx, current.ID)
	})
}

// HoursToday sums today's closed sessions. The total is deliberately
// left unrounded; only the per-day aggregate applies two-decimal
// rounding.
func (s *trackerService) HoursToday(ctx context.Context) (string, error) {
	sessions, err := s.sessions.SessionsForToday(ctx)
	if err != nil {
		return "", err
	}

	var hours float64
	for _, ws := range sessions {
		hours += ws.Hours()
	}
	return fmt.Sprintf("Today you worked for %v hrs", hours), nil
}

func (s *trackerService) DailyHistory(ctx context.Context) ([]domain.DailyHours, error) {
	return s.sessions.DailyAggregates(ctx)
}

func (s *trackerService) OpenSession(ctx context.Context) (*domain.WorkSessionRecord, error) {
	current, err := s.sessions.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoOpenSession
		}
		return nil, err
	}
	if !current.Open() {
		return nil, ErrNoOpenSession
	}
	return current, nil
}

// observed runs fn and reports its outcome to the configured observer.
func (s *trackerService) observed(ctx context.Context, name string, fn func() error) error {
	started := time.Now()
	err := fn()
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	})
	return err
}
