package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stintdev/stint/internal/clock"
	"github.com/stintdev/stint/internal/repository"
	"github.com/stintdev/stint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTracker(t *testing.T) (TrackerService, *sql.DB, *clock.Fake) {
	t.Helper()
	database := testutil.NewTestDB(t)
	clk := testutil.NewTestClock()
	repo := repository.NewSQLiteSessionRepo(database, clk)
	return NewTrackerService(repo), database, clk
}

func TestTracker_StartStopAlternation(t *testing.T) {
	tracker, _, _ := setupTracker(t)
	ctx := context.Background()

	// Empty store: start succeeds, a second start is rejected.
	require.NoError(t, tracker.Start(ctx))
	assert.ErrorIs(t, tracker.Start(ctx), ErrSessionAlreadyOpen)

	// Stop succeeds once, then is rejected.
	require.NoError(t, tracker.Stop(ctx))
	assert.ErrorIs(t, tracker.Stop(ctx), ErrNoOpenSession)

	// A fresh session on the same day is legal again.
	require.NoError(t, tracker.Start(ctx))
	require.NoError(t, tracker.Stop(ctx))
}

func TestTracker_StopOnEmptyStore(t *testing.T) {
	tracker, _, _ := setupTracker(t)

	assert.ErrorIs(t, tracker.Stop(context.Background()), ErrNoOpenSession)
}

func TestTracker_RejectedCallsDoNotMutate(t *testing.T) {
	tracker, database, _ := setupTracker(t)
	ctx := context.Background()

	assert.ErrorIs(t, tracker.Stop(ctx), ErrNoOpenSession)
	assert.Equal(t, 0, testutil.CountSessions(t, database))

	require.NoError(t, tracker.Start(ctx))
	before := testutil.CountSessions(t, database)

	assert.ErrorIs(t, tracker.Start(ctx), ErrSessionAlreadyOpen)
	assert.Equal(t, before, testutil.CountSessions(t, database))

	require.NoError(t, tracker.Stop(ctx))
	assert.ErrorIs(t, tracker.Stop(ctx), ErrNoOpenSession)
	assert.Equal(t, before, testutil.CountSessions(t, database))
}

func TestTracker_StartLegalAgainNextDay(t *testing.T) {
	tracker, database, clk := setupTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Start(ctx))

	// An open session left over from yesterday does not block today;
	// the state machine is evaluated against today's records only.
	clk.Advance(24 * time.Hour)
	require.NoError(t, tracker.Start(ctx))
	assert.Equal(t, 2, testutil.CountSessions(t, database))
}

func TestTracker_HoursToday_ClosedSession(t *testing.T) {
	tracker, database, clk := setupTracker(t)

	testutil.InsertClosedSession(t, database, clk.Today(), 0, 5400)

	summary, err := tracker.HoursToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Today you worked for 1.5 hrs", summary)
}

func TestTracker_HoursToday_OpenSessionCountsZero(t *testing.T) {
	tracker, database, clk := setupTracker(t)

	testutil.InsertOpenSession(t, database, clk.Today(), 1000)

	summary, err := tracker.HoursToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Today you worked for 0 hrs", summary)
}

func TestTracker_HoursToday_TotalIsNotRounded(t *testing.T) {
	tracker, database, clk := setupTracker(t)

	// 4514 seconds = 1.2538888... hours; the today summary keeps the
	// full value while the daily aggregate would round it to 1.25.
	testutil.InsertClosedSession(t, database, clk.Today(), 0, 4514)

	summary, err := tracker.HoursToday(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "Today you worked for 1.25 hrs", summary)
	assert.Contains(t, summary, "1.2538")
}

func TestTracker_DailyHistory_SingleClosedHour(t *testing.T) {
	tracker, database, _ := setupTracker(t)

	testutil.InsertClosedSession(t, database, "01-03-2026", 0, 3600)

	history, err := tracker.DailyHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "01-03-2026", history[0].Date)
	assert.Equal(t, 1.0, history[0].Hours)
}

func TestTracker_DailyHistory_TwoSessionsSameDay(t *testing.T) {
	tracker, database, _ := setupTracker(t)

	// 1h30m + 45m = 2h15m = 2.25 hours.
	testutil.InsertClosedSession(t, database, "02-03-2026", 0, 5400)
	testutil.InsertClosedSession(t, database, "02-03-2026", 7200, 9900)

	history, err := tracker.DailyHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2.25, history[0].Hours)
}

func TestTracker_DailyHistory_Empty(t *testing.T) {
	tracker, _, _ := setupTracker(t)

	history, err := tracker.DailyHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTracker_OpenSession(t *testing.T) {
	tracker, _, _ := setupTracker(t)
	ctx := context.Background()

	_, err := tracker.OpenSession(ctx)
	assert.ErrorIs(t, err, ErrNoOpenSession)

	require.NoError(t, tracker.Start(ctx))
	rec, err := tracker.OpenSession(ctx)
	require.NoError(t, err)
	assert.True(t, rec.Open())

	require.NoError(t, tracker.Stop(ctx))
	_, err = tracker.OpenSession(ctx)
	assert.ErrorIs(t, err, ErrNoOpenSession)
}

func TestTracker_EndToEndDay(t *testing.T) {
	tracker, _, clk := setupTracker(t)
	ctx := context.Background()

	// Two sessions across one day: 1h in the morning, 1h15m in the
	// afternoon, checked through both reporting paths.
	require.NoError(t, tracker.Start(ctx))
	clk.Advance(time.Hour)
	require.NoError(t, tracker.Stop(ctx))

	clk.Advance(3 * time.Hour)
	require.NoError(t, tracker.Start(ctx))
	clk.Advance(75 * time.Minute)
	require.NoError(t, tracker.Stop(ctx))

	summary, err := tracker.HoursToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Today you worked for 2.25 hrs", summary)

	history, err := tracker.DailyHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, clk.Today(), history[0].Date)
	assert.Equal(t, 2.25, history[0].Hours)
}
