package clock

import (
	"testing"
	"time"

	"github.com/stintdev/stint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFake_TodayFormat(t *testing.T) {
	clk := NewFake(time.Date(2026, time.March, 9, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "09-03-2026", clk.Today())
}

func TestFake_AdvanceAcrossMidnight(t *testing.T) {
	clk := NewFake(time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC))

	clk.Advance(time.Hour)
	assert.Equal(t, "10-03-2026", clk.Today())
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 30, 0, 0, time.UTC), clk.Now())
}

func TestFake_Set(t *testing.T) {
	clk := NewFake(time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC))
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)

	clk.Set(target)
	assert.Equal(t, target, clk.Now())
}

func TestSystem_TodayMatchesNow(t *testing.T) {
	clk := System()
	assert.Equal(t, clk.Now().Format(domain.DateLayout), clk.Today())
}
