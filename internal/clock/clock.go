// Package clock abstracts the wall clock so the session store can be
// driven through multi-day scenarios deterministically in tests.
package clock

import (
	"time"

	"github.com/stintdev/stint/internal/domain"
)

// Clock supplies the current instant and the current calendar day.
type Clock interface {
	Now() time.Time
	Today() string
}

type systemClock struct{}

// System returns a Clock backed by the local wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Today() string {
	return time.Now().Format(domain.DateLayout)
}

// Fake is a manually advanced Clock for tests.
type Fake struct {
	current time.Time
}

// NewFake returns a Fake pinned to the given instant.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t}
}

func (f *Fake) Now() time.Time {
	return f.current
}

func (f *Fake) Today() string {
	return f.current.Format(domain.DateLayout)
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

// Set pins the fake clock to an exact instant.
func (f *Fake) Set(t time.Time) {
	f.current = t
}
