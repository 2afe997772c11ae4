// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/skirmishforge/warband-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock with a frozen time, for tests
type Fixed struct {
	Time time.Time
}

// Now returns the frozen time
func (c *Fixed) Now() time.Time {
	return c.Time
}

// NewFixed returns a clock frozen at the given time
func NewFixed(t time.Time) Clock {
	return &Fixed{Time: t}
}
