package clock

import (
	"sync"
	"time"
)

// Clock is the only source of "now" for booking rules, so tests can pin the week.
type Clock interface {
	Now() time.Time
}

// NowIn reads c in loc. Booking dates and hours are always judged on the club's wall clock.
func NowIn(c Clock, loc *time.Location) time.Time {
	return c.Now().In(loc)
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is safe for concurrent use so allocator races can share one instance.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d, e.g. across the 18:00 window opening.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
