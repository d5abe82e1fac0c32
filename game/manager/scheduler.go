package manager

import "time"

// Clock reports time elapsed since the host started. Readings never decrease.
type Clock interface {
	Elapsed() time.Duration
}

// SystemClock measures wall-clock time from its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to
type ManualClock struct {
	now time.Duration
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Elapsed() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Scheduler gates timed moves to at most one per interval.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	lastTick time.Duration
}

func NewScheduler(clock Clock, interval time.Duration) *Scheduler {
	return &Scheduler{
		clock:    clock,
		interval: interval,
	}
}

// IsTimeElapsed returns true and records the current time if at least interval
// has passed since the last recorded tick.
func (s *Scheduler) IsTimeElapsed(interval time.Duration) bool {
	now := s.clock.Elapsed()
	if now-s.lastTick >= interval {
		s.lastTick = now
		return true
	}
	return false
}

// Due checks against the configured interval.
func (s *Scheduler) Due() bool {
	return s.IsTimeElapsed(s.interval)
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
