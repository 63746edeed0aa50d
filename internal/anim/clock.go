package anim

import "time"

// FakeClock is a manually advanced clock for tests and scripted hosts.
type FakeClock struct {
	t time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{t: t}
}

func (c *FakeClock) Now() time.Time { return c.t }

// Advance moves the clock forward and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}
