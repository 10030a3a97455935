// Package clock provides the millisecond clocks used to pace the main loop.
package clock

import "time"

// System is a monotonic wall clock measured from its creation.
type System struct {
	start time.Time
}

// NewSystem creates a clock whose zero is now.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *System) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// SleepMillis blocks the calling goroutine for ms milliseconds.
func (c *System) SleepMillis(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Manual is a clock that only moves when told to. Sleeping advances it.
type Manual struct {
	Now    int64
	Sleeps []int64
}

func (c *Manual) NowMillis() int64 {
	return c.Now
}

func (c *Manual) SleepMillis(ms int64) {
	c.Sleeps = append(c.Sleeps, ms)
	if ms > 0 {
		c.Now += ms
	}
}

// Advance moves the clock forward by ms milliseconds.
func (c *Manual) Advance(ms int64) {
	c.Now += ms
}
