package game

import "time"

// Clock reports elapsed session time in seconds. The fire cooldown and
// ship movement delta are measured against it.
type Clock interface {
	Now() float64
}

// Pausable is implemented by clocks that can stop while the session is not
// playing.
type Pausable interface {
	Pause()
	Resume()
}

// WallClock measures real elapsed time since creation, like THREE.Clock.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

// NewWallClock starts a clock at the current instant.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(now func() time.Time) *WallClock {
	return &WallClock{start: now(), now: now}
}

// Now returns seconds since the clock was created.
func (c *WallClock) Now() float64 {
	return c.now().Sub(c.start).Seconds()
}

// PausableClock is a wall clock that excludes time spent paused.
type PausableClock struct {
	start       time.Time
	now         func() time.Time
	paused      bool
	pausedAt    time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a running pausable clock.
func NewPausableClock() *PausableClock {
	return newPausableClock(time.Now)
}

func newPausableClock(now func() time.Time) *PausableClock {
	return &PausableClock{start: now(), now: now}
}

// Now returns elapsed seconds minus paused time. While paused it is frozen.
func (c *PausableClock) Now() float64 {
	end := c.now()
	if c.paused {
		end = c.pausedAt
	}
	return (end.Sub(c.start) - c.totalPaused).Seconds()
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume continues the clock, accumulating the paused interval.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += c.now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

// IsPaused reports whether the clock is frozen.
func (c *PausableClock) IsPaused() bool {
	return c.paused
}
