package core

import "time"

// Timer fires once every timeout interval measured on a Clock.
// Paused time does not count towards the interval.
type Timer struct {
	timeout  time.Duration
	clock    Clock
	start    time.Time
	pausedAt time.Time
	paused   bool

	// OnExpire runs every time Tick fires.
	OnExpire func()
}

// NewTimer creates a timer that starts counting immediately.
// A nil clock means the system clock.
func NewTimer(timeout time.Duration, clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{timeout: timeout, clock: clock, start: clock.Now()}
}

// Timeout returns the configured interval.
func (t *Timer) Timeout() time.Duration {
	return t.timeout
}

// Reset restarts the interval from now.
func (t *Timer) Reset() {
	t.start = t.clock.Now()
	if t.paused {
		t.pausedAt = t.start
	}
}

// Pause freezes the elapsed time.
func (t *Timer) Pause() {
	if t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.clock.Now()
}

// Resume continues counting, discarding the paused interval.
func (t *Timer) Resume() {
	if !t.paused {
		return
	}
	t.paused = false
	t.start = t.start.Add(t.clock.Now().Sub(t.pausedAt))
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Elapsed returns the time since the last reset, excluding paused time.
func (t *Timer) Elapsed() time.Duration {
	if t.paused {
		return t.pausedAt.Sub(t.start)
	}
	return t.clock.Now().Sub(t.start)
}

// Tick reports whether the interval has run out. When it has, the timer
// restarts and OnExpire is called. A zero timeout fires on every call.
func (t *Timer) Tick() bool {
	if t.Elapsed() < t.timeout {
		return false
	}
	t.start = t.clock.Now()
	if t.paused {
		t.pausedAt = t.start
	}
	if t.OnExpire != nil {
		t.OnExpire()
	}
	return true
}
