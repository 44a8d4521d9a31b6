package animation

import "time"

// Clock is where tickers read the frame time. A transaction's delay and
// duration are measured against it, so swapping it with SetClock makes
// commit times deterministic.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

var frameClock Clock = wallClock{}

// SetClock installs c as the frame time source and returns the clock it
// replaced. A nil c restores wall time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = wallClock{}
	}
	prev := frameClock
	frameClock = c
	return prev
}

// Now is the frame time according to the installed clock.
func Now() time.Time { return frameClock.Now() }
