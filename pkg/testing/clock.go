package testing

import (
	"sync"
	"time"

	"github.com/go-drift/sketch/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// UseFakeClock installs a new FakeClock as the animation clock for the
// duration of the test. At cleanup the previous clock is restored and
// transactions still running are dropped without committing.
func UseFakeClock(t TestingT) *FakeClock {
	t.Helper()
	c := NewFakeClock()
	prev := animation.SetClock(c)
	t.Cleanup(func() {
		animation.SetClock(prev)
		animation.ResetTickers()
	})
	return c
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without driving any animation.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Step advances the clock by d and runs one animation frame.
func (c *FakeClock) Step(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}

// StepFrames advances n frames of length frame, running a frame after each.
func (c *FakeClock) StepFrames(n int, frame time.Duration) {
	for range n {
		c.Step(frame)
	}
}

// Settle steps frames of length frame until no animation is in flight or
// limit has elapsed. It reports whether everything settled.
func (c *FakeClock) Settle(frame, limit time.Duration) bool {
	for elapsed := time.Duration(0); elapsed < limit; elapsed += frame {
		if !animation.HasActiveTickers() {
			return true
		}
		c.Step(frame)
	}
	return !animation.HasActiveTickers()
}
