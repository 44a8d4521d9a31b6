// Package animation schedules implicit, timed property transitions.
//
// A [Helper] is the single path for animatable property writes of one
// target. Under a zero [Policy] it commits a write at once; otherwise the
// write joins a [Transaction] that interpolates from the old value to the
// new one and commits when the policy's delay and duration have elapsed.
// Reads through a target return committed values; [Helper.Presentation]
// exposes the in-flight value.
//
// Nothing here owns a goroutine. The host frame loop calls [StepTickers]
// once per frame and every running transaction advances on that call,
// with time taken from the replaceable [Clock].
package animation

import (
	"slices"
	"sync"
	"time"
)

// frameLoop is the set of running tickers, kept in start order so that
// transactions started earlier also commit earlier within a frame.
var frameLoop struct {
	sync.Mutex
	running []*Ticker
	seq     uint64
}

// Ticker calls a callback on each frame while running. The callback
// receives the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	running  bool
	seq      uint64
	start    time.Time
}

// NewTicker creates a stopped ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start runs the ticker from the current clock time. Starting a running
// ticker does nothing.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	frameLoop.Lock()
	defer frameLoop.Unlock()
	frameLoop.seq++
	t.running, t.seq, t.start = true, frameLoop.seq, Now()
	frameLoop.running = append(frameLoop.running, t)
}

// Stop removes the ticker from the frame loop.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	frameLoop.Lock()
	defer frameLoop.Unlock()
	if i := slices.Index(frameLoop.running, t); i >= 0 {
		frameLoop.running = slices.Delete(frameLoop.running, i, i+1)
	}
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool { return t.running }

// Elapsed returns the time since Start, or 0 when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers runs one frame: every running ticker is called once, in
// start order, with the same frame time. Tickers started during the frame
// first run on the next one.
func StepTickers() {
	frameLoop.Lock()
	tickers := slices.Clone(frameLoop.running)
	frameLoop.Unlock()
	if len(tickers) == 0 {
		return
	}

	now := Now()
	for _, t := range tickers {
		if t.running && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running, that is whether
// the host should keep scheduling frames.
func HasActiveTickers() bool {
	frameLoop.Lock()
	defer frameLoop.Unlock()
	return len(frameLoop.running) > 0
}

// ResetTickers stops every ticker without calling it. Tests use it to
// drop transactions left running by earlier tests.
func ResetTickers() {
	frameLoop.Lock()
	defer frameLoop.Unlock()
	for _, t := range frameLoop.running {
		t.running = false
	}
	frameLoop.running = nil
}
