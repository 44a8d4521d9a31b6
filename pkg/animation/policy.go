package animation

import (
	"sync"
	"time"

	"github.com/go-drift/sketch/pkg/errors"
)

// Policy holds the timing configuration a control animates with.
//
// Durations and delays are never negative: out-of-range values are clamped
// to zero and reported as [errors.KindConfig], never returned.
type Policy struct {
	duration time.Duration
	delay    time.Duration
	options  Options
}

var (
	defaultPolicyMu sync.RWMutex
	defaultPolicy   = Policy{options: NewOptions(BeginFromCurrentState)}
)

// DefaultPolicy returns the policy new helpers start with: zero duration,
// zero delay and BeginFromCurrentState, unless replaced by SetDefaultPolicy.
func DefaultPolicy() Policy {
	defaultPolicyMu.RLock()
	defer defaultPolicyMu.RUnlock()
	return defaultPolicy
}

// SetDefaultPolicy replaces the policy future helpers start with and
// returns the previous one.
func SetDefaultPolicy(p Policy) Policy {
	defaultPolicyMu.Lock()
	defer defaultPolicyMu.Unlock()
	prev := defaultPolicy
	defaultPolicy = p
	return prev
}

// NewPolicy builds a policy, clamping negative values.
func NewPolicy(duration, delay time.Duration, opts Options) Policy {
	var p Policy
	p.SetDuration(duration)
	p.SetDelay(delay)
	p.SetOptions(opts)
	return p
}

// Duration returns the transition duration.
func (p Policy) Duration() time.Duration { return p.duration }

// Delay returns the time to wait before a transition begins.
func (p Policy) Delay() time.Duration { return p.delay }

// Options returns the option set.
func (p Policy) Options() Options { return p.options }

// IsImmediate reports whether writes under this policy apply synchronously.
func (p Policy) IsImmediate() bool {
	return p.duration == 0 && p.delay == 0
}

// CycleLength is the time until a transaction under this policy commits:
// delay plus one duration, or two when Autoreverse is set.
func (p Policy) CycleLength() time.Duration {
	d := p.duration
	if p.options.Has(Autoreverse) {
		d *= 2
	}
	return p.delay + d
}

// SetDuration sets the duration, clamping negatives to zero.
func (p *Policy) SetDuration(d time.Duration) {
	p.duration = clampDuration("animation.Policy.SetDuration", "animationDuration", d)
}

// SetDelay sets the delay, clamping negatives to zero.
func (p *Policy) SetDelay(d time.Duration) {
	p.delay = clampDuration("animation.Policy.SetDelay", "animationDelay", d)
}

// SetOptions replaces the whole option set.
func (p *Policy) SetOptions(opts Options) {
	p.options = opts
}

// AddOptions adds flags without clearing any already set.
func (p *Policy) AddOptions(opts ...Option) {
	p.options = p.options.With(opts...)
}

// RemoveOptions clears the given flags.
func (p *Policy) RemoveOptions(opts ...Option) {
	p.options = p.options.Without(opts...)
}

func clampDuration(op, property string, d time.Duration) time.Duration {
	if d >= 0 {
		return d
	}
	errors.Reportf(op, errors.KindConfig, property, "negative value %v clamped to 0", d)
	return 0
}
