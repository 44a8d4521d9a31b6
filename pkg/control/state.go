package control

import (
	"fmt"
	"reflect"
)

// State is a control's lifecycle state.
//
//	Uninitialized ─► Constructed ─► Live ─► Detached ─► Destroyed
//	                                  ▲         │
//	                                  └─────────┘ re-added to a parent
type State int

const (
	// StateUninitialized is only observable while the constructor runs.
	StateUninitialized State = iota
	// StateConstructed has its default template applied.
	StateConstructed
	// StateLive has been mutated, bound or added to a parent.
	StateLive
	// StateDetached was removed from its parent with Detach; its gesture
	// recognizers are torn down.
	StateDetached
	// StateDestroyed ignores further writes.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConstructed:
		return "constructed"
	case StateLive:
		return "live"
	case StateDetached:
		return "detached"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type propertyError struct {
	name string
	err  error
	want reflect.Type
	got  reflect.Type
}

func (e *propertyError) Error() string {
	switch {
	case e.want == nil:
		return fmt.Sprintf("%s: %v", e.name, e.err)
	case e.got == nil:
		return fmt.Sprintf("%s: %v: want %s, got nil", e.name, e.err, e.want)
	default:
		return fmt.Sprintf("%s: %v: want %s, got %s", e.name, e.err, e.want, e.got)
	}
}

func (e *propertyError) Unwrap() error { return e.err }

// Detach removes the control from its parent and tears down its gesture
// recognizers. Handlers stay bound and reattach if the control is added
// to a parent again.
func (c *Control) Detach() {
	if c.state == StateDestroyed {
		return
	}
	if c.parent != nil {
		c.parent.RemoveObject(c)
	}
	c.gestures.Close()
	c.state = StateDetached
}

// Destroy detaches the control, cancels its animations and notification
// observers, and releases its children. A destroyed control is no longer
// anyone's mask and ignores further writes.
func (c *Control) Destroy() {
	if c.state == StateDestroyed {
		return
	}
	c.Detach()
	c.gestures.Clear()
	c.anim.Cancel()
	for _, stop := range c.observers {
		stop()
	}
	c.observers = nil
	for _, child := range c.children {
		child.parent = nil
	}
	c.children = nil
	c.mask = weakNil
	c.state = StateDestroyed
}
