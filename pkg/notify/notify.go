// Package notify is a named notification center. Controls post
// notifications with themselves as sender and observe notifications by
// name, optionally filtered to one sender.
package notify

import (
	"sync"

	"github.com/go-drift/sketch/pkg/errors"
)

// Notification is one posted message.
type Notification struct {
	Name   string
	Sender any
	Info   map[string]any
}

// Handler receives notifications.
type Handler func(Notification)

type observer struct {
	id     int
	sender any
	fn     Handler
}

// Center delivers posted notifications to observers synchronously, in the
// order the observers registered. Senders are compared with ==, so they
// must be comparable; pointers are the usual choice.
//
// A Center is safe for concurrent use. Handlers run on the posting
// goroutine without the center's lock held, so they may observe or post.
type Center struct {
	mu        sync.Mutex
	observers map[string][]observer
	nextID    int
}

// NewCenter returns an empty center.
func NewCenter() *Center {
	return &Center{observers: make(map[string][]observer)}
}

var defaultCenter = NewCenter()

// Default returns the process-wide center used by controls.
func Default() *Center {
	return defaultCenter
}

// Observe registers fn for notifications named name. When sender is
// non-nil only notifications posted by that sender are delivered. The
// returned function unsubscribes; calling it more than once is harmless.
func (c *Center) Observe(name string, sender any, fn Handler) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[name] = append(c.observers[name], observer{id: id, sender: sender, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		list := c.observers[name]
		for i, o := range list {
			if o.id == id {
				list = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(list) == 0 {
			delete(c.observers, name)
		} else {
			c.observers[name] = list
		}
	}
}

// Post delivers a notification to every matching observer and returns how
// many received it. A panicking observer is recovered and reported; the
// remaining observers still run.
func (c *Center) Post(name string, sender any, info map[string]any) int {
	c.mu.Lock()
	list := append([]observer(nil), c.observers[name]...)
	c.mu.Unlock()

	n := Notification{Name: name, Sender: sender, Info: info}
	delivered := 0
	for _, o := range list {
		if o.sender != nil && o.sender != sender {
			continue
		}
		deliver(o.fn, n)
		delivered++
	}
	return delivered
}

func deliver(fn Handler, n Notification) {
	defer errors.Recover("notify.Center.Post")
	fn(n)
}

// Observers returns how many observers are registered for name.
func (c *Center) Observers(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.observers[name])
}
