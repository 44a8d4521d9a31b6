package control

import "github.com/go-drift/sketch/pkg/notify"

// Post sends a notification named name from this control through the
// default center and returns how many observers received it.
func (c *Control) Post(name string, info map[string]any) int {
	return notify.Default().Post(name, c, info)
}

// Listen observes notifications named name from any sender until the
// returned function is called or the control is destroyed.
func (c *Control) Listen(name string, fn func(notify.Notification)) func() {
	return c.listen(name, nil, fn)
}

// ListenFrom observes notifications named name posted by sender only.
func (c *Control) ListenFrom(name string, sender any, fn func(notify.Notification)) func() {
	return c.listen(name, sender, fn)
}

func (c *Control) listen(name string, sender any, fn func(notify.Notification)) func() {
	if c.state == StateDestroyed || fn == nil {
		return func() {}
	}
	stop := notify.Default().Observe(name, sender, fn)
	c.observers = append(c.observers, stop)
	return stop
}
