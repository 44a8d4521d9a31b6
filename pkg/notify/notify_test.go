package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sketch/pkg/notify"
	sketchtest "github.com/go-drift/sketch/pkg/testing"
)

type sender struct{ name string }

func TestPostDeliversInOrder(t *testing.T) {
	c := notify.NewCenter()
	var got []string
	c.Observe("moved", nil, func(notify.Notification) { got = append(got, "a") })
	c.Observe("moved", nil, func(notify.Notification) { got = append(got, "b") })
	c.Observe("other", nil, func(notify.Notification) { got = append(got, "x") })

	n := c.Post("moved", nil, nil)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestObserveFiltersSender(t *testing.T) {
	c := notify.NewCenter()
	a, b := &sender{"a"}, &sender{"b"}

	var from []any
	c.Observe("tapped", a, func(n notify.Notification) { from = append(from, n.Sender) })

	c.Post("tapped", b, nil)
	c.Post("tapped", a, map[string]any{"count": 1})
	require.Len(t, from, 1)
	assert.Same(t, a, from[0])
}

func TestUnsubscribe(t *testing.T) {
	c := notify.NewCenter()
	count := 0
	stop := c.Observe("ping", nil, func(notify.Notification) { count++ })

	c.Post("ping", nil, nil)
	stop()
	stop()
	c.Post("ping", nil, nil)

	assert.Equal(t, 1, count)
	assert.Zero(t, c.Observers("ping"))
}

func TestPanickingObserverDoesNotStopPost(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	c := notify.NewCenter()
	reached := false
	c.Observe("boom", nil, func(notify.Notification) { panic("observer failed") })
	c.Observe("boom", nil, func(notify.Notification) { reached = true })

	assert.Equal(t, 2, c.Post("boom", nil, nil))
	assert.True(t, reached)
	assert.Len(t, rec.Panics(), 1)
}

func TestObserverMayUnsubscribeDuringPost(t *testing.T) {
	c := notify.NewCenter()
	var stop func()
	calls := 0
	stop = c.Observe("once", nil, func(notify.Notification) {
		calls++
		stop()
	})
	c.Post("once", nil, nil)
	c.Post("once", nil, nil)
	assert.Equal(t, 1, calls)
}
