package control_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sketch/pkg/animation"
	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/gestures"
	"github.com/go-drift/sketch/pkg/notify"
	sketchtest "github.com/go-drift/sketch/pkg/testing"
)

func TestMaskRejectsSelf(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	c := newBox()

	err := c.SetMask(c)
	require.Error(t, err)
	assert.Nil(t, c.Mask())
	rec.RequireKind(t, errors.KindMask)

	m := newBox()
	require.NoError(t, c.SetMask(m))
	assert.Error(t, c.SetMask(c))
	assert.Same(t, m, c.Mask(), "prior mask kept")
}

func TestMaskRejectsCycle(t *testing.T) {
	sketchtest.CaptureErrors(t)
	a, b, c := newBox(), newBox(), newBox()
	require.NoError(t, a.SetMask(b))
	require.NoError(t, b.SetMask(c))

	assert.Error(t, c.SetMask(a))
	assert.Nil(t, c.Mask())

	require.NoError(t, a.SetMask(nil))
	assert.NoError(t, c.SetMask(a), "cycle broken")
}

func TestMaskClearedWhenDestroyed(t *testing.T) {
	c := newBox()
	m := newBox()
	require.NoError(t, c.SetMask(m))
	m.Destroy()
	assert.Nil(t, c.Mask())
}

func TestMaskIsWeak(t *testing.T) {
	c := newBox()
	func() {
		require.NoError(t, c.SetMask(newBox()))
	}()
	runtime.GC()
	runtime.GC()
	assert.Nil(t, c.Mask(), "mask must not keep its control alive")
}

func TestRemoveObjectKeepsChildUsable(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	parent, other := newBox(), newBox()
	child := control.NewWithKind(control.KindControl, geometry.RectXYWH(0, 0, 5, 5), control.WithSurface(surface))

	taps := 0
	require.NoError(t, child.OnTap(func(geometry.Point) { taps++ }))
	require.NoError(t, parent.Add(child))
	assert.Same(t, parent, child.Parent())

	assert.True(t, parent.RemoveObject(child))
	assert.False(t, parent.RemoveObject(child))
	assert.Nil(t, child.Parent())
	assert.Empty(t, parent.Children())

	surface.Tap(geometry.Pt(1, 1))
	assert.Equal(t, 1, taps, "bindings survive removal")

	require.NoError(t, other.Add(child))
	assert.Equal(t, []*control.Control{child}, other.Children())
}

func TestRemoveObjects(t *testing.T) {
	parent := newBox()
	a, b, c := newBox(), newBox(), newBox()
	require.NoError(t, parent.AddAll(a, b, c))

	assert.Equal(t, 2, parent.RemoveObjects(a, c, newBox()))
	assert.Equal(t, []*control.Control{b}, parent.Children())
	assert.Same(t, parent, b.Root())
}

func TestAddMovesBetweenParentsAndRejectsCycles(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	p1, p2, child := newBox(), newBox(), newBox()
	require.NoError(t, p1.Add(child))
	require.NoError(t, p2.Add(child))
	assert.Empty(t, p1.Children())
	assert.Same(t, p2, child.Parent())

	assert.Error(t, child.Add(p2))
	assert.Error(t, child.Add(child))
	assert.Len(t, rec.OfKind(errors.KindHierarchy), 2)
}

func TestRebindOnlySecondFires(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	c := newBox()
	c.SetSurface(surface)

	var first, second int
	require.NoError(t, c.OnTap(func(geometry.Point) { first++ }))
	require.NoError(t, c.OnTap(func(geometry.Point) { second++ }))

	surface.Tap(geometry.Pt(0, 0))
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, surface.Attached(gestures.RecognizeTap))

	require.NoError(t, c.OnTap(nil))
	assert.Zero(t, surface.Total())
}

func TestGestureHelpersDeliverPlainValues(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	c := newBox()
	c.SetSurface(surface)

	var pan [3]geometry.Point
	var scale, angle float64
	var swipes []string
	var pressed []geometry.Point
	require.NoError(t, c.OnPan(func(l, tr, v geometry.Point) { pan = [3]geometry.Point{l, tr, v} }))
	require.NoError(t, c.OnPinch(func(_ geometry.Point, s, _ float64) { scale = s }))
	require.NoError(t, c.OnRotation(func(_ geometry.Point, a, _ float64) { angle = a }))
	require.NoError(t, c.OnSwipeUp(func() { swipes = append(swipes, "up") }))
	require.NoError(t, c.OnSwipeDown(func() { swipes = append(swipes, "down") }))
	require.NoError(t, c.OnSwipeLeft(func() { swipes = append(swipes, "left") }))
	require.NoError(t, c.OnSwipeRight(func() { swipes = append(swipes, "right") }))
	require.NoError(t, c.OnLongPressStart(func(p geometry.Point) { pressed = append(pressed, p) }))
	require.NoError(t, c.OnLongPressEnd(func(p geometry.Point) { pressed = append(pressed, p) }))

	surface.Pan(gestures.StateChanged, geometry.Pt(1, 2), geometry.Pt(3, 4), geometry.Pt(5, 6))
	surface.Pinch(geometry.Pt(0, 0), 1.5, 0)
	surface.Rotate(geometry.Pt(0, 0), 0.25, 0)
	surface.Swipe(gestures.Up)
	surface.Swipe(gestures.Left)
	surface.LongPress(geometry.Pt(7, 7))

	assert.Equal(t, [3]geometry.Point{geometry.Pt(1, 2), geometry.Pt(3, 4), geometry.Pt(5, 6)}, pan)
	assert.Equal(t, 1.5, scale)
	assert.Equal(t, 0.25, angle)
	assert.Equal(t, []string{"up", "left"}, swipes)
	assert.Equal(t, []geometry.Point{geometry.Pt(7, 7), geometry.Pt(7, 7)}, pressed)
	assert.Equal(t, 1, surface.Attached(gestures.RecognizeLongPress))
}

func TestGesturesBlockedWhileAnimating(t *testing.T) {
	clock := sketchtest.UseFakeClock(t)
	surface := sketchtest.NewFakeSurface()
	c := newBox()
	c.SetSurface(surface)
	taps := 0
	require.NoError(t, c.OnTap(func(geometry.Point) { taps++ }))

	c.SetAnimationDuration(time.Second)
	c.SetAlpha(0)
	surface.Tap(geometry.Pt(0, 0))
	assert.Zero(t, taps)

	clock.Step(time.Second)
	surface.Tap(geometry.Pt(0, 0))
	assert.Equal(t, 1, taps)

	c.AddAnimationOptions(animation.AllowInteraction)
	c.SetAlpha(1)
	surface.Tap(geometry.Pt(0, 0))
	assert.Equal(t, 2, taps)
	clock.Step(time.Second)
}

func TestDetachTearsDownRecognizers(t *testing.T) {
	surface := sketchtest.NewFakeSurface()
	parent := newBox()
	c := newBox()
	c.SetSurface(surface)
	require.NoError(t, parent.Add(c))
	require.NoError(t, c.OnSwipeRight(func() {}))
	require.Equal(t, 1, surface.Total())

	c.Detach()
	assert.Equal(t, control.StateDetached, c.State())
	assert.Nil(t, c.Parent())
	assert.Zero(t, surface.Total())

	require.NoError(t, parent.Add(c))
	assert.Equal(t, control.StateLive, c.State())
	assert.Equal(t, 1, surface.Total(), "re-adding reattaches")
}

func TestDestroyRejectsBinding(t *testing.T) {
	rec := sketchtest.CaptureErrors(t)
	c := newBox()
	c.Destroy()
	assert.Error(t, c.OnTap(func(geometry.Point) {}))
	rec.RequireKind(t, errors.KindBinding)
}

func TestPostAndListen(t *testing.T) {
	a, b := newBox(), newBox()
	var senders []any
	stop := b.Listen("sketch.moved", func(n notify.Notification) { senders = append(senders, n.Sender) })
	defer stop()
	b.ListenFrom("sketch.moved", a, func(n notify.Notification) { senders = append(senders, n.Info["step"]) })

	assert.Equal(t, 2, a.Post("sketch.moved", map[string]any{"step": 1}))
	assert.Equal(t, []any{a, 1}, senders)

	b.Destroy()
	assert.Zero(t, a.Post("sketch.moved", nil))
}
