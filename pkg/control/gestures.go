package control

import (
	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/gestures"
)

// SetSurface attaches the control's gesture recognizers to s, moving them
// off any previous surface.
func (c *Control) SetSurface(s gestures.Surface) {
	c.surface = s
	if c.state != StateDetached && c.state != StateDestroyed {
		c.gestures.SetSurface(s)
	}
}

// Gestures exposes the binding table.
func (c *Control) Gestures() *gestures.Table { return c.gestures }

// Bind installs h for kind, replacing any earlier handler. A nil handler
// unbinds.
func (c *Control) Bind(kind gestures.Kind, h gestures.Handler) error {
	if c.state == StateDestroyed {
		return errors.Reportf("control.Bind", errors.KindBinding, kind.String(),
			"cannot bind gestures on a destroyed %s", c.kind)
	}
	c.touch()
	return c.gestures.Bind(kind, h)
}

// OnTap calls fn with the tap location. nil unbinds.
func (c *Control) OnTap(fn func(location geometry.Point)) error {
	return c.Bind(gestures.Tap, gestures.TapHandler(fn))
}

// OnPan calls fn for every pan sample. nil unbinds.
func (c *Control) OnPan(fn func(location, translation, velocity geometry.Point)) error {
	return c.Bind(gestures.Pan, gestures.PanHandler(fn))
}

// OnPinch calls fn for every pinch sample. nil unbinds.
func (c *Control) OnPinch(fn func(location geometry.Point, scale, velocity float64)) error {
	return c.Bind(gestures.Pinch, gestures.PinchHandler(fn))
}

// OnRotation calls fn for every rotation sample. nil unbinds.
func (c *Control) OnRotation(fn func(location geometry.Point, angle, velocity float64)) error {
	return c.Bind(gestures.Rotation, gestures.RotationHandler(fn))
}

// OnLongPressStart calls fn when a long press begins. nil unbinds.
func (c *Control) OnLongPressStart(fn func(location geometry.Point)) error {
	return c.Bind(gestures.LongPressStart, gestures.LongPressHandler(fn))
}

// OnLongPressEnd calls fn when a long press ends. nil unbinds.
func (c *Control) OnLongPressEnd(fn func(location geometry.Point)) error {
	return c.Bind(gestures.LongPressEnd, gestures.LongPressHandler(fn))
}

// OnSwipeRight calls fn on a right swipe. nil unbinds.
func (c *Control) OnSwipeRight(fn func()) error {
	return c.Bind(gestures.SwipeRight, gestures.SwipeHandler(fn))
}

// OnSwipeLeft calls fn on a left swipe. nil unbinds.
func (c *Control) OnSwipeLeft(fn func()) error {
	return c.Bind(gestures.SwipeLeft, gestures.SwipeHandler(fn))
}

// OnSwipeUp calls fn on an upward swipe. nil unbinds.
func (c *Control) OnSwipeUp(fn func()) error {
	return c.Bind(gestures.SwipeUp, gestures.SwipeHandler(fn))
}

// OnSwipeDown calls fn on a downward swipe. nil unbinds.
func (c *Control) OnSwipeDown(fn func()) error {
	return c.Bind(gestures.SwipeDown, gestures.SwipeHandler(fn))
}
