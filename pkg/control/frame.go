package control

import "github.com/go-drift/sketch/pkg/geometry"

// The frame is stored as the origin plus the bounds size. The center is
// always computed from them, so an origin reads back exactly as written.

// Bounds returns the control's own coordinate space. Its origin offsets
// the children; its size is the frame size.
func (c *Control) Bounds() geometry.Rect { return get[geometry.Rect](c, PropBounds) }

// SetBounds replaces the bounds, keeping the center.
func (c *Control) SetBounds(r geometry.Rect) {
	c.resize(r)
}

// Center returns the frame's center in the parent's coordinates.
func (c *Control) Center() geometry.Point {
	return c.Origin().Add(c.Size().Half())
}

// SetCenter moves the control, keeping its size.
func (c *Control) SetCenter(p geometry.Point) {
	c.set(PropOrigin, p.Sub(c.Size().Half()))
}

// Frame returns the control's rectangle in its parent's coordinates.
func (c *Control) Frame() geometry.Rect {
	return geometry.Rect{Origin: c.Origin(), Size: c.Size()}
}

// SetFrame resizes the bounds and moves the origin in one transaction.
func (c *Control) SetFrame(r geometry.Rect) {
	c.Batch(func() {
		b := c.Bounds()
		b.Size = r.Size
		c.set(PropBounds, b)
		c.set(PropOrigin, r.Origin)
	})
}

// Origin returns the frame's top-left corner.
func (c *Control) Origin() geometry.Point { return get[geometry.Point](c, PropOrigin) }

// SetOrigin moves the control so its frame starts at p.
func (c *Control) SetOrigin(p geometry.Point) { c.set(PropOrigin, p) }

// Size returns the frame size.
func (c *Control) Size() geometry.Size { return c.Bounds().Size }

// SetSize resizes the control about its center.
func (c *Control) SetSize(s geometry.Size) {
	b := c.Bounds()
	b.Size = s
	c.resize(b)
}

// Width returns the frame width.
func (c *Control) Width() float64 { return c.Bounds().Size.Width }

// Height returns the frame height.
func (c *Control) Height() float64 { return c.Bounds().Size.Height }

// resize replaces the bounds and shifts the origin so the center stays put.
func (c *Control) resize(b geometry.Rect) {
	if b.Size == c.Size() {
		c.set(PropBounds, b)
		return
	}
	center := c.Center()
	c.Batch(func() {
		c.set(PropBounds, b)
		c.set(PropOrigin, center.Sub(b.Size.Half()))
	})
}
