// Package geometry provides the value types used to position and size
// controls: points, sizes, rectangles and the 2D/3D transforms applied to
// them.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point represents a 2D point or vector in points.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// ApproxEqual reports whether p and o differ by less than epsilon per axis.
func (p Point) ApproxEqual(o Point) bool {
	return floatEqual(p.X, o.X) && floatEqual(p.Y, o.Y)
}

// Size represents width and height dimensions in points.
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Half returns the size halved, as a vector.
func (s Size) Half() Point {
	return Point{X: s.Width * 0.5, Y: s.Height * 0.5}
}

// Rect is an origin and a size. Width and height are derived from Size and
// never stored separately.
type Rect struct {
	Origin Point `yaml:"origin" toml:"origin"`
	Size   Size  `yaml:"size" toml:"size"`
}

// RectXYWH constructs a Rect from x, y, width and height.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// RectFromCenter constructs a Rect of the given size centered on c.
func RectFromCenter(c Point, s Size) Rect {
	return Rect{Origin: c.Sub(s.Half()), Size: s}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Size.Width
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Size.Height
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Origin.Add(r.Size.Half())
}

// WithOrigin returns r moved so its origin is o.
func (r Rect) WithOrigin(o Point) Rect {
	r.Origin = o
	return r
}

// WithCenter returns r moved so its center is c.
func (r Rect) WithCenter(c Point) Rect {
	r.Origin = c.Sub(r.Size.Half())
	return r
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return RectXYWH(r.Origin.X+dx, r.Origin.Y+dy, r.Size.Width-2*dx, r.Size.Height-2*dy)
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Origin = Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}
	return r
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.MinX(), other.MinX())
	top := math.Max(r.MinY(), other.MinY())
	right := math.Min(r.MaxX(), other.MaxX())
	bottom := math.Min(r.MaxY(), other.MaxY())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return RectXYWH(left, top, right-left, bottom-top)
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	left := math.Min(r.MinX(), other.MinX())
	top := math.Min(r.MinY(), other.MinY())
	right := math.Max(r.MaxX(), other.MaxX())
	bottom := math.Max(r.MaxY(), other.MaxY())
	return RectXYWH(left, top, right-left, bottom-top)
}

// ApproxEqual reports whether r and o match within epsilon.
func (r Rect) ApproxEqual(o Rect) bool {
	return r.Origin.ApproxEqual(o.Origin) &&
		floatEqual(r.Size.Width, o.Size.Width) &&
		floatEqual(r.Size.Height, o.Size.Height)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
