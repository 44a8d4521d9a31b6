package shape

import (
	"math"

	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
)

// RegularPolygon is a shape whose path is a polygon with equal angular
// spacing between vertices, inscribed in the ellipse that fills the
// bounds inset by the line width.
type RegularPolygon struct {
	*Shape
	sides int
	phase float64
}

// NewRegularPolygon returns a polygon with the given number of sides. The
// first vertex sits at angle phase, in radians, measured from the
// positive x axis towards positive y.
func NewRegularPolygon(frame geometry.Rect, sides int, phase float64, opts ...control.Option) *RegularPolygon {
	p := &RegularPolygon{Shape: New(frame, opts...), sides: sides, phase: phase}
	p.UpdatePath()
	return p
}

// Sides returns the number of vertices.
func (p *RegularPolygon) Sides() int { return p.sides }

// SetSides changes the number of vertices and rebuilds the path.
func (p *RegularPolygon) SetSides(n int) {
	p.sides = n
	p.UpdatePath()
}

// Phase returns the angle of the first vertex.
func (p *RegularPolygon) Phase() float64 { return p.phase }

// SetPhase rotates the vertices and rebuilds the path.
func (p *RegularPolygon) SetPhase(radians float64) {
	p.phase = radians
	p.UpdatePath()
}

// UpdatePath rebuilds the path from the committed bounds and line width.
// With no sides, or when the inset leaves no room, the previous path is
// kept.
func (p *RegularPolygon) UpdatePath() {
	if path := polygonPath(p.Bounds().Size, p.LineWidth(), p.sides, p.phase); path != nil {
		p.SetPath(path)
	}
}

func polygonPath(size geometry.Size, lineWidth float64, sides int, phase float64) *graphics.Path {
	rect := geometry.Rect{Size: size}.Inset(lineWidth, lineWidth)
	rx, ry := rect.Width()/2, rect.Height()/2
	if sides <= 0 || rx <= 0 || ry <= 0 {
		return nil
	}
	center := rect.Center()
	delta := 2 * math.Pi / float64(sides)
	path := graphics.NewPath()
	for i := range sides {
		s, c := math.Sincos(phase + delta*float64(i))
		x, y := center.X+rx*c, center.Y+ry*s
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path
}
