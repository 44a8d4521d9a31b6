// Package shape provides controls that draw a vector path: free-form
// shapes, regular polygons and text outlines.
//
// A Shape is a [control.Control] built with four extra style properties
// (fillColor, strokeColor, lineWidth and path) and a content drawer that
// fills and strokes the path in the control's local coordinates. Every
// control operation, including animation, gestures and templates, is
// available on a Shape unchanged.
package shape

import (
	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
	"github.com/go-drift/sketch/pkg/template"
)

// KindShape is the kind of shapes; its default template styles every
// Shape, RegularPolygon and text shape.
const KindShape = "shape"

// Property names added by shapes.
const (
	PropFillColor   = "fillColor"
	PropStrokeColor = "strokeColor"
	PropLineWidth   = "lineWidth"
	// PropPath never animates.
	PropPath = "path"
)

var (
	defaultFill   = graphics.RGB(47, 108, 178)
	defaultStroke = graphics.RGB(150, 71, 156)
)

func init() {
	template.RegisterType(PropFillColor, graphics.Color(0))
	template.RegisterType(PropStrokeColor, graphics.Color(0))
	template.RegisterType(PropLineWidth, 0.0)
	template.RegisterType(PropPath, (*graphics.Path)(nil))

	template.RegisterDefault(KindShape, func() *template.Template {
		tpl := template.Default(control.KindControl).Clone()
		tpl.Set(PropFillColor, defaultFill)
		tpl.Set(PropStrokeColor, defaultStroke)
		tpl.Set(PropLineWidth, 1.0)
		return tpl
	})
}

// Shape is a control that draws a path.
type Shape struct {
	*control.Control
}

// New returns a shape with the given frame and an empty path.
func New(frame geometry.Rect, opts ...control.Option) *Shape {
	return &Shape{Control: control.NewWithKind(KindShape, frame, options(opts)...)}
}

// NewWithPath returns a shape framed to fit path. The path is moved so
// its bounding box starts at the shape's local origin.
func NewWithPath(path *graphics.Path, opts ...control.Option) *Shape {
	bounds := path.Bounds()
	s := New(bounds, opts...)
	s.SetPath(fitted(path, bounds))
	return s
}

// DefaultTemplateProxy returns a stand-in shape whose style writes edit
// the shape default template.
func DefaultTemplateProxy() *Shape {
	return &Shape{Control: control.DefaultTemplateProxy(KindShape, options(nil)...)}
}

func options(extra []control.Option) []control.Option {
	return append([]control.Option{
		control.WithProperty(PropFillColor, defaultFill, true, false),
		control.WithProperty(PropStrokeColor, defaultStroke, true, false),
		control.WithProperty(PropLineWidth, 1.0, true, false),
		control.WithProperty(PropPath, (*graphics.Path)(nil), true, true),
		control.WithContent(draw),
	}, extra...)
}

// draw fills then strokes the committed path.
func draw(c *control.Control, canvas graphics.Canvas) {
	path := value[*graphics.Path](c, PropPath)
	if path.IsEmpty() {
		return
	}
	if fill := value[graphics.Color](c, PropFillColor); fill.Alpha() > 0 {
		canvas.DrawPath(path, graphics.Paint{Color: fill, Style: graphics.PaintFill})
	}
	w := value[float64](c, PropLineWidth)
	if stroke := value[graphics.Color](c, PropStrokeColor); w > 0 && stroke.Alpha() > 0 {
		canvas.DrawPath(path, graphics.Paint{Color: stroke, Style: graphics.PaintStroke, StrokeWidth: w})
	}
}

// FillColor returns the color the path is filled with.
func (s *Shape) FillColor() graphics.Color { return value[graphics.Color](s.Control, PropFillColor) }

// SetFillColor sets the fill color. Transparent disables filling.
func (s *Shape) SetFillColor(c graphics.Color) { s.set(PropFillColor, c) }

// StrokeColor returns the outline color.
func (s *Shape) StrokeColor() graphics.Color {
	return value[graphics.Color](s.Control, PropStrokeColor)
}

// SetStrokeColor sets the outline color.
func (s *Shape) SetStrokeColor(c graphics.Color) { s.set(PropStrokeColor, c) }

// LineWidth returns the outline width.
func (s *Shape) LineWidth() float64 { return value[float64](s.Control, PropLineWidth) }

// SetLineWidth sets the outline width. Zero disables stroking.
func (s *Shape) SetLineWidth(w float64) { s.set(PropLineWidth, max(w, 0)) }

// Path returns a copy of the committed path, or nil.
func (s *Shape) Path() *graphics.Path {
	return value[*graphics.Path](s.Control, PropPath).Clone()
}

// SetPath replaces the path immediately; paths never animate. The shape
// keeps its own copy.
func (s *Shape) SetPath(p *graphics.Path) { s.set(PropPath, p.Clone()) }

// AdjustToFitPath resizes the frame to the path's bounding box and moves
// the path so the box starts at the local origin. The frame's origin is
// shifted by the same amount, so the path stays put on screen.
func (s *Shape) AdjustToFitPath() {
	path := value[*graphics.Path](s.Control, PropPath)
	if path.IsEmpty() {
		return
	}
	bounds := path.Bounds()
	origin := s.Origin()
	s.Batch(func() {
		s.SetPath(fitted(path, bounds))
		s.SetFrame(bounds.Translate(origin.X, origin.Y))
	})
}

func (s *Shape) set(name string, v any) {
	// Every caller passes the registered type, so Set cannot fail.
	_ = s.Control.Set(name, v)
}

func fitted(path *graphics.Path, bounds geometry.Rect) *graphics.Path {
	out := graphics.NewPath()
	out.AddPath(path, geometry.TranslationAffine(-bounds.MinX(), -bounds.MinY()))
	return out
}

func value[T any](c *control.Control, name string) T {
	v, _ := c.Get(name)
	t, _ := v.(T)
	return t
}
