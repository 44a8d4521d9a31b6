package control

import (
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
	"github.com/go-drift/sketch/pkg/template"
)

// KindCanvas is the kind of root canvases.
const KindCanvas = "canvas"

func init() {
	template.RegisterDefault(KindCanvas, func() *template.Template {
		tpl := template.Default(KindControl).Clone()
		tpl.Set(PropBackgroundColor, graphics.ColorWhite)
		return tpl
	})
}

// NewCanvas returns a root control filling bounds with a white
// background, the surface a sketch adds its objects to.
func NewCanvas(bounds geometry.Rect, opts ...Option) *Control {
	return NewWithKind(KindCanvas, bounds, opts...)
}
