package control

import (
	"cmp"
	"slices"

	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
)

// RenderInContext draws the control and its children into canvas using
// committed values only; in-flight animations are ignored. Hidden and
// destroyed controls draw nothing.
func (c *Control) RenderInContext(canvas graphics.Canvas) {
	if canvas == nil {
		errors.Reportf("control.RenderInContext", errors.KindRender, "", "nil canvas")
		return
	}
	if c.state == StateDestroyed || c.Hidden() {
		return
	}

	frame := c.Frame()
	local := geometry.Rect{Size: frame.Size}
	radius := c.CornerRadius()

	canvas.Save()
	defer canvas.Restore()

	canvas.Translate(frame.MinX(), frame.MinY())
	if tf := c.EffectiveTransform(); !tf.IsIdentity() {
		canvas.Concat(tf)
	}

	if alpha := c.Alpha(); alpha < 1 {
		canvas.SaveLayerAlpha(local, max(alpha, 0))
		defer canvas.Restore()
	}

	if m := c.Mask(); m != nil {
		canvas.ClipRRect(m.Frame(), m.CornerRadius())
	}

	if shadow := c.Shadow(); shadow.Visible() {
		canvas.DrawShadow(local, radius, shadow)
	}
	if bg := c.BackgroundColor(); bg.Alpha() > 0 {
		canvas.DrawRRect(local, radius, graphics.Paint{Color: bg, Style: graphics.PaintFill})
	}
	if c.content != nil {
		c.content(c, canvas)
	}
	if w, col := c.BorderWidth(), c.BorderColor(); w > 0 && col.Alpha() > 0 {
		canvas.DrawRRect(local.Inset(w/2, w/2), max(radius-w/2, 0), graphics.Paint{
			Color:       col,
			Style:       graphics.PaintStroke,
			StrokeWidth: w,
		})
	}

	if len(c.children) == 0 {
		return
	}
	if c.MasksToBounds() {
		canvas.ClipRRect(local, radius)
	}
	if o := c.Bounds().Origin; o.X != 0 || o.Y != 0 {
		canvas.Translate(-o.X, -o.Y)
	}
	for _, child := range c.renderOrder() {
		child.RenderInContext(canvas)
	}
}

// EffectiveTransform combines the transform, the three rotations and the
// layer transform, pivoting about the anchor point. The layer transform is
// projected onto the plane.
func (c *Control) EffectiveTransform() geometry.Affine {
	size := c.Size()
	a := c.AnchorPoint()
	ax, ay := a.X*size.Width, a.Y*size.Height

	layer := geometry.RotationX(c.RotationX()).
		Concat(geometry.RotationY(c.RotationY())).
		Concat(c.LayerTransform())

	m := c.Transform().
		Concat(geometry.RotationAffine(c.Rotation())).
		Concat(layer.Affine())
	if m.IsIdentity() {
		return geometry.IdentityAffine()
	}
	return geometry.TranslationAffine(-ax, -ay).
		Concat(m).
		Concat(geometry.TranslationAffine(ax, ay))
}

// renderOrder sorts children by z position, keeping insertion order among
// equal positions.
func (c *Control) renderOrder() []*Control {
	order := slices.Clone(c.children)
	slices.SortStableFunc(order, func(a, b *Control) int {
		return cmp.Compare(a.ZPosition(), b.ZPosition())
	})
	return order
}
