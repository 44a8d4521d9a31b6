package control

import (
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
	"github.com/go-drift/sketch/pkg/template"
)

// Property names accepted by Get, Set and templates.
const (
	PropBounds              = "bounds"
	PropOrigin              = "origin"
	PropTransform           = "transform"
	PropBackgroundColor     = "backgroundColor"
	PropAlpha               = "alpha"
	PropHidden              = "hidden"
	PropBorderWidth         = "borderWidth"
	PropBorderColor         = "borderColor"
	PropCornerRadius        = "cornerRadius"
	PropShadowRadius        = "shadowRadius"
	PropShadowOpacity       = "shadowOpacity"
	PropShadowColor         = "shadowColor"
	PropShadowOffset        = "shadowOffset"
	PropShadowPath          = "shadowPath"
	PropLayerTransform      = "layerTransform"
	PropAnchorPoint         = "anchorPoint"
	PropZPosition           = "zPosition"
	PropRotation            = "rotation"
	PropRotationX           = "rotationX"
	PropRotationY           = "rotationY"
	PropPerspectiveDistance = "perspectiveDistance"
	PropMasksToBounds       = "masksToBounds"
	// PropMask never animates and is not stored by value; see SetMask.
	PropMask = "mask"
)

// baseProperties lists every property of a plain control in style order.
// The initial values are overwritten at construction by the kind's default
// template for style properties.
var baseProperties = []property{
	{name: PropBackgroundColor, initial: graphics.ColorTransparent, style: true},
	{name: PropAlpha, initial: 1.0, style: true},
	{name: PropBorderColor, initial: graphics.ColorGray, style: true},
	{name: PropBorderWidth, initial: 0.0, style: true},
	{name: PropCornerRadius, initial: 0.0, style: true},
	{name: PropMasksToBounds, initial: false, style: true, immediate: true},
	{name: PropShadowColor, initial: graphics.ColorBlack, style: true},
	{name: PropShadowOffset, initial: geometry.Size{}, style: true},
	{name: PropShadowOpacity, initial: 0.0, style: true},
	{name: PropShadowPath, initial: (*graphics.Path)(nil), style: true, immediate: true},
	{name: PropShadowRadius, initial: 0.0, style: true},

	{name: PropBounds, initial: geometry.Rect{}},
	{name: PropOrigin, initial: geometry.Point{}},
	{name: PropTransform, initial: geometry.IdentityAffine()},
	{name: PropHidden, initial: false, immediate: true},
	{name: PropLayerTransform, initial: geometry.IdentityTransform3D()},
	{name: PropAnchorPoint, initial: geometry.Pt(0.5, 0.5)},
	{name: PropZPosition, initial: 0.0},
	{name: PropRotation, initial: 0.0},
	{name: PropRotationX, initial: 0.0},
	{name: PropRotationY, initial: 0.0},
	{name: PropPerspectiveDistance, initial: 0.0},
}

func init() {
	for _, p := range baseProperties {
		template.RegisterType(p.name, p.initial)
	}
	template.RegisterDefault(KindControl, func() *template.Template {
		tpl := template.New()
		for _, p := range baseProperties {
			if p.style {
				tpl.Set(p.name, p.initial)
			}
		}
		tpl.Set(PropShadowOffset, geometry.Sz(0, -3))
		tpl.Set(PropShadowRadius, 3.0)
		return tpl
	})
}

// Transform returns the 2D transform applied about the anchor point.
func (c *Control) Transform() geometry.Affine { return get[geometry.Affine](c, PropTransform) }

// SetTransform sets the 2D transform.
func (c *Control) SetTransform(t geometry.Affine) { c.set(PropTransform, t) }

// BackgroundColor returns the fill behind the control's content.
func (c *Control) BackgroundColor() graphics.Color {
	return get[graphics.Color](c, PropBackgroundColor)
}

// SetBackgroundColor sets the background fill.
func (c *Control) SetBackgroundColor(col graphics.Color) { c.set(PropBackgroundColor, col) }

// Alpha returns the opacity in [0, 1].
func (c *Control) Alpha() float64 { return get[float64](c, PropAlpha) }

// SetAlpha sets the opacity.
func (c *Control) SetAlpha(a float64) { c.set(PropAlpha, a) }

// Hidden reports whether the control is hidden.
func (c *Control) Hidden() bool { return get[bool](c, PropHidden) }

// SetHidden shows or hides the control. It never animates.
func (c *Control) SetHidden(hidden bool) { c.set(PropHidden, hidden) }

// BorderWidth returns the stroke width of the border.
func (c *Control) BorderWidth() float64 { return get[float64](c, PropBorderWidth) }

// SetBorderWidth sets the border stroke width.
func (c *Control) SetBorderWidth(w float64) { c.set(PropBorderWidth, w) }

// BorderColor returns the border stroke color.
func (c *Control) BorderColor() graphics.Color { return get[graphics.Color](c, PropBorderColor) }

// SetBorderColor sets the border stroke color.
func (c *Control) SetBorderColor(col graphics.Color) { c.set(PropBorderColor, col) }

// CornerRadius returns the radius of the rounded bounds.
func (c *Control) CornerRadius() float64 { return get[float64](c, PropCornerRadius) }

// SetCornerRadius sets the corner radius.
func (c *Control) SetCornerRadius(r float64) { c.set(PropCornerRadius, r) }

// ShadowRadius returns the shadow blur radius.
func (c *Control) ShadowRadius() float64 { return get[float64](c, PropShadowRadius) }

// SetShadowRadius sets the shadow blur radius.
func (c *Control) SetShadowRadius(r float64) { c.set(PropShadowRadius, r) }

// ShadowOpacity returns the shadow opacity; 0 draws no shadow.
func (c *Control) ShadowOpacity() float64 { return get[float64](c, PropShadowOpacity) }

// SetShadowOpacity sets the shadow opacity.
func (c *Control) SetShadowOpacity(o float64) { c.set(PropShadowOpacity, o) }

// ShadowColor returns the shadow color.
func (c *Control) ShadowColor() graphics.Color { return get[graphics.Color](c, PropShadowColor) }

// SetShadowColor sets the shadow color.
func (c *Control) SetShadowColor(col graphics.Color) { c.set(PropShadowColor, col) }

// ShadowOffset returns the shadow displacement.
func (c *Control) ShadowOffset() geometry.Size { return get[geometry.Size](c, PropShadowOffset) }

// SetShadowOffset sets the shadow displacement.
func (c *Control) SetShadowOffset(o geometry.Size) { c.set(PropShadowOffset, o) }

// ShadowPath returns the shape the shadow follows, or nil for the rounded
// bounds.
func (c *Control) ShadowPath() *graphics.Path { return get[*graphics.Path](c, PropShadowPath) }

// SetShadowPath sets the shadow shape. It never animates.
func (c *Control) SetShadowPath(p *graphics.Path) { c.set(PropShadowPath, p.Clone()) }

// Shadow assembles the committed shadow properties.
func (c *Control) Shadow() graphics.Shadow {
	return graphics.Shadow{
		Color:   c.ShadowColor(),
		Opacity: c.ShadowOpacity(),
		Radius:  c.ShadowRadius(),
		Offset:  c.ShadowOffset(),
		Path:    c.ShadowPath(),
	}
}

// LayerTransform returns the 3D transform, including the perspective
// term set by SetPerspectiveDistance.
func (c *Control) LayerTransform() geometry.Transform3D {
	return get[geometry.Transform3D](c, PropLayerTransform)
}

// SetLayerTransform sets the 3D transform.
func (c *Control) SetLayerTransform(t geometry.Transform3D) { c.set(PropLayerTransform, t) }

// AnchorPoint returns the pivot of transforms in unit coordinates of the
// bounds; (0.5, 0.5) is the center.
func (c *Control) AnchorPoint() geometry.Point { return get[geometry.Point](c, PropAnchorPoint) }

// SetAnchorPoint sets the transform pivot.
func (c *Control) SetAnchorPoint(p geometry.Point) { c.set(PropAnchorPoint, p) }

// ZPosition orders siblings when rendering; higher draws later.
func (c *Control) ZPosition() float64 { return get[float64](c, PropZPosition) }

// SetZPosition sets the sibling drawing order.
func (c *Control) SetZPosition(z float64) { c.set(PropZPosition, z) }

// Rotation returns the rotation about the z axis in radians.
func (c *Control) Rotation() float64 { return get[float64](c, PropRotation) }

// SetRotation sets the rotation about the z axis.
func (c *Control) SetRotation(r float64) { c.set(PropRotation, r) }

// RotationX returns the rotation about the x axis in radians.
func (c *Control) RotationX() float64 { return get[float64](c, PropRotationX) }

// SetRotationX sets the rotation about the x axis.
func (c *Control) SetRotationX(r float64) { c.set(PropRotationX, r) }

// RotationY returns the rotation about the y axis in radians.
func (c *Control) RotationY() float64 { return get[float64](c, PropRotationY) }

// SetRotationY sets the rotation about the y axis.
func (c *Control) SetRotationY(r float64) { c.set(PropRotationY, r) }

// PerspectiveDistance returns the distance last set with
// SetPerspectiveDistance.
func (c *Control) PerspectiveDistance() float64 { return get[float64](c, PropPerspectiveDistance) }

// SetPerspectiveDistance sets the layer transform's m34 to -1/d, or to 0
// when d is 0, in the same transaction as the distance itself.
func (c *Control) SetPerspectiveDistance(d float64) {
	m34 := 0.0
	if d != 0 {
		m34 = -1 / d
	}
	c.Batch(func() {
		c.set(PropPerspectiveDistance, d)
		c.set(PropLayerTransform, c.LayerTransform().WithM34(m34))
	})
}

// MasksToBounds reports whether children are clipped to the bounds.
func (c *Control) MasksToBounds() bool { return get[bool](c, PropMasksToBounds) }

// SetMasksToBounds enables clipping. It never animates.
func (c *Control) SetMasksToBounds(clip bool) { c.set(PropMasksToBounds, clip) }
