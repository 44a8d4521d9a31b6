package graphics

import (
	"fmt"

	"github.com/go-drift/sketch/pkg/geometry"
)

// PaintStyle selects between filling and stroking.
type PaintStyle int

const (
	// PaintFill fills the interior.
	PaintFill PaintStyle = iota
	// PaintStroke strokes the outline with StrokeWidth.
	PaintStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintFill:
		return "fill"
	case PaintStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// Canvas is the drawing target controls render into.
//
// Implementations are supplied by the host (a compositor, an image
// rasterizer, or a [PictureRecorder]); controls never inspect pixels.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Concat multiplies the current transform by tf.
	Concat(tf geometry.Affine)

	// SaveLayerAlpha saves a new layer composited with the given opacity
	// (0.0 to 1.0) at the matching Restore.
	SaveLayerAlpha(bounds geometry.Rect, alpha float64)

	// ClipRRect restricts future drawing to a rounded rectangle.
	ClipRRect(rect geometry.Rect, radius float64)

	// DrawRRect draws a rounded rectangle. A zero radius draws a plain rect.
	DrawRRect(rect geometry.Rect, radius float64, paint Paint)

	// DrawPath draws a path.
	DrawPath(path *Path, paint Paint)

	// DrawShadow draws a blurred shadow for a rounded rectangle, or for
	// shadow.Path when it is set.
	DrawShadow(rect geometry.Rect, radius float64, shadow Shadow)
}
