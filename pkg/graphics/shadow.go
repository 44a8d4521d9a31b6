package graphics

import "github.com/go-drift/sketch/pkg/geometry"

// Shadow describes the drop shadow drawn beneath a control.
//
// A shadow with zero Opacity draws nothing. When Path is non-nil the
// shadow follows the path instead of the control's rounded bounds.
type Shadow struct {
	Color   Color
	Opacity float64
	Radius  float64
	Offset  geometry.Size
	Path    *Path
}

// Visible reports whether the shadow would produce any pixels.
func (s Shadow) Visible() bool {
	return s.Opacity > 0 && s.Color.Alpha() > 0
}

// Sigma returns the Gaussian blur sigma for the shadow radius.
// Returns 0 if Radius is zero or negative.
func (s Shadow) Sigma() float64 {
	if s.Radius <= 0 {
		return 0
	}
	return s.Radius * 0.5
}

// EffectiveColor folds Opacity into the shadow color's alpha.
func (s Shadow) EffectiveColor() Color {
	return s.Color.WithAlpha(s.Color.Alpha() * clamp01(s.Opacity))
}
