package gestures

import "github.com/go-drift/sketch/pkg/geometry"

// The adapters below wrap plain callbacks as Handlers. Each returns nil for
// a nil callback so passing nil through them unbinds.

// TapHandler adapts fn(location).
func TapHandler(fn func(location geometry.Point)) Handler {
	if fn == nil {
		return nil
	}
	return func(ev Event) {
		if e, ok := ev.(TapEvent); ok {
			fn(e.Location)
		}
	}
}

// PanHandler adapts fn(location, translation, velocity).
func PanHandler(fn func(location, translation, velocity geometry.Point)) Handler {
	if fn == nil {
		return nil
	}
	return func(ev Event) {
		if e, ok := ev.(PanEvent); ok {
			fn(e.Location, e.Translation, e.Velocity)
		}
	}
}

// PinchHandler adapts fn(location, scale, velocity).
func PinchHandler(fn func(location geometry.Point, scale, velocity float64)) Handler {
	if fn == nil {
		return nil
	}
	return func(ev Event) {
		if e, ok := ev.(PinchEvent); ok {
			fn(e.Location, e.Scale, e.Velocity)
		}
	}
}

// RotationHandler adapts fn(location, angle, velocity).
func RotationHandler(fn func(location geometry.Point, angle, velocity float64)) Handler {
	if fn == nil {
		return nil
	}
	return func(ev Event) {
		if e, ok := ev.(RotationEvent); ok {
			fn(e.Location, e.Angle, e.Velocity)
		}
	}
}

// LongPressHandler adapts fn(location) for either long-press kind.
func LongPressHandler(fn func(location geometry.Point)) Handler {
	if fn == nil {
		return nil
	}
	return func(ev Event) {
		if e, ok := ev.(LongPressEvent); ok {
			fn(e.Location)
		}
	}
}

// SwipeHandler adapts a callback with no arguments.
func SwipeHandler(fn func()) Handler {
	if fn == nil {
		return nil
	}
	return func(ev Event) {
		if _, ok := ev.(SwipeEvent); ok {
			fn()
		}
	}
}
