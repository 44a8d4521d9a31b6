package animation

import (
	"reflect"
	"sync"

	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
)

// lerpFunc interpolates two values of the same dynamic type.
type lerpFunc func(a, b any, t float64) any

var (
	lerpMu sync.RWMutex
	lerps  = make(map[reflect.Type]lerpFunc)
)

// RegisterLerp installs the interpolation used for values of type T.
// Values whose type has no registered lerp snap to the target at commit.
func RegisterLerp[T any](fn func(a, b T, t float64) T) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	lerpMu.Lock()
	defer lerpMu.Unlock()
	lerps[typ] = func(a, b any, t float64) any {
		return fn(a.(T), b.(T), t)
	}
}

// Interpolate returns the value between from and to at progress t.
// ok is false when the two values have different types or no lerp is
// registered for them.
func Interpolate(from, to any, t float64) (v any, ok bool) {
	if from == nil || to == nil {
		return nil, false
	}
	typ := reflect.TypeOf(to)
	if reflect.TypeOf(from) != typ {
		return nil, false
	}
	lerpMu.RLock()
	fn := lerps[typ]
	lerpMu.RUnlock()
	if fn == nil {
		return nil, false
	}
	return fn(from, to, t), true
}

// CanInterpolate reports whether values of v's type have a registered lerp.
func CanInterpolate(v any) bool {
	if v == nil {
		return false
	}
	lerpMu.RLock()
	defer lerpMu.RUnlock()
	return lerps[reflect.TypeOf(v)] != nil
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint linearly interpolates between two points.
func LerpPoint(a, b geometry.Point, t float64) geometry.Point {
	return geometry.Point{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two sizes.
func LerpSize(a, b geometry.Size, t float64) geometry.Size {
	return geometry.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpRect interpolates origin and size independently.
func LerpRect(a, b geometry.Rect, t float64) geometry.Rect {
	return geometry.Rect{
		Origin: LerpPoint(a.Origin, b.Origin, t),
		Size:   LerpSize(a.Size, b.Size, t),
	}
}

// LerpColor linearly interpolates each ARGB channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR := float64((a >> 16) & 0xFF)
	aG := float64((a >> 8) & 0xFF)
	aB := float64(a & 0xFF)
	aA := float64((a >> 24) & 0xFF)

	bR := float64((b >> 16) & 0xFF)
	bG := float64((b >> 8) & 0xFF)
	bB := float64(b & 0xFF)
	bA := float64((b >> 24) & 0xFF)

	r := uint8(LerpFloat64(aR, bR, t))
	g := uint8(LerpFloat64(aG, bG, t))
	b8 := uint8(LerpFloat64(aB, bB, t))
	alpha := uint8(LerpFloat64(aA, bA, t))

	return graphics.RGBA8(r, g, b8, alpha)
}

// LerpAffine interpolates matrix components independently. Large
// rotations go through the rotation properties instead.
func LerpAffine(a, b geometry.Affine, t float64) geometry.Affine {
	var out geometry.Affine
	for i := range out {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

// LerpTransform3D interpolates matrix components.
func LerpTransform3D(a, b geometry.Transform3D, t float64) geometry.Transform3D {
	var out geometry.Transform3D
	for i := range out {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

func init() {
	RegisterLerp(LerpFloat64)
	RegisterLerp(LerpPoint)
	RegisterLerp(LerpSize)
	RegisterLerp(LerpRect)
	RegisterLerp(LerpColor)
	RegisterLerp(LerpAffine)
	RegisterLerp(LerpTransform3D)
}
