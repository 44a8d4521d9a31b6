package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine is a 2D affine transform stored as the top two rows of a 3x3
// matrix: x' = m[0]*x + m[1]*y + m[2], y' = m[3]*x + m[4]*y + m[5].
type Affine f64.Aff3

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

// RotationAffine returns a rotation by radians about the origin.
func RotationAffine(radians float64) Affine {
	s, c := math.Sincos(radians)
	return Affine{c, -s, 0, s, c, 0}
}

// ScaleAffine returns a scale transform.
func ScaleAffine(sx, sy float64) Affine {
	return Affine{sx, 0, 0, 0, sy, 0}
}

// TranslationAffine returns a translation transform.
func TranslationAffine(tx, ty float64) Affine {
	return Affine{1, 0, tx, 0, 1, ty}
}

// Concat returns the transform that applies a first and then b.
func (a Affine) Concat(b Affine) Affine {
	return Affine{
		b[0]*a[0] + b[1]*a[3],
		b[0]*a[1] + b[1]*a[4],
		b[0]*a[2] + b[1]*a[5] + b[2],
		b[3]*a[0] + b[4]*a[3],
		b[3]*a[1] + b[4]*a[4],
		b[3]*a[2] + b[4]*a[5] + b[5],
	}
}

// Apply maps p through the transform.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[1]*p.Y + a[2],
		Y: a[3]*p.X + a[4]*p.Y + a[5],
	}
}

// IsIdentity reports whether a is (approximately) the identity.
func (a Affine) IsIdentity() bool {
	id := IdentityAffine()
	for i := range a {
		if !floatEqual(a[i], id[i]) {
			return false
		}
	}
	return true
}

// Aff3 returns the transform in x/image matrix form.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3(a)
}

// Transform3D is a row-major 4x4 matrix applied to row vectors
// (p' = p * M), the convention used by layer transforms. Element M34 at
// index 11 carries the perspective term.
type Transform3D f64.Mat4

// IdentityTransform3D returns the 3D identity.
func IdentityTransform3D() Transform3D {
	return Transform3D{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M34 returns the perspective element.
func (t Transform3D) M34() float64 {
	return t[11]
}

// WithM34 returns a copy of t with the perspective element replaced.
func (t Transform3D) WithM34(v float64) Transform3D {
	t[11] = v
	return t
}

// Concat returns t * o, which applies t first and then o.
func (t Transform3D) Concat(o Transform3D) Transform3D {
	var r Transform3D
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += t[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// RotationX returns a rotation about the x axis.
func RotationX(radians float64) Transform3D {
	s, c := math.Sincos(radians)
	return Transform3D{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation about the y axis.
func RotationY(radians float64) Transform3D {
	s, c := math.Sincos(radians)
	return Transform3D{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation about the z axis.
func RotationZ(radians float64) Transform3D {
	s, c := math.Sincos(radians)
	return Transform3D{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Affine projects t onto the 2D plane, dropping z and perspective.
func (t Transform3D) Affine() Affine {
	return Affine{t[0], t[4], t[12], t[1], t[5], t[13]}
}

// IsIdentity reports whether t is (approximately) the identity.
func (t Transform3D) IsIdentity() bool {
	id := IdentityTransform3D()
	for i := range t {
		if !floatEqual(t[i], id[i]) {
			return false
		}
	}
	return true
}

// Mat4 returns the transform in x/image matrix form.
func (t Transform3D) Mat4() f64.Mat4 {
	return f64.Mat4(t)
}
