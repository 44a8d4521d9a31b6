package animation

import "math"

// A curve maps linear progress t in [0, 1] to eased progress. Curves are
// selected per transaction by the curve flag in its [Options].

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 {
	return t
}

// Standard timing functions, with the control points Core Animation uses.
var (
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier returns the timing curve through (0,0) and (1,1) with
// control points (x1,y1) and (x2,y2), as in CSS cubic-bezier(). x1 and x2
// are clamped to [0, 1] so the curve is a function of t.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	x := newPoly(clampUnit(x1), clampUnit(x2))
	y := newPoly(y1, y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return y.at(x.solve(t))
	}
}

// poly is one coordinate of a unit bezier in power form:
// a*s^3 + b*s^2 + c*s.
type poly struct{ a, b, c float64 }

func newPoly(p1, p2 float64) poly {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return poly{a: 1 - c - b, b: b, c: c}
}

func (p poly) at(s float64) float64 {
	return ((p.a*s+p.b)*s + p.c) * s
}

func (p poly) slope(s float64) float64 {
	return (3*p.a*s+2*p.b)*s + p.c
}

// solve finds s in [0, 1] with at(s) == v: Newton's method first, then
// bisection when the slope flattens out.
func (p poly) solve(v float64) float64 {
	const eps = 1e-7
	s := v
	for range 8 {
		diff := p.at(s) - v
		if math.Abs(diff) < eps {
			return s
		}
		d := p.slope(s)
		if math.Abs(d) < eps {
			break
		}
		s -= diff / d
	}

	lo, hi := 0.0, 1.0
	s = clampUnit(s)
	for range 32 {
		diff := p.at(s) - v
		if math.Abs(diff) < eps {
			break
		}
		if diff > 0 {
			hi = s
		} else {
			lo = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
