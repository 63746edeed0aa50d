package anim

import "math"

// Easing maps time progress in [0,1] to value progress in [0,1].
type Easing func(t float64) float64

var (
	Linear Easing = func(t float64) float64 { return t }

	EaseInOutCubic Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// FastOutSlowIn is the standard material motion curve and the default
	// for both indicator and scroll animations.
	FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)
)

// CubicBezier returns an easing curve through (0,0), (x1,y1), (x2,y2) and
// (1,1), as used by CSS timing functions.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(u float64) float64 { return ((ax*u+bx)*u + cx) * u }
	sampleY := func(u float64) float64 { return ((ay*u+by)*u + cy) * u }
	slopeX := func(u float64) float64 { return (3*ax*u+2*bx)*u + cx }

	solve := func(x float64) float64 {
		// Newton first, it converges in a handful of steps for sane curves.
		u := x
		for i := 0; i < 8; i++ {
			err := sampleX(u) - x
			if math.Abs(err) < 1e-6 {
				return u
			}
			d := slopeX(u)
			if math.Abs(d) < 1e-6 {
				break
			}
			u -= err / d
		}
		// Fall back to bisection.
		lo, hi := 0.0, 1.0
		u = x
		for lo < hi {
			v := sampleX(u)
			if math.Abs(v-x) < 1e-6 {
				return u
			}
			if x > v {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
			if hi-lo < 1e-9 {
				break
			}
		}
		return u
	}

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return sampleY(solve(t))
	}
}
