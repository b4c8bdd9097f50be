package rootfind

import (
	"fmt"
	"math"
)

// maxBrentIterations bounds Brent's method's search loop.
const maxBrentIterations = 1000

// Brent finds a root of f in [a, b] using Brent's method, combining
// bisection with inverse quadratic interpolation and the secant
// method.
//
// f must be continuous on [a, b], and f(a), f(b) must have opposite
// signs so a root is guaranteed to exist in the interval. tol is
// floored at machine epsilon.
func Brent(a, b, tol float64, f func(float64) float64) (float64, error) {
	eps := math.Nextafter(1.0, 2.0) - 1.0
	if tol < eps {
		tol = eps
	}

	fa := f(a)
	fb := f(b)

	if fa*fb >= 0 {
		return 0, fmt.Errorf("rootfind: root not bracketed: f(a) and f(b) must have opposite signs")
	}

	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c := a
	fc := fa
	d := b - a
	e := d

	for iter := 0; iter < maxBrentIterations; iter++ {
		delta := 2*eps*math.Abs(b) + tol
		m := 0.5 * (c - b)

		if math.Abs(m) <= delta || fb == 0 {
			return b, nil
		}

		useSecant := true

		if math.Abs(e) >= delta && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64

			if a == c {
				p = 2 * m * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}

			if p > 0 {
				q = -q
			} else {
				p = -p
			}

			if 2*p < 3*m*q-math.Abs(delta*q) && p < math.Abs(0.5*e*q) {
				e = d
				d = p / q
				useSecant = false
			}
		}

		if useSecant {
			e = m
			d = e
		}

		a = b
		fa = fb

		if math.Abs(d) > delta {
			b += d
		} else if m > 0 {
			b += delta
		} else {
			b -= delta
		}

		fb = f(b)

		if fa*fb < 0 {
			c = a
			fc = fa
		}
	}

	return 0, fmt.Errorf("rootfind: Brent's method did not converge in %d iterations", maxBrentIterations)
}

// InterceptLines returns the first crossing point of two polylines
// y1(x) and y2(x) sampled on the common grid x, found by scanning for
// a sign change in y1-y2 and linearly interpolating within the
// bracketing segment.
func InterceptLines(x, y1, y2 []float64) (interceptX, interceptY float64, err error) {
	if len(x) < 2 || len(y1) < 2 || len(y2) < 2 {
		return 0, 0, fmt.Errorf("rootfind: input arrays must have at least two elements")
	}
	if len(y1) != len(x) || len(y2) != len(x) {
		return 0, 0, fmt.Errorf("rootfind: all input arrays must have the same length")
	}

	hasNonZeroDiff := false

	for i := 1; i < len(x); i++ {
		diff1 := y1[i] - y2[i]
		diff2 := y1[i-1] - y2[i-1]

		if diff1 != diff2 {
			hasNonZeroDiff = true
		}

		if diff1*diff2 <= 0 {
			if diff1 == 0 {
				return x[i], y1[i], nil
			}
			if diff2 == 0 {
				return x[i-1], y1[i-1], nil
			}

			fraction := math.Abs(diff2) / (math.Abs(diff1) + math.Abs(diff2))
			interceptX = x[i-1] + fraction*(x[i]-x[i-1])
			interceptY = y1[i-1] + fraction*(y1[i]-y1[i-1])
			return interceptX, interceptY, nil
		}
	}

	if !hasNonZeroDiff {
		return 0, 0, fmt.Errorf("rootfind: input arrays are parallel")
	}

	return 0, 0, fmt.Errorf("rootfind: no intersection found")
}
