package mathutil

import "math"

// SolveQuadratic returns the real roots of a·t² + b·t + c = 0 in ascending
// order and how many there are. A zero leading coefficient degrades to the
// linear case. Uses the cancellation-free form of the quadratic formula.
func SolveQuadratic(a, b, c float64) (roots [2]float64, n int) {
	if a == 0 {
		if b == 0 {
			return roots, 0
		}
		roots[0] = -c / b
		return roots, 1
	}

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return roots, 0
	case disc == 0:
		roots[0] = -b / (2 * a)
		return roots, 1
	}

	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r1, r2 := q/a, c/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	roots[0], roots[1] = r1, r2
	return roots, 2
}
