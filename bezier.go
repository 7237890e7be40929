// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import "math"

const epsilonF = 1e-12

// BezierAt evaluates one coordinate of a cubic Bézier at t.
func BezierAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// BezierExtrema returns the smallest and largest value one coordinate of a
// cubic Bézier takes for t in [0, 1]. Besides the end points, the extremes
// can only occur where the derivative vanishes.
func BezierExtrema(p0, p1, p2, p3 float64) (min, max float64) {
	min, max = math.Min(p0, p3), math.Max(p0, p3)
	for _, t := range derivativeRoots(p0, p1, p2, p3) {
		v := BezierAt(p0, p1, p2, p3, t)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return
}

// derivativeRoots returns the parameters strictly inside (0, 1) at which the
// derivative of the cubic is zero.
func derivativeRoots(a, b, c, d float64) []float64 {
	var roots []float64
	keep := func(r float64) {
		if r > 0 && r < 1 {
			roots = append(roots, r)
		}
	}
	// B'(t)/3 = -(A t^2 - top t + C)
	A := a - 3*b + 3*c - d
	top := 2 * (a - b - b + c)
	C := a - b
	if math.Abs(A) < epsilonF {
		if math.Abs(top) >= epsilonF {
			keep(C / top)
		}
		return roots
	}
	delta := top*top - 4*A*C
	switch {
	case delta == 0:
		keep(top / (2 * A))
	case delta > 0:
		s := math.Sqrt(delta)
		keep((top + s) / (2 * A))
		keep((top - s) / (2 * A))
	}
	return roots
}
