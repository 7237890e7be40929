// Copyright 2017 The okdraw Authors. All rights reserved.

package okdraw

import "math"

// MaxArcSpan is the largest angle in radians a single cubic is allowed to
// span when approximating an elliptical arc.
const MaxArcSpan float64 = 120 * math.Pi / 180

// Rotate rotates (x, y) about the origin by rad radians.
func Rotate(x, y, rad float64) (float64, float64) {
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// ArcToCurve approximates the SVG elliptical arc from (x1, y1) to (x2, y2)
// with cubic Béziers. Each returned segment holds the first control point,
// the second control point and the end point; the start point of a segment
// is the end of the one before it. Arcs spanning more than MaxArcSpan are
// split into ceil(span/MaxArcSpan) segments. Radii too small to reach the end
// point are scaled up.
func ArcToCurve(x1, y1, rx, ry, angle float64, largeArc, sweep bool, x2, y2 float64) [][6]float64 {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || (x1 == x2 && y1 == y2) {
		return [][6]float64{{x1, y1, x2, y2, x2, y2}}
	}
	rad := angle * math.Pi / 180
	x1, y1 = Rotate(x1, y1, -rad)
	x2, y2 = Rotate(x2, y2, -rad)
	x := (x1 - x2) / 2
	y := (y1 - y2) / 2
	h := x*x/(rx*rx) + y*y/(ry*ry)
	if h > 1 {
		h = math.Sqrt(h)
		rx *= h
		ry *= h
	}
	rx2, ry2 := rx*rx, ry*ry
	k := math.Sqrt(math.Abs((rx2*ry2 - rx2*y*y - ry2*x*x) / (rx2*y*y + ry2*x*x)))
	if largeArc == sweep {
		k = -k
	}
	cx := k*rx*y/ry + (x1+x2)/2
	cy := k*-ry*x/rx + (y1+y2)/2
	f1 := math.Asin(clampUnit(round7((y1 - cy) / ry)))
	f2 := math.Asin(clampUnit(round7((y2 - cy) / ry)))
	if x1 < cx {
		f1 = math.Pi - f1
	}
	if x2 < cx {
		f2 = math.Pi - f2
	}
	if f1 < 0 {
		f1 += math.Pi * 2
	}
	if f2 < 0 {
		f2 += math.Pi * 2
	}
	if sweep && f1 > f2 {
		f1 -= math.Pi * 2
	}
	if !sweep && f2 > f1 {
		f2 -= math.Pi * 2
	}
	segs := arcSegments(nil, arcSpan{x1, y1, x2, y2, f1, f2}, rx, ry, cx, cy, sweep)
	for i := range segs {
		s := &segs[i]
		for j := 0; j < 6; j += 2 {
			s[j], s[j+1] = Rotate(s[j], s[j+1], rad)
		}
	}
	return segs
}

// arcSpan is one piece of an arc in the ellipse's unrotated frame: its end
// points and their parametric angles.
type arcSpan struct {
	x1, y1, x2, y2 float64
	f1, f2         float64
}

// arcSegments appends the cubic approximation of s to dst. A span wider than
// MaxArcSpan emits its first MaxArcSpan radians and recurses on the rest with
// the same center.
func arcSegments(dst [][6]float64, s arcSpan, rx, ry, cx, cy float64, sweep bool) [][6]float64 {
	var rest *arcSpan
	if math.Abs(s.f2-s.f1) > MaxArcSpan {
		dir := -1.0
		if sweep && s.f2 > s.f1 {
			dir = 1
		}
		f2 := s.f1 + MaxArcSpan*dir
		x2, y2 := cx+rx*math.Cos(f2), cy+ry*math.Sin(f2)
		rest = &arcSpan{x2, y2, s.x2, s.y2, f2, s.f2}
		s.x2, s.y2, s.f2 = x2, y2, f2
	}
	t := math.Tan((s.f2 - s.f1) / 4)
	hx, hy := 4.0/3*rx*t, 4.0/3*ry*t
	s1, c1 := math.Sincos(s.f1)
	s2, c2 := math.Sincos(s.f2)
	dst = append(dst, [6]float64{
		s.x1 - hx*s1, s.y1 + hy*c1,
		s.x2 + hx*s2, s.y2 - hy*c2,
		s.x2, s.y2,
	})
	if rest != nil {
		return arcSegments(dst, *rest, rx, ry, cx, cy, sweep)
	}
	return dst
}

func round7(v float64) float64 {
	return math.Round(v*1e7) / 1e7
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
