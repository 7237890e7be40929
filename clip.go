// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// ClipPolygon clips subject against clip with the Sutherland–Hodgman
// algorithm and returns the clipped polygon. The clip polygon must be convex
// and wound so that its interior is on the left of each edge in a y-up frame
// (counter-clockwise); this is not checked.
func ClipPolygon(subject, clip []Point) []Point {
	if len(subject) == 0 || len(clip) == 0 {
		return nil
	}
	out := append([]Point(nil), subject...)
	c1 := clip[len(clip)-1]
	for _, c2 := range clip {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]Point, 0, len(in)+1)
		s := in[len(in)-1]
		for _, e := range in {
			if inside(c1, c2, e) {
				if !inside(c1, c2, s) {
					out = append(out, intersection(c1, c2, s, e))
				}
				out = append(out, e)
			} else if inside(c1, c2, s) {
				out = append(out, intersection(c1, c2, s, e))
			}
			s = e
		}
		c1 = c2
	}
	return out
}

// inside reports whether p lies strictly left of the edge c1→c2.
func inside(c1, c2, p Point) bool {
	return (c2.X-c1.X)*(p.Y-c1.Y) > (c2.Y-c1.Y)*(p.X-c1.X)
}

// intersection returns where the line through c1, c2 meets the line through
// s, e.
func intersection(c1, c2, s, e Point) Point {
	dcX, dcY := c1.X-c2.X, c1.Y-c2.Y
	dpX, dpY := s.X-e.X, s.Y-e.Y
	n1 := c1.X*c2.Y - c1.Y*c2.X
	n2 := s.X*e.Y - s.Y*e.X
	n3 := 1 / (dcX*dpY - dcY*dpX)
	return Point{(n1*dpX - n2*dcX) * n3, (n1*dpY - n2*dcY) * n3}
}
