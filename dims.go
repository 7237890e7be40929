// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import "math"

// boxSlack absorbs round-off so that a curve ending exactly on an integer
// does not widen the box by one.
const boxSlack = 1e-9

// Box is an integer axis aligned rectangle.
type Box struct {
	X, Y, Width, Height int
}

// BoundingBox returns the smallest integer box containing every point of the
// path. Curve extremes are found analytically, not by sampling.
func (p Path) BoundingBox() Box {
	minX, minY, maxX, maxY, ok := p.extent()
	if !ok {
		return Box{}
	}
	x := int(math.Floor(minX + boxSlack))
	y := int(math.Floor(minY + boxSlack))
	return Box{
		X:      x,
		Y:      y,
		Width:  int(math.Ceil(maxX-boxSlack)) - x,
		Height: int(math.Ceil(maxY-boxSlack)) - y,
	}
}

// extent returns the exact float bounds of the path.
func (p Path) extent() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	var x, y float64
	for _, c := range p.ToCurves() {
		a := c.Args
		switch c.Letter {
		case 'M':
			x, y = a[0], a[1]
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		case 'C':
			lo, hi := BezierExtrema(x, a[0], a[2], a[4])
			minX, maxX = math.Min(minX, lo), math.Max(maxX, hi)
			lo, hi = BezierExtrema(y, a[1], a[3], a[5])
			minY, maxY = math.Min(minY, lo), math.Max(maxY, hi)
			x, y = a[4], a[5]
		}
	}
	ok = !math.IsInf(minX, 0) && !math.IsInf(minY, 0)
	return
}
