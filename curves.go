// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

// pathCursor tracks the pen while a path is converted to curves. It lives for
// a single conversion pass.
type pathCursor struct {
	x, y           float64
	startX, startY float64
	bx, by         float64 // last cubic control point
	qx, qy         float64 // last quadratic control point
	hasQ           bool
}

// ToCurves returns a copy of the path made only of move-to and cubic Bézier
// commands. Every command other than M is a C with six arguments.
func (p Path) ToCurves() Path {
	abs := p.ToAbsolute()
	if len(abs) == 0 {
		return nil
	}
	out := make(Path, 0, len(abs))
	c := &pathCursor{}
	for _, cmd := range abs {
		out = append(out, c.convert(cmd)...)
	}
	return out
}

// convert turns one absolute command into curves and advances the cursor
// past them.
func (c *pathCursor) convert(cmd Command) []Command {
	segs := c.command2curve(cmd)
	for _, s := range segs {
		c.advance(s)
	}
	return segs
}

// advance moves the pen to the end of seg and remembers its last control.
func (c *pathCursor) advance(seg Command) {
	x, y, ok := seg.end()
	if !ok {
		return
	}
	c.x, c.y = x, y
	c.bx, c.by = x, y
	if l := len(seg.Args); l >= 4 {
		c.bx, c.by = seg.Args[l-4], seg.Args[l-3]
	}
}

// degenerate is a zero length curve at the current point.
func (c *pathCursor) degenerate() Command {
	return Command{Letter: 'C', Args: []float64{c.x, c.y, c.x, c.y, c.x, c.y}}
}

func (c *pathCursor) command2curve(cmd Command) []Command {
	if cmd.Letter != 'T' && cmd.Letter != 'Q' {
		c.hasQ = false
	}
	n, known := argCount(cmd.Letter)
	if known && len(cmd.Args) < n {
		return []Command{c.degenerate()}
	}
	a := cmd.Args
	switch cmd.Letter {
	case 'M':
		c.startX, c.startY = a[0], a[1]
		return []Command{{Letter: 'M', Args: []float64{a[0], a[1]}}}
	case 'A':
		arcs := ArcToCurve(c.x, c.y, a[0], a[1], a[2], a[3] != 0, a[4] != 0, a[5], a[6])
		res := make([]Command, len(arcs))
		for i, s := range arcs {
			res[i] = Command{Letter: 'C', Args: []float64{s[0], s[1], s[2], s[3], s[4], s[5]}}
		}
		return res
	case 'S':
		rx, ry := reflect(c.x, c.y, c.bx, c.by)
		return []Command{{Letter: 'C', Args: []float64{rx, ry, a[0], a[1], a[2], a[3]}}}
	case 'T':
		qx, qy := c.x, c.y
		if c.hasQ {
			qx, qy = reflect(c.x, c.y, c.qx, c.qy)
		}
		c.qx, c.qy, c.hasQ = qx, qy, true
		return []Command{{Letter: 'C', Args: quadratic2curve(c.x, c.y, qx, qy, a[0], a[1])}}
	case 'Q':
		c.qx, c.qy, c.hasQ = a[0], a[1], true
		return []Command{{Letter: 'C', Args: quadratic2curve(c.x, c.y, a[0], a[1], a[2], a[3])}}
	case 'L':
		return []Command{{Letter: 'C', Args: []float64{c.x, c.y, a[0], a[1], a[0], a[1]}}}
	case 'H':
		return []Command{{Letter: 'C', Args: []float64{c.x, c.y, a[0], c.y, a[0], c.y}}}
	case 'V':
		return []Command{{Letter: 'C', Args: []float64{c.x, c.y, c.x, a[0], c.x, a[0]}}}
	case 'Z':
		return []Command{{Letter: 'C', Args: []float64{c.x, c.y, c.startX, c.startY, c.startX, c.startY}}}
	case 'C':
		return []Command{cmd.Clone()}
	}
	return []Command{c.degenerate()}
}

// reflect mirrors the control point (rx, ry) through (px, py).
func reflect(px, py, rx, ry float64) (x, y float64) {
	return px*2 - rx, py*2 - ry
}

// quadratic2curve elevates the quadratic (x1,y1) (ax,ay) (x2,y2) to a cubic
// and returns the cubic's two controls and end point.
func quadratic2curve(x1, y1, ax, ay, x2, y2 float64) []float64 {
	const _13, _23 = 1.0 / 3, 2.0 / 3
	return []float64{
		_13*x1 + _23*ax,
		_13*y1 + _23*ay,
		_13*x2 + _23*ax,
		_13*y2 + _23*ay,
		x2,
		y2,
	}
}
