// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import "math"

func cmd(letter byte, args ...float64) Command {
	return Command{Letter: letter, Args: args}
}

// EllipsePath returns a closed ellipse centered on (cx, cy) drawn as two half
// arcs starting at the top.
func EllipsePath(cx, cy, rx, ry float64) Path {
	return Path{
		cmd('M', cx, cy-ry),
		cmd('A', rx, ry, 0, 1, 1, cx, cy+ry),
		cmd('A', rx, ry, 0, 1, 1, cx, cy-ry),
		cmd('Z'),
	}
}

// CirclePath returns a closed circle of radius r centered on (cx, cy).
func CirclePath(cx, cy, r float64) Path {
	return EllipsePath(cx, cy, r, r)
}

// RectPath returns the closed rectangle with top left corner (x, y). A
// positive r rounds the corners with quarter arcs; it is limited to half the
// shorter side.
func RectPath(x, y, w, h, r float64) Path {
	if r <= 0 {
		return Path{
			cmd('M', x, y),
			cmd('L', x+w, y),
			cmd('L', x+w, y+h),
			cmd('L', x, y+h),
			cmd('Z'),
		}
	}
	r = math.Min(r, math.Min(math.Abs(w), math.Abs(h))/2)
	return Path{
		cmd('M', x+r, y),
		cmd('l', w-r*2, 0),
		cmd('a', r, r, 0, 0, 1, r, r),
		cmd('l', 0, h-r*2),
		cmd('a', r, r, 0, 0, 1, -r, r),
		cmd('l', r*2-w, 0),
		cmd('a', r, r, 0, 0, 1, -r, -r),
		cmd('l', 0, r*2-h),
		cmd('a', r, r, 0, 0, 1, r, -r),
		cmd('z'),
	}.ToAbsolute()
}

// PolygonPath joins pts with straight lines, closing the figure when closed
// is set. Fewer than two points give an empty path.
func PolygonPath(pts []Point, closed bool) Path {
	if len(pts) < 2 {
		return nil
	}
	p := make(Path, 0, len(pts)+1)
	p = append(p, cmd('M', pts[0].X, pts[0].Y))
	for _, pt := range pts[1:] {
		p = append(p, cmd('L', pt.X, pt.Y))
	}
	if closed {
		p = append(p, cmd('Z'))
	}
	return p
}
