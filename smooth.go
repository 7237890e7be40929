// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import "math"

// DefaultTension is the divisor applied to the horizontal distance between
// neighbouring points to get the length of a smoothing control line.
const DefaultTension = 4.0

// Anchor holds the two control points placed around a smoothed vertex: the
// incoming one (X1, Y1) and the outgoing one (X2, Y2).
type Anchor struct {
	X1, Y1, X2, Y2 float64
}

func tensionOf(tension []float64) float64 {
	if len(tension) > 0 && tension[0] > 0 {
		return tension[0]
	}
	return DefaultTension
}

// Anchors computes the control points around (curX, curY) so that the curves
// arriving from (prevX, prevY) and leaving toward (nextX, nextY) share a
// tangent. A vertical turnaround gets a horizontal tangent, and no control
// point is allowed to pass the height of the neighbour it points to.
func Anchors(prevX, prevY, curX, curY, nextX, nextY float64, tension ...float64) Anchor {
	value := tensionOf(tension)
	const halfPI = math.Pi / 2

	control1Length := (curX - prevX) / value
	control2Length := (nextX - curX) / value

	var control1Angle, control2Angle float64
	if (curY >= prevY && curY >= nextY) || (curY <= prevY && curY <= nextY) {
		control1Angle, control2Angle = halfPI, halfPI
	} else {
		control1Angle = math.Atan((curX - prevX) / math.Abs(curY-prevY))
		if prevY < curY {
			control1Angle = math.Pi - control1Angle
		}
		control2Angle = math.Atan((nextX - curX) / math.Abs(curY-nextY))
		if nextY < curY {
			control2Angle = math.Pi - control2Angle
		}
	}

	// Turn both lines by the same amount so they point away from each other.
	alpha := halfPI - math.Mod(control1Angle+control2Angle, math.Pi*2)/2
	if alpha > halfPI {
		alpha -= math.Pi
	}
	control1Angle += alpha
	control2Angle += alpha

	a := Anchor{
		X1: curX - control1Length*math.Sin(control1Angle),
		Y1: curY + control1Length*math.Cos(control1Angle),
		X2: curX + control2Length*math.Sin(control2Angle),
		Y2: curY + control2Length*math.Cos(control2Angle),
	}

	if (curY > prevY && a.Y1 < prevY) || (curY < prevY && a.Y1 > prevY) {
		a.X1 += math.Abs(prevY-a.Y1) * (a.X1 - curX) / (a.Y1 - curY)
		a.Y1 = prevY
	}
	if (curY > nextY && a.Y2 < nextY) || (curY < nextY && a.Y2 > nextY) {
		a.X2 -= math.Abs(nextY-a.Y2) * (a.X2 - curX) / (a.Y2 - curY)
		a.Y2 = nextY
	}
	return a
}

// Smooth returns the path with every vertex replaced by a curve whose
// controls come from Anchors on the vertex and its neighbours. A sub-path
// that ends on its starting point is treated as a loop and its first curve
// is re-anchored with the wrap-around neighbour.
func (p Path) Smooth(tension ...float64) Path {
	path := p.ToCurves()
	if len(path) == 0 {
		return nil
	}
	if path[0].Letter != 'M' {
		path = append(Path{{Letter: 'M', Args: []float64{0, 0}}}, path...)
	}
	out := Path{path[0].Clone()}
	x, y := path[0].Args[0], path[0].Args[1]
	mx, my := x, y
	beg := 1
	for i := 1; i < len(path); i++ {
		cur := path[i]
		curX, curY, _ := cur.end()
		if cur.Letter == 'M' {
			mx, my = curX, curY
			out = append(out, cur.Clone())
			beg = len(out)
			x, y = mx, my
			continue
		}
		prevX, prevY, _ := path[i-1].end()
		last := i+1 == len(path) || path[i+1].Letter == 'M'
		var a Anchor
		switch {
		case last && curX == mx && curY == my && beg < len(out):
			first := out[beg]
			fx, fy, _ := first.end()
			a = Anchors(prevX, prevY, mx, my, fx, fy, tension...)
			first.Args[0], first.Args[1] = a.X2, a.Y2
		case last:
			a = Anchor{X1: curX, Y1: curY}
		default:
			nextX, nextY, _ := path[i+1].end()
			a = Anchors(prevX, prevY, curX, curY, nextX, nextY, tension...)
		}
		out = append(out, Command{Letter: 'C', Args: []float64{x, y, a.X1, a.Y1, curX, curY}})
		x, y = a.X2, a.Y2
	}
	return out
}
