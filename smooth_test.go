// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"math"
	"testing"
)

func TestAnchors(t *testing.T) {
	tests := []struct {
		name    string
		pts     [6]float64
		tension []float64
		want    Anchor
	}{
		{"peak", [6]float64{0, 0, 10, 10, 20, 0}, nil, Anchor{7.5, 10, 12.5, 10}},
		{"valley", [6]float64{0, 10, 10, 0, 20, 10}, nil, Anchor{7.5, 0, 12.5, 0}},
		{"tension", [6]float64{0, 0, 10, 10, 20, 0}, []float64{2}, Anchor{5, 10, 15, 10}},
		{"badTension", [6]float64{0, 0, 10, 10, 20, 0}, []float64{-1}, Anchor{7.5, 10, 12.5, 10}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := test.pts
			diff(t, test.want, Anchors(p[0], p[1], p[2], p[3], p[4], p[5], test.tension...), approx)
		})
	}
}

func TestAnchorsCollinear(t *testing.T) {
	a := Anchors(0, 0, 10, 10, 20, 20)
	d := 2.5 * math.Sqrt2 / 2
	diff(t, Anchor{10 - d, 10 - d, 10 + d, 10 + d}, a, approx)
}

// Control points never overshoot the height of the neighbour they face.
func TestAnchorsClamp(t *testing.T) {
	pts := [][6]float64{
		{0, 0, 1, 10, 100, 12},
		{0, 12, 99, 10, 100, 0},
		{0, 0, 50, 1, 51, 100},
		{0, 5, 1, 50, 2, 51},
	}
	for i, p := range pts {
		a := Anchors(p[0], p[1], p[2], p[3], p[4], p[5])
		if a.Y1 < math.Min(p[1], p[3])-1e-9 || a.Y1 > math.Max(p[1], p[3])+1e-9 {
			t.Errorf("%d: incoming control %v leaves [%v, %v]", i, a.Y1, p[1], p[3])
		}
		if a.Y2 < math.Min(p[5], p[3])-1e-9 || a.Y2 > math.Max(p[5], p[3])+1e-9 {
			t.Errorf("%d: outgoing control %v leaves [%v, %v]", i, a.Y2, p[3], p[5])
		}
	}
}

func TestSmooth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"open", "M0,0L10,10L20,0", Path{cm('M', 0, 0),
			cm('C', 0, 0, 7.5, 10, 10, 10), cm('C', 12.5, 10, 20, 0, 20, 0)}},
		{"loop", "M0,0L10,10L20,0L0,0", Path{cm('M', 0, 0),
			cm('C', 2.5, 0, 7.5, 10, 10, 10), cm('C', 12.5, 10, 17.5, 0, 20, 0), cm('C', 15, 0, 5, 0, 0, 0)}},
		{"noMove", "L10,0", Path{cm('M', 0, 0), cm('C', 0, 0, 10, 0, 10, 0)}},
		{"empty", "", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			diff(t, test.want, ParsePath(test.in).Smooth(), approx)
		})
	}
}

func TestSmoothShape(t *testing.T) {
	for i, s := range []string{testSVG1, testSVG3, testSVG4, testSVG12, testHV} {
		curves := ParsePath(s).ToCurves()
		got := ParsePath(s).Smooth()
		if len(got) != len(curves) {
			t.Fatalf("%d: %d commands became %d", i, len(curves), len(got))
		}
		for k := range got {
			if got[k].Letter != curves[k].Letter {
				t.Errorf("%d: command %d is %c, want %c", i, k, got[k].Letter, curves[k].Letter)
			}
			x, y, _ := got[k].end()
			wx, wy, _ := curves[k].end()
			diff(t, []float64{wx, wy}, []float64{x, y}, approx)
		}
	}
}
