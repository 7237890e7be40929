// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"math"
	"testing"
)

func TestToCurves(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"line", "M0,0L10,0", Path{cm('M', 0, 0), cm('C', 0, 0, 10, 0, 10, 0)}},
		{"hv", "M1,2H5V7", Path{cm('M', 1, 2), cm('C', 1, 2, 5, 2, 5, 2), cm('C', 5, 2, 5, 7, 5, 7)}},
		{"close", "M0,0L10,0L10,10Z", Path{cm('M', 0, 0),
			cm('C', 0, 0, 10, 0, 10, 0), cm('C', 10, 0, 10, 10, 10, 10), cm('C', 10, 10, 0, 0, 0, 0)}},
		{"quad", "M0,0Q30,30 60,0", Path{cm('M', 0, 0), cm('C', 20, 20, 40, 20, 60, 0)}},
		{"smoothQuad", "M0,0Q30,30 60,0T120,0", Path{cm('M', 0, 0),
			cm('C', 20, 20, 40, 20, 60, 0), cm('C', 80, -20, 100, -20, 120, 0)}},
		{"smoothQuadAlone", "M0,0T30,0", Path{cm('M', 0, 0), cm('C', 0, 0, 10, 0, 30, 0)}},
		{"smoothCubic", "M0,0C10,10 20,10 30,0S50,-10 60,0", Path{cm('M', 0, 0),
			cm('C', 10, 10, 20, 10, 30, 0), cm('C', 40, -10, 50, -10, 60, 0)}},
		{"smoothCubicAlone", "M0,0S10,10 20,0", Path{cm('M', 0, 0), cm('C', 0, 0, 10, 10, 20, 0)}},
		{"quadAfterLine", "M0,0L30,0T60,0", Path{cm('M', 0, 0),
			cm('C', 0, 0, 30, 0, 30, 0), cm('C', 30, 0, 40, 0, 60, 0)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			diff(t, test.want, ParsePath(test.in).ToCurves(), approx)
		})
	}
}

func TestToCurvesArc(t *testing.T) {
	got := ParsePath("M0,0A10,10 0 0,1 20,0").ToCurves()
	if len(got) != 3 {
		t.Fatalf("got %d commands, want 3: %v", len(got), got)
	}
	last := got[2].Args
	diff(t, []float64{20, 0}, last[4:], approx)
}

func TestToCurvesShape(t *testing.T) {
	for i, s := range testPaths {
		abs := ParsePath(s).ToAbsolute()
		curves := abs.ToCurves()
		if len(curves) < len(abs) {
			t.Errorf("%d: %d commands became %d", i, len(abs), len(curves))
		}
		for _, cv := range curves {
			switch cv.Letter {
			case 'M':
				if len(cv.Args) != 2 {
					t.Errorf("%d: move with %d args", i, len(cv.Args))
				}
			case 'C':
				if len(cv.Args) != 6 {
					t.Errorf("%d: curve with %d args", i, len(cv.Args))
				}
				for _, v := range cv.Args {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Errorf("%d: bad coordinate in %v", i, cv)
					}
				}
			default:
				t.Errorf("%d: unexpected %c", i, cv.Letter)
			}
		}
	}
}

// The end points of the curve form match the end points of the absolute
// form wherever no arc was split.
func TestToCurvesEndPoints(t *testing.T) {
	for i, s := range []string{testSVG1, testSVG2, testSVG3, testSVG4, testSVG12, testSVG13, testHV} {
		abs := ParsePath(s).ToAbsolute()
		curves := abs.ToCurves()
		if len(abs) != len(curves) {
			t.Fatalf("%d: %d commands became %d", i, len(abs), len(curves))
		}
		var mx, my, x, y float64
		for k, a := range abs {
			switch a.Letter {
			case 'Z':
				x, y = mx, my
			case 'H':
				x = a.Args[0]
			case 'V':
				y = a.Args[0]
			case 'M':
				mx, my = a.Args[0], a.Args[1]
				fallthrough
			default:
				x, y, _ = a.end()
			}
			ex, ey, _ := curves[k].end()
			diff(t, []float64{x, y}, []float64{ex, ey}, approx)
		}
	}
}
