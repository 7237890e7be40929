// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRotate(t *testing.T) {
	x, y := Rotate(1, 0, math.Pi/2)
	diff(t, []float64{0, 1}, []float64{x, y}, cmpopts.EquateApprox(0, 1e-12))
}

func TestArcToCurveSemicircle(t *testing.T) {
	segs := ArcToCurve(0, 0, 10, 10, 0, false, true, 20, 0)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	h := 4.0 / 3 * 10 * math.Tan(math.Pi/6)
	// The first segment spans 120 degrees starting at the leftmost point,
	// where the tangent is vertical.
	diff(t, []float64{0, -h}, segs[0][:2], approx)
	diff(t, []float64{15, -10 * math.Sin(math.Pi/3)}, segs[0][4:], approx)
	diff(t, []float64{20, 0}, segs[1][4:], approx)
}

func TestArcToCurveScalesRadii(t *testing.T) {
	segs := ArcToCurve(0, 0, 1, 1, 0, false, true, 10, 0)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	diff(t, []float64{7.5, -5 * math.Sin(math.Pi/3)}, segs[0][4:], approx)
	diff(t, []float64{10, 0}, segs[1][4:], approx)
}

func TestArcToCurveDegenerate(t *testing.T) {
	diff(t, [][6]float64{{0, 0, 10, 10, 10, 10}}, ArcToCurve(0, 0, 0, 5, 0, false, true, 10, 10))
	diff(t, [][6]float64{{3, 4, 3, 4, 3, 4}}, ArcToCurve(3, 4, 5, 5, 0, true, true, 3, 4))
}

func TestArcToCurveProperties(t *testing.T) {
	tests := []struct {
		x1, y1, rx, ry, angle float64
		large, sweep          bool
		x2, y2                float64
	}{
		{0, 0, 10, 10, 0, false, false, 10, 10},
		{0, 0, 10, 10, 0, true, false, 10, 10},
		{0, 0, 10, 10, 0, true, true, 10, 10},
		{200, 295, 25, 25, -30, false, true, 250, 270},
		{300, 245, 25, 75, -30, false, true, 350, 220},
		{150, 350, 35, 25, -30, false, false, 200, 325},
		{0, 0, 30, 10, 45, true, true, 5, 20},
		{10, 0, 10, 10, 90, true, false, 0, 10},
	}
	for i, test := range tests {
		segs := ArcToCurve(test.x1, test.y1, test.rx, test.ry, test.angle,
			test.large, test.sweep, test.x2, test.y2)
		if len(segs) == 0 || len(segs) > 3 {
			t.Errorf("%d: got %d segments", i, len(segs))
			continue
		}
		end := segs[len(segs)-1]
		diff(t, []float64{test.x2, test.y2}, end[4:], cmpopts.EquateApprox(0, 1e-6))
		for _, s := range segs {
			for _, v := range s {
				if math.IsNaN(v) {
					t.Errorf("%d: NaN in %v", i, s)
				}
			}
		}
	}
	// A large arc of a circle spans more than 240 degrees when the chord is
	// short.
	if n := len(ArcToCurve(0, 0, 10, 10, 0, true, true, 1, 1)); n != 3 {
		t.Errorf("got %d segments for a large arc, want 3", n)
	}
	if n := len(ArcToCurve(0, 0, 10, 10, 0, false, true, 1, 1)); n != 1 {
		t.Errorf("got %d segments for a small arc, want 1", n)
	}
}

func TestBezierExtrema(t *testing.T) {
	tests := []struct {
		p        [4]float64
		min, max float64
	}{
		{[4]float64{0, 10, 10, 0}, 0, 7.5},
		{[4]float64{0, 1, 2, 3}, 0, 3},
		{[4]float64{5, 5, 5, 5}, 5, 5},
		{[4]float64{0, -10, 10, 0}, BezierAt(0, -10, 10, 0, (3-math.Sqrt(3))/6), BezierAt(0, -10, 10, 0, (3+math.Sqrt(3))/6)},
	}
	for i, test := range tests {
		lo, hi := BezierExtrema(test.p[0], test.p[1], test.p[2], test.p[3])
		if math.Abs(lo-test.min) > 1e-9 || math.Abs(hi-test.max) > 1e-9 {
			t.Errorf("%d: got (%v, %v), want (%v, %v)", i, lo, hi, test.min, test.max)
		}
	}
}
