// Copyright 2018 The okdraw Authors. All rights reserved.

// Affine transformations of paths and of the points streamed to a rasterizer.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/transform
package okdraw

import (
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Matrix2D is the affine map
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix2D struct {
	A, B, C, D, E, F float64
}

var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a×b: b is applied first.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F}
}

// Determinant of the linear part.
func (a Matrix2D) Determinant() float64 {
	return a.A*a.D - a.B*a.C
}

// Invert returns the inverse map. A singular matrix has none and ok is
// false.
func (a Matrix2D) Invert() (inv Matrix2D, ok bool) {
	det := a.Determinant()
	if det == 0 || math.IsNaN(det) {
		return Identity, false
	}
	return Matrix2D{
		A: a.D / det,
		B: -a.B / det,
		C: -a.C / det,
		D: a.A / det,
		E: (a.C*a.F - a.D*a.E) / det,
		F: (a.B*a.E - a.A*a.F) / det,
	}, true
}

// TFixed transforms a fixed.Point26_6 by the matrix
func (a Matrix2D) TFixed(p fixed.Point26_6) (q fixed.Point26_6) {
	q.X = fixed.Int26_6((float64(p.X)*a.A + float64(p.Y)*a.C) + a.E*64)
	q.Y = fixed.Int26_6((float64(p.X)*a.B + float64(p.Y)*a.D) + a.F*64)
	return
}

func (a Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*a.A + y1*a.C + a.E
	y2 = x1*a.B + y1*a.D + a.F
	return
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, D: y})
}

func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, B: math.Tan(theta), D: 1})
}

func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, C: math.Tan(theta), D: 1})
}

// Translate applies a translation before a.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Rotate applies a rotation of theta radians about the origin before a.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}

// Transform maps every point of the path through m. The result is in curve
// form; arcs and H/V lines do not keep their shape under a general affine map.
func (p Path) Transform(m Matrix2D) Path {
	out := p.ToCurves()
	for _, c := range out {
		for i := 0; i+1 < len(c.Args); i += 2 {
			c.Args[i], c.Args[i+1] = m.Transform(c.Args[i], c.Args[i+1])
		}
	}
	return out
}

// ParseTransform reads an SVG transform attribute such as
// "translate(10,20) rotate(45)" and returns base multiplied by it.
func ParseTransform(base Matrix2D, v string) (Matrix2D, error) {
	m := base
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return base, ErrParamMismatch
		}
		pts, err := readNumbers(d[1])
		if err != nil {
			return base, err
		}
		name := strings.ToLower(strings.Trim(d[0], " ,\t\r\n"))
		switch name {
		case "rotate":
			switch len(pts) {
			case 1:
				m = m.Rotate(pts[0] * math.Pi / 180)
			case 3:
				m = m.Translate(pts[1], pts[2]).
					Rotate(pts[0]*math.Pi/180).
					Translate(-pts[1], -pts[2])
			default:
				return base, ErrParamMismatch
			}
		case "translate":
			switch len(pts) {
			case 1:
				m = m.Translate(pts[0], 0)
			case 2:
				m = m.Translate(pts[0], pts[1])
			default:
				return base, ErrParamMismatch
			}
		case "skewx", "skewy":
			if len(pts) != 1 {
				return base, ErrParamMismatch
			}
			if name == "skewx" {
				m = m.SkewX(pts[0] * math.Pi / 180)
			} else {
				m = m.SkewY(pts[0] * math.Pi / 180)
			}
		case "scale":
			switch len(pts) {
			case 1:
				m = m.Scale(pts[0], pts[0])
			case 2:
				m = m.Scale(pts[0], pts[1])
			default:
				return base, ErrParamMismatch
			}
		case "matrix":
			if len(pts) != 6 {
				return base, ErrParamMismatch
			}
			m = m.Mult(Matrix2D{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]})
		default:
			return base, ErrCommandUnknown
		}
	}
	return m, nil
}

// MatrixAdder transforms points on their way to the wrapped Adder.
type MatrixAdder struct {
	rasterx.Adder
	M Matrix2D
}

func (t *MatrixAdder) Reset() {
	t.M = Identity
}

func (t *MatrixAdder) Start(a fixed.Point26_6) {
	t.Adder.Start(t.M.TFixed(a))
}

// Line adds a linear segment to the current curve.
func (t *MatrixAdder) Line(b fixed.Point26_6) {
	t.Adder.Line(t.M.TFixed(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (t *MatrixAdder) QuadBezier(b, c fixed.Point26_6) {
	t.Adder.QuadBezier(t.M.TFixed(b), t.M.TFixed(c))
}

// CubeBezier adds a cubic segment to the current curve.
func (t *MatrixAdder) CubeBezier(b, c, d fixed.Point26_6) {
	t.Adder.CubeBezier(t.M.TFixed(b), t.M.TFixed(c), t.M.TFixed(d))
}
