// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// DefaultStrokeWidth is used for stroked shapes that give no stroke-width.
const DefaultStrokeWidth = 1.0

// toFixed rounds to the nearest 1/64.
func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

// AddTo streams the path into a rasterx Adder. Commands that convert to
// straight curves are sent as lines, the rest as cubics; Z closes the
// current sub-path.
func (p Path) AddTo(a rasterx.Adder) {
	c := &pathCursor{}
	open := false
	for _, cmd := range p.ToAbsolute() {
		x, y := c.x, c.y
		segs := c.convert(cmd)
		switch cmd.Letter {
		case 'M':
			if open {
				a.Stop(false)
			}
			a.Start(toFixed(c.x, c.y))
			open = true
			continue
		case 'Z':
			if open {
				a.Stop(true)
				open = false
			}
			continue
		}
		if !open {
			a.Start(toFixed(x, y))
			open = true
		}
		for _, s := range segs {
			v := s.Args
			if v[0] == x && v[1] == y && v[2] == v[4] && v[3] == v[5] {
				a.Line(toFixed(v[4], v[5]))
			} else {
				a.CubeBezier(toFixed(v[0], v[1]), toFixed(v[2], v[3]), toFixed(v[4], v[5]))
			}
			x, y = v[4], v[5]
		}
	}
	if open {
		a.Stop(false)
	}
}

// Raster returns the path in rasterx form.
func (p Path) Raster() rasterx.Path {
	var rp rasterx.Path
	p.AddTo(&rp)
	return rp
}

// AddTo streams the shape in user space.
func (s Shape) AddTo(a rasterx.Adder) {
	m := s.Transform
	if m == (Matrix2D{}) {
		m = Identity
	}
	s.Path.AddTo(&MatrixAdder{Adder: a, M: m})
}

// Bounds is the integer bounding box of the shape in user space.
func (s Shape) Bounds() Box {
	if s.Transform == (Matrix2D{}) || s.Transform == Identity {
		return s.Path.BoundingBox()
	}
	return s.Path.Transform(s.Transform).BoundingBox()
}

// Draw fills and strokes every shape of the document with r.
func (d *Document) Draw(r *rasterx.Dasher, opacity float64) {
	for _, s := range d.Shapes {
		if paint := d.paint(s.Fill, s, opacity); paint != nil {
			r.Clear()
			rf := &r.Filler
			s.AddTo(rf)
			rf.SetColor(paint)
			rf.Draw()
		}
		if paint := d.paint(s.Stroke, s, opacity); paint != nil {
			r.Clear()
			w := s.StrokeWidth
			if w <= 0 {
				w = DefaultStrokeWidth
			}
			r.SetStroke(fixed.Int26_6(w*64), 4*64, rasterx.ButtCap, nil,
				rasterx.FlatGap, rasterx.Bevel, nil, 0)
			s.AddTo(r)
			r.SetColor(paint)
			r.Draw()
		}
	}
}

// paint resolves a fill or stroke value to a color or a gradient color
// function. None, empty and unparseable values give nil.
func (d *Document) paint(v string, s Shape, opacity float64) interface{} {
	if g := d.GradientFor(v); g != nil {
		return g.ColorFunction(s.Bounds(), opacity)
	}
	if strings.HasPrefix(strings.TrimSpace(v), "url(") {
		return nil
	}
	c, ok := parseColor(v)
	if !ok {
		return nil
	}
	return ApplyOpacity(c, opacity)
}
