// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

const (
	LinearGradient = "linear"
	RadialGradient = "radial"
)

// focusEpsilon keeps a radial focus strictly inside its circle.
const focusEpsilon = 1e-5

type (
	SpreadMethod byte

	// StopConfig is a gradient stop as configured: Offset is a whole percent
	// with an optional % sign, Color any SVG color string. An Opacity of 0
	// means fully opaque unless HasOpacity is set.
	StopConfig struct {
		Offset     string
		Color      string
		Opacity    float64
		HasOpacity bool
	}

	// GradientConfig describes a gradient before parsing. Angle is in
	// degrees; the radial fields are fractions of the filled box.
	GradientConfig struct {
		ID               string
		Type             string
		Angle            float64
		CenterX, CenterY float64
		FocalX, FocalY   float64
		Radius           float64
		Stops            []StopConfig
		Spread           SpreadMethod
		Transform        Matrix2D
	}

	GradientStop struct {
		Offset  int // percent, 0 to 100
		Color   color.Color
		Opacity float64
	}

	// Gradient is a parsed gradient. Vector holds the start and end points of
	// a linear gradient as fractions of the filled box.
	Gradient struct {
		ID               string
		Type             string
		Angle            float64
		Vector           [4]float64
		CenterX, CenterY float64
		FocalX, FocalY   float64
		Radius           float64
		Stops            []GradientStop
		Spread           SpreadMethod
		Transform        Matrix2D
	}
)

var stopOffsetRE = regexp.MustCompile(`^\d+%?$`)

var white = color.NRGBA{0xff, 0xff, 0xff, 0xff}

// ParseGradient normalizes a gradient configuration. Stops whose offset is
// not a whole percent are skipped, or reported per errMode. A stop color that
// cannot be parsed becomes white and an unset opacity means fully opaque.
// Stops come out sorted by offset.
func ParseGradient(cfg GradientConfig, errMode ...ErrorMode) (*Gradient, error) {
	mode := IgnoreErrorMode
	if len(errMode) > 0 {
		mode = errMode[0]
	}
	g := &Gradient{
		ID:        cfg.ID,
		Type:      strings.ToLower(strings.TrimSpace(cfg.Type)),
		Angle:     cfg.Angle,
		Spread:    cfg.Spread,
		Transform: cfg.Transform,
	}
	if g.Transform == (Matrix2D{}) {
		g.Transform = Identity
	}
	switch g.Type {
	case "", LinearGradient:
		g.Type = LinearGradient
		sin, cos := math.Sincos(cfg.Angle * math.Pi / 180)
		v := [4]float64{0, 0, cos, sin}
		max := math.Max(math.Abs(v[2]), math.Abs(v[3]))
		if max == 0 {
			max = 1
		}
		v[2] /= max
		v[3] /= max
		if v[2] < 0 {
			v[0], v[2] = -v[2], 0
		}
		if v[3] < 0 {
			v[1], v[3] = -v[3], 0
		}
		g.Vector = v
	case RadialGradient:
		g.CenterX, g.CenterY = cfg.CenterX, cfg.CenterY
		g.FocalX, g.FocalY = cfg.FocalX, cfg.FocalY
		g.Radius = cfg.Radius
	default:
		return nil, fmt.Errorf("gradient %q: type %q: %w", cfg.ID, cfg.Type, ErrGradientType)
	}

	for _, s := range cfg.Stops {
		key := strings.TrimSpace(s.Offset)
		if !stopOffsetRE.MatchString(key) {
			switch mode {
			case StrictErrorMode:
				return nil, fmt.Errorf("gradient %q: offset %q: %w", cfg.ID, s.Offset, ErrBadStop)
			case WarnErrorMode:
				log.Printf("Ignoring gradient stop %q", s.Offset)
			}
			continue
		}
		offset, err := strconv.Atoi(strings.TrimSuffix(key, "%"))
		if err != nil {
			return nil, fmt.Errorf("gradient %q: offset %q: %w", cfg.ID, s.Offset, ErrBadStop)
		}
		stop := GradientStop{Offset: offset, Color: white, Opacity: s.Opacity}
		if c, ok := parseColor(s.Color); ok {
			stop.Color = c
		}
		if stop.Opacity == 0 && !s.HasOpacity {
			stop.Opacity = 1
		}
		g.Stops = append(g.Stops, stop)
	}
	sort.SliceStable(g.Stops, func(i, j int) bool {
		return g.Stops[i].Offset < g.Stops[j].Offset
	})
	return g, nil
}

// parseColor reads a named, rgb() or hex SVG color. None and malformed
// values report false.
func parseColor(v string) (color.Color, bool) {
	v = strings.TrimSpace(v)
	if v == "" || (v[0] == '#' && len(v) != 4 && len(v) != 7) {
		return nil, false
	}
	c, err := oksvg.ParseSVGColor(v)
	return c, err == nil && c != nil
}

// ApplyOpacity returns c with its alpha scaled by opacity, which is clamped
// to [0, 1].
func ApplyOpacity(c color.Color, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * math.Max(0, math.Min(1, opacity))))
	return n
}

// RasterStops converts the stops to rasterx form, offsets as fractions.
func (g *Gradient) RasterStops() []rasterx.GradStop {
	stops := make([]rasterx.GradStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = rasterx.GradStop{StopColor: s.Color, Offset: s.fraction(), Opacity: s.Opacity}
	}
	return stops
}

func (s GradientStop) fraction() float64 {
	return float64(s.Offset) / 100
}

func (s GradientStop) apply(opacity float64) color.Color {
	return ApplyOpacity(s.Color, s.Opacity*opacity)
}

// tColor takes the paramaterized value along the gradient's stops and
// returns a color depending on the spread method.
func (g *Gradient) tColor(t, opacity float64) color.Color {
	d := len(g.Stops)
	if t >= 1.0 && g.Spread == PadSpread {
		return g.Stops[d-1].apply(opacity)
	}
	if t <= 0.0 && g.Spread == PadSpread {
		return g.Stops[0].apply(opacity)
	}
	modRange := 1.0
	if g.Spread == ReflectSpread {
		modRange = 2.0
	}
	mod := math.Mod(t, modRange)
	if mod < 0 {
		mod += modRange
	}

	place := 0 // first stop past mod
	for place != d && mod > g.Stops[place].fraction() {
		place++
	}
	switch g.Spread {
	case RepeatSpread:
		s1, s2 := d-1, 0
		if place != 0 && place != d {
			s1, s2 = place-1, place
		}
		return g.blendStops(mod, opacity, g.Stops[s1], g.Stops[s2], false)
	case ReflectSpread:
		switch place {
		case 0:
			return g.Stops[0].apply(opacity)
		case d:
			// Past the last stop the stops are walked again in reverse.
			for place != d*2 && mod-1 > (1-g.Stops[d*2-place-1].fraction()) {
				place++
			}
			switch place {
			case d:
				return g.Stops[d-1].apply(opacity)
			case d * 2:
				return g.Stops[0].apply(opacity)
			default:
				return g.blendStops(mod-1, opacity, g.Stops[d*2-place], g.Stops[d*2-place-1], true)
			}
		default:
			return g.blendStops(mod, opacity, g.Stops[place-1], g.Stops[place], false)
		}
	default:
		switch place {
		case 0:
			return g.Stops[0].apply(opacity)
		case d:
			return g.Stops[d-1].apply(opacity)
		default:
			return g.blendStops(mod, opacity, g.Stops[place-1], g.Stops[place], false)
		}
	}
}

func (g *Gradient) blendStops(t, opacity float64, s1, s2 GradientStop, flip bool) color.Color {
	s1off, s2off := s1.fraction(), s2.fraction()
	if s1off > s2off && !flip { // repeat spread wrapping around
		s1off -= 1
		if t > 1 {
			t -= 1
		}
	}
	if s2off == s1off {
		return s2.apply(opacity)
	}
	if flip {
		t = 1 - t
	}
	tp := (t - s1off) / (s2off - s1off)
	r1, g1, b1, _ := s1.Color.RGBA()
	r2, g2, b2, _ := s2.Color.RGBA()

	return ApplyOpacity(color.RGBA{
		uint8((float64(r1)*(1-tp) + float64(r2)*tp) / 256),
		uint8((float64(g1)*(1-tp) + float64(g2)*tp) / 256),
		uint8((float64(b1)*(1-tp) + float64(b2)*tp) / 256),
		0xFF}, (s1.Opacity*(1-tp)+s2.Opacity*tp)*opacity)
}

// ColorFunction returns the paint of the gradient over bounds: a
// rasterx.ColorFunc, or a plain color when there are fewer than two stops.
func (g *Gradient) ColorFunction(bounds Box, opacity float64) interface{} {
	switch len(g.Stops) {
	case 0:
		return ApplyOpacity(color.RGBA{255, 0, 255, 255}, opacity)
	case 1:
		return g.Stops[0].apply(opacity)
	}

	bx, by := float64(bounds.X), float64(bounds.Y)
	w, h := float64(bounds.Width), float64(bounds.Height)
	if w == 0 || h == 0 {
		return g.last().apply(opacity)
	}
	gradT, ok := Identity.Translate(bx, by).Scale(w, h).
		Mult(g.Transform).Scale(1/w, 1/h).Translate(-bx, -by).Invert()
	if !ok {
		return g.last().apply(opacity)
	}

	if g.Type == RadialGradient {
		cx, cy := bx+w*g.CenterX, by+h*g.CenterY
		rx, ry := w*g.Radius, h*g.Radius
		if rx == 0 || ry == 0 {
			return g.last().apply(opacity)
		}
		if g.CenterX == g.FocalX && g.CenterY == g.FocalY {
			return rasterx.ColorFunc(func(xi, yi int) color.Color {
				x, y := gradT.Transform(float64(xi)+0.5, float64(yi)+0.5)
				dx, dy := x-cx, y-cy
				return g.tColor(math.Sqrt(dx*dx/(rx*rx)+dy*dy/(ry*ry)), opacity)
			})
		}
		fx, fy := (bx+w*g.FocalX)/rx, (by+h*g.FocalY)/ry
		cx, cy = cx/rx, cy/ry
		if dfx, dfy := fx-cx, fy-cy; dfx*dfx+dfy*dfy > 1 {
			// A focus outside the circle is moved onto it.
			nfx, nfy, intersects := rasterx.RayCircleIntersectionF(fx, fy, cx, cy, cx, cy, 1.0-focusEpsilon)
			if !intersects {
				return g.last().apply(opacity)
			}
			fx, fy = nfx, nfy
		}
		return rasterx.ColorFunc(func(xi, yi int) color.Color {
			x, y := gradT.Transform(float64(xi)+0.5, float64(yi)+0.5)
			ex, ey := x/rx, y/ry
			t1x, t1y, intersects := rasterx.RayCircleIntersectionF(ex, ey, fx, fy, cx, cy, 1.0)
			if !intersects {
				return g.last().apply(opacity)
			}
			tdx, tdy := t1x-fx, t1y-fy
			dx, dy := ex-fx, ey-fy
			if tdx*tdx+tdy*tdy < focusEpsilon {
				return g.last().apply(opacity)
			}
			return g.tColor(math.Sqrt(dx*dx+dy*dy)/math.Sqrt(tdx*tdx+tdy*tdy), opacity)
		})
	}

	p1x, p1y := bx+w*g.Vector[0], by+h*g.Vector[1]
	p2x, p2y := bx+w*g.Vector[2], by+h*g.Vector[3]
	dx, dy := p2x-p1x, p2y-p1y
	dd := dx*dx + dy*dy
	return rasterx.ColorFunc(func(xi, yi int) color.Color {
		x, y := gradT.Transform(float64(xi)+0.5, float64(yi)+0.5)
		return g.tColor((dx*(x-p1x)+dy*(y-p1y))/dd, opacity)
	})
}

func (g *Gradient) last() GradientStop {
	return g.Stops[len(g.Stops)-1]
}
