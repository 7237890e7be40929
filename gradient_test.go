// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"errors"
	"image/color"
	"testing"

	"github.com/srwiley/rasterx"
)

var (
	black = color.NRGBA{0, 0, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
	red   = color.NRGBA{0xff, 0, 0, 0xff}
)

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func blackToWhite(spread SpreadMethod) *Gradient {
	g, err := ParseGradient(GradientConfig{
		Stops:  []StopConfig{{Offset: "0", Color: "black"}, {Offset: "100%", Color: "white"}},
		Spread: spread,
	})
	if err != nil {
		panic(err)
	}
	return g
}

func TestParseGradientVector(t *testing.T) {
	tests := []struct {
		angle float64
		want  [4]float64
	}{
		{0, [4]float64{0, 0, 1, 0}},
		{90, [4]float64{0, 0, 0, 1}},
		{180, [4]float64{1, 0, 0, 0}},
		{270, [4]float64{0, 1, 0, 0}},
		{45, [4]float64{0, 0, 1, 1}},
		{-45, [4]float64{0, 1, 1, 0}},
	}
	for _, test := range tests {
		g, err := ParseGradient(GradientConfig{Type: "linear", Angle: test.angle})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, test.want, g.Vector, approx)
		diff(t, Identity, g.Transform)
	}
}

func TestParseGradientStops(t *testing.T) {
	g, err := ParseGradient(GradientConfig{
		ID: "g1",
		Stops: []StopConfig{
			{Offset: "50%", Color: "#ff0000"},
			{Offset: "0", Color: "blue", Opacity: 0.5},
			{Offset: "bad", Color: "red"},
			{Offset: "100%", Color: "nonsense"},
			{Offset: "50", Color: ""},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []GradientStop{
		{0, blue, 0.5},
		{50, red, 1},
		{50, white, 1},
		{100, white, 1},
	}
	diff(t, want, g.Stops)
	diff(t, []rasterx.GradStop{
		{StopColor: blue, Offset: 0, Opacity: 0.5},
		{StopColor: red, Offset: 0.5, Opacity: 1},
		{StopColor: white, Offset: 0.5, Opacity: 1},
		{StopColor: white, Offset: 1, Opacity: 1},
	}, g.RasterStops())
}

func TestParseGradientStopOpacity(t *testing.T) {
	g, err := ParseGradient(GradientConfig{Stops: []StopConfig{
		{Offset: "0", Color: "red"},
		{Offset: "50", Color: "red", HasOpacity: true},
		{Offset: "100", Color: "red", Opacity: 0.25, HasOpacity: true},
	}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []GradientStop{{0, red, 1}, {50, red, 0}, {100, red, 0.25}}, g.Stops)
}

func TestParseGradientErrors(t *testing.T) {
	_, err := ParseGradient(GradientConfig{Stops: []StopConfig{{Offset: "1.5"}}}, StrictErrorMode)
	if !errors.Is(err, ErrBadStop) {
		t.Errorf("got %v, want ErrBadStop", err)
	}
	if _, err := ParseGradient(GradientConfig{Stops: []StopConfig{{Offset: "1.5"}}}, WarnErrorMode); err != nil {
		t.Errorf("warn mode failed: %v", err)
	}
	_, err = ParseGradient(GradientConfig{Type: "conic"})
	if !errors.Is(err, ErrGradientType) {
		t.Errorf("got %v, want ErrGradientType", err)
	}
	g, err := ParseGradient(GradientConfig{Type: " Radial ", CenterX: 0.5, CenterY: 0.4, Radius: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if g.Type != RadialGradient || g.CenterY != 0.4 || g.Radius != 0.3 {
		t.Errorf("got %+v", g)
	}
}

func TestApplyOpacity(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 200}
	diff(t, color.NRGBA{10, 20, 30, 100}, ApplyOpacity(c, 0.5))
	diff(t, c, ApplyOpacity(c, 2))
	diff(t, color.NRGBA{10, 20, 30, 0}, ApplyOpacity(c, -1))
	diff(t, color.NRGBA{0xff, 0, 0xff, 0x80}, ApplyOpacity(color.RGBA{0xff, 0, 0xff, 0xff}, 0.5))
}

func TestGradientTColor(t *testing.T) {
	tests := []struct {
		name   string
		spread SpreadMethod
		t      float64
		want   uint8
	}{
		{"middle", PadSpread, 0.5, 127},
		{"padHigh", PadSpread, 1.5, 0xff},
		{"padLow", PadSpread, -1, 0},
		{"repeat", RepeatSpread, 1.25, 63},
		{"repeatNegative", RepeatSpread, -0.75, 63},
		{"reflect", ReflectSpread, 1.25, 191},
		{"reflectStart", ReflectSpread, 0.25, 63},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := nrgba(blackToWhite(test.spread).tColor(test.t, 1))
			diff(t, color.NRGBA{test.want, test.want, test.want, 0xff}, got)
		})
	}
}

func TestColorFunctionPlain(t *testing.T) {
	g := &Gradient{Type: LinearGradient, Transform: Identity}
	diff(t, color.NRGBA{0xff, 0, 0xff, 0xff}, g.ColorFunction(Box{0, 0, 10, 10}, 1))
	g.Stops = []GradientStop{{0, red, 1}}
	diff(t, red, g.ColorFunction(Box{0, 0, 10, 10}, 1))
	g.Stops = append(g.Stops, GradientStop{100, blue, 1})
	diff(t, blue, g.ColorFunction(Box{0, 0, 0, 10}, 1))
	g.Transform = Matrix2D{}
	diff(t, blue, g.ColorFunction(Box{0, 0, 10, 10}, 1))
}

func TestColorFunctionLinear(t *testing.T) {
	f, ok := blackToWhite(PadSpread).ColorFunction(Box{0, 0, 100, 10}, 1).(rasterx.ColorFunc)
	if !ok {
		t.Fatal("not a color function")
	}
	if c := nrgba(f(0, 5)); c.R > 5 {
		t.Errorf("left edge %v", c)
	}
	if c := nrgba(f(99, 5)); c.R < 250 {
		t.Errorf("right edge %v", c)
	}
	if a, b := nrgba(f(30, 0)), nrgba(f(30, 9)); a != b {
		t.Errorf("horizontal gradient varies vertically: %v %v", a, b)
	}
	half := nrgba(blackToWhite(PadSpread).ColorFunction(Box{0, 0, 100, 10}, 0.5).(rasterx.ColorFunc)(50, 5))
	if half.A < 0x7f || half.A > 0x80 {
		t.Errorf("opacity not applied: %v", half)
	}
}

func TestColorFunctionRadial(t *testing.T) {
	g, err := ParseGradient(GradientConfig{
		Type: RadialGradient, CenterX: 0.5, CenterY: 0.5, FocalX: 0.5, FocalY: 0.5, Radius: 0.5,
		Stops: []StopConfig{{Offset: "0", Color: "black"}, {Offset: "100", Color: "white"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	f, ok := g.ColorFunction(Box{0, 0, 100, 100}, 1).(rasterx.ColorFunc)
	if !ok {
		t.Fatal("not a color function")
	}
	if c := nrgba(f(49, 49)); c.R > 5 {
		t.Errorf("center %v", c)
	}
	diff(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, nrgba(f(0, 0)))

	g.FocalX, g.FocalY = 0.3, 0.5
	f, ok = g.ColorFunction(Box{0, 0, 100, 100}, 1).(rasterx.ColorFunc)
	if !ok {
		t.Fatal("not a color function")
	}
	if c := nrgba(f(30, 50)); c.R > 10 {
		t.Errorf("focus %v", c)
	}
	if a, b := nrgba(f(40, 50)), nrgba(f(60, 50)); a.R >= b.R {
		t.Errorf("focus not off center: %v %v", a, b)
	}
}

func TestParseColor(t *testing.T) {
	for _, v := range []string{"", "none", "#12", "#12345", "bogus"} {
		if _, ok := parseColor(v); ok {
			t.Errorf("%q accepted", v)
		}
	}
	c, ok := parseColor(" #f00 ")
	if !ok {
		t.Fatal("short hex rejected")
	}
	diff(t, red, nrgba(c))
	if c, ok = parseColor("rgb(0,0,255)"); !ok {
		t.Fatal("rgb rejected")
	}
	diff(t, blue, nrgba(c))
	if c, ok = parseColor("Black"); !ok {
		t.Fatal("name rejected")
	}
	diff(t, black, nrgba(c))
}
