// Copyright 2017 The okdraw Authors. All rights reserved.

package okdraw

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/math/fixed"

	cfp "github.com/raykov/css-font-parser"
)

// DefaultLabelSize is the font size of axis labels that give none.
const DefaultLabelSize = 10.0

type (
	// AxisLabelStyle is how tick labels are drawn. Font is a CSS font
	// shorthand such as "italic bold 12px Helvetica"; a positive Size
	// overrides the size it gives. Only the Go fonts are available, so the
	// family is ignored.
	AxisLabelStyle struct {
		Font string
		Size float64
		Fill string
	}

	goFont struct {
		ttf  []byte
		once sync.Once
		font *truetype.Font
		err  error
	}
)

var (
	fontSizeRegexp = regexp.MustCompile(`[^0-9\.]+`)

	goFonts = map[string]*goFont{
		"regular":         {ttf: goregular.TTF},
		"bold":            {ttf: gobold.TTF},
		"italic":          {ttf: goitalic.TTF},
		"bolditalic":      {ttf: gobolditalic.TTF},
		"smallcaps":       {ttf: gosmallcaps.TTF},
		"smallcapsitalic": {ttf: gosmallcapsitalic.TTF},
	}
)

func (f *goFont) parse() (*truetype.Font, error) {
	f.once.Do(func() {
		f.font, f.err = truetype.Parse(f.ttf)
	})
	return f.font, f.err
}

// fontKey picks the Go font closest to a CSS style, weight and variant.
func fontKey(style, weight, variant string) string {
	italic := style == "italic" || style == "oblique"
	bold := weight == "bold" || weight == "bolder"
	if n, err := strconv.Atoi(weight); err == nil && n >= 600 {
		bold = true
	}
	switch {
	case variant == "small-caps" && italic:
		return "smallcapsitalic"
	case variant == "small-caps":
		return "smallcaps"
	case italic && bold:
		return "bolditalic"
	case italic:
		return "italic"
	case bold:
		return "bold"
	}
	return "regular"
}

// LabelFace returns the font face for the style.
func LabelFace(style AxisLabelStyle) (font.Face, error) {
	size := DefaultLabelSize
	var fontStyle, fontWeight, fontVariant string
	if s := strings.TrimSpace(style.Font); s != "" {
		eFont := cfp.Parse(s)
		if v, err := strconv.ParseFloat(fontSizeRegexp.ReplaceAllString(eFont.Size, ""), 64); err == nil && v > 0 {
			size = v
		}
		fontStyle, fontWeight, fontVariant = eFont.Style, eFont.Weight, eFont.Variant
	}
	if style.Size > 0 {
		size = style.Size
	}
	key := fontKey(fontStyle, fontWeight, fontVariant)
	ff, err := goFonts[key].parse()
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", key, err)
	}
	return truetype.NewFace(ff, &truetype.Options{Size: size}), nil
}

// MeasureLabel returns the advance width of text in pixels.
func MeasureLabel(face font.Face, text string) float64 {
	return float64(font.MeasureString(face, text)) / 64
}

// labelHeight is the line height of face in pixels.
func labelHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}

// DrawLabel draws text with its baseline at y. Anchor "middle" centers it
// on x and "end" ends it there; anything else starts it at x. The fill of
// style is used as color, black when it does not parse.
func DrawLabel(img draw.Image, face font.Face, style AxisLabelStyle, x, y float64, anchor, text string) {
	var col color.Color = color.Black
	if c, ok := parseColor(style.Fill); ok {
		col = c
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	switch anchor {
	case "middle":
		d.Dot.X -= d.MeasureString(text) / 2
	case "end":
		d.Dot.X -= d.MeasureString(text)
	}
	d.DrawString(text)
}
