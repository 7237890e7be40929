// Copyright 2017 The okdraw Authors. All rights reserved.

// svgd.go reads the drawable elements of an SVG fragment into Paths, the
// way chart themes and sprite definitions are stored on disk.

package okdraw

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

type (
	// ViewBox is the user space rectangle of a document.
	ViewBox struct{ X, Y, W, H float64 }

	// Shape is one drawable element. Path is in the element's own
	// coordinates; Transform maps it to the document's user space.
	Shape struct {
		ID, Tag      string
		Path         Path
		Fill, Stroke string
		StrokeWidth  float64
		Transform    Matrix2D
	}

	Document struct {
		ViewBox      ViewBox
		Titles       []string // Title elements collect here
		Descriptions []string // Description elements collect here
		Shapes       []Shape
		Gradients    map[string]*Gradient
	}

	shapeStyle struct {
		fill, stroke string
		strokeWidth  float64
		m            Matrix2D
	}

	docCursor struct {
		ErrorMode  ErrorMode
		doc        *Document
		styleStack []shapeStyle
		grad       *GradientConfig
		stop       *StopConfig

		inTitleText, inDescText bool
	}
)

var defaultShapeStyle = shapeStyle{fill: "black", stroke: "none", strokeWidth: DefaultStrokeWidth, m: Identity}

// ReadShapesFile reads the document in the named file.
func ReadShapesFile(name string, errMode ...ErrorMode) (*Document, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadShapes(fin, errMode...)
}

// ReadShapes decodes the drawable elements of an SVG document. Only a subset
// of SVG is supported: basic shapes, paths, groups with fill, stroke and
// transform, and gradients. If errMode is provided, the first value
// determines if unsupported elements are ignored, logged, or make the read
// fail. Ignoring is the default.
func ReadShapes(r io.Reader, errMode ...ErrorMode) (*Document, error) {
	doc := &Document{Gradients: make(map[string]*Gradient)}
	c := &docCursor{doc: doc, styleStack: []shapeStyle{defaultShapeStyle}}
	if len(errMode) > 0 {
		c.ErrorMode = errMode[0]
	}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return doc, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			if err := c.pushStyle(se); err != nil {
				return doc, fmt.Errorf("%s: %w", se.Name.Local, err)
			}
			if err := c.readElement(se); err != nil {
				return doc, fmt.Errorf("%s: %w", se.Name.Local, err)
			}
		case xml.EndElement:
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
			switch se.Name.Local {
			case "title":
				c.inTitleText = false
			case "desc":
				c.inDescText = false
			case "stop":
				if c.grad != nil && c.stop != nil {
					c.grad.Stops = append(c.grad.Stops, *c.stop)
				}
				c.stop = nil
			case "linearGradient", "radialGradient":
				if err := c.closeGradient(); err != nil {
					return doc, err
				}
			}
		case xml.CharData:
			if c.inTitleText {
				doc.Titles[len(doc.Titles)-1] += string(se)
			}
			if c.inDescText {
				doc.Descriptions[len(doc.Descriptions)-1] += string(se)
			}
		}
	}
	return doc, nil
}

func (c *docCursor) style() shapeStyle {
	return c.styleStack[len(c.styleStack)-1]
}

// pushStyle reads the fill, stroke and transform of the element, directly or
// from its style attribute, and pushes the result on the style stack.
func (c *docCursor) pushStyle(se xml.StartElement) error {
	cur := c.style()
	var pairs [][2]string
	for _, attr := range se.Attr {
		switch k := strings.ToLower(attr.Name.Local); k {
		case "style":
			for _, decl := range strings.Split(attr.Value, ";") {
				if kv := strings.SplitN(decl, ":", 2); len(kv) == 2 {
					pairs = append(pairs, [2]string{strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])})
				}
			}
		case "fill", "stroke", "stroke-width", "transform":
			pairs = append(pairs, [2]string{k, strings.TrimSpace(attr.Value)})
		}
	}
	for _, kv := range pairs {
		switch kv[0] {
		case "fill":
			cur.fill = kv[1]
		case "stroke":
			cur.stroke = kv[1]
		case "stroke-width":
			w, err := parseLength(kv[1])
			if err != nil {
				return err
			}
			cur.strokeWidth = w
		case "transform":
			m, err := ParseTransform(cur.m, kv[1])
			if err != nil {
				return err
			}
			cur.m = m
		}
	}
	c.styleStack = append(c.styleStack, cur)
	return nil
}

func (c *docCursor) readElement(se xml.StartElement) (err error) {
	var path Path
	switch se.Name.Local {
	case "svg":
		err = c.readViewBox(se)
	case "g", "defs":
	case "title":
		c.inTitleText = true
		c.doc.Titles = append(c.doc.Titles, "")
	case "desc":
		c.inDescText = true
		c.doc.Descriptions = append(c.doc.Descriptions, "")
	case "rect":
		var v map[string]float64
		if v, err = readFloats(se, "x", "y", "width", "height", "rx", "ry"); err != nil {
			return err
		}
		if v["width"] == 0 || v["height"] == 0 {
			break
		}
		path = RectPath(v["x"], v["y"], v["width"], v["height"], math.Max(v["rx"], v["ry"]))
	case "circle", "ellipse":
		var v map[string]float64
		if v, err = readFloats(se, "cx", "cy", "r", "rx", "ry"); err != nil {
			return err
		}
		rx, ry := v["rx"], v["ry"]
		if r, ok := v["r"]; ok {
			rx, ry = r, r
		}
		if rx == 0 || ry == 0 { // not drawn, but not an error
			break
		}
		path = EllipsePath(v["cx"], v["cy"], rx, ry)
	case "line":
		var v map[string]float64
		if v, err = readFloats(se, "x1", "y1", "x2", "y2"); err != nil {
			return err
		}
		path = PolygonPath([]Point{{v["x1"], v["y1"]}, {v["x2"], v["y2"]}}, false)
	case "polygon", "polyline":
		for _, attr := range se.Attr {
			if attr.Name.Local != "points" {
				continue
			}
			var nums []float64
			if nums, err = readNumbers(attr.Value); err != nil {
				return err
			}
			if len(nums)%2 != 0 {
				return fmt.Errorf("odd number of coordinates: %w", ErrParamMismatch)
			}
			pts := make([]Point, len(nums)/2)
			for i := range pts {
				pts[i] = Point{nums[2*i], nums[2*i+1]}
			}
			path = PolygonPath(pts, se.Name.Local == "polygon")
		}
	case "path":
		for _, attr := range se.Attr {
			if attr.Name.Local == "d" {
				if path, err = Parse(RawPath(attr.Value), c.ErrorMode); err != nil {
					return err
				}
			}
		}
	case "linearGradient", "radialGradient":
		err = c.openGradient(se)
	case "stop":
		if c.grad == nil {
			break
		}
		c.stop = &StopConfig{}
		for _, attr := range se.Attr {
			if err = ParseStopAttr(c.stop, attr); err != nil {
				return err
			}
		}
	default:
		errStr := "Cannot process svg element " + se.Name.Local
		if c.ErrorMode == StrictErrorMode {
			return fmt.Errorf("%s: %w", errStr, ErrCommandUnknown)
		} else if c.ErrorMode == WarnErrorMode {
			log.Println(errStr)
		}
	}
	if err != nil || len(path) == 0 {
		return err
	}
	st := c.style()
	sh := Shape{Tag: se.Name.Local, Path: path, Fill: st.fill, Stroke: st.stroke,
		StrokeWidth: st.strokeWidth, Transform: st.m}
	for _, attr := range se.Attr {
		if attr.Name.Local == "id" {
			sh.ID = attr.Value
		}
	}
	c.doc.Shapes = append(c.doc.Shapes, sh)
	return nil
}

func (c *docCursor) readViewBox(se xml.StartElement) error {
	vb := &c.doc.ViewBox
	*vb = ViewBox{}
	var width, height float64
	for _, attr := range se.Attr {
		var err error
		switch attr.Name.Local {
		case "viewBox":
			var nums []float64
			nums, err = readNumbers(attr.Value)
			if err == nil && len(nums) != 4 {
				err = ErrParamMismatch
			}
			if err == nil {
				*vb = ViewBox{nums[0], nums[1], nums[2], nums[3]}
			}
		case "width":
			width, err = parseLength(attr.Value)
		case "height":
			height, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if vb.W == 0 {
		vb.W = width
	}
	if vb.H == 0 {
		vb.H = height
	}
	return nil
}

// openGradient starts collecting a gradient. Linear end points are reduced
// to an angle; radial geometry is kept as fractions of the filled box.
func (c *docCursor) openGradient(se xml.StartElement) error {
	g := &GradientConfig{Type: LinearGradient, Transform: Identity}
	pts := map[string]float64{"x1": 0, "y1": 0, "x2": 1, "y2": 0, "cx": 0.5, "cy": 0.5, "r": 0.5}
	if se.Name.Local == "radialGradient" {
		g.Type = RadialGradient
	}
	for _, attr := range se.Attr {
		var err error
		switch k := attr.Name.Local; k {
		case "id":
			g.ID = attr.Value
		case "x1", "y1", "x2", "y2", "cx", "cy", "r", "fx", "fy":
			pts[k], err = readFraction(attr.Value)
		case "gradientTransform":
			g.Transform, err = ParseTransform(Identity, attr.Value)
		case "spreadMethod":
			switch strings.TrimSpace(attr.Value) {
			case "pad":
				g.Spread = PadSpread
			case "reflect":
				g.Spread = ReflectSpread
			case "repeat":
				g.Spread = RepeatSpread
			}
		}
		if err != nil {
			return err
		}
	}
	if len(g.ID) == 0 {
		switch c.ErrorMode {
		case StrictErrorMode:
			return ErrZeroLengthID
		case WarnErrorMode:
			log.Println("Ignoring " + se.Name.Local + " without id")
		}
	}
	g.Angle = math.Atan2(pts["y2"]-pts["y1"], pts["x2"]-pts["x1"]) * 180 / math.Pi
	g.CenterX, g.CenterY, g.Radius = pts["cx"], pts["cy"], pts["r"]
	g.FocalX, g.FocalY = g.CenterX, g.CenterY
	if fx, ok := pts["fx"]; ok {
		g.FocalX = fx
	}
	if fy, ok := pts["fy"]; ok {
		g.FocalY = fy
	}
	c.grad = g
	return nil
}

func (c *docCursor) closeGradient() error {
	cfg := c.grad
	c.grad = nil
	if cfg == nil || len(cfg.ID) == 0 {
		return nil
	}
	g, err := ParseGradient(*cfg, c.ErrorMode)
	if err != nil {
		return err
	}
	c.doc.Gradients[cfg.ID] = g
	return nil
}

// GradientFor returns the gradient a fill or stroke value such as
// "url(#g1)" refers to, or nil.
func (d *Document) GradientFor(paint string) *Gradient {
	v := strings.TrimSpace(paint)
	if strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")") {
		id := strings.TrimSpace(v[4 : len(v)-1])
		if strings.HasPrefix(id, "#") {
			return d.Gradients[id[1:]]
		}
	}
	return nil
}

// readFloats parses the named attributes of se. Attributes that are absent
// are absent from the map.
func readFloats(se xml.StartElement, names ...string) (map[string]float64, error) {
	v := make(map[string]float64, len(names))
	for _, attr := range se.Attr {
		for _, n := range names {
			if attr.Name.Local != n {
				continue
			}
			f, err := parseLength(attr.Value)
			if err != nil {
				return v, err
			}
			v[n] = f
		}
	}
	return v, nil
}

// parseLength parses a number with an optional px or cm suffix.
func parseLength(v string) (float64, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(strings.TrimSuffix(v, "px"), "cm")
	return strconv.ParseFloat(v, 64)
}

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = strconv.ParseFloat(v, 64)
	f /= d
	if f > 1 {
		f = 1
	} else if f < 0 {
		f = 0
	}
	return
}
