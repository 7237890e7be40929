// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/image/font"
)

// DefaultMaxSteps is the tick count AxisTicks starts from.
const DefaultMaxSteps = 10

// AxisOptions configure tick layout. The zero value is usable.
type AxisOptions struct {
	MaxSteps int
	Label    AxisLabelStyle
	// Padding is the least gap in pixels between neighbouring labels.
	Padding float64
	// Format renders a numeric tick. Defaults to the shortest decimal form.
	Format func(float64) string
	// Layout renders a date tick with time.Format. Defaults to a layout
	// matching the unit of the range.
	Layout string
	// Vertical axes stack labels, so a label takes its line height instead
	// of its width.
	Vertical bool
}

func (o AxisOptions) maxSteps() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return DefaultMaxSteps
}

func (o AxisOptions) format(v float64) string {
	if o.Format != nil {
		return o.Format(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AxisTicks snaps [from, to] for an axis length pixels long, reducing the
// step count from opts.MaxSteps until the labels no longer overlap. One
// step is always accepted.
func AxisTicks(from, to, length float64, opts AxisOptions) (TickRange, []string, error) {
	face, err := LabelFace(opts.Label)
	if err != nil {
		return TickRange{}, nil, err
	}
	defer face.Close()
	var (
		r      TickRange
		labels []string
	)
	for n := opts.maxSteps(); n >= 1; n-- {
		r = SnapEnds(from, to, n, true)
		ticks := r.Ticks()
		labels = make([]string, len(ticks))
		for i, v := range ticks {
			labels[i] = opts.format(v)
		}
		if labelsFit(face, labels, length, opts) {
			break
		}
	}
	return r, labels, nil
}

// DateAxisTicks is AxisTicks for a date range.
func DateAxisTicks(from, to time.Time, length float64, opts AxisOptions) (DateRange, []string, error) {
	face, err := LabelFace(opts.Label)
	if err != nil {
		return DateRange{}, nil, err
	}
	defer face.Close()
	var (
		r      DateRange
		labels []string
	)
	for n := opts.maxSteps(); n >= 1; n-- {
		r = SnapEndsDate(from, to, n, false)
		layout := opts.Layout
		if layout == "" {
			layout = unitLayout(r.Unit)
		}
		ticks := r.Ticks()
		labels = make([]string, len(ticks))
		for i, t := range ticks {
			labels[i] = t.Format(layout)
		}
		if labelsFit(face, labels, length, opts) {
			break
		}
	}
	return r, labels, nil
}

// Ticks lists the tick times of the range, From first.
func (r DateRange) Ticks() []time.Time {
	if r.Boundaries != nil {
		return r.Boundaries
	}
	if r.Step <= 0 || r.Steps <= 0 {
		return []time.Time{r.From}
	}
	ticks := make([]time.Time, 0, r.Steps+1)
	ticks = append(ticks, r.From)
	for t := addUnits(r.Origin, r.Unit, r.Multiplier); t.Before(r.To); t = addUnits(t, r.Unit, r.Multiplier) {
		if t.After(r.From) {
			ticks = append(ticks, t)
		}
	}
	return append(ticks, r.To)
}

func unitLayout(u Unit) string {
	switch u {
	case Millisecond:
		return "15:04:05.000"
	case Second, Minute:
		return "15:04:05"
	case Hour:
		return "Jan 2 15:04"
	case Day:
		return "Jan 2"
	case Month:
		return "Jan 2006"
	}
	return "2006"
}

// labelsFit reports whether the labels, spread evenly over length, leave at
// least opts.Padding between each other.
func labelsFit(face font.Face, labels []string, length float64, opts AxisOptions) bool {
	if len(labels) < 2 {
		return true
	}
	var size float64
	if opts.Vertical {
		size = labelHeight(face)
	} else {
		for _, l := range labels {
			size = math.Max(size, MeasureLabel(face, l))
		}
	}
	return size+opts.Padding <= length/float64(len(labels)-1)
}
