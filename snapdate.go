// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"math"
	"time"
)

// Unit is a calendar granularity used to step a date axis.
type Unit string

const (
	Millisecond Unit = "ms"
	Second      Unit = "s"
	Minute      Unit = "mi"
	Hour        Unit = "h"
	Day         Unit = "d"
	Month       Unit = "mo"
	Year        Unit = "y"
)

// Duration returns the nominal length of one unit. Months and years have no
// fixed length and return 0.
func (u Unit) Duration() time.Duration {
	switch u {
	case Millisecond:
		return time.Millisecond
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	}
	return 0
}

// DateRange is the result of snapping a date axis range.
type DateRange struct {
	From, To   time.Time
	Unit       Unit
	Multiplier float64
	// Origin is the grid origin: From floored to the unit grid. It differs
	// from From only when the ends are locked.
	Origin time.Time
	// Step is the nominal length of one step, 0 for months and years.
	Step  time.Duration
	Steps int
	// Boundaries lists every tick from From to To for month and year
	// units. It is nil for the fixed length units.
	Boundaries []time.Time
}

// dateScales are the candidate multipliers per unit, finest first.
var dateScales = [...]struct {
	unit  Unit
	mults []float64
}{
	{Millisecond, []float64{1, 2, 3, 5, 10, 20, 30, 50, 100, 200, 300, 500}},
	{Second, []float64{1, 2, 3, 5, 10, 15, 30}},
	{Minute, []float64{1, 2, 3, 5, 10, 20, 30}},
	{Hour, []float64{1, 2, 3, 4, 6, 12}},
	{Day, []float64{1, 2, 3, 7, 14}},
	{Month, []float64{1, 2, 3, 4, 6}},
}

// monthFractionDays are the days of month a fractional month step lands on,
// keyed by the number of steps per month.
var monthFractionDays = map[int][]int{
	2: {1, 15},
	3: {1, 10, 20},
	4: {1, 8, 15, 22},
}

// SnapEndsDate picks the finest unit and multiplier that cover [from, to] in
// at most maxSteps steps and snaps the range to it. Spans too long for any
// month multiplier are stepped in whole years, with the year step taken from
// SnapEnds.
func SnapEndsDate(from, to time.Time, maxSteps int, lockEnds bool) DateRange {
	if maxSteps < 1 || !to.After(from) {
		return DateRange{From: from, To: to}
	}
	for _, sc := range dateScales {
		for _, m := range sc.mults {
			if !addUnits(from, sc.unit, m*float64(maxSteps)).Before(to) {
				return SnapEndsDateStepped(from, to, sc.unit, m, lockEnds)
			}
		}
	}
	years := SnapEnds(float64(from.Year()), float64(to.Year()+1), maxSteps, true)
	step := math.Max(1, math.Round(years.Step))
	return SnapEndsDateStepped(from, to, Year, step, lockEnds)
}

// SnapEndsDateStepped snaps [from, to] to the grid of mult units. From is
// floored to the grid and To is the first grid point not before to. With
// lockEnds, From and To are from and to themselves and only the ticks between
// them come from the grid. A month multiplier of 1/2, 1/3 or 1/4 steps
// through fixed days of each month.
func SnapEndsDateStepped(from, to time.Time, unit Unit, mult float64, lockEnds bool) DateRange {
	r := DateRange{From: from, To: to, Unit: unit, Multiplier: mult}
	if !(mult > 0) || !to.After(from) || math.IsInf(mult, 0) {
		return r
	}
	origin, next := dateGrid(from, unit, mult)
	r.Origin = origin
	r.Step = time.Duration(mult * float64(unit.Duration()))
	if unit != Month && unit != Year {
		return r.countSteps(from, to, lockEnds)
	}

	grid := []time.Time{origin}
	for cur := origin; cur.Before(to); {
		n := next(cur)
		if !n.After(cur) {
			// step shorter than the clock resolution
			return DateRange{From: from, To: to, Unit: unit, Multiplier: mult}
		}
		cur = n
		grid = append(grid, cur)
	}
	if lockEnds {
		locked := []time.Time{from}
		for _, t := range grid {
			if t.After(from) && t.Before(to) {
				locked = append(locked, t)
			}
		}
		grid = append(locked, to)
	}
	r.From, r.To = grid[0], grid[len(grid)-1]
	r.Steps = len(grid) - 1
	if unit == Month || unit == Year {
		r.Boundaries = grid
	}
	return r
}

// countSteps fills in r for units of fixed length, counting the grid steps
// from r.Origin up to to instead of visiting them. Whole days step through
// the calendar.
func (r DateRange) countSteps(from, to time.Time, lockEnds bool) DateRange {
	var n, first int64
	var end time.Time
	if m := r.Multiplier; r.Unit == Day && m == math.Trunc(m) {
		days := int64(m)
		span := civilDay(to) - civilDay(r.Origin)
		y, mo, d := to.Date()
		if to.After(time.Date(y, mo, d, 0, 0, 0, 0, to.Location())) {
			n = span/days + 1
		} else {
			n = (span + days - 1) / days
		}
		end = r.Origin.AddDate(0, 0, int(n*days))
		first = 1
	} else {
		if r.Step <= 0 {
			// step shorter than the clock resolution
			return DateRange{From: from, To: to, Unit: r.Unit, Multiplier: r.Multiplier}
		}
		n = int64(to.Sub(r.Origin) / r.Step)
		if r.Origin.Add(time.Duration(n) * r.Step).Before(to) {
			n++
		}
		end = r.Origin.Add(time.Duration(n) * r.Step)
		first = int64(from.Sub(r.Origin)/r.Step) + 1
	}
	if lockEnds {
		r.From, r.To, r.Steps = from, to, 1
		if n > first {
			r.Steps += int(n - first)
		}
		return r
	}
	r.From, r.To, r.Steps = r.Origin, end, int(n)
	return r
}

// civilDay numbers the calendar day of t.
func civilDay(t time.Time) int64 {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// dateGrid floors t to the grid of mult units and returns the floored time
// with the function that advances one grid step.
func dateGrid(t time.Time, unit Unit, mult float64) (time.Time, func(time.Time) time.Time) {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()
	m := int(mult)
	if m < 1 {
		m = 1
	}
	if unit == Month && mult < 1 {
		if days, ok := monthFractionDays[int(math.Round(1/mult))]; ok {
			return monthFraction(t, days)
		}
	}
	if unit == Month || unit == Year {
		mult = float64(m)
	}
	step := func(c time.Time) time.Time { return addUnits(c, unit, mult) }
	switch unit {
	case Millisecond:
		ms := t.Nanosecond() / 1e6
		return time.Date(y, mo, d, h, mi, s, (ms-ms%m)*1e6, loc), step
	case Second:
		return time.Date(y, mo, d, h, mi, s-s%m, 0, loc), step
	case Minute:
		return time.Date(y, mo, d, h, mi-mi%m, 0, 0, loc), step
	case Hour:
		return time.Date(y, mo, d, h-h%m, 0, 0, 0, loc), step
	case Day:
		return time.Date(y, mo, (d-1)/m*m+1, 0, 0, 0, 0, loc), step
	case Month:
		m0 := int(mo) - 1
		return time.Date(y, time.Month(m0-m0%m+1), 1, 0, 0, 0, 0, loc), step
	case Year:
		return time.Date(y-y%m, time.January, 1, 0, 0, 0, 0, loc), step
	}
	return t, step
}

// monthFraction is the grid of fixed days of month.
func monthFraction(t time.Time, days []int) (time.Time, func(time.Time) time.Time) {
	y, mo, d := t.Date()
	loc := t.Location()
	start := days[0]
	for _, day := range days {
		if day <= d {
			start = day
		}
	}
	next := func(c time.Time) time.Time {
		cy, cm, cd := c.Date()
		for _, day := range days {
			if day > cd {
				return time.Date(cy, cm, day, 0, 0, 0, 0, loc)
			}
		}
		return time.Date(cy, cm+1, days[0], 0, 0, 0, 0, loc)
	}
	return time.Date(y, mo, start, 0, 0, 0, 0, loc), next
}

// addUnits adds n units to t. Days, months and years follow the calendar;
// the other units are fixed durations.
func addUnits(t time.Time, unit Unit, n float64) time.Time {
	switch unit {
	case Day:
		if n == math.Trunc(n) {
			return t.AddDate(0, 0, int(n))
		}
	case Month:
		return addMonths(t, int(math.Round(n)))
	case Year:
		return addMonths(t, 12*int(math.Round(n)))
	}
	return t.Add(time.Duration(n * float64(unit.Duration())))
}

// addMonths adds n months to t, clamping the day to the length of the
// resulting month: Jan 31 plus one month is the last day of February.
func addMonths(t time.Time, n int) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()
	if last := time.Date(y, mo+time.Month(n)+1, 0, 0, 0, 0, 0, loc).Day(); d > last {
		d = last
	}
	return time.Date(y, mo+time.Month(n), d, h, mi, s, t.Nanosecond(), loc)
}
