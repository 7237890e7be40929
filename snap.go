// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import "math"

// TickRange is the result of snapping a numeric axis range.
type TickRange struct {
	From, To float64
	Step     float64
	Steps    int
	// Power is the decimal magnitude the step was chosen at: the step lies
	// in [10^(Power-1), 10^Power].
	Power int
}

// niceSteps are the step candidates in percent of the step's magnitude
// together with their weights. Lower weighted distance wins.
var niceSteps = [...]struct{ value, weight float64 }{
	{0, 15}, {10, 1}, {20, 4}, {25, 2}, {50, 9}, {100, 15},
}

// SnapEnds computes tick boundaries for the range [from, to] using at most
// roughly maxSteps steps. With pretty set, the step is snapped to a round
// value and the ends are pushed outward to whole steps; a range that
// straddles zero is stepped out from zero in both directions. Without it,
// only from is floored to the step's magnitude and Steps is maxSteps.
// Ranges that cannot be stepped (empty, reversed, non-finite) are returned
// as they are with a zero step.
func SnapEnds(from, to float64, maxSteps int, pretty bool) TickRange {
	if maxSteps < 1 || !(to > from) || math.IsInf(to-from, 0) {
		return TickRange{From: from, To: to}
	}
	step := (to - from) / float64(maxSteps)
	level := int(math.Floor(math.Log10(step))) + 1
	m := math.Pow10(level)
	modulo := math.Round(math.Mod(step, m) * math.Pow10(2-level))
	floor := math.Floor(from/m) * m
	if from == floor && floor > 0 {
		floor = math.Floor((from-m/10)/m) * m
	}
	if !pretty {
		return TickRange{From: floor, To: to, Step: step, Steps: maxSteps, Power: level}
	}

	var topValue float64
	topWeight := 1e9
	for _, n := range niceSteps {
		weight := 1e6
		if n.value-modulo >= 0 {
			weight = (n.value - modulo) / n.weight
		}
		if weight < topWeight {
			topValue, topWeight = n.value, weight
		}
	}
	step = math.Floor(step*math.Pow10(-level))*math.Pow10(level) + topValue*math.Pow10(level-2)

	var cur float64
	steps := 0
	if from < 0 && to >= 0 {
		for cur > from {
			steps++
			cur = -float64(steps) * step
		}
		from = round10(cur)
		up := 0
		cur = 0
		for cur < to {
			up++
			cur = float64(up) * step
		}
		steps += up
	} else {
		from = floor
		cur = floor
		for cur < to {
			steps++
			cur = floor + float64(steps)*step
		}
	}
	if r := round10(cur); r >= to {
		cur = r
	}
	return TickRange{From: from, To: cur, Step: step, Steps: steps, Power: level}
}

// Ticks lists the tick values of the range, From first.
func (r TickRange) Ticks() []float64 {
	if r.Step <= 0 || r.Steps <= 0 {
		return []float64{r.From}
	}
	ticks := make([]float64, r.Steps+1)
	for i := range ticks {
		ticks[i] = round10(r.From + float64(i)*r.Step)
	}
	return ticks
}

func round10(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}
