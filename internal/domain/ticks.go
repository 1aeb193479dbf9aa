package domain

import (
	"iter"
	"math"
)

// Placement says on which side of the axis a tick label is drawn.
type Placement int

const (
	PlacementBelow Placement = iota
	PlacementAbove
)

func (p Placement) String() string {
	if p == PlacementAbove {
		return "above"
	}
	return "below"
}

// Tick is one track indicator position.
type Tick struct {
	Index int
	Value float64
	// Label is nil for positions that do not fall on a whole unit.
	Label     *float64
	Percent   float64
	Placement Placement
}

// Ticks yields one tick per unit from min up to max, plus a closing tick at max
// when the span is not a whole number of units. The sequence is empty when
// max <= min. It depends on the bounds and range type only.
func Ticks(min, max float64, rt RangeType) iter.Seq[Tick] {
	return func(yield func(Tick) bool) {
		span := max - min
		if !(span > 0) || math.IsInf(span, 0) {
			return
		}

		// Counted in float64: spans past the int range must not wrap.
		steps := math.Floor(Round2(span))
		i := 0
		for u := 0.0; u <= steps; u++ {
			if !yield(newTick(i, Round2(min+u), min, span, rt)) {
				return
			}
			i++
		}
		if Round2(min+steps) < Round2(max) {
			yield(newTick(i, Round2(max), min, span, rt))
		}
	}
}

// CollectTicks materializes Ticks.
func CollectTicks(min, max float64, rt RangeType) []Tick {
	var out []Tick
	for t := range Ticks(min, max, rt) {
		out = append(out, t)
	}
	return out
}

func newTick(i int, v, min, span float64, rt RangeType) Tick {
	t := Tick{
		Index:     i,
		Value:     v,
		Percent:   Round2((v - min) / span * 100),
		Placement: placementFor(rt, i),
	}
	if v == math.Trunc(v) {
		label := v
		t.Label = &label
	}
	return t
}

func placementFor(rt RangeType, i int) Placement {
	even := i%2 == 0
	switch {
	case rt == RangeUp,
		rt == RangeAlternateEven && even,
		rt == RangeAlternateOdd && !even:
		return PlacementAbove
	default:
		return PlacementBelow
	}
}
