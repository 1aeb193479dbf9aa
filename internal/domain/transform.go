package domain

import "math"

// roundScale fixes transforms to two decimal places so repeated edits do not
// accumulate floating point drift.
const roundScale = 100

// Round2 rounds v half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// Transformer maps between the transformed (user-facing) domain and the base
// domain used for interval arithmetic: base = transformed / step.
//
// A Transformer is a value type; the zero value is not usable, build one with
// NewTransformer from a validated step.
type Transformer struct {
	step float64
}

func NewTransformer(step float64) Transformer {
	return Transformer{step: step}
}

func (t Transformer) Step() float64 { return t.step }

func (t Transformer) ToBase(x float64) float64 {
	return Round2(x / t.step)
}

func (t Transformer) ToTransformed(x float64) float64 {
	return Round2(x * t.step)
}

// TransformInterval converts a base interval to transformed units, keeping ID.
func (t Transformer) TransformInterval(iv Interval) Interval {
	return Interval{ID: iv.ID, Start: t.ToTransformed(iv.Start), End: t.ToTransformed(iv.End)}
}

// BaseInterval converts a transformed interval to base units, keeping ID.
func (t Transformer) BaseInterval(iv Interval) Interval {
	return Interval{ID: iv.ID, Start: t.ToBase(iv.Start), End: t.ToBase(iv.End)}
}

func (t Transformer) TransformAll(in []Interval) []Interval {
	out := make([]Interval, len(in))
	for i, iv := range in {
		out[i] = t.TransformInterval(iv)
	}
	return out
}

func (t Transformer) TransformBounds(b Bounds) Bounds {
	return Bounds{Min: t.ToTransformed(b.Min), Max: t.ToTransformed(b.Max)}
}
