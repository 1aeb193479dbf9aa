package domain

import (
	"fmt"
	"strings"
)

// Interval is one user-adjustable sub-range of the axis.
// Values are in base (quantized) units unless stated otherwise.
type Interval struct {
	ID    string  `json:"id" yaml:"id"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Len returns End - Start.
func (iv Interval) Len() float64 { return iv.End - iv.Start }

// Edge names one of the two handles of an interval.
type Edge string

const (
	EdgeStart Edge = "start"
	EdgeEnd   Edge = "end"
)

// Other returns the opposite edge.
func (e Edge) Other() Edge {
	if e == EdgeStart {
		return EdgeEnd
	}
	return EdgeStart
}

// Value reads the edge from iv.
func (e Edge) Value(iv Interval) float64 {
	if e == EdgeStart {
		return iv.Start
	}
	return iv.End
}

// Set returns a copy of iv with the edge replaced by v.
func (e Edge) Set(iv Interval, v float64) Interval {
	if e == EdgeStart {
		iv.Start = v
	} else {
		iv.End = v
	}
	return iv
}

func ParseEdge(s string) (Edge, error) {
	switch Edge(strings.ToLower(strings.TrimSpace(s))) {
	case EdgeStart:
		return EdgeStart, nil
	case EdgeEnd:
		return EdgeEnd, nil
	default:
		return "", fmt.Errorf("unsupported edge %q (expected start|end)", s)
	}
}

// RangeType controls how tick labels are placed around the axis.
// It has no effect on interval arithmetic.
type RangeType string

const (
	RangeDown          RangeType = "down"
	RangeUp            RangeType = "up"
	RangeAlternateEven RangeType = "alternate-even"
	RangeAlternateOdd  RangeType = "alternate-odd"
)

// ParseRangeType accepts the canonical names; empty means RangeDown.
func ParseRangeType(s string) (RangeType, error) {
	up := strings.ToLower(strings.TrimSpace(s))
	switch RangeType(up) {
	case "":
		return RangeDown, nil
	case RangeDown, RangeUp, RangeAlternateEven, RangeAlternateOdd:
		return RangeType(up), nil
	default:
		return "", fmt.Errorf("unsupported range type %q", s)
	}
}

// Bounds is the fixed axis [Min, Max].
type Bounds struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (b Bounds) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

// Clamp forces v into [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// IntervalSpec is a caller-supplied interval in transformed units.
// ID is optional; the store assigns one when empty.
type IntervalSpec struct {
	ID    string
	Start float64
	End   float64
}

// PartialInterval is the input of an add operation, in transformed units.
// Nil fields are computed by the store.
type PartialInterval struct {
	ID    string
	Start *float64
	End   *float64
}

// CloneIntervals returns a copy of in that shares no backing array.
func CloneIntervals(in []Interval) []Interval {
	if in == nil {
		return []Interval{}
	}
	out := make([]Interval, len(in))
	copy(out, in)
	return out
}
