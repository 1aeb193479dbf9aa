package domain

// Snapshot is the exported view of a slider, in transformed units.
// It is what `show` prints and what JSONPath queries run against.
type Snapshot struct {
	Min       float64    `json:"min" yaml:"min"`
	Max       float64    `json:"max" yaml:"max"`
	Step      float64    `json:"step" yaml:"step"`
	RangeType RangeType  `json:"range_type" yaml:"range_type"`
	View      string     `json:"view" yaml:"view"`
	Intervals []Interval `json:"intervals" yaml:"intervals"`
}
