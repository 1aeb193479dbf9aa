package domain

// SliderConfig is the construction input of a slider, loaded from multirange.yaml.
// All values are in transformed (user-facing) units.
type SliderConfig struct {
	Min       float64
	Max       float64
	Step      float64
	RangeType RangeType
	Intervals []IntervalSpec
}

// DefaultStep is used when a config does not set one.
const DefaultStep = 1.0

// DefaultSliderConfig provides sane defaults if multirange.yaml is partially missing.
// The axis defaults to a 24 hour day.
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{
		Min:       0,
		Max:       24,
		Step:      DefaultStep,
		RangeType: RangeDown,
	}
}

// EditOp names one operation of an edit script.
type EditOp string

const (
	EditUpdate  EditOp = "update"
	EditAdd     EditOp = "add"
	EditDelete  EditOp = "delete"
	EditReplace EditOp = "replace"
	EditReset   EditOp = "reset"
)

// Edit is one scripted store mutation. Values are in transformed units.
type Edit struct {
	Op EditOp

	// update / delete / add
	ID string

	// update
	Edge  Edge
	Value float64

	// add (nil means "let the store decide")
	Start *float64
	End   *float64

	// replace
	Intervals     []IntervalSpec
	ResetBaseline bool
}

// EditScript is an ordered list of edits replayed against a store.
type EditScript struct {
	Name   string
	Edits  []Edit
	Expect []Expectation
}

// InitSpec describes where a sample config should be written.
type InitSpec struct {
	Root string
}
