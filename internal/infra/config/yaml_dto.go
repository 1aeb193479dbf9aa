package config

// YAMLConfig mirrors multirange.yaml. The same struct decodes TOML files.
type YAMLConfig struct {
	Slider YAMLSlider `yaml:"slider" toml:"slider"`
}

type YAMLSlider struct {
	Min       *float64       `yaml:"min" toml:"min"`
	Max       *float64       `yaml:"max" toml:"max"`
	Step      *float64       `yaml:"step" toml:"step"`
	RangeType string         `yaml:"range_type" toml:"range_type"`
	Intervals []YAMLInterval `yaml:"intervals" toml:"intervals"`
}

type YAMLInterval struct {
	ID    string   `yaml:"id" toml:"id"`
	Start *float64 `yaml:"start" toml:"start"`
	End   *float64 `yaml:"end" toml:"end"`
}

type YAMLEditScript struct {
	Name   string       `yaml:"name" toml:"name"`
	Edits  []YAMLEdit   `yaml:"edits" toml:"edits"`
	Expect []YAMLExpect `yaml:"expect" toml:"expect"`
}

type YAMLEdit struct {
	Op   string `yaml:"op" toml:"op"`
	ID   string `yaml:"id" toml:"id"`
	Edge string `yaml:"edge" toml:"edge"`

	Value *float64 `yaml:"value" toml:"value"`
	Start *float64 `yaml:"start" toml:"start"`
	End   *float64 `yaml:"end" toml:"end"`

	Intervals     []YAMLInterval `yaml:"intervals" toml:"intervals"`
	ResetBaseline bool           `yaml:"reset_baseline" toml:"reset_baseline"`
}

// YAMLExpect is one JSONPath check on the final snapshot:
//
//	expect:
//	  - { path: "$.intervals[*]", count: 3 }
//	  - { path: "$.intervals[0].end", eq: "8" }
type YAMLExpect struct {
	Path   string   `yaml:"path" toml:"path"`
	Exists bool     `yaml:"exists" toml:"exists"`
	Eq     *string  `yaml:"eq" toml:"eq"`
	Gt     *float64 `yaml:"gt" toml:"gt"`
	Lt     *float64 `yaml:"lt" toml:"lt"`
	Count  *int     `yaml:"count" toml:"count"`
}
