package domain

// Expectation is a JSONPath check run against the snapshot left by an edit
// script. Every set field adds one check.
type Expectation struct {
	Path   string
	Exists bool
	Eq     *string
	Gt     *float64
	Lt     *float64
	Count  *int
}

// ExpectationResult is the output of a single check.
type ExpectationResult struct {
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message" yaml:"message"`
}
