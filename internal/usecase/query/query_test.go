package query

import (
	"testing"

	"github.com/aalvaropc/multirange/internal/domain"
)

func snapshot() domain.Snapshot {
	return domain.Snapshot{
		Min: 0, Max: 48, Step: 0.5, RangeType: domain.RangeDown, View: "working",
		Intervals: []domain.Interval{
			{ID: "early", Start: 0, End: 8},
			{ID: "day", Start: 9, End: 17},
		},
	}
}

func TestEval_Scalar(t *testing.T) {
	v, err := Eval(snapshot(), "$.intervals[1].end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Format(v)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if s != "17" {
		t.Fatalf("expected 17, got %q", s)
	}
}

func TestEval_Wildcard(t *testing.T) {
	v, err := Eval(snapshot(), "$.intervals[*].id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Format(v)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if s != `["early","day"]` {
		t.Fatalf("unexpected result %s", s)
	}
}

func TestEval_Errors(t *testing.T) {
	if _, err := Eval(snapshot(), "  "); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config for empty expr, got %v", err)
	}
	if _, err := Eval(snapshot(), "$.missing"); err == nil {
		t.Fatalf("expected error for missing key")
	}
	if _, err := Eval(snapshot(), "$.intervals[?(@.start > 100)]"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found for empty filter, got %v", err)
	}
}
