package usecase

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/slider"
)

func TestApplyEdits_ReplaysScript(t *testing.T) {
	script := domain.EditScript{
		Name: "demo",
		Edits: []domain.Edit{
			{Op: domain.EditUpdate, ID: "day", Edge: domain.EdgeEnd, Value: 18.5},
			{Op: domain.EditUpdate, ID: "day", Edge: domain.EdgeEnd, Value: 30},
			{Op: domain.EditDelete, ID: "early"},
			{Op: domain.EditDelete, ID: "early"},
			{Op: domain.EditAdd, ID: "night"},
		},
	}

	var kinds []string
	uc := NewApplyEdits(fakeSliderLoader{cfg: dayConfig()}, fakeEditLoader{script: script})
	res, err := uc.Execute(context.Background(), "cfg.yaml", "edits.yaml", func(c slider.Change) {
		kinds = append(kinds, c.Kind.String()+":"+c.Transformed().ID)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the second update snaps to the start of "late"
	wantFinal := []domain.Interval{
		{ID: "day", Start: 9, End: 23},
		{ID: "late", Start: 23, End: 32},
		{ID: "night", Start: 33, End: 33.25},
	}
	if diff := cmp.Diff(wantFinal, res.Final.Intervals); diff != "" {
		t.Fatalf("final set mismatch (-want +got):\n%s", diff)
	}

	applied := make([]bool, 0, len(res.Edits))
	for _, e := range res.Edits {
		applied = append(applied, e.Applied)
	}
	if diff := cmp.Diff([]bool{true, true, true, false, true}, applied); diff != "" {
		t.Fatalf("applied mismatch (-want +got):\n%s", diff)
	}

	wantKinds := []string{"updated:day", "updated:day", "deleted:early", "created:night"}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("change mismatch (-want +got):\n%s", diff)
	}
	if res.Changes != 4 || res.Script != "demo" {
		t.Fatalf("unexpected summary %+v", res)
	}
}

func TestApplyEdits_AddErrorIsReportedNotFatal(t *testing.T) {
	script := domain.EditScript{Edits: []domain.Edit{
		{Op: domain.EditAdd, Start: ptr(40), End: ptr(39)},
		{Op: domain.EditReset},
	}}

	res, err := NewApplyEdits(fakeSliderLoader{cfg: dayConfig()}, fakeEditLoader{script: script}).
		Execute(context.Background(), "cfg.yaml", "edits.yaml", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Edits[0].Applied || res.Edits[0].Error == "" {
		t.Fatalf("expected add to fail with a message, got %+v", res.Edits[0])
	}
	if !res.Edits[1].Applied {
		t.Fatalf("expected replay to continue after a failed add")
	}
	if len(res.Final.Intervals) != 3 {
		t.Fatalf("expected untouched set, got %v", res.Final.Intervals)
	}
}

func TestReplay_ReplaceAndReset(t *testing.T) {
	s, err := slider.New(dayConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	script := domain.EditScript{Edits: []domain.Edit{
		{Op: domain.EditReplace, Intervals: []domain.IntervalSpec{{ID: "only", Start: 1, End: 2}}},
		{Op: domain.EditReset},
		{Op: domain.EditReplace, ResetBaseline: true, Intervals: []domain.IntervalSpec{{ID: "only", Start: 1, End: 2}}},
		{Op: domain.EditUpdate, ID: "only", Edge: domain.EdgeStart, Value: 1.5},
		{Op: domain.EditReset},
	}}

	if _, err := Replay(context.Background(), s, script); err != nil {
		t.Fatalf("replay: %v", err)
	}
	want := []domain.Interval{{ID: "only", Start: 1, End: 2}}
	if diff := cmp.Diff(want, s.All(slider.ViewWorking)); diff != "" {
		t.Fatalf("working mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, s.All(slider.ViewInitial)); diff != "" {
		t.Fatalf("baseline mismatch (-want +got):\n%s", diff)
	}
}

func TestReplay_StopsOnCancel(t *testing.T) {
	s, err := slider.New(dayConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Replay(ctx, s, domain.EditScript{Edits: []domain.Edit{{Op: domain.EditDelete, ID: "day"}}})
	if err == nil || len(out) != 0 {
		t.Fatalf("expected cancellation before any edit, got %v %v", out, err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected untouched store")
	}
}

func TestApplyEdits_EvaluatesExpectations(t *testing.T) {
	eq := "day"
	count := 2
	script := domain.EditScript{
		Edits: []domain.Edit{{Op: domain.EditDelete, ID: "early"}},
		Expect: []domain.Expectation{
			{Path: "$.intervals[0].id", Eq: &eq},
			{Path: "$.intervals[*]", Count: &count},
			{Path: "$.intervals[2].id", Exists: true},
		},
	}

	res, err := NewApplyEdits(fakeSliderLoader{cfg: dayConfig()}, fakeEditLoader{script: script}).
		Execute(context.Background(), "cfg.yaml", "edits.yaml", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Expect) != 3 {
		t.Fatalf("expected 3 results, got %+v", res.Expect)
	}
	if res.Failed() != 1 || res.Expect[2].Passed {
		t.Fatalf("expected only the third check to fail, got %+v", res.Expect)
	}
}
