package domain

import "testing"

func TestTicksWholeSpan(t *testing.T) {
	ticks := CollectTicks(0, 4, RangeDown)
	if len(ticks) != 5 {
		t.Fatalf("expected 5 ticks, got %d", len(ticks))
	}

	wantPercent := []float64{0, 25, 50, 75, 100}
	for i, tk := range ticks {
		if tk.Index != i {
			t.Fatalf("tick %d has index %d", i, tk.Index)
		}
		if tk.Label == nil || *tk.Label != float64(i) {
			t.Fatalf("tick %d: expected label %d, got %v", i, i, tk.Label)
		}
		if tk.Percent != wantPercent[i] {
			t.Fatalf("tick %d: expected percent %v, got %v", i, wantPercent[i], tk.Percent)
		}
		if tk.Placement != PlacementBelow {
			t.Fatalf("tick %d: expected below for down range", i)
		}
	}
}

func TestTicksFractionalBounds(t *testing.T) {
	ticks := CollectTicks(0.5, 3.25, RangeDown)

	// 0.5, 1.5, 2.5 then the closing 3.25
	if len(ticks) != 4 {
		t.Fatalf("expected 4 ticks, got %d", len(ticks))
	}
	for _, tk := range ticks {
		if tk.Label != nil {
			t.Fatalf("expected no labels on fractional positions, got %v at %v", *tk.Label, tk.Value)
		}
	}
	last := ticks[len(ticks)-1]
	if last.Value != 3.25 || last.Percent != 100 {
		t.Fatalf("expected closing tick at max, got %+v", last)
	}
}

func TestTicksClosingTickAfterWholeUnits(t *testing.T) {
	ticks := CollectTicks(0, 2.5, RangeDown)
	if len(ticks) != 4 {
		t.Fatalf("expected 4 ticks, got %d", len(ticks))
	}
	if ticks[2].Label == nil || *ticks[2].Label != 2 {
		t.Fatalf("expected label 2 on third tick")
	}
	if ticks[3].Label != nil {
		t.Fatalf("expected closing tick 2.5 to be unlabeled")
	}
}

func TestTicksPlacementByRangeType(t *testing.T) {
	cases := []struct {
		rt   RangeType
		want []Placement
	}{
		{RangeDown, []Placement{PlacementBelow, PlacementBelow, PlacementBelow}},
		{RangeUp, []Placement{PlacementAbove, PlacementAbove, PlacementAbove}},
		{RangeAlternateEven, []Placement{PlacementAbove, PlacementBelow, PlacementAbove}},
		{RangeAlternateOdd, []Placement{PlacementBelow, PlacementAbove, PlacementBelow}},
	}

	for _, c := range cases {
		ticks := CollectTicks(0, 2, c.rt)
		if len(ticks) != len(c.want) {
			t.Fatalf("%s: expected %d ticks, got %d", c.rt, len(c.want), len(ticks))
		}
		for i, tk := range ticks {
			if tk.Placement != c.want[i] {
				t.Errorf("%s: tick %d placement = %s, want %s", c.rt, i, tk.Placement, c.want[i])
			}
		}
	}
}

func TestTicksEmptyForDegenerateBounds(t *testing.T) {
	if n := len(CollectTicks(5, 5, RangeDown)); n != 0 {
		t.Fatalf("expected no ticks for empty span, got %d", n)
	}
	if n := len(CollectTicks(5, 1, RangeDown)); n != 0 {
		t.Fatalf("expected no ticks for inverted span, got %d", n)
	}
}

func TestTicksStopsEarly(t *testing.T) {
	n := 0
	for range Ticks(0, 1000, RangeDown) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected iteration to stop after 3, got %d", n)
	}
}

func TestTicksHugeSpanStartsAtMin(t *testing.T) {
	var got []Tick
	for tk := range Ticks(0, 1e19, RangeDown) {
		got = append(got, tk)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected two ticks, got %v", got)
	}
	if got[0].Index != 0 || got[0].Value != 0 || got[0].Percent != 0 {
		t.Fatalf("expected the first tick at min, got %+v", got[0])
	}
	if got[1].Index != 1 || got[1].Value != 1 {
		t.Fatalf("expected the second tick one unit later, got %+v", got[1])
	}
}
