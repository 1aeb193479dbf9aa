package domain

import (
	"math"
	"testing"
)

func TestTransformerConversions(t *testing.T) {
	tr := NewTransformer(0.5)

	if got := tr.ToBase(48); got != 96 {
		t.Fatalf("ToBase(48) = %v, want 96", got)
	}
	if got := tr.ToTransformed(17); got != 8.5 {
		t.Fatalf("ToTransformed(17) = %v, want 8.5", got)
	}

	iv := tr.TransformInterval(Interval{ID: "a", Start: 18, End: 34})
	if iv.ID != "a" || iv.Start != 9 || iv.End != 17 {
		t.Fatalf("unexpected transformed interval %+v", iv)
	}

	back := tr.BaseInterval(iv)
	if back.ID != "a" || back.Start != 18 || back.End != 34 {
		t.Fatalf("unexpected base interval %+v", back)
	}
}

func TestTransformerRoundsToTwoDecimals(t *testing.T) {
	tr := NewTransformer(0.3)

	if got := tr.ToBase(1); got != 3.33 {
		t.Fatalf("ToBase(1) = %v, want 3.33", got)
	}
	if got := tr.ToTransformed(0.1); got != 0.03 {
		t.Fatalf("ToTransformed(0.1) = %v, want 0.03", got)
	}
}

func TestTransformerRoundTrip(t *testing.T) {
	const tolerance = 0.01

	steps := []float64{1, 0.5, 0.25, 0.1, 0.01, 0.3}
	bases := []float64{0, 1, 7, 10, 48, 96, 250, 1000}

	for _, step := range steps {
		tr := NewTransformer(step)
		for _, x := range bases {
			if got := tr.ToBase(tr.ToTransformed(x)); math.Abs(got-x) > tolerance/step {
				t.Errorf("step=%v: ToBase(ToTransformed(%v)) = %v", step, x, got)
			}
		}
	}

	transformed := []float64{0, 0.5, 1, 2.5, 8, 17.5, 24, 48}
	for _, step := range steps {
		tr := NewTransformer(step)
		for _, x := range transformed {
			if got := tr.ToTransformed(tr.ToBase(x)); math.Abs(got-x) > tolerance {
				t.Errorf("step=%v: ToTransformed(ToBase(%v)) = %v", step, x, got)
			}
		}
	}
}

func TestTransformerRoundTripIsStable(t *testing.T) {
	tr := NewTransformer(0.3)

	x := 7.0
	first := tr.ToTransformed(tr.ToBase(x))
	for i := 0; i < 50; i++ {
		x = tr.ToTransformed(tr.ToBase(x))
	}
	if x != first {
		t.Fatalf("repeated round trips drifted: first=%v last=%v", first, x)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.005, 1},
		{1.006, 1.01},
		{-2.346, -2.35},
		{3, 3},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
