package tui

import (
	"strings"
	"testing"

	"github.com/aalvaropc/multirange/internal/domain"
)

func TestTrack_ColumnAndValueAt(t *testing.T) {
	tk := newTrack(domain.Bounds{Min: 0, Max: 96}, 49)

	for _, c := range []int{0, 1, 24, 48} {
		if got := tk.column(tk.valueAt(c)); got != c {
			t.Fatalf("column(valueAt(%d)) = %d", c, got)
		}
	}
	if tk.valueAt(-5) != 0 || tk.valueAt(500) != 96 {
		t.Fatalf("expected valueAt to clamp to the axis")
	}
	if tk.column(-10) != 0 || tk.column(1000) != 48 {
		t.Fatalf("expected column to clamp to the track")
	}
}

func TestTrack_MinimumWidth(t *testing.T) {
	if newTrack(domain.Bounds{Min: 0, Max: 10}, 3).width != minTrackWidth {
		t.Fatalf("expected width raised to %d", minTrackWidth)
	}
}

func TestTrack_NearestHandleTies(t *testing.T) {
	tk := newTrack(domain.Bounds{Min: 0, Max: 48}, 49)
	set := []domain.Interval{{ID: "a", Start: 0, End: 10}, {ID: "b", Start: 10, End: 20}}

	i, e, ok := tk.nearestHandle(set, 9)
	if !ok || i != 0 || e != domain.EdgeEnd {
		t.Fatalf("left of a shared boundary: got %d %s", i, e)
	}
	i, e, _ = tk.nearestHandle(set, 11)
	if i != 1 || e != domain.EdgeStart {
		t.Fatalf("right of a shared boundary: got %d %s", i, e)
	}

	if _, _, ok := tk.nearestHandle(nil, 3); ok {
		t.Fatalf("expected no handle on an empty set")
	}
}

func TestTrack_RenderBar(t *testing.T) {
	tk := newTrack(domain.Bounds{Min: 0, Max: 19}, 20)
	bar := tk.renderBar(DefaultTheme(), []domain.Interval{{ID: "a", Start: 2, End: 5}}, 0, domain.EdgeStart)

	if !strings.Contains(bar, "▐██▌") {
		t.Fatalf("expected handles around the fill, got %q", bar)
	}
	if strings.Count(bar, "─") != 16 {
		t.Fatalf("expected 16 rail cells, got %q", bar)
	}
}

func TestTrack_RenderTicksPlacement(t *testing.T) {
	tk := newTrack(domain.Bounds{Min: 0, Max: 40}, 41)
	tr := domain.NewTransformer(1)

	above, marks, below := tk.renderTicks(DefaultTheme(), tr, domain.CollectTicks(0, 4, domain.RangeUp))
	if !strings.Contains(above, "0") || !strings.Contains(above, "4") || strings.TrimSpace(below) != "" {
		t.Fatalf("range type up puts every label above, got above=%q below=%q", above, below)
	}
	if strings.Count(marks, "╵") != 5 {
		t.Fatalf("expected 5 tick marks, got %q", marks)
	}

	above, _, below = tk.renderTicks(DefaultTheme(), tr, domain.CollectTicks(0, 4, domain.RangeDown))
	if strings.TrimSpace(above) != "" || !strings.Contains(below, "2") {
		t.Fatalf("range type down puts every label below, got above=%q below=%q", above, below)
	}
}
