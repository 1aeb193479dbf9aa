package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/multirange/internal/domain"
)

const (
	minTrackWidth     = 20
	defaultTrackWidth = 72
)

// track maps the base axis onto a row of terminal columns.
type track struct {
	bounds domain.Bounds
	width  int
}

func newTrack(b domain.Bounds, width int) track {
	if width < minTrackWidth {
		width = minTrackWidth
	}
	return track{bounds: b, width: width}
}

func (t track) span() float64 { return t.bounds.Max - t.bounds.Min }

// column returns the column showing base value v.
func (t track) column(v float64) int {
	c := int(math.Round((v - t.bounds.Min) / t.span() * float64(t.width-1)))
	return max(0, min(t.width-1, c))
}

// valueAt returns the base value under column c, rounded to a whole base unit.
func (t track) valueAt(c int) float64 {
	c = max(0, min(t.width-1, c))
	raw := t.bounds.Min + float64(c)/float64(t.width-1)*t.span()
	return t.bounds.Clamp(math.Round(raw))
}

// nearestHandle finds the handle closest to column c. Ties go to the edge
// facing c, so clicking left of a shared boundary grabs the left interval's end.
func (t track) nearestHandle(set []domain.Interval, c int) (int, domain.Edge, bool) {
	best, bestEdge, bestDist := -1, domain.EdgeStart, math.MaxInt
	for i, iv := range set {
		for _, e := range []domain.Edge{domain.EdgeStart, domain.EdgeEnd} {
			hc := t.column(e.Value(iv))
			d := hc - c
			if d < 0 {
				d = -d
			}
			if d < bestDist || (d == bestDist && facing(e, hc, c)) {
				best, bestEdge, bestDist = i, e, d
			}
		}
	}
	return best, bestEdge, best >= 0
}

func facing(e domain.Edge, handleCol, c int) bool {
	if e == domain.EdgeEnd {
		return c <= handleCol
	}
	return c >= handleCol
}

// renderBar draws the rail, the interval fills and the handles.
func (t track) renderBar(th Theme, set []domain.Interval, selected int, edge domain.Edge) string {
	cells := make([]rune, t.width)
	styles := make([]lipgloss.Style, t.width)
	for c := range cells {
		cells[c] = '─'
		styles[c] = th.Rail
	}

	for i, iv := range set {
		fill := th.Fill
		if i == selected {
			fill = th.Selected
		}
		a, b := t.column(iv.Start), t.column(iv.End)
		for c := a; c <= b; c++ {
			cells[c] = '█'
			styles[c] = fill
		}
	}

	for i, iv := range set {
		for _, e := range []domain.Edge{domain.EdgeStart, domain.EdgeEnd} {
			c := t.column(e.Value(iv))
			cells[c] = handleRune(e)
			styles[c] = th.Handle
			if i == selected && e == edge {
				styles[c] = th.Active
			}
		}
	}

	return renderRuns(cells, styles)
}

func handleRune(e domain.Edge) rune {
	if e == domain.EdgeStart {
		return '▐'
	}
	return '▌'
}

// renderTicks lays the track indicator out as three rows: labels placed
// above, tick marks, labels placed below. Labels that would collide with the
// previous one on the same row are dropped.
func (t track) renderTicks(th Theme, tr domain.Transformer, ticks []domain.Tick) (above, marks, below string) {
	width := t.width + 4
	up := []rune(strings.Repeat(" ", width))
	mk := []rune(strings.Repeat(" ", width))
	down := []rune(strings.Repeat(" ", width))
	nextFree := map[domain.Placement]int{}

	for _, tk := range ticks {
		c := t.column(tr.ToBase(tk.Value))
		mk[c] = '╵'
		if tk.Label == nil {
			continue
		}

		label := []rune(formatValue(*tk.Label))
		row := down
		if tk.Placement == domain.PlacementAbove {
			row = up
		}
		at := max(0, c-(len(label)-1)/2)
		if at < nextFree[tk.Placement] || at+len(label) > width {
			continue
		}
		copy(row[at:], label)
		nextFree[tk.Placement] = at + len(label) + 1
	}

	trim := func(r []rune) string { return th.Tick.Render(strings.TrimRight(string(r), " ")) }
	return trim(up), trim(mk), trim(down)
}

// renderRuns groups equally styled neighbouring cells into one Render call.
func renderRuns(cells []rune, styles []lipgloss.Style) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && sameStyle(styles[i], styles[start]) {
			continue
		}
		b.WriteString(styles[start].Render(string(cells[start:i])))
		start = i
	}
	return b.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() && a.GetBold() == b.GetBold() && a.GetFaint() == b.GetFaint()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
