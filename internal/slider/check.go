package slider

import (
	"fmt"

	"github.com/aalvaropc/multirange/internal/domain"
)

// Problem is one invariant violation found by Check.
type Problem struct {
	Index int
	ID    string
	Msg   string
}

func (p Problem) String() string {
	return fmt.Sprintf("intervals[%d] (%s): %s", p.Index, p.ID, p.Msg)
}

// Check reports every ordering, inversion and bounds violation in set.
// A store keeps these invariants on its own; Check exists for data that
// entered through ReplaceAll or a hand-written config.
func Check(set []domain.Interval, b domain.Bounds) []Problem {
	var out []Problem
	seen := make(map[string]int, len(set))

	for i, iv := range set {
		if j, ok := seen[iv.ID]; ok {
			out = append(out, Problem{Index: i, ID: iv.ID, Msg: fmt.Sprintf("id repeats intervals[%d]", j)})
		} else {
			seen[iv.ID] = i
		}
		if !(iv.Start < iv.End) {
			out = append(out, Problem{Index: i, ID: iv.ID, Msg: fmt.Sprintf("start %v is not below end %v", iv.Start, iv.End)})
		}
		if !b.Contains(iv.Start) || !b.Contains(iv.End) {
			out = append(out, Problem{Index: i, ID: iv.ID, Msg: fmt.Sprintf("[%v, %v] leaves the axis [%v, %v]", iv.Start, iv.End, b.Min, b.Max)})
		}
		if i > 0 && set[i-1].End > iv.Start {
			out = append(out, Problem{Index: i, ID: iv.ID, Msg: fmt.Sprintf("overlaps intervals[%d] (end %v > start %v)", i-1, set[i-1].End, iv.Start)})
		}
	}
	return out
}
