package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/usecase"
)

// sampleInterval feeds the --template dry run.
var sampleInterval = domain.Interval{ID: "sample", Start: 1, End: 2}

func printSnapshot(w io.Writer, snap domain.Snapshot, format string) error {
	switch format {
	case "json":
		return writeJSON(w, snap)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	case "pretty", "":
		printPrettySnapshot(w, snap)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

func printPrettySnapshot(w io.Writer, snap domain.Snapshot) {
	fmt.Fprintf(w, "Axis:       %v - %v (step %v)\n", snap.Min, snap.Max, snap.Step)
	fmt.Fprintf(w, "Range type: %s\n", snap.RangeType)
	fmt.Fprintf(w, "View:       %s\n", snap.View)
	fmt.Fprintln(w)

	if len(snap.Intervals) == 0 {
		fmt.Fprintln(w, "(no intervals)")
		return
	}
	for _, iv := range snap.Intervals {
		fmt.Fprintf(w, "- %s  %v-%v  (%s-%s)\n",
			iv.ID, iv.Start, iv.End, domain.FormatClock(iv.Start), domain.FormatClock(iv.End))
	}
}

type tickRow struct {
	Index     int      `json:"index"`
	Value     float64  `json:"value"`
	Label     *float64 `json:"label"`
	Percent   float64  `json:"percent"`
	Placement string   `json:"placement"`
}

func printTicks(w io.Writer, ticks iter.Seq[domain.Tick], format string) error {
	switch format {
	case "json":
		rows := []tickRow{}
		for t := range ticks {
			rows = append(rows, tickRow{t.Index, t.Value, t.Label, t.Percent, t.Placement.String()})
		}
		return writeJSON(w, rows)
	case "pretty", "":
		for t := range ticks {
			label := "-"
			if t.Label != nil {
				label = fmt.Sprint(*t.Label)
			}
			fmt.Fprintf(w, "%3d  %-6v %-4s %6.2f%%  %s\n", t.Index, t.Value, label, t.Percent, t.Placement)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printApply(w io.Writer, res usecase.ApplyResult, lines []string, format string) error {
	switch format {
	case "json":
		payload := map[string]any{
			"result": res,
			"lines":  lines,
		}
		return writeJSON(w, payload)
	case "pretty", "":
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
		fmt.Fprintln(w)

		applied := 0
		for _, e := range res.Edits {
			if e.Applied {
				applied++
				continue
			}
			msg := "no change"
			if e.Error != "" {
				msg = e.Error
			}
			fmt.Fprintf(w, "skipped edits[%d] %s %s: %s\n", e.Index, e.Op, e.ID, msg)
		}
		fmt.Fprintf(w, "Script %s: %d/%d edits applied, %d change(s)\n\n", res.Script, applied, len(res.Edits), res.Changes)
		printPrettySnapshot(w, res.Final)

		if len(res.Expect) > 0 {
			fmt.Fprintln(w)
			for _, e := range res.Expect {
				mark := "✓"
				if !e.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "%s %s: %s\n", mark, e.Name, e.Message)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
