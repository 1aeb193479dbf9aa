package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/multirange/internal/domain"
)

// DefaultChangeLine is the line printed for each change notification.
const DefaultChangeLine = "id: {{id}}, start: {{start}}, end: {{end}}"

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(fmt.Sprintf("unknown variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// IntervalVars exposes an interval (transformed units) to a template.
// Available keys: kind, id, start, end, len, start_clock, end_clock.
func IntervalVars(kind string, iv domain.Interval) map[string]string {
	return map[string]string{
		"kind":        kind,
		"id":          iv.ID,
		"start":       formatNumber(iv.Start),
		"end":         formatNumber(iv.End),
		"len":         formatNumber(domain.Round2(iv.Len())),
		"start_clock": domain.FormatClock(iv.Start),
		"end_clock":   domain.FormatClock(iv.End),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderError(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
