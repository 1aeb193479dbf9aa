package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/multirange/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "configfinder") {
				return "No multirange.yaml found (run multirange init)"
			}
			if strings.HasPrefix(oe.Op, "config.") {
				return "Config file not found"
			}
			return "Not found"

		case domain.KindInvalidRange:
			if strings.Contains(err.Error(), "already in use") {
				return "Interval id already in use"
			}
			return "No room for a new interval"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid config at " + base + " line " + line
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			if looksLikeDecodeProblem(err.Error()) {
				return "Invalid config at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeDecodeProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid config line " + line
		}
		return "Invalid config"
	}

	return "Unexpected error (see logs)"
}

func looksLikeDecodeProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") ||
		strings.Contains(ls, "toml:") ||
		strings.Contains(ls, "did not find expected") ||
		strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// extractField pulls "slider.intervals[1].end" out of a mapper error.
func extractField(s string) string {
	const marker = "field "
	i := strings.Index(s, marker)
	if i < 0 {
		return ""
	}
	rest := s[i+len(marker):]
	if j := strings.IndexByte(rest, ':'); j > 0 {
		return rest[:j]
	}
	return ""
}
