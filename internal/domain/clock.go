package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatClock renders an hour value as HH:MM, rounding to the nearest minute.
// Hours past 24 are kept as is ("36:30"), since an axis may span several days.
func FormatClock(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	total := int64(math.Round(hours * 60))
	return fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
}

// ParseClock reads "H", "HH:MM" or "H:MM" into hours. A leading "-" negates
// the whole value, matching FormatClock.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		h, err := ParseClock(rest)
		if err != nil || strings.HasPrefix(strings.TrimSpace(rest), "-") {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		return -h, nil
	}

	hs, ms, hasMinutes := strings.Cut(s, ":")

	h, err := parseDigits(hs)
	if err != nil {
		return 0, fmt.Errorf("invalid hours %q", hs)
	}
	if !hasMinutes {
		return float64(h), nil
	}

	if len(ms) != 2 {
		return 0, fmt.Errorf("minutes must have two digits, got %q", ms)
	}
	m, err := parseDigits(ms)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q", ms)
	}
	if m >= 60 {
		return 0, fmt.Errorf("minutes must be below 60, got %d", m)
	}
	return float64(h) + float64(m)/60, nil
}

func parseDigits(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("not a number")
	}
	return strconv.Atoi(s)
}
