package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/multirange/internal/domain"
)

// MapSlider applies the parsed values on top of domain.DefaultSliderConfig.
// Step bounds are left to the store, which owns that rule.
func MapSlider(path string, yc YAMLConfig) (domain.SliderConfig, error) {
	cfg := domain.DefaultSliderConfig()
	ys := yc.Slider

	if ys.Min != nil {
		cfg.Min = *ys.Min
	}
	if ys.Max != nil {
		cfg.Max = *ys.Max
	}
	if ys.Step != nil {
		cfg.Step = *ys.Step
	}

	rt, err := domain.ParseRangeType(ys.RangeType)
	if err != nil {
		return domain.SliderConfig{}, invalidField(path, "slider.range_type", err.Error())
	}
	cfg.RangeType = rt

	specs, err := mapIntervals(path, "slider.intervals", ys.Intervals)
	if err != nil {
		return domain.SliderConfig{}, err
	}
	cfg.Intervals = specs

	return cfg, nil
}

func MapEdits(path string, ys YAMLEditScript) (domain.EditScript, error) {
	script := domain.EditScript{
		Name:  strings.TrimSpace(ys.Name),
		Edits: make([]domain.Edit, 0, len(ys.Edits)),
	}
	if script.Name == "" {
		script.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for i, e := range ys.Edits {
		field := fmt.Sprintf("edits[%d]", i)

		op, err := parseOp(e.Op)
		if err != nil {
			return domain.EditScript{}, invalidField(path, field+".op", err.Error())
		}

		ed := domain.Edit{
			Op:            op,
			ID:            strings.TrimSpace(e.ID),
			Start:         e.Start,
			End:           e.End,
			ResetBaseline: e.ResetBaseline,
		}

		switch op {
		case domain.EditUpdate:
			if ed.ID == "" {
				return domain.EditScript{}, invalidField(path, field+".id", "id is required")
			}
			edge, err := domain.ParseEdge(e.Edge)
			if err != nil {
				return domain.EditScript{}, invalidField(path, field+".edge", err.Error())
			}
			if e.Value == nil {
				return domain.EditScript{}, invalidField(path, field+".value", "value is required")
			}
			ed.Edge = edge
			ed.Value = *e.Value

		case domain.EditDelete:
			if ed.ID == "" {
				return domain.EditScript{}, invalidField(path, field+".id", "id is required")
			}

		case domain.EditReplace:
			specs, err := mapIntervals(path, field+".intervals", e.Intervals)
			if err != nil {
				return domain.EditScript{}, err
			}
			ed.Intervals = specs
		}

		script.Edits = append(script.Edits, ed)
	}

	for i, e := range ys.Expect {
		field := fmt.Sprintf("expect[%d]", i)
		expr := strings.TrimSpace(e.Path)
		if expr == "" {
			return domain.EditScript{}, invalidField(path, field+".path", "path is required")
		}
		if !e.Exists && e.Eq == nil && e.Gt == nil && e.Lt == nil && e.Count == nil {
			return domain.EditScript{}, invalidField(path, field, "at least one of exists, eq, gt, lt, count is required")
		}
		script.Expect = append(script.Expect, domain.Expectation{
			Path:   expr,
			Exists: e.Exists,
			Eq:     e.Eq,
			Gt:     e.Gt,
			Lt:     e.Lt,
			Count:  e.Count,
		})
	}

	return script, nil
}

func mapIntervals(path, field string, in []YAMLInterval) ([]domain.IntervalSpec, error) {
	out := make([]domain.IntervalSpec, 0, len(in))
	for i, iv := range in {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if iv.Start == nil {
			return nil, invalidField(path, prefix+".start", "start is required")
		}
		if iv.End == nil {
			return nil, invalidField(path, prefix+".end", "end is required")
		}
		out = append(out, domain.IntervalSpec{
			ID:    strings.TrimSpace(iv.ID),
			Start: *iv.Start,
			End:   *iv.End,
		})
	}
	return out, nil
}

func parseOp(s string) (domain.EditOp, error) {
	op := domain.EditOp(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case domain.EditUpdate,
		domain.EditAdd,
		domain.EditDelete,
		domain.EditReplace,
		domain.EditReset:
		return op, nil
	default:
		return "", fmt.Errorf("unsupported op %q", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
