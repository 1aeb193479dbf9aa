package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/aalvaropc/multirange/internal/domain"
)

func TestLoadSlider(t *testing.T) {
	path := filepath.Join("testdata", "slider.yaml")
	cfg, err := LoadSlider(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Min != 0 || cfg.Max != 48 || cfg.Step != 0.5 {
		t.Fatalf("unexpected axis %+v", cfg)
	}
	if cfg.RangeType != domain.RangeAlternateEven {
		t.Fatalf("expected alternate-even, got %q", cfg.RangeType)
	}
	if len(cfg.Intervals) != 2 || cfg.Intervals[0].ID != "night" || cfg.Intervals[1].ID != "" {
		t.Fatalf("unexpected intervals %+v", cfg.Intervals)
	}
}

func TestLoadSliderTOMLMatchesYAML(t *testing.T) {
	fromYAML, err := LoadSlider(filepath.Join("testdata", "slider.yaml"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromTOML, err := LoadSlider(filepath.Join("testdata", "slider.toml"))
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if diff := cmp.Diff(fromYAML, fromTOML); diff != "" {
		t.Fatalf("yaml and toml disagree (-yaml +toml):\n%s", diff)
	}
}

func TestLoadSliderInvalid(t *testing.T) {
	path := filepath.Join("testdata", "slider_invalid.yaml")
	_, err := LoadSlider(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "slider.intervals[0].end") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config kind, got %v", err)
	}
}

func TestLoadSliderBrokenYAML(t *testing.T) {
	_, err := LoadSlider(filepath.Join("testdata", "slider_broken.yaml"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config kind, got %v", err)
	}
}

func TestLoadSliderMissingFile(t *testing.T) {
	_, err := LoadSlider(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found kind, got %v", err)
	}
}

func TestLoadSliderEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadSlider(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.DefaultSliderConfig(), cfg, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestStrictFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(path, []byte("slider:\n  maxx: 10\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewLoader().LoadSlider(path); err != nil {
		t.Fatalf("lenient loader should ignore unknown keys: %v", err)
	}
	if _, err := NewLoader(WithStrictFields(true)).LoadSlider(path); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("strict loader should reject unknown keys, got %v", err)
	}
}

func TestLoadEdits(t *testing.T) {
	script, err := NewLoader().LoadEdits(filepath.Join("testdata", "edits.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Name != "morning-shift" {
		t.Fatalf("unexpected name %q", script.Name)
	}

	ops := make([]domain.EditOp, 0, len(script.Edits))
	for _, e := range script.Edits {
		ops = append(ops, e.Op)
	}
	want := []domain.EditOp{domain.EditUpdate, domain.EditAdd, domain.EditDelete, domain.EditReplace, domain.EditReset}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("unexpected ops (-want +got):\n%s", diff)
	}

	up := script.Edits[0]
	if up.ID != "night" || up.Edge != domain.EdgeEnd || up.Value != 10 {
		t.Fatalf("unexpected update edit %+v", up)
	}
	add := script.Edits[1]
	if add.Start == nil || *add.Start != 20 || add.End != nil {
		t.Fatalf("unexpected add edit %+v", add)
	}
	rep := script.Edits[3]
	if !rep.ResetBaseline || len(rep.Intervals) != 1 || rep.Intervals[0].ID != "a" {
		t.Fatalf("unexpected replace edit %+v", rep)
	}

	if len(script.Expect) != 2 {
		t.Fatalf("expected 2 expectations, got %+v", script.Expect)
	}
	if c := script.Expect[0].Count; c == nil || *c != 1 {
		t.Fatalf("unexpected count expectation %+v", script.Expect[0])
	}
	if e := script.Expect[1]; !e.Exists || e.Eq == nil || *e.Eq != "a" {
		t.Fatalf("unexpected eq expectation %+v", e)
	}
}
