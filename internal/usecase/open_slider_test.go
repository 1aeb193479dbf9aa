package usecase

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/slider"
)

func TestOpenSlider_BuildsStore(t *testing.T) {
	s, cfg, err := NewOpenSlider(fakeSliderLoader{cfg: dayConfig()}).Execute("multirange.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Step != 0.5 {
		t.Fatalf("expected loaded config returned, got %+v", cfg)
	}

	snap := BuildSnapshot(s, slider.ViewWorking)
	want := domain.Snapshot{
		Min: 0, Max: 48, Step: 0.5, RangeType: domain.RangeDown, View: "working",
		Intervals: []domain.Interval{
			{ID: "early", Start: 0, End: 8},
			{ID: "day", Start: 9, End: 17},
			{ID: "late", Start: 23, End: 32},
		},
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenSlider_ConfigErrorCarriesPath(t *testing.T) {
	cfg := dayConfig()
	cfg.Step = 2

	_, _, err := NewOpenSlider(fakeSliderLoader{cfg: cfg}).Execute("bad.yaml")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Path != "bad.yaml" {
		t.Fatalf("expected path on error, got %v", err)
	}
}

func TestOpenSlider_LoaderErrorPassesThrough(t *testing.T) {
	want := &domain.OpError{Op: "config.load_slider", Kind: domain.KindNotFound}
	_, _, err := NewOpenSlider(fakeSliderLoader{err: want}).Execute("x.yaml")
	if !errors.Is(err, want) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestValidateSlider(t *testing.T) {
	if p, err := NewValidateSlider(fakeSliderLoader{cfg: dayConfig()}).Execute("ok.yaml"); err != nil || len(p) != 0 {
		t.Fatalf("expected valid config, got %v %v", p, err)
	}

	cfg := dayConfig()
	cfg.Intervals[1] = domain.IntervalSpec{ID: "day", Start: 7, End: 17}

	p, err := NewValidateSlider(fakeSliderLoader{cfg: cfg}).Execute("overlap.yaml")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
	if len(p) != 1 || p[0].ID != "day" {
		t.Fatalf("expected one problem on day, got %v", p)
	}
}

func TestInitConfig_PassesRootAndForce(t *testing.T) {
	f := &fakeInitializer{}
	if err := NewInitConfig(f).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.calls != 1 || f.got.Root != "/tmp/ws" || !f.force {
		t.Fatalf("unexpected call %+v", f)
	}
}
