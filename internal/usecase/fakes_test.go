package usecase

import (
	"github.com/aalvaropc/multirange/internal/domain"
)

type fakeSliderLoader struct {
	cfg domain.SliderConfig
	err error
}

func (f fakeSliderLoader) LoadSlider(string) (domain.SliderConfig, error) {
	return f.cfg, f.err
}

type fakeEditLoader struct {
	script domain.EditScript
	err    error
}

func (f fakeEditLoader) LoadEdits(string) (domain.EditScript, error) {
	return f.script, f.err
}

type fakeInitializer struct {
	got   domain.InitSpec
	force bool
	calls int
}

func (f *fakeInitializer) Init(spec domain.InitSpec, force bool) error {
	f.got = spec
	f.force = force
	f.calls++
	return nil
}

func ptr(v float64) *float64 { return &v }

func dayConfig() domain.SliderConfig {
	return domain.SliderConfig{
		Min:       0,
		Max:       48,
		Step:      0.5,
		RangeType: domain.RangeDown,
		Intervals: []domain.IntervalSpec{
			{ID: "early", Start: 0, End: 8},
			{ID: "day", Start: 9, End: 17},
			{ID: "late", Start: 23, End: 32},
		},
	}
}
