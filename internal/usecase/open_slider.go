package usecase

import (
	"errors"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
	"github.com/aalvaropc/multirange/internal/slider"
)

type OpenSlider struct {
	loader ports.SliderLoader
	opts   []slider.Option
}

func NewOpenSlider(loader ports.SliderLoader, opts ...slider.Option) *OpenSlider {
	return &OpenSlider{loader: loader, opts: opts}
}

// Execute loads the config at path and builds a store from it.
func (uc *OpenSlider) Execute(path string) (*slider.Store, domain.SliderConfig, error) {
	cfg, err := uc.loader.LoadSlider(path)
	if err != nil {
		return nil, domain.SliderConfig{}, err
	}

	s, err := slider.New(cfg, uc.opts...)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return nil, domain.SliderConfig{}, err
	}
	return s, cfg, nil
}

// BuildSnapshot exports the selected view of s in transformed units.
func BuildSnapshot(s *slider.Store, v slider.View) domain.Snapshot {
	tr := s.Transformer()
	b := tr.TransformBounds(s.Bounds())
	return domain.Snapshot{
		Min:       b.Min,
		Max:       b.Max,
		Step:      s.Step(),
		RangeType: s.RangeType(),
		View:      v.String(),
		Intervals: s.All(v),
	}
}
