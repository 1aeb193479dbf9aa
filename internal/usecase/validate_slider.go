package usecase

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
	"github.com/aalvaropc/multirange/internal/slider"
)

type ValidateSlider struct {
	open *OpenSlider
}

func NewValidateSlider(loader ports.SliderLoader) *ValidateSlider {
	return &ValidateSlider{open: NewOpenSlider(loader)}
}

// Execute loads and constructs the slider, then checks the loaded intervals
// for ordering, inversion and bounds. The store accepts any initial set, so a
// config can construct fine and still fail here.
func (uc *ValidateSlider) Execute(path string) ([]slider.Problem, error) {
	s, _, err := uc.open.Execute(path)
	if err != nil {
		return nil, err
	}
	return CheckStore(path, s)
}

// CheckStore runs slider.Check over the working set of s. Problems are also
// joined into a KindInvalidConfig error.
func CheckStore(path string, s *slider.Store) ([]slider.Problem, error) {
	problems := slider.Check(s.AllBase(slider.ViewWorking), s.Bounds())
	if len(problems) == 0 {
		return nil, nil
	}

	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.String())
	}
	return problems, &domain.OpError{
		Op:   "usecase.validate_slider",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %w", strings.Join(msgs, "; "), domain.ErrInvalidConfig),
	}
}
