package ports

import "github.com/aalvaropc/multirange/internal/domain"

// SliderLoader loads a slider definition from a source (e.g., filesystem).
type SliderLoader interface {
	LoadSlider(path string) (domain.SliderConfig, error)
}
