package ports

import (
	"context"

	"github.com/aalvaropc/multirange/internal/domain"
)

// Reload is one re-read of a watched config file.
type Reload struct {
	Path   string
	Config domain.SliderConfig
	Err    error
}

// ConfigWatcher emits a Reload every time the file at path changes.
// The channel is closed when ctx is done.
type ConfigWatcher interface {
	Watch(ctx context.Context, path string) (<-chan Reload, error)
}
