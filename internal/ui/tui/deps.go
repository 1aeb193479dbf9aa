package tui

import (
	"log/slog"

	"github.com/aalvaropc/multirange/internal/ports"
	"github.com/aalvaropc/multirange/internal/slider"
)

type Deps struct {
	Store      *slider.Store
	ConfigPath string

	// Watcher, when set, feeds reloads of ConfigPath back into Store.
	Watcher ports.ConfigWatcher

	// OnSliderChange receives every per-interval change made through the UI.
	OnSliderChange slider.ChangeListener

	// Width fixes the track width in columns; 0 follows the terminal.
	Width int

	Logger *slog.Logger
	Debug  bool
}
