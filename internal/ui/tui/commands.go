package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/multirange/internal/ports"
)

func cmdStartWatch(ctx context.Context, w ports.ConfigWatcher, path string) tea.Cmd {
	return func() tea.Msg {
		ch, err := w.Watch(ctx, path)
		return watchStartedMsg{ch: ch, err: err}
	}
}

func cmdNextReload(ch <-chan ports.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return reloadMsg{reload: r}
	}
}
