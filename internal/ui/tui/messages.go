package tui

import "github.com/aalvaropc/multirange/internal/ports"

type watchStartedMsg struct {
	ch  <-chan ports.Reload
	err error
}

type reloadMsg struct {
	reload ports.Reload
}

type watchClosedMsg struct{}
