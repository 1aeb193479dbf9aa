package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/aalvaropc/multirange/internal/domain"
)

// newTimeField opens an HH:MM editor on a value in transformed units.
func newTimeField(edge domain.Edge, value float64) textinput.Model {
	in := textinput.New()
	in.Prompt = fmt.Sprintf("%s: ", edge)
	in.Placeholder = "HH:MM"
	in.CharLimit = 6
	in.SetValue(domain.FormatClock(value))
	in.CursorEnd()
	in.Focus()
	return in
}
