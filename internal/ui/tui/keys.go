package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Left      key.Binding
	Right     key.Binding
	LeftUnit  key.Binding
	RightUnit key.Binding
	Edit      key.Binding
	Add       key.Binding
	Delete    key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "start/end")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "nudge")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		LeftUnit:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←/→", "move one unit")),
		RightUnit: key.NewBinding(key.WithKeys("shift+right", "L")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit time")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Left, k.Edit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Toggle, k.Left, k.LeftUnit},
		{k.Edit, k.Add, k.Delete, k.Reset},
		{k.Help, k.Quit},
	}
}

// editorKeys is the help shown while the time field is open.
type editorKeys struct{ keyMap }

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
