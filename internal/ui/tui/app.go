package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
	"github.com/aalvaropc/multirange/internal/slider"
)

// Screen rows of the track, counted from the top of the view.
const (
	padTop   = 1
	padLeft  = 2
	trackRow = padTop + 4
)

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	help  help.Model
	log   *slog.Logger

	store *slider.Store
	ctx   context.Context

	width    int
	selected int
	edge     domain.Edge

	editing  bool
	editor   textinput.Model
	dragging bool

	reloads <-chan ports.Reload

	toast string
}

func Run(deps Deps) error {
	if deps.Store == nil {
		return fmt.Errorf("tui: no slider store")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if deps.OnSliderChange != nil {
		sub := deps.Store.OnChange(deps.OnSliderChange)
		defer sub.Unsubscribe()
	}

	m := newModel(ctx, deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	width := deps.Width
	if width <= 0 {
		width = defaultTrackWidth
	}

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		keys:  newKeyMap(),
		help:  help.New(),
		log:   log,
		store: deps.Store,
		ctx:   ctx,
		width: max(width, minTrackWidth),
		edge:  domain.EdgeStart,
	}
}

func (m model) Init() tea.Cmd {
	if m.deps.Watcher == nil || m.deps.ConfigPath == "" {
		return nil
	}
	return cmdStartWatch(m.ctx, m.deps.Watcher, m.deps.ConfigPath)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.deps.Width <= 0 {
			m.width = max(msg.Width-2*padLeft, minTrackWidth)
		}
		m.help.Width = msg.Width
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn("tui.watch.failed", "path", m.deps.ConfigPath, "err", msg.err)
			m.toast = "Watch disabled: " + userMessage(msg.err)
			return m, nil
		}
		m.log.Info("tui.watch.started", "path", m.deps.ConfigPath)
		m.reloads = msg.ch
		return m, cmdNextReload(m.reloads)

	case reloadMsg:
		m.applyReload(msg.reload)
		return m, cmdNextReload(m.reloads)

	case watchClosedMsg:
		m.reloads = nil
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = ""
	set := m.store.AllBase(slider.ViewWorking)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.selected = max(m.selected-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.selected = min(m.selected+1, max(len(set)-1, 0))

	case key.Matches(msg, m.keys.Toggle):
		m.edge = m.edge.Other()

	case key.Matches(msg, m.keys.Left):
		m.nudge(set, -1)

	case key.Matches(msg, m.keys.Right):
		m.nudge(set, 1)

	case key.Matches(msg, m.keys.LeftUnit):
		m.nudge(set, -1/m.store.Step())

	case key.Matches(msg, m.keys.RightUnit):
		m.nudge(set, 1/m.store.Step())

	case key.Matches(msg, m.keys.Edit):
		iv, ok := m.current(set)
		if !ok {
			return m, nil
		}
		value := m.edge.Value(m.store.Transformer().TransformInterval(iv))
		m.editor = newTimeField(m.edge, value)
		m.editing = true
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Add):
		iv, err := m.store.Add(domain.PartialInterval{})
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.selected = indexOf(m.store.AllBase(slider.ViewWorking), iv.ID)
		m.edge = domain.EdgeEnd

	case key.Matches(msg, m.keys.Delete):
		if iv, ok := m.current(set); ok {
			m.store.Delete(iv.ID)
			m.clampSelection()
		}

	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
		m.clampSelection()
		m.toast = "Reset to baseline"
	}

	return m, nil
}

func (m model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.editing = false
		hours, err := domain.ParseClock(m.editor.Value())
		if err != nil {
			m.toast = "Invalid time: " + err.Error()
			return m, nil
		}
		iv, ok := m.current(m.store.AllBase(slider.ViewWorking))
		if !ok {
			return m, nil
		}
		if !m.store.SetEdge(iv.ID, m.edge, m.store.Transformer().ToBase(hours)) {
			m.toast = "Unchanged: " + m.edgeLimit()
		}
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) updateMouse(msg tea.MouseMsg) model {
	if m.editing {
		return m
	}
	col := msg.X - padLeft
	t := newTrack(m.store.Bounds(), m.width)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < trackRow-1 || msg.Y > trackRow+1 {
			return m
		}
		i, e, ok := t.nearestHandle(m.store.AllBase(slider.ViewWorking), col)
		if !ok {
			return m
		}
		m.selected, m.edge, m.dragging = i, e, true
		m.toast = ""

	case msg.Action == tea.MouseActionMotion && m.dragging:
		if iv, ok := m.current(m.store.AllBase(slider.ViewWorking)); ok {
			m.store.SetEdge(iv.ID, m.edge, t.valueAt(col))
		}

	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}

// nudge moves the active handle by delta base units.
func (m *model) nudge(set []domain.Interval, delta float64) {
	iv, ok := m.current(set)
	if !ok {
		return
	}
	m.store.SetEdge(iv.ID, m.edge, domain.Round2(m.edge.Value(iv)+delta))
}

func (m *model) applyReload(r ports.Reload) {
	if r.Err != nil {
		m.toast = "Reload failed: " + userMessage(r.Err)
		return
	}

	tr := domain.NewTransformer(r.Config.Step)
	b := domain.Bounds{Min: tr.ToBase(r.Config.Min), Max: tr.ToBase(r.Config.Max)}
	if r.Config.Step != m.store.Step() || b != m.store.Bounds() {
		m.log.Warn("tui.reload.rejected", "path", r.Path, "reason", "bounds or step changed")
		m.toast = "Reload ignored: bounds or step changed (restart to apply)"
		return
	}

	// ReplaceAll regenerates ids, so only positions are checked here.
	next := make([]domain.Interval, len(r.Config.Intervals))
	for i, sp := range r.Config.Intervals {
		next[i] = tr.BaseInterval(domain.Interval{ID: fmt.Sprintf("#%d", i), Start: sp.Start, End: sp.End})
	}
	if problems := slider.Check(next, b); len(problems) > 0 {
		p := problems[0]
		m.log.Warn("tui.reload.rejected", "path", r.Path, "reason", p.Msg, "problems", len(problems))
		m.toast = fmt.Sprintf("Reload ignored: intervals[%d] %s", p.Index, p.Msg)
		return
	}

	m.store.ReplaceAll(r.Config.Intervals, true)
	m.clampSelection()
	m.log.Info("tui.reload.applied", "path", r.Path, "intervals", len(r.Config.Intervals))
	m.toast = "Reloaded " + filepath.Base(r.Path)
}

func (m *model) clampSelection() {
	n := m.store.Len()
	m.selected = max(0, min(m.selected, n-1))
}

func (m model) current(set []domain.Interval) (domain.Interval, bool) {
	if m.selected < 0 || m.selected >= len(set) {
		return domain.Interval{}, false
	}
	return set[m.selected], true
}

// edgeLimit explains why the active handle cannot go further.
func (m model) edgeLimit() string {
	if m.edge == domain.EdgeStart {
		return "start must stay below end and after the previous interval"
	}
	return "end must stay above start and before the next interval"
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(padTop, padLeft)
	tr := m.store.Transformer()
	b := tr.TransformBounds(m.store.Bounds())
	set := m.store.AllBase(slider.ViewWorking)

	name := "multirange"
	if m.deps.ConfigPath != "" {
		name = filepath.Base(m.deps.ConfigPath)
	}
	header := m.theme.Title.Render("Multirange · "+name) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("axis %s-%s  step %s  %d interval(s)",
			formatValue(b.Min), formatValue(b.Max), formatValue(m.store.Step()), len(set))) + "\n"

	t := newTrack(m.store.Bounds(), m.width)
	above, marks, below := t.renderTicks(m.theme, tr, domain.CollectTicks(b.Min, b.Max, m.store.RangeType()))

	var body strings.Builder
	body.WriteString(header)
	body.WriteString("\n")
	body.WriteString(above + "\n")
	body.WriteString(t.renderBar(m.theme, set, m.selected, m.edge) + "\n")
	body.WriteString(marks + "\n")
	body.WriteString(below + "\n\n")
	body.WriteString(m.details(set))
	body.WriteString("\n")

	if m.toast != "" {
		body.WriteString(m.theme.Toast.Render(m.toast) + "\n")
	}
	if m.editing {
		body.WriteString(m.editor.View() + "\n")
		body.WriteString(m.help.View(editorKeys{m.keys}))
	} else {
		body.WriteString(m.help.View(m.keys))
	}

	return wrap.Render(body.String())
}

func (m model) details(set []domain.Interval) string {
	iv, ok := m.current(set)
	if !ok {
		return m.theme.Card.Render("No intervals. Press a to add one.")
	}
	tv := m.store.Transformer().TransformInterval(iv)

	mark := func(e domain.Edge) string {
		if e == m.edge {
			return "›"
		}
		return " "
	}

	lines := []string{
		m.theme.Title.Render(fmt.Sprintf("%d/%d  %s", m.selected+1, len(set), clampString(tv.ID, 40))),
		fmt.Sprintf("%s start %-6s %s", mark(domain.EdgeStart), formatValue(tv.Start), domain.FormatClock(tv.Start)),
		fmt.Sprintf("%s end   %-6s %s", mark(domain.EdgeEnd), formatValue(tv.End), domain.FormatClock(tv.End)),
	}
	return m.theme.Card.Render(strings.Join(lines, "\n"))
}

func indexOf(set []domain.Interval, id string) int {
	for i, iv := range set {
		if iv.ID == id {
			return i
		}
	}
	return -1
}
