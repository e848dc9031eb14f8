// Package tui provides the BubbleTea-based interactive theme preview.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/tvtheme/internal/preview"
	"github.com/jmylchreest/tvtheme/internal/theme"
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// ReloadFunc rebuilds the theme managers, typically from the config file.
type ReloadFunc func() ([]*theme.Manager, error)

// Options configures the TUI.
type Options struct {
	Display  *toolkit.Display
	Screen   *toolkit.Object
	Managers []*theme.Manager
	Reload   ReloadFunc // Nil reinitializes the current managers
	Logger   *slog.Logger
}

// Model is the main TUI model.
type Model struct {
	display  *toolkit.Display
	screen   *toolkit.Object
	managers []*theme.Manager
	current  int
	reload   ReloadFunc
	logger   *slog.Logger

	// Widgets in tree order, screen first
	widgets []*toolkit.Object
	cursor  int

	renderer *preview.Renderer
	help     help.Model
	keys     KeyMap
	showHelp bool

	width  int
	height int
	ready  bool

	statusMsg string
	statusErr bool
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

// New creates a new TUI model. The last manager is previewed first.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	display := opts.Display
	if display == nil {
		display = toolkit.NewDisplay()
	}
	screen := opts.Screen
	if screen == nil {
		screen = preview.DemoScreen(display)
	}

	m := Model{
		display:  display,
		screen:   screen,
		managers: opts.Managers,
		current:  len(opts.Managers) - 1,
		reload:   opts.Reload,
		logger:   logger,
		renderer: preview.NewRenderer(0),
		help:     help.New(),
		keys:     DefaultKeyMap(),
	}
	m.collectWidgets()
	m.restyle()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) collectWidgets() {
	m.widgets = m.widgets[:0]
	m.screen.Walk(func(obj *toolkit.Object) {
		m.widgets = append(m.widgets, obj)
	})
	if m.cursor >= len(m.widgets) {
		m.cursor = len(m.widgets) - 1
	}
}

// Current returns the previewed manager, or nil.
func (m Model) Current() *theme.Manager {
	if m.current < 0 || m.current >= len(m.managers) {
		return nil
	}
	return m.managers[m.current]
}

// Selected returns the widget under the cursor.
func (m Model) Selected() *toolkit.Object {
	if m.cursor < 0 || m.cursor >= len(m.widgets) {
		return nil
	}
	return m.widgets[m.cursor]
}

// restyle strips every widget and applies the previewed theme chain again.
func (m *Model) restyle() {
	var th *toolkit.Theme
	if mgr := m.Current(); mgr != nil {
		th = mgr.Theme()
	}
	preview.Restyle(m.screen, th)
	m.display.ReportStyleChange(nil)
	m.display.Invalidate(m.screen)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}
	return m, nil
}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.widgets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.widgets) - 1

	case key.Matches(msg, m.keys.Pressed):
		m.toggle(toolkit.StatePressed)
	case key.Matches(msg, m.keys.Checked):
		m.toggle(toolkit.StateChecked)
	case key.Matches(msg, m.keys.Focused):
		m.toggle(toolkit.StateFocused)
	case key.Matches(msg, m.keys.Disabled):
		m.toggle(toolkit.StateDisabled)
	case key.Matches(msg, m.keys.Reset):
		if obj := m.Selected(); obj != nil {
			obj.ClearState(obj.State())
		}
	case key.Matches(msg, m.keys.AllState):
		if obj := m.Selected(); obj != nil {
			preview.SetState(m.screen, obj.State())
		}

	case key.Matches(msg, m.keys.NextTheme):
		if len(m.managers) > 1 {
			m.current = (m.current + 1) % len(m.managers)
			m.restyle()
			return m, status("previewing "+m.Current().Name(), false)
		}
	case key.Matches(msg, m.keys.Reload):
		return m.doReload()
	}
	return m, nil
}

func (m *Model) toggle(s toolkit.State) {
	obj := m.Selected()
	if obj == nil {
		return
	}
	if obj.HasState(s) {
		obj.ClearState(s)
	} else {
		obj.AddState(s)
	}
}

func (m Model) doReload() (tea.Model, tea.Cmd) {
	if m.reload == nil {
		for _, mgr := range m.managers {
			mgr.Initialize()
		}
		m.restyle()
		return m, status("themes reinitialized", false)
	}

	managers, err := m.reload()
	if err != nil {
		m.logger.Warn("failed to reload themes", "error", err)
		return m, status("reload failed: "+err.Error(), true)
	}
	for _, old := range m.managers {
		old.Close()
	}
	m.managers = managers
	if m.current >= len(managers) || m.current < 0 {
		m.current = len(managers) - 1
	}
	m.restyle()
	return m, status(fmt.Sprintf("reloaded %d themes", len(managers)), false)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	paneStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// View renders the TUI.
func (m Model) View() string {
	var s string

	if mgr := m.Current(); mgr != nil {
		s += titleStyle.Render(mgr.Name()) + " " +
			mutedStyle.Render(fmt.Sprintf("(%d/%d) %s", m.current+1, len(m.managers), preview.Chain(mgr.Theme())))
	} else {
		s += titleStyle.Render("no theme")
	}
	s += "\n\n"

	tree := paneStyle.Render(m.renderer.Tree(m.screen, m.Selected()))
	detail := ""
	if obj := m.Selected(); obj != nil {
		detail = paneStyle.Render(m.renderer.Detail(obj))
	}
	if m.ready && m.width > 0 && m.width < 100 {
		s += lipgloss.JoinVertical(lipgloss.Left, tree, detail)
	} else {
		s += lipgloss.JoinHorizontal(lipgloss.Top, tree, detail)
	}
	s += "\n"

	switch {
	case m.statusMsg != "" && m.statusErr:
		s += errorStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		s += statusStyle.Render(m.statusMsg)
	default:
		s += m.help.View(m.keys)
	}
	return s
}

// Run starts the TUI with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
