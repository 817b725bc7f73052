package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mewbox/clowder/internal/catbase"
	"github.com/mewbox/clowder/internal/cats"
	"github.com/mewbox/clowder/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    catbase.Collection
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. It holds exactly one
// cats.State; every mutation goes through cats.Transition inside Update, so
// state handling stays sequential even with several requests in flight.
type Model struct {
	ctx       context.Context
	client    catbase.Collection
	prefsPath string

	state cats.State

	theme  Theme
	styles Styles
	keys   keyMap
	spin   spinner.Model

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates a new Bubble Tea model in the Loading state.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Tabby"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		prefsPath: prefsPath,
		state:     cats.Loading(),
		theme:     theme,
		styles:    theme.Styles(),
		keys:      DefaultKeyMap(),
		spin:      spin,
	}
}

// State exposes the current application state for tests.
func (m Model) State() cats.State {
	return m.state
}

// Init implements tea.Model. Starting the program issues the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		fetchCmd(m.ctx, m.client),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != cats.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadDoneMsg:
		return m.apply(cats.LoadCompleted{Cats: msg.cats, Err: msg.err})

	case persistDoneMsg:
		return m.apply(cats.PersistCompleted{Err: msg.err})
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	switch m.state.Phase {
	case cats.PhaseLoading:
		return m.renderLoading()
	case cats.PhaseFailed:
		return m.renderError()
	case cats.PhaseReady:
		return m.renderReady()
	}
	return ""
}

// apply runs one event through the pure transition and turns the returned
// effect into a command.
func (m Model) apply(ev cats.Event) (tea.Model, tea.Cmd) {
	next, effect := cats.Transition(m.state, ev)
	m.state = next

	var cmds []tea.Cmd
	switch effect := effect.(type) {
	case cats.FetchEffect:
		cmds = append(cmds, fetchCmd(m.ctx, m.client))
	case cats.PersistEffect:
		cmds = append(cmds, persistCmd(m.ctx, m.client, effect.Cat))
	}
	if m.state.Phase == cats.PhaseLoading {
		cmds = append(cmds, m.spin.Tick)
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.apply(cats.ReloadPressed{})
	}

	if m.state.Phase != cats.PhaseReady {
		return m, nil
	}
	return m.handleReadyKey(msg)
}

// handleReadyKey processes keys that only make sense with a roster on screen.
func (m Model) handleReadyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := m.state.Roster

	switch {
	case key.Matches(msg, m.keys.Click):
		return m.apply(cats.ImageClicked{})

	case key.Matches(msg, m.keys.Reset):
		return m.apply(cats.ResetPressed{})

	case key.Matches(msg, m.keys.PrevCat):
		if i := roster.SelectedIndex(); i > 0 {
			return m.apply(cats.CatChosen{Index: i - 1})
		}

	case key.Matches(msg, m.keys.NextCat):
		if i := roster.SelectedIndex(); i >= 0 && i < roster.Len()-1 {
			return m.apply(cats.CatChosen{Index: i + 1})
		}

	case key.Matches(msg, m.keys.FirstCat):
		if roster.Len() > 0 {
			return m.apply(cats.CatChosen{Index: 0})
		}

	case key.Matches(msg, m.keys.LastCat):
		if roster.Len() > 0 {
			return m.apply(cats.CatChosen{Index: roster.Len() - 1})
		}
	}

	return m, nil
}

// Messages

type loadDoneMsg struct {
	cats []cats.Cat
	err  error
}

type persistDoneMsg struct {
	err error
}

// Commands

func fetchCmd(ctx context.Context, client catbase.Collection) tea.Cmd {
	return func() tea.Msg {
		loaded, err := client.FetchAll(ctx)
		return loadDoneMsg{cats: loaded, err: err}
	}
}

func persistCmd(ctx context.Context, client catbase.Collection, cat cats.Cat) tea.Cmd {
	return func() tea.Msg {
		return persistDoneMsg{err: client.Persist(ctx, cat)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
