package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rektdeckard/tinto/internal/dispatch"
	"github.com/rektdeckard/tinto/internal/inventory"
	"github.com/rektdeckard/tinto/internal/logging"
	"github.com/rektdeckard/tinto/internal/nav"
)

// DefaultTick is the redraw interval.
const DefaultTick = 250 * time.Millisecond

// SnapshotSource returns the latest published inventory, or nil before the
// first refresh.
type SnapshotSource interface {
	Load() *inventory.Snapshot
}

// Submitter accepts commands without blocking.
type Submitter interface {
	Submit(cmd dispatch.Command) error
}

// Options wires the dashboard to the rest of the program.
type Options struct {
	Registry  *nav.Registry
	Store     SnapshotSource
	Planner   dispatch.Planner
	Submitter Submitter

	Tick time.Duration
	Addr string // Bridge address shown in the status bar

	// RefreshErr reports the last refresh failure, if any
	RefreshErr func() error
}

type tickMsg time.Time

// Model is the bubbletea model for the dashboard.
//
// Every key press loads one snapshot and uses it for both navigation and
// command planning, so a refresh landing mid-keypress cannot split them.
type Model struct {
	registry  *nav.Registry
	store     SnapshotSource
	planner   dispatch.Planner
	submitter Submitter
	refresh   func() error

	tick time.Duration
	addr string

	snap       *inventory.Snapshot
	refreshErr error

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width  int
	height int
}

// NewModel creates the dashboard model
func NewModel(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = nav.NewRegistry()
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Planner.DimStep <= 0 {
		opts.Planner = dispatch.NewPlanner(dispatch.DefaultDimStep)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := Model{
		registry:  opts.Registry,
		store:     opts.Store,
		planner:   opts.Planner,
		submitter: opts.Submitter,
		refresh:   opts.RefreshErr,
		tick:      opts.Tick,
		addr:      opts.Addr,
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   s,
	}
	m.load()
	return m
}

// Init starts the redraw tick and the connecting spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), m.spinner.Tick)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.load()
		return m, m.scheduleTick()

	case spinner.TickMsg:
		// The spinner only runs until the first snapshot arrives
		if m.snap != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.load()
	snap := m.snap

	intent := m.keys.classify(msg)
	switch intent {
	case IntentQuit:
		return m, tea.Quit

	case IntentHelp:
		m.help.ShowAll = !m.help.ShowAll

	case IntentNextView:
		m.registry.NextView(snap)

	case IntentPrevView:
		m.registry.PrevView(snap)

	case IntentNextItem:
		if m.registry.NextItem(snap) != nav.Unsupported {
			m.dim(snap, dispatch.Down)
		}

	case IntentPrevItem:
		if m.registry.PrevItem(snap) != nav.Unsupported {
			m.dim(snap, dispatch.Up)
		}

	case IntentActivate:
		if cmd, ok := m.planner.Activate(m.registry.State(), snap); ok {
			m.submit(cmd)
		}

	default:
		if v, ok := intent.jumpTarget(); ok {
			m.registry.JumpTo(v)
		} else if t, ok := intent.tabTarget(); ok {
			m.registry.SwitchTab(t)
		}
	}

	return m, nil
}

func (m Model) dim(snap *inventory.Snapshot, dir dispatch.Direction) {
	if cmd, ok := m.planner.Dim(m.registry.State(), snap, dir); ok {
		m.submit(cmd)
	}
}

// submit hands cmd to the dispatcher. Failures are logged and never reach
// the screen.
func (m Model) submit(cmd dispatch.Command) {
	if m.submitter == nil {
		return
	}
	if err := m.submitter.Submit(cmd); err != nil {
		logging.Debug("Command not submitted",
			zap.String("command", cmd.String()),
			zap.Error(err))
	}
}

func (m *Model) load() {
	if m.store != nil {
		m.snap = m.store.Load()
	}
	if m.refresh != nil {
		m.refreshErr = m.refresh()
	}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
