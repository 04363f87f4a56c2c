package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rektdeckard/tinto/internal/nav"
)

// Intent is what a key press asks the dashboard to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentNextView
	IntentPrevView
	IntentNextItem
	IntentPrevItem
	IntentActivate
	IntentJumpRooms
	IntentJumpZones
	IntentJumpScenes
	IntentJumpLights
	IntentTabAreas
	IntentTabLights
	IntentTabSensors
	IntentTabRoutines
	IntentHelp
	IntentQuit
)

// keyMap defines the dashboard key bindings
type keyMap struct {
	NextView key.Binding
	PrevView key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Activate key.Binding

	JumpRooms  key.Binding
	JumpZones  key.Binding
	JumpScenes key.Binding
	JumpLights key.Binding

	TabAreas    key.Binding
	TabLights   key.Binding
	TabSensors  key.Binding
	TabRoutines key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.PrevView, k.NextItem, k.Activate, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView, k.NextItem, k.PrevItem, k.Activate},
		{k.JumpRooms, k.JumpZones, k.JumpScenes, k.JumpLights},
		{k.TabAreas, k.TabLights, k.TabSensors, k.TabRoutines},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "deeper"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab/h", "back"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		JumpRooms: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rooms"),
		),
		JumpZones: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zones"),
		),
		JumpScenes: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scenes"),
		),
		JumpLights: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "room lights"),
		),
		TabAreas: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "areas"),
		),
		TabLights: key.NewBinding(
			key.WithKeys("g", "G"),
			key.WithHelp("g", "lights"),
		),
		TabSensors: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e", "sensors"),
		),
		TabRoutines: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "routines"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// classify maps a key press to an intent. Unbound keys are IntentNone.
func (k keyMap) classify(msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return IntentQuit
	case key.Matches(msg, k.NextView):
		return IntentNextView
	case key.Matches(msg, k.PrevView):
		return IntentPrevView
	case key.Matches(msg, k.NextItem):
		return IntentNextItem
	case key.Matches(msg, k.PrevItem):
		return IntentPrevItem
	case key.Matches(msg, k.Activate):
		return IntentActivate
	case key.Matches(msg, k.JumpRooms):
		return IntentJumpRooms
	case key.Matches(msg, k.JumpZones):
		return IntentJumpZones
	case key.Matches(msg, k.JumpScenes):
		return IntentJumpScenes
	case key.Matches(msg, k.JumpLights):
		return IntentJumpLights
	case key.Matches(msg, k.TabAreas):
		return IntentTabAreas
	case key.Matches(msg, k.TabLights):
		return IntentTabLights
	case key.Matches(msg, k.TabSensors):
		return IntentTabSensors
	case key.Matches(msg, k.TabRoutines):
		return IntentTabRoutines
	case key.Matches(msg, k.Help):
		return IntentHelp
	}
	return IntentNone
}

// jumpTarget returns the view a jump intent selects.
func (i Intent) jumpTarget() (nav.RoomView, bool) {
	switch i {
	case IntentJumpRooms:
		return nav.RoomList, true
	case IntentJumpZones:
		return nav.ZoneList, true
	case IntentJumpScenes:
		return nav.SceneList, true
	case IntentJumpLights:
		return nav.LightPanel, true
	}
	return 0, false
}

// tabTarget returns the tab a tab intent selects.
func (i Intent) tabTarget() (nav.Tab, bool) {
	switch i {
	case IntentTabAreas:
		return nav.Areas, true
	case IntentTabLights:
		return nav.Lights, true
	case IntentTabSensors:
		return nav.Sensors, true
	case IntentTabRoutines:
		return nav.Routines, true
	}
	return 0, false
}
