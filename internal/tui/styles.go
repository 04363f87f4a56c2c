package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rektdeckard/tinto/internal/version"
)

// Application branding constants
const (
	AppName   = "TINTO"
	GitHubURL = "github.com/rektdeckard/tinto"
)

// Layout constants
const (
	MinTerminalWidth = 60 // Below this the panels overlap
	ListWidth        = 24 // Width of ROOMS, ZONES and SCNS columns
	BarWidth         = 10 // Brightness bar cells
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor   = lipgloss.Color("#FFFFFF")
	SubtleColor = lipgloss.Color("#626262")
	BorderColor = lipgloss.Color("#7D56F4")
)

var (
	// Panel title, reversed when the panel has focus
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	ActivePanelTitleStyle = PanelTitleStyle.
				Reverse(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	ActivePanelStyle = PanelStyle.
				BorderForeground(BorderColor)

	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedItemStyle = lipgloss.NewStyle().
				Reverse(true)

	OnMarkerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Tab labels carry no padding so the hotkey can be styled separately
	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true).
				Padding(1, 2)

	barOnStyle  = lipgloss.NewStyle().Foreground(WarningColor)
	barOffStyle = lipgloss.NewStyle().Foreground(SubtleColor)
)

const onMarker = "■"

// toggleItem renders a list entry with the on marker when active.
func toggleItem(name string, active bool, width int) string {
	name = truncate(name, width-2)
	if active {
		return OnMarkerStyle.Render(onMarker) + " " + name
	}
	return "  " + name
}

// truncate cuts s to at most width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// brightnessBar renders pct (0-100) as a fixed-width bar followed by the value.
func brightnessBar(pct float64, on bool) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct/100*BarWidth + 0.5)

	style := barOnStyle
	if !on {
		style = barOffStyle
	}
	bar := style.Render(strings.Repeat("█", filled)) +
		barOffStyle.Render(strings.Repeat("░", BarWidth-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, pct)
}

// headerContent creates the app name and version line
func headerContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// renderContainer wraps a screen in the full-terminal frame: header, content
// and a footer pinned to the bottom.
func renderContainer(content, footer string, width, height int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < 10 {
		height = 10
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(width-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(width-4).
		Padding(0, 1)

	header := headerStyle.Render(headerContent())
	foot := footerStyle.Render(footer)

	// Content fills what the header and footer leave over
	bodyHeight := height - 2 - lipgloss.Height(header) - lipgloss.Height(foot)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.NewStyle().
		Width(width - 4).
		Height(bodyHeight).
		Render(content)

	inner := lipgloss.JoinVertical(lipgloss.Left, header, body, foot)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(width - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}
