package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rektdeckard/tinto/internal/bridge"
	"github.com/rektdeckard/tinto/internal/inventory"
	"github.com/rektdeckard/tinto/internal/nav"
)

// View renders the dashboard
func (m Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabBar(),
		"",
		m.renderBody(),
	)

	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatusBar(),
		m.help.View(m.keys),
	)

	return renderContainer(content, footer, m.width, m.height)
}

// renderTabBar renders every tab label with its hotkey underlined and the
// active tab highlighted.
func (m Model) renderTabBar() string {
	active := m.registry.Active()

	tabs := make([]string, 0, len(nav.Tabs))
	for _, t := range nav.Tabs {
		style := TabStyle
		if t == active {
			style = ActiveTabStyle
		}

		label := t.String()
		i := t.HotkeyIndex()
		tabs = append(tabs,
			style.Render(" "+label[:i])+
				style.Underline(true).Render(label[i:i+1])+
				style.Render(label[i+1:]+" "))
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderBody() string {
	if m.snap == nil {
		return PlaceholderStyle.Render(m.spinner.View() + " Connecting to bridge at " + m.addr + "...")
	}

	switch m.registry.Active() {
	case nav.Areas:
		return m.renderAreas()
	case nav.Lights:
		return m.renderAllLights()
	default:
		return PlaceholderStyle.Render(m.registry.Active().String() + ": nothing to show yet")
	}
}

func (m Model) renderAreas() string {
	vs := m.registry.State()
	snap := m.snap

	rooms := make([]string, 0, snap.NRooms())
	for _, r := range snap.Rooms() {
		rooms = append(rooms, toggleItem(r.Name, r.On, ListWidth))
	}
	zones := make([]string, 0, snap.NZones())
	for _, z := range snap.Zones() {
		zones = append(zones, toggleItem(z.Name, z.On, ListWidth))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderPanel(nav.RoomList.String(), vs.View == nav.RoomList, rooms, vs.Room, ListWidth),
		renderPanel(nav.ZoneList.String(), vs.View == nav.ZoneList, zones, vs.Zone, ListWidth),
	)

	room, ok := vs.CurrentRoom(snap)
	if !ok {
		return lipgloss.JoinHorizontal(lipgloss.Top, left,
			PlaceholderStyle.Render("Select a room to see its scenes and lights"))
	}

	scenes := make([]string, 0, len(room.Scenes))
	for _, s := range room.Scenes {
		scenes = append(scenes, toggleItem(s.Name, false, ListWidth))
	}

	lightRows := make([]string, 0, len(room.Lights))
	for _, l := range vs.RoomLights(snap) {
		lightRows = append(lightRows, lightRow(l))
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(truncate(room.Name, 2*ListWidth)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderPanel(nav.SceneList.String(), vs.View == nav.SceneList, scenes, vs.Scene, ListWidth),
			renderPanel(nav.LightPanel.String(), vs.View == nav.LightPanel, lightRows, vs.Light, 0),
		),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// renderAllLights lists every light in canonical order. The tab is read-only.
func (m Model) renderAllLights() string {
	lights := inventory.SortLights(m.snap.Lights())
	rows := make([]string, 0, len(lights))
	for _, l := range lights {
		rows = append(rows, lightRow(l))
	}
	return renderPanel(nav.Lights.String(), true, rows, nav.None(), 0)
}

func lightRow(l inventory.Light) string {
	row := toggleItem(l.Name, l.On, ListWidth)
	row += strings.Repeat(" ", max(0, ListWidth-lipgloss.Width(row)+1))
	row += brightnessBar(l.Brightness, l.On)
	if !l.Reachable {
		row += " " + StatusErrorStyle.Render("unreachable")
	}
	return row
}

// renderPanel draws a titled, bordered list. The row under cursor is
// reversed; width 0 sizes the panel to its content.
func renderPanel(title string, focused bool, rows []string, cursor nav.Cursor, width int) string {
	titleStyle := PanelTitleStyle
	panelStyle := PanelStyle
	if focused {
		titleStyle = ActivePanelTitleStyle
		panelStyle = ActivePanelStyle
	}
	if width > 0 {
		panelStyle = panelStyle.Width(width)
	}

	selected, hasSelection := cursor.Index()

	lines := []string{titleStyle.Render(title)}
	if len(rows) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(SubtleColor).Render("  (none)"))
	}
	for i, row := range rows {
		if hasSelection && i == selected {
			lines = append(lines, SelectedItemStyle.Render(row))
		} else {
			lines = append(lines, ItemStyle.Render(row))
		}
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatusBar() string {
	if m.snap == nil {
		return StatusBarStyle.Render("waiting for first refresh")
	}

	parts := []string{
		fmt.Sprintf("%d %s", m.snap.NLights(), nav.Lights),
		fmt.Sprintf("%d %s", m.snap.NRooms(), nav.RoomList),
		fmt.Sprintf("%d %s", m.snap.NZones(), nav.ZoneList),
	}

	bridgeInfo := m.addr
	if m.snap.BridgeID != "" {
		bridgeInfo = m.snap.BridgeID + " @ " + m.addr
	}
	parts = append(parts, bridgeInfo)

	status := strings.Join(parts, " · ")
	if m.refreshErr != nil {
		status += " · " + StatusErrorStyle.Render(bridge.ShortMessage(m.refreshErr))
	}
	return StatusBarStyle.Render(status)
}
