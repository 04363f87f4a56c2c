package nav

// Tab is a top-level mode of the dashboard.
type Tab int

const (
	Areas Tab = iota
	Lights
	Sensors
	Routines
)

// Tabs lists every tab in display order.
var Tabs = []Tab{Areas, Lights, Sensors, Routines}

// String returns the short label shown in the tab bar
func (t Tab) String() string {
	switch t {
	case Areas:
		return "AREA"
	case Lights:
		return "LGTS"
	case Sensors:
		return "SENS"
	case Routines:
		return "RTNS"
	default:
		return "????"
	}
}

// HotkeyIndex returns the position of the label character that selects the
// tab, so the tab bar can underline it.
func (t Tab) HotkeyIndex() int {
	if t == Areas {
		return 0
	}
	return 1
}

// Index returns the tab's position in Tabs.
func (t Tab) Index() int {
	return int(t)
}

// HasDrillDown reports whether the tab has navigable views. Only Areas does
// for now; the others render read-only or placeholder content.
func (t Tab) HasDrillDown() bool {
	return t == Areas
}

func (t Tab) valid() bool {
	return t >= Areas && t <= Routines
}
