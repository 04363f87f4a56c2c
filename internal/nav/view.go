package nav

// RoomView is a drill-down level of the Areas tab, ordered from the root
// (RoomList) to the deepest level (LightPanel).
type RoomView int

const (
	RoomList RoomView = iota
	ZoneList
	SceneList
	LightPanel
)

// Depth returns how many levels below RoomList the view is.
func (v RoomView) Depth() int {
	return int(v)
}

// String returns the view's panel title
func (v RoomView) String() string {
	switch v {
	case RoomList:
		return "ROOMS"
	case ZoneList:
		return "ZONES"
	case SceneList:
		return "SCNS"
	case LightPanel:
		return "LGTS"
	default:
		return "UNKNOWN"
	}
}

func (v RoomView) deeper() RoomView {
	if v >= LightPanel {
		return LightPanel
	}
	return v + 1
}

func (v RoomView) shallower() RoomView {
	if v <= RoomList {
		return RoomList
	}
	return v - 1
}

func (v RoomView) valid() bool {
	return v >= RoomList && v <= LightPanel
}
