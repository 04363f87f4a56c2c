package nav

import "github.com/rektdeckard/tinto/internal/inventory"

// Outcome describes what a navigation operation did.
type Outcome int

const (
	// Unchanged means the operation was valid but nothing moved, e.g. a
	// cursor already clamped at the end of its list
	Unchanged Outcome = iota

	// Moved means a cursor changed
	Moved

	// Descended means the view moved one or more levels deeper
	Descended

	// Ascended means the view moved one or more levels shallower
	Ascended

	// Unsupported means the active tab has no behavior for the operation.
	// Callers must treat it as a no-op.
	Unsupported
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Moved:
		return "moved"
	case Descended:
		return "descended"
	case Ascended:
		return "ascended"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ViewState is the navigation state of one tab: the current drill-down
// level and one cursor per list.
type ViewState struct {
	Tab  Tab
	View RoomView

	Room  Cursor
	Zone  Cursor
	Scene Cursor
	Light Cursor
}

// NewViewState returns the initial state for a tab: RoomList with nothing
// selected.
func NewViewState(t Tab) ViewState {
	return ViewState{Tab: t, View: RoomList}
}

// NextView moves one level deeper. On the LightPanel, which has no deeper
// level, it advances the light cursor instead.
func (vs *ViewState) NextView(snap *inventory.Snapshot) Outcome {
	if !vs.Tab.HasDrillDown() {
		return Unsupported
	}

	if vs.View == LightPanel {
		return vs.moveLight(vs.Light.Advance(len(vs.RoomLights(snap))))
	}

	vs.View = vs.View.deeper()
	return Descended
}

// PrevView moves one level shallower. On the LightPanel the light cursor is
// walked back first; the view only pops to SceneList once the light cursor
// is at rest (nothing selected or the first light).
func (vs *ViewState) PrevView(snap *inventory.Snapshot) Outcome {
	if !vs.Tab.HasDrillDown() {
		return Unsupported
	}

	switch vs.View {
	case LightPanel:
		if vs.Light.AtStart() {
			vs.View = SceneList
			return Ascended
		}
		next, _ := vs.Light.Retreat(len(vs.RoomLights(snap)))
		return vs.moveLight(next)

	case RoomList:
		return Unchanged

	default:
		vs.View = vs.View.shallower()
		return Ascended
	}
}

// NextItem advances the cursor of the list the current view shows.
func (vs *ViewState) NextItem(snap *inventory.Snapshot) Outcome {
	if !vs.Tab.HasDrillDown() {
		return Unsupported
	}

	switch vs.View {
	case RoomList:
		return vs.moveRoom(vs.Room.Advance(snap.NRooms()))

	case ZoneList:
		return vs.moveZone(vs.Zone.Advance(snap.NZones()))

	case SceneList:
		room, ok := vs.CurrentRoom(snap)
		if !ok {
			return Unchanged
		}
		return vs.moveScene(vs.Scene.Advance(len(room.Scenes)))

	case LightPanel:
		return vs.selectLight(snap)
	}

	return Unchanged
}

// PrevItem moves the cursor of the current list back one item, staying on
// the first item at the boundary.
func (vs *ViewState) PrevItem(snap *inventory.Snapshot) Outcome {
	if !vs.Tab.HasDrillDown() {
		return Unsupported
	}

	switch vs.View {
	case RoomList:
		next, _ := vs.Room.Retreat(snap.NRooms())
		return vs.moveRoom(next)

	case ZoneList:
		next, _ := vs.Zone.Retreat(snap.NZones())
		return vs.moveZone(next)

	case SceneList:
		room, ok := vs.CurrentRoom(snap)
		if !ok {
			return Unchanged
		}
		next, _ := vs.Scene.Retreat(len(room.Scenes))
		return vs.moveScene(next)

	case LightPanel:
		return vs.selectLight(snap)
	}

	return Unchanged
}

// JumpTo switches directly to view v. Unlike NextView and PrevView it may
// cross several levels; cursors are left as they are.
func (vs *ViewState) JumpTo(v RoomView) Outcome {
	if !vs.Tab.HasDrillDown() || !v.valid() {
		return Unsupported
	}

	prev := vs.View
	vs.View = v
	switch {
	case v > prev:
		return Descended
	case v < prev:
		return Ascended
	default:
		return Unchanged
	}
}

// selectLight makes sure a light is selected on the panel. Moving between
// lights is done with NextView/PrevView; item keys act on the selected light.
func (vs *ViewState) selectLight(snap *inventory.Snapshot) Outcome {
	if _, ok := vs.CurrentRoom(snap); !ok {
		return Unchanged
	}
	if vs.Light.IsSet() {
		return Unchanged
	}
	return vs.moveLight(vs.Light.Advance(len(vs.RoomLights(snap))))
}

// moveRoom changes the room cursor. Scenes and lights belong to the room, so
// their cursors are cleared whenever the room cursor is touched.
func (vs *ViewState) moveRoom(next Cursor) Outcome {
	prev := vs.Room
	vs.Room = next
	vs.Scene = vs.Scene.Clear()
	vs.Light = vs.Light.Clear()
	return changed(prev, next)
}

// moveZone changes the zone cursor and clears the scene cursor.
func (vs *ViewState) moveZone(next Cursor) Outcome {
	prev := vs.Zone
	vs.Zone = next
	vs.Scene = vs.Scene.Clear()
	return changed(prev, next)
}

func (vs *ViewState) moveScene(next Cursor) Outcome {
	prev := vs.Scene
	vs.Scene = next
	return changed(prev, next)
}

func (vs *ViewState) moveLight(next Cursor) Outcome {
	prev := vs.Light
	vs.Light = next
	return changed(prev, next)
}

func changed(prev, next Cursor) Outcome {
	if prev == next {
		return Unchanged
	}
	return Moved
}
