package nav

import "github.com/rektdeckard/tinto/internal/inventory"

// CurrentRoom returns the room the room cursor points at. It returns false
// when the tab has no rooms, nothing is selected, or the snapshot no longer
// has that many rooms.
func (vs ViewState) CurrentRoom(snap *inventory.Snapshot) (inventory.Room, bool) {
	if !vs.Tab.HasDrillDown() {
		return inventory.Room{}, false
	}
	i, ok := vs.Room.Index()
	if !ok {
		return inventory.Room{}, false
	}
	return snap.Room(i)
}

// CurrentZone returns the zone the zone cursor points at.
func (vs ViewState) CurrentZone(snap *inventory.Snapshot) (inventory.Zone, bool) {
	if !vs.Tab.HasDrillDown() {
		return inventory.Zone{}, false
	}
	i, ok := vs.Zone.Index()
	if !ok {
		return inventory.Zone{}, false
	}
	return snap.Zone(i)
}

// CurrentScene returns the selected scene of the current room.
func (vs ViewState) CurrentScene(snap *inventory.Snapshot) (inventory.Scene, bool) {
	room, ok := vs.CurrentRoom(snap)
	if !ok {
		return inventory.Scene{}, false
	}
	i, ok := vs.Scene.Index()
	if !ok || i >= len(room.Scenes) {
		return inventory.Scene{}, false
	}
	return room.Scenes[i], true
}

// CurrentLight returns the selected light of the current room. The light
// cursor indexes the room's lights in canonical order.
func (vs ViewState) CurrentLight(snap *inventory.Snapshot) (inventory.Light, bool) {
	lights := vs.RoomLights(snap)
	i, ok := vs.Light.Index()
	if !ok || i >= len(lights) {
		return inventory.Light{}, false
	}
	return lights[i], true
}

// RoomLights returns the current room's lights in canonical order, or nil
// when no room resolves. Renderers must list lights through this to stay in
// step with the light cursor.
func (vs ViewState) RoomLights(snap *inventory.Snapshot) []inventory.Light {
	room, ok := vs.CurrentRoom(snap)
	if !ok {
		return nil
	}
	return room.SortedLights()
}
