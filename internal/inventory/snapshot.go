package inventory

import "time"

// Light is a single controllable light as reported by the bridge.
type Light struct {
	ID   string
	Name string

	// On reports whether the light is currently switched on
	On bool

	// Brightness is the dimming level in percent (0-100)
	Brightness float64

	// SupportsColor is true for lights that can render full color,
	// not just color temperature
	SupportsColor bool

	Reachable bool
}

// Scene is a stored light configuration that can be recalled on a room.
type Scene struct {
	ID      string
	Name    string
	GroupID string // Room the scene belongs to
}

// Room is a physical grouping of lights together with the scenes recorded for it.
type Room struct {
	ID     string // Group identifier on the bridge
	Name   string
	On     bool // Any light in the room is on
	Scenes []Scene
	Lights []Light
}

// SortedLights returns the room's lights in canonical order.
func (r Room) SortedLights() []Light {
	return SortLights(r.Lights)
}

// Zone groups lights independently of their rooms.
type Zone struct {
	ID     string
	Name   string
	On     bool
	Lights []Light
}

// Snapshot is a read-only view of the bridge inventory at one point in time.
//
// A Snapshot is never modified after it has been published to a Store;
// refreshes build and publish a new one. All methods are safe on a nil
// receiver so callers can render before the first refresh completes.
type Snapshot struct {
	BridgeID  string
	FetchedAt time.Time

	rooms  []Room
	zones  []Zone
	lights []Light
}

// NewSnapshot assembles a snapshot from already-resolved entities.
func NewSnapshot(bridgeID string, rooms []Room, zones []Zone, lights []Light) *Snapshot {
	return &Snapshot{
		BridgeID:  bridgeID,
		FetchedAt: time.Now(),
		rooms:     rooms,
		zones:     zones,
		lights:    lights,
	}
}

// Rooms returns all rooms in bridge order.
func (s *Snapshot) Rooms() []Room {
	if s == nil {
		return nil
	}
	return s.rooms
}

// Zones returns all zones in bridge order.
func (s *Snapshot) Zones() []Zone {
	if s == nil {
		return nil
	}
	return s.zones
}

// Lights returns every light known to the bridge in bridge order.
func (s *Snapshot) Lights() []Light {
	if s == nil {
		return nil
	}
	return s.lights
}

func (s *Snapshot) NRooms() int  { return len(s.Rooms()) }
func (s *Snapshot) NZones() int  { return len(s.Zones()) }
func (s *Snapshot) NLights() int { return len(s.Lights()) }

// Room returns the room at index i, or false when i is out of range.
func (s *Snapshot) Room(i int) (Room, bool) {
	rooms := s.Rooms()
	if i < 0 || i >= len(rooms) {
		return Room{}, false
	}
	return rooms[i], true
}

// Zone returns the zone at index i, or false when i is out of range.
func (s *Snapshot) Zone(i int) (Zone, bool) {
	zones := s.Zones()
	if i < 0 || i >= len(zones) {
		return Zone{}, false
	}
	return zones[i], true
}
