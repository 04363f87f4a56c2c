package dispatch

import (
	"github.com/rektdeckard/tinto/internal/inventory"
	"github.com/rektdeckard/tinto/internal/nav"
)

// DefaultDimStep is the brightness change per key press, in percent.
const DefaultDimStep = 10

// Direction of a brightness change.
type Direction int

const (
	Down Direction = iota
	Up
)

// Planner turns the current navigation state into device commands.
// It never mutates the state or the snapshot.
type Planner struct {
	DimStep int
}

// NewPlanner returns a planner using step percent per dim command. Values
// outside 1-100 use DefaultDimStep.
func NewPlanner(step int) Planner {
	if step <= 0 || step > 100 {
		step = DefaultDimStep
	}
	return Planner{DimStep: step}
}

// Activate returns the command for confirming the current selection:
//
//   - RoomList, ZoneList: toggle the selected group
//   - SceneList: recall the selected scene
//   - LightPanel: toggle the selected light, or signal the room when no
//     light is selected
//
// It returns false when nothing resolves, including a cursor that points
// past the current inventory.
func (p Planner) Activate(vs nav.ViewState, snap *inventory.Snapshot) (Command, bool) {
	if !vs.Tab.HasDrillDown() {
		return Command{}, false
	}

	switch vs.View {
	case nav.RoomList:
		room, ok := vs.CurrentRoom(snap)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: ToggleGroup, TargetID: room.ID, Name: room.Name, On: !room.On}, true

	case nav.ZoneList:
		zone, ok := vs.CurrentZone(snap)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: ToggleGroup, TargetID: zone.ID, Name: zone.Name, On: !zone.On}, true

	case nav.SceneList:
		scene, ok := vs.CurrentScene(snap)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: RecallScene, TargetID: scene.ID, GroupID: scene.GroupID, Name: scene.Name}, true

	case nav.LightPanel:
		room, ok := vs.CurrentRoom(snap)
		if !ok {
			return Command{}, false
		}
		if !vs.Light.IsSet() {
			return Command{
				Kind:     Signal,
				TargetID: room.ID,
				Name:     room.Name,
				On:       room.On,
				Duration: SignalDuration,
				Colors:   SignalColors,
			}, true
		}
		light, ok := vs.CurrentLight(snap)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: ToggleLight, TargetID: light.ID, Name: light.Name, On: !light.On}, true
	}

	return Command{}, false
}

// Dim returns a relative brightness command for the selected light. Only the
// LightPanel dims; elsewhere it returns false.
func (p Planner) Dim(vs nav.ViewState, snap *inventory.Snapshot, dir Direction) (Command, bool) {
	if !vs.Tab.HasDrillDown() || vs.View != nav.LightPanel {
		return Command{}, false
	}

	light, ok := vs.CurrentLight(snap)
	if !ok {
		return Command{}, false
	}

	delta := p.step()
	if dir == Down {
		delta = -delta
	}
	return Command{Kind: Dim, TargetID: light.ID, Name: light.Name, On: light.On, Delta: delta}, true
}

func (p Planner) step() int {
	if p.DimStep <= 0 {
		return DefaultDimStep
	}
	return p.DimStep
}
