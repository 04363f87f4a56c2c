package bridge

import (
	"context"
	"sync"

	"github.com/amimof/huego"
)

type stateCall struct {
	ID    int
	State huego.State
}

type recallCall struct {
	Scene string
	Group int
}

// fakeAPI records writes and serves canned inventory. lightsErrs are
// returned by successive GetLightsContext calls before succeeding.
type fakeAPI struct {
	mu sync.Mutex

	config *huego.Config
	lights []huego.Light
	groups []huego.Group
	scenes []huego.Scene

	lightsErrs  []error
	lightsCalls int
	writeErr    error

	lightStates []stateCall
	groupStates []stateCall
	recalls     []recallCall
}

func (f *fakeAPI) GetConfigContext(ctx context.Context) (*huego.Config, error) {
	return f.config, nil
}

func (f *fakeAPI) GetLightsContext(ctx context.Context) ([]huego.Light, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lightsCalls++
	if len(f.lightsErrs) > 0 {
		err := f.lightsErrs[0]
		f.lightsErrs = f.lightsErrs[1:]
		return nil, err
	}
	return append([]huego.Light(nil), f.lights...), nil
}

func (f *fakeAPI) GetGroupsContext(ctx context.Context) ([]huego.Group, error) {
	return append([]huego.Group(nil), f.groups...), nil
}

func (f *fakeAPI) GetScenesContext(ctx context.Context) ([]huego.Scene, error) {
	return append([]huego.Scene(nil), f.scenes...), nil
}

func (f *fakeAPI) SetLightStateContext(ctx context.Context, id int, s huego.State) (*huego.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lightStates = append(f.lightStates, stateCall{id, s})
	return &huego.Response{}, f.writeErr
}

func (f *fakeAPI) SetGroupStateContext(ctx context.Context, id int, s huego.State) (*huego.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupStates = append(f.groupStates, stateCall{id, s})
	return &huego.Response{}, f.writeErr
}

func (f *fakeAPI) RecallSceneContext(ctx context.Context, id string, gid int) (*huego.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recalls = append(f.recalls, recallCall{id, gid})
	return &huego.Response{}, f.writeErr
}

func testInventory() *fakeAPI {
	return &fakeAPI{
		config: &huego.Config{BridgeID: "001788FFFE000000"},
		lights: []huego.Light{
			{ID: 3, Name: "Strip", Type: "Color light", State: &huego.State{On: true, Bri: 254, Reachable: true}},
			{ID: 1, Name: "Lamp", Type: "Dimmable light", State: &huego.State{On: false, Bri: 127}},
			{ID: 2, Name: "Bloom", Type: "Extended color light", State: &huego.State{On: true, Bri: 0, Reachable: true}},
			{ID: 4, Name: "Ceiling", Type: "Color temperature light"},
		},
		groups: []huego.Group{
			{ID: 5, Name: "Upstairs", Type: "Zone", Lights: []string{"4"}},
			{ID: 1, Name: "Living Room", Type: "Room", Lights: []string{"1", "2", "3", "99"}, GroupState: &huego.GroupState{AnyOn: true}},
			{ID: 2, Name: "Office", Type: "Room", Lights: []string{"4"}, GroupState: &huego.GroupState{}},
			{ID: 9, Name: "Entertainment", Type: "Entertainment", Lights: []string{"2", "3"}},
		},
		scenes: []huego.Scene{
			{ID: "s-relax", Name: "Relax", Type: "GroupScene", Group: "1"},
			{ID: "s-bright", Name: "Bright", Type: "GroupScene", Group: "1"},
			{ID: "s-legacy", Name: "Legacy", Type: "LightScene"},
			{ID: "s-focus", Name: "Focus", Type: "GroupScene", Group: "2"},
		},
	}
}
