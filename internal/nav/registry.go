package nav

import (
	"go.uber.org/zap"

	"github.com/rektdeckard/tinto/internal/inventory"
	"github.com/rektdeckard/tinto/internal/logging"
)

// Registry owns one ViewState per tab and tracks which tab is active.
//
// Navigation calls go to the active tab's state only. Switching tabs never
// touches any ViewState, so coming back to a tab restores it exactly.
type Registry struct {
	active Tab
	states map[Tab]*ViewState
}

// NewRegistry returns a registry with Areas active and every tab at its
// initial state.
func NewRegistry() *Registry {
	r := &Registry{
		active: Areas,
		states: make(map[Tab]*ViewState, len(Tabs)),
	}
	for _, t := range Tabs {
		vs := NewViewState(t)
		r.states[t] = &vs
	}
	return r
}

// Active returns the active tab.
func (r *Registry) Active() Tab {
	return r.active
}

// State returns a copy of the active tab's state.
func (r *Registry) State() ViewState {
	return *r.states[r.active]
}

// StateOf returns a copy of tab t's state.
func (r *Registry) StateOf(t Tab) (ViewState, bool) {
	vs, ok := r.states[t]
	if !ok {
		return ViewState{}, false
	}
	return *vs, true
}

// SwitchTab makes t the active tab. It reports false for unknown tabs.
func (r *Registry) SwitchTab(t Tab) bool {
	if !t.valid() {
		return false
	}
	if t != r.active {
		logging.Debug("Switched tab",
			zap.Stringer("from", r.active),
			zap.Stringer("to", t),
		)
	}
	r.active = t
	return true
}

// NextView advances the active tab's view.
func (r *Registry) NextView(snap *inventory.Snapshot) Outcome {
	return r.apply("next-view", func(vs *ViewState) Outcome { return vs.NextView(snap) })
}

// PrevView retreats the active tab's view.
func (r *Registry) PrevView(snap *inventory.Snapshot) Outcome {
	return r.apply("prev-view", func(vs *ViewState) Outcome { return vs.PrevView(snap) })
}

// NextItem advances the cursor of the active tab's current list.
func (r *Registry) NextItem(snap *inventory.Snapshot) Outcome {
	return r.apply("next-item", func(vs *ViewState) Outcome { return vs.NextItem(snap) })
}

// PrevItem retreats the cursor of the active tab's current list.
func (r *Registry) PrevItem(snap *inventory.Snapshot) Outcome {
	return r.apply("prev-item", func(vs *ViewState) Outcome { return vs.PrevItem(snap) })
}

// JumpTo switches the active tab directly to view v.
func (r *Registry) JumpTo(v RoomView) Outcome {
	return r.apply("jump", func(vs *ViewState) Outcome { return vs.JumpTo(v) })
}

func (r *Registry) apply(op string, fn func(*ViewState) Outcome) Outcome {
	vs := r.states[r.active]
	out := fn(vs)
	if out == Unsupported {
		logging.Debug("Navigation not supported on tab",
			zap.String("op", op),
			zap.Stringer("tab", r.active),
		)
	}
	return out
}
