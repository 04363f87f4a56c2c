package dispatch

import (
	"context"
	"fmt"
	"time"
)

// Kind identifies a device command.
type Kind int

const (
	ToggleGroup Kind = iota
	ToggleLight
	RecallScene
	Dim
	Signal
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case ToggleGroup:
		return "toggle-group"
	case ToggleLight:
		return "toggle-light"
	case RecallScene:
		return "recall-scene"
	case Dim:
		return "dim"
	case Signal:
		return "signal"
	default:
		return "unknown"
	}
}

// Signal effect parameters for a room without a selected light.
const SignalDuration = 8 * time.Second

// SignalColors are the two colors the signal alternates between.
var SignalColors = []string{"#d2991d", "#1a5c85"}

// Command is a fully resolved device command. It carries everything the
// executor needs, so it can run after the inventory has been refreshed.
type Command struct {
	Kind Kind

	// TargetID is the light, group or scene the command addresses
	TargetID string

	// GroupID is the group a scene is recalled on
	GroupID string

	// Name is the target's display name, used for logging
	Name string

	// On is the on/off state to send. Toggles carry the desired state,
	// other commands carry the target's current state.
	On bool

	// Delta is the brightness change in percent for Dim
	Delta int

	// Duration and Colors parameterize Signal
	Duration time.Duration
	Colors   []string
}

// String implements fmt.Stringer
func (c Command) String() string {
	switch c.Kind {
	case Dim:
		return fmt.Sprintf("%s %q %+d%%", c.Kind, c.Name, c.Delta)
	case ToggleGroup, ToggleLight:
		state := "off"
		if c.On {
			state = "on"
		}
		return fmt.Sprintf("%s %q %s", c.Kind, c.Name, state)
	default:
		return fmt.Sprintf("%s %q", c.Kind, c.Name)
	}
}

// Executor sends commands to the device.
type Executor interface {
	Execute(ctx context.Context, cmd Command) error
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, cmd Command) error

// Execute calls f(ctx, cmd).
func (f ExecutorFunc) Execute(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}
