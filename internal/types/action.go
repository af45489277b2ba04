package types

import "time"

// Action is the pending request handed from the edge handler to the main loop
type Action uint8

const (
	// Possible actions
	ActionNone Action = iota
	ActionIncrement
	ActionDecrement
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionIncrement:
		return "Increment"
	case ActionDecrement:
		return "Decrement"
	}
	return "Unknown"
}

// Button identifies one of the two input buttons
type Button uint8

const (
	ButtonA Button = iota // increments
	ButtonB               // decrements
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	}
	return "?"
}

// Action returns the action a press of the button requests
func (b Button) Action() Action {
	switch b {
	case ButtonA:
		return ActionIncrement
	case ButtonB:
		return ActionDecrement
	}
	return ActionNone
}

// Button returns the button whose press requests a
func (a Action) Button() (Button, bool) {
	switch a {
	case ActionIncrement:
		return ButtonA, true
	case ActionDecrement:
		return ButtonB, true
	}
	return 0, false
}

// Edge is the direction of a voltage transition on an input line
type Edge uint8

const (
	EdgeRising Edge = iota + 1
	EdgeFalling
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	}
	return "none"
}

// EdgeEvent is a single transition seen on a button line
type EdgeEvent struct {
	Button Button
	Edge   Edge
	// Active reports whether the line read logically active (pressed)
	// when the event was handled.
	Active bool
	// At is a monotonic timestamp of the event.
	At time.Duration
}
