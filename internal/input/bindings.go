package input

import (
	"time"

	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

// Bindings maps a pin or line offset to the button wired to it. Buttons are
// active low: a line reading 0 is pressed.
type Bindings map[int]types.Button

// Event builds the edge event for a transition on pin. It reports false for
// pins that have no button bound.
func (b Bindings) Event(pin int, rising bool, level int, at time.Duration) (types.EdgeEvent, bool) {
	button, ok := b[pin]
	if !ok {
		return types.EdgeEvent{}, false
	}

	edge := types.EdgeFalling
	if rising {
		edge = types.EdgeRising
	}

	return types.EdgeEvent{
		Button: button,
		Edge:   edge,
		Active: level == 0,
		At:     at,
	}, true
}
