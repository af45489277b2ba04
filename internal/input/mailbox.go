package input

import (
	"sync/atomic"

	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

const pendingBit = 1 << 8

// Mailbox is a single-slot handoff from the edge handler to the main loop.
// The action and the pending flag share one atomic word so they are
// published together. A Post before the previous action is taken replaces it.
type Mailbox struct {
	slot atomic.Uint32
}

// Post records a as the pending action
func (m *Mailbox) Post(a types.Action) {
	m.slot.Store(pendingBit | uint32(a))
}

// Take empties the slot and returns what it held
func (m *Mailbox) Take() (types.Action, bool) {
	v := m.slot.Swap(0)
	if v&pendingBit == 0 {
		return types.ActionNone, false
	}
	return types.Action(v & 0xff), true
}

// Pending reports whether an action is waiting
func (m *Mailbox) Pending() bool {
	return m.slot.Load()&pendingBit != 0
}
