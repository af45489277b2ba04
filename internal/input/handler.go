// Package input turns raw button edges into debounced actions for the main loop.
package input

import (
	"io"
	"log"
	"time"

	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

// DefaultThreshold is the minimum gap between accepted edges
const DefaultThreshold = 200 * time.Millisecond

// Handler debounces edges from both buttons against one shared timestamp.
// HandleEdge must only be called from a single context (the pin interrupt
// or the GPIO watcher goroutine); it never blocks.
type Handler struct {
	mailbox   *Mailbox
	threshold time.Duration
	logger    *log.Logger

	last     time.Duration
	accepted bool
}

// NewHandler creates a handler posting to mb. A nil logger discards diagnostics.
func NewHandler(mb *Mailbox, threshold time.Duration, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Handler{
		mailbox:   mb,
		threshold: threshold,
		logger:    logger,
	}
}

// HandleEdge processes one edge and reports whether it was accepted by the
// debounce check. Rising edges that pass the check still move the window.
func (h *Handler) HandleEdge(ev types.EdgeEvent) bool {
	if h.accepted && ev.At-h.last < h.threshold {
		return false
	}

	if ev.Edge == types.EdgeFalling && ev.Active {
		action := ev.Button.Action()
		h.mailbox.Post(action)
		h.logger.Printf("Button %s pressed: %s", ev.Button, action)
	}

	h.last = ev.At
	h.accepted = true
	return true
}
