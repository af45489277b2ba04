// Package loop runs the cooperative main loop: it blinks the status LED and
// applies pending button actions to the displayed digit.
package loop

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/fkcurrie/digit-matrix-golang/internal/counter"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

// DefaultBlink is the status LED half period (about 5Hz)
const DefaultBlink = 100 * time.Millisecond

// Display shows a digit
type Display interface {
	ShowDigit(d counter.Digit) error
}

// Config holds the loop's collaborators
type Config struct {
	Mailbox *input.Mailbox
	Display Display
	Status  types.Output
	Blink   time.Duration
	Logger  *log.Logger

	// Sleep defaults to time.Sleep
	Sleep func(time.Duration)

	// LogPresses logs the press behind each consumed action, for targets
	// whose edge handler cannot log from interrupt context
	LogPresses bool
}

// Loop owns the digit counter
type Loop struct {
	mailbox *input.Mailbox
	display Display
	status  types.Output
	blink   time.Duration
	logger  *log.Logger
	sleep   func(time.Duration)
	presses bool

	digit counter.Digit
}

// New creates a loop starting at digit 0
func New(cfg Config) (*Loop, error) {
	if cfg.Mailbox == nil || cfg.Display == nil || cfg.Status == nil {
		return nil, fmt.Errorf("mailbox, display and status output are required")
	}

	l := &Loop{
		mailbox: cfg.Mailbox,
		display: cfg.Display,
		status:  cfg.Status,
		blink:   cfg.Blink,
		logger:  cfg.Logger,
		sleep:   cfg.Sleep,
		presses: cfg.LogPresses,
	}
	if l.blink <= 0 {
		l.blink = DefaultBlink
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard, "", 0)
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}
	return l, nil
}

// Digit returns the current digit
func (l *Loop) Digit() counter.Digit {
	return l.digit
}

// Step runs one iteration: a full blink of the status LED, then the pending
// action if there is one. It reports whether the matrix was redrawn.
func (l *Loop) Step() (bool, error) {
	l.heartbeat()

	action, ok := l.mailbox.Take()
	if !ok {
		return false, nil
	}

	if l.presses {
		if b, ok := action.Button(); ok {
			l.logger.Printf("Button %s pressed: %s", b, action)
		}
	}

	l.digit = l.digit.Apply(action)
	l.logger.Printf("%s: %d", action, l.digit)

	if err := l.display.ShowDigit(l.digit); err != nil {
		return false, fmt.Errorf("failed to redraw digit %d: %w", l.digit, err)
	}
	return true, nil
}

func (l *Loop) heartbeat() {
	if err := l.status.SetValue(1); err != nil {
		l.logger.Printf("Failed to set status LED: %v", err)
	}
	l.sleep(l.blink)
	if err := l.status.SetValue(0); err != nil {
		l.logger.Printf("Failed to clear status LED: %v", err)
	}
	l.sleep(l.blink)
}

// Run draws the current digit and then steps until ctx is done. Redraw
// failures are logged and the loop carries on.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.display.ShowDigit(l.digit); err != nil {
		l.logger.Printf("Failed to draw initial digit: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := l.Step(); err != nil {
			l.logger.Printf("%v", err)
		}
	}
}
