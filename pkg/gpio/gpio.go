// Package gpio wraps GPIO character-device lines for outputs and
// edge-watched inputs.
package gpio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Consumer is the label shown for our lines in gpioinfo
const Consumer = "digit-matrix"

// line is the part of *gpiocdev.Line a Pin drives
type line interface {
	SetValue(int) error
	Value() (int, error)
	Close() error
}

// Pin represents an output GPIO line
type Pin struct {
	chip   string
	offset int
	line   line
	mu     sync.Mutex

	// sleep defaults to time.Sleep
	sleep func(time.Duration)
}

// NewPin requests offset on chip as an output, initially low
func NewPin(chip string, offset int) (*Pin, error) {
	log.Printf("Requesting GPIO %s:%d as output", chip, offset)

	ln, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return nil, fmt.Errorf("failed to request output line %s:%d: %w", chip, offset, err)
	}

	return &Pin{
		chip:   chip,
		offset: offset,
		line:   ln,
		sleep:  time.Sleep,
	}, nil
}

// Close releases the line
func (p *Pin) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	log.Printf("Releasing GPIO %s:%d", p.chip, p.offset)
	return p.line.Close()
}

// SetValue sets the value of the GPIO pin (0 or 1)
func (p *Pin) SetValue(value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.line.SetValue(value); err != nil {
		return fmt.Errorf("failed to set %s:%d to %d: %w", p.chip, p.offset, value, err)
	}
	return nil
}

// GetValue gets the value of the GPIO pin (0 or 1)
func (p *Pin) GetValue() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, err := p.line.Value()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s:%d: %w", p.chip, p.offset, err)
	}
	return v, nil
}

// Pulse drives the pin high for duration, then low
func (p *Pin) Pulse(duration time.Duration) error {
	if err := p.SetValue(1); err != nil {
		return err
	}

	p.sleep(duration)

	return p.SetValue(0)
}

// Edge is one transition reported on a watched input
type Edge struct {
	Offset int
	Rising bool
	// Level is the line value read when the edge was delivered
	Level int
	// Timestamp is the kernel's monotonic event time
	Timestamp time.Duration
}

// EdgeHandler receives input edges. All edges of one Inputs are delivered
// sequentially from a single goroutine.
type EdgeHandler func(Edge)

// Inputs is a set of pulled-up input lines watched for both edges
type Inputs struct {
	chip    string
	offsets []int
	lines   atomic.Pointer[gpiocdev.Lines]
}

// WatchInputs requests offsets on chip as pulled-up inputs and calls h for
// every rising and falling edge on any of them.
func WatchInputs(chip string, offsets []int, h EdgeHandler) (*Inputs, error) {
	log.Printf("Requesting GPIO %s:%v as inputs with both edges", chip, offsets)

	in := &Inputs{
		chip:    chip,
		offsets: append([]int(nil), offsets...),
	}

	lines, err := gpiocdev.RequestLines(chip, offsets,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithBothEdges,
		gpiocdev.WithConsumer(Consumer),
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			h(in.edge(evt))
		}))
	if err != nil {
		return nil, fmt.Errorf("failed to request input lines %s:%v: %w", chip, offsets, err)
	}
	in.lines.Store(lines)

	return in, nil
}

// edge converts a gpiocdev event, reading the line's current level
func (in *Inputs) edge(evt gpiocdev.LineEvent) Edge {
	e := Edge{
		Offset:    evt.Offset,
		Rising:    evt.Type == gpiocdev.LineEventRisingEdge,
		Timestamp: evt.Timestamp,
	}

	// Before the request returns there is nothing to read from, so
	// assume the line settled at the level the edge moved it to.
	e.Level = 0
	if e.Rising {
		e.Level = 1
	}
	if v, err := in.Value(evt.Offset); err == nil {
		e.Level = v
	}
	return e
}

// Value reads the current level of one watched offset
func (in *Inputs) Value(offset int) (int, error) {
	lines := in.lines.Load()
	if lines == nil {
		return 0, fmt.Errorf("inputs %s:%v not ready", in.chip, in.offsets)
	}

	idx := -1
	for i, o := range in.offsets {
		if o == offset {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("offset %d is not watched", offset)
	}

	values := make([]int, len(in.offsets))
	if err := lines.Values(values); err != nil {
		return 0, fmt.Errorf("failed to read inputs %s:%v: %w", in.chip, in.offsets, err)
	}
	return values[idx], nil
}

// Close releases the input lines and stops edge delivery
func (in *Inputs) Close() error {
	lines := in.lines.Swap(nil)
	if lines == nil {
		return nil
	}

	log.Printf("Releasing GPIO %s:%v", in.chip, in.offsets)
	return lines.Close()
}
