package display

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/fkcurrie/digit-matrix-golang/internal/counter"
	"github.com/fkcurrie/digit-matrix-golang/internal/glyph"
	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

// Default rendering parameters
const (
	// SettleTime lets the LED chain latch after a frame
	SettleTime = 50 * time.Microsecond
)

var (
	// On is the colour of a lit cell
	On = color.RGBA{R: 255, A: 255}
	// Off is the colour of an unlit cell
	Off = color.RGBA{A: 255}
)

// Renderer draws digit glyphs on a matrix
type Renderer struct {
	matrix types.Matrix
	on     color.Color
	off    color.Color
	settle time.Duration
	sleep  func(time.Duration)
	mu     sync.Mutex
}

// NewRenderer creates a new renderer drawing red digits on matrix
func NewRenderer(matrix types.Matrix) *Renderer {
	return &Renderer{
		matrix: matrix,
		on:     On,
		off:    Off,
		settle: SettleTime,
		sleep:  time.Sleep,
	}
}

// SetColor changes the colour of lit cells
func (r *Renderer) SetColor(c color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.on = c
}

// ShowDigit draws digit d and waits for the chain to latch
func (r *Renderer) ShowDigit(d counter.Digit) error {
	return r.ShowGlyph(glyph.Lookup(d.Int()))
}

// ShowGlyph writes all 25 cells in chain order, shows them and waits for
// the settle time. It blocks for the whole transmission.
func (r *Renderer) ShowGlyph(g glyph.Glyph) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < glyph.Cells; i++ {
		c := r.off
		if g.Lit(i) {
			c = r.on
		}
		if err := r.matrix.SetPixel(i%glyph.Width, i/glyph.Width, c); err != nil {
			return fmt.Errorf("failed to set cell %d: %w", i, err)
		}
	}

	if err := r.matrix.Show(); err != nil {
		return fmt.Errorf("failed to show glyph: %w", err)
	}

	r.sleep(r.settle)
	return nil
}
