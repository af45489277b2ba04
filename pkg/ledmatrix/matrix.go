// Package ledmatrix keeps a pixel buffer for a small grid of addressable
// LEDs and pushes it down a colour chain in wiring order.
package ledmatrix

import (
	"fmt"
	"image/color"
	"io"
	"sync"
)

const (
	// Default configuration for a 5x5 WS2812 matrix
	DefaultWidth      = 5
	DefaultHeight     = 5
	DefaultBrightness = 255
)

// Chain is a daisy chain of addressable LEDs. The first colour goes to the
// first LED on the data line.
type Chain interface {
	WriteColors(buf []color.RGBA) error
}

// Config holds the configuration for the LED matrix
type Config struct {
	Width      int
	Height     int
	Brightness int
	// Serpentine reverses every odd row, for panels wired back and forth.
	Serpentine bool
}

// Matrix represents an addressable LED matrix display
type Matrix struct {
	width      int
	height     int
	brightness int
	serpentine bool
	chain      Chain
	buffer     []color.RGBA
	out        []color.RGBA
	mu         sync.RWMutex
}

// NewMatrix creates a new LED matrix display on chain
func NewMatrix(cfg *Config, chain Chain) (*Matrix, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.Brightness < 0 || cfg.Brightness > 255 {
		return nil, fmt.Errorf("brightness must be between 0 and 255")
	}

	if chain == nil {
		return nil, fmt.Errorf("chain is nil")
	}

	n := cfg.Width * cfg.Height
	return &Matrix{
		width:      cfg.Width,
		height:     cfg.Height,
		brightness: cfg.Brightness,
		serpentine: cfg.Serpentine,
		chain:      chain,
		buffer:     make([]color.RGBA, n),
		out:        make([]color.RGBA, n),
	}, nil
}

// Close closes the LED matrix and its chain when the chain holds resources
func (m *Matrix) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.chain.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Clear turns every LED off
func (m *Matrix) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.buffer {
		m.buffer[i] = color.RGBA{}
	}

	return m.show()
}

// index maps grid coordinates to a position on the chain
func (m *Matrix) index(x, y int) int {
	if m.serpentine && y%2 == 1 {
		return y*m.width + (m.width - 1 - x)
	}
	return y*m.width + x
}

// SetPixel sets a pixel at the given coordinates to the given color
func (m *Matrix) SetPixel(x, y int, c color.Color) error {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.buffer[m.index(x, y)] = color.RGBAModel.Convert(c).(color.RGBA)
	return nil
}

// GetPixelColor gets the color of a pixel at the given coordinates
func (m *Matrix) GetPixelColor(x, y int) (r, g, b uint8, err error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, 0, 0, fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c := m.buffer[m.index(x, y)]
	return c.R, c.G, c.B, nil
}

// Show updates the display with the current buffer
func (m *Matrix) Show() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.show()
}

// show assumes the mutex is already locked
func (m *Matrix) show() error {
	for i, c := range m.buffer {
		m.out[i] = scale(c, m.brightness)
	}

	if err := m.chain.WriteColors(m.out); err != nil {
		return fmt.Errorf("failed to write LED chain: %w", err)
	}
	return nil
}

// Fill fills the entire matrix with a color
func (m *Matrix) Fill(c color.Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for i := range m.buffer {
		m.buffer[i] = rgba
	}

	return m.show()
}

// SetBrightness sets the brightness of the LED matrix
func (m *Matrix) SetBrightness(brightness int) error {
	if brightness < 0 || brightness > 255 {
		return fmt.Errorf("brightness must be between 0 and 255")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.brightness = brightness
	return nil
}

// GetBrightness returns the current brightness of the LED matrix
func (m *Matrix) GetBrightness() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.brightness
}

// GetDimensions returns the dimensions of the LED matrix
func (m *Matrix) GetDimensions() (width, height int) {
	return m.width, m.height
}

func scale(c color.RGBA, brightness int) color.RGBA {
	if brightness == 255 {
		return c
	}
	b := uint32(brightness)
	return color.RGBA{
		R: uint8(uint32(c.R) * b / 255),
		G: uint8(uint32(c.G) * b / 255),
		B: uint8(uint32(c.B) * b / 255),
		A: c.A,
	}
}
