// Package spiled drives a WS2812 LED chain from the MOSI line of an SPI bus.
package spiled

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
)

// Frequency is three SPI bits per 800kHz WS2812 bit
const Frequency = 2500 * physic.KiloHertz

// Strip is a WS2812 chain of a fixed length on an SPI port
type Strip struct {
	dev    *nrzled.Dev
	port   spi.PortCloser
	pixels int
	raw    []byte
	mu     sync.Mutex
}

// New creates a strip of n LEDs on port. The port is not closed by Close.
func New(port spi.Port, n int) (*Strip, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid LED count %d", n)
	}

	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: n,
		Channels:  3,
		Freq:      Frequency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LED chain on %s: %w", port, err)
	}

	return &Strip{
		dev:    dev,
		pixels: n,
		raw:    make([]byte, 3*n),
	}, nil
}

// Open opens the named SPI port ("" for the first one) and creates a strip
// of n LEDs on it. periph host drivers must be initialised first.
func Open(name string, n int) (*Strip, error) {
	log.Printf("Opening SPI port %q for %d LEDs", name, n)

	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %q: %w", name, err)
	}

	s, err := New(port, n)
	if err != nil {
		port.Close()
		return nil, err
	}
	s.port = port
	return s, nil
}

// Len returns the number of LEDs in the chain
func (s *Strip) Len() int {
	return s.pixels
}

// WriteColors sends one colour per LED. LEDs past the end of buf are sent
// black.
func (s *Strip) WriteColors(buf []color.RGBA) error {
	if len(buf) > s.pixels {
		return fmt.Errorf("got %d colours for %d LEDs", len(buf), s.pixels)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.raw {
		s.raw[i] = 0
	}
	for i, c := range buf {
		s.raw[3*i] = c.R
		s.raw[3*i+1] = c.G
		s.raw[3*i+2] = c.B
	}

	if _, err := s.dev.Write(s.raw); err != nil {
		return fmt.Errorf("failed to write %d LEDs: %w", len(buf), err)
	}
	return nil
}

// Close turns the chain off and releases the SPI port if the strip opened it
func (s *Strip) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.dev.Halt()
	if s.port != nil {
		if cerr := s.port.Close(); err == nil {
			err = cerr
		}
		s.port = nil
	}
	return err
}
