//go:build tinygo && rp2040

// Firmware for a Raspberry Pi Pico with a 5x5 WS2812 matrix on GP7, buttons
// on GP5 (up) and GP6 (down) and a status LED on GP13.
package main

import (
	"context"
	"image/color"
	"log"
	"machine"
	"runtime/interrupt"
	"time"

	"tinygo.org/x/drivers/ws2812"

	"github.com/fkcurrie/digit-matrix-golang/internal/display"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
	"github.com/fkcurrie/digit-matrix-golang/internal/loop"
	"github.com/fkcurrie/digit-matrix-golang/internal/types"
	"github.com/fkcurrie/digit-matrix-golang/pkg/ledmatrix"
)

const (
	// GPIO pins
	PIN_MATRIX   machine.Pin = machine.GPIO7
	PIN_STATUS   machine.Pin = machine.GPIO13
	PIN_BUTTON_A machine.Pin = machine.GPIO5
	PIN_BUTTON_B machine.Pin = machine.GPIO6
)

var (
	boot    = time.Now()
	mailbox = &input.Mailbox{}

	// No logger: the handler runs in interrupt context and must not allocate.
	// The loop logs presses instead.
	handler = input.NewHandler(mailbox, input.DefaultThreshold, nil)

	bindings = input.Bindings{
		int(PIN_BUTTON_A): types.ButtonA,
		int(PIN_BUTTON_B): types.ButtonB,
	}
)

// chain writes the matrix with interrupts held off so button edges cannot
// stretch the WS2812 bit timing
type chain struct {
	dev ws2812.Device
}

func (c chain) WriteColors(buf []color.RGBA) error {
	var err error
	critical(func() { err = c.dev.WriteColors(buf) })
	return err
}

// pinOutput adapts a machine pin to types.Output
type pinOutput machine.Pin

func (p pinOutput) SetValue(v int) error {
	machine.Pin(p).Set(v != 0)
	return nil
}

func main() {
	l, err := setup()
	if err != nil {
		log.Printf("Setup failed: %v", err)
		failLoop()
	}

	l.Run(context.Background())
}

func setup() (*loop.Loop, error) {
	// Status LED
	PIN_STATUS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_STATUS.Low()

	// LED matrix
	PIN_MATRIX.Configure(machine.PinConfig{Mode: machine.PinOutput})
	matrix, err := ledmatrix.NewMatrix(&ledmatrix.Config{
		Width:      ledmatrix.DefaultWidth,
		Height:     ledmatrix.DefaultHeight,
		Brightness: ledmatrix.DefaultBrightness,
	}, chain{dev: ws2812.New(PIN_MATRIX)})
	if err != nil {
		return nil, err
	}

	// Buttons, pulled up and watched on both edges
	for _, pin := range []machine.Pin{PIN_BUTTON_A, PIN_BUTTON_B} {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		if err := pin.SetInterrupt(machine.PinRising|machine.PinFalling, onEdge); err != nil {
			return nil, err
		}
	}

	return loop.New(loop.Config{
		Mailbox: mailbox,
		Display: display.NewRenderer(matrix),
		Status:  pinOutput(PIN_STATUS),
		Logger:  log.Default(),

		LogPresses: true,
	})
}

// onEdge runs in interrupt context for both buttons. The callback does not
// say which edge fired, so the level read now decides it.
func onEdge(pin machine.Pin) {
	level := 0
	if pin.Get() {
		level = 1
	}
	if ev, ok := bindings.Event(int(pin), level == 1, level, time.Since(boot)); ok {
		handler.HandleEdge(ev)
	}
}

func critical(f func()) {
	state := interrupt.Disable()
	f()
	interrupt.Restore(state)
}

func failLoop() {
	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * 100)
		led.High()
		time.Sleep(time.Millisecond * 100)
	}
}
