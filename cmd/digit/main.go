package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"periph.io/x/host/v3"

	"github.com/fkcurrie/digit-matrix-golang/internal/config"
	"github.com/fkcurrie/digit-matrix-golang/internal/display"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
	"github.com/fkcurrie/digit-matrix-golang/internal/loop"
	"github.com/fkcurrie/digit-matrix-golang/internal/types"
	"github.com/fkcurrie/digit-matrix-golang/pkg/gpio"
	"github.com/fkcurrie/digit-matrix-golang/pkg/ledmatrix"
	"github.com/fkcurrie/digit-matrix-golang/pkg/spiled"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if os.IsNotExist(err) {
		log.Printf("No configuration at %s, using defaults", *configPath)
		cfg = config.DefaultConfig()
	} else if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := host.Init(); err != nil {
		log.Fatalf("Failed to initialise host drivers: %v", err)
	}

	// Create display
	strip, err := spiled.Open(cfg.Display.SPIPort, ledmatrix.DefaultWidth*ledmatrix.DefaultHeight)
	if err != nil {
		log.Fatalf("Failed to open LED chain: %v", err)
	}
	matrix, err := ledmatrix.NewMatrix(&ledmatrix.Config{
		Width:      ledmatrix.DefaultWidth,
		Height:     ledmatrix.DefaultHeight,
		Brightness: ledmatrix.DefaultBrightness,
		Serpentine: cfg.Display.Serpentine,
	}, strip)
	if err != nil {
		log.Fatalf("Failed to create matrix: %v", err)
	}
	defer matrix.Close()
	renderer := display.NewRenderer(matrix)

	// Status LED
	status, err := gpio.NewPin(cfg.GPIO.Chip, cfg.GPIO.StatusLED)
	if err != nil {
		log.Fatalf("Failed to create status LED: %v", err)
	}
	defer status.Close()

	// Buttons
	mailbox := &input.Mailbox{}
	handler := input.NewHandler(mailbox, input.DefaultThreshold, log.Default())
	bindings := input.Bindings{
		cfg.GPIO.ButtonA: types.ButtonA,
		cfg.GPIO.ButtonB: types.ButtonB,
	}
	buttons, err := gpio.WatchInputs(cfg.GPIO.Chip, []int{cfg.GPIO.ButtonA, cfg.GPIO.ButtonB},
		func(e gpio.Edge) {
			if ev, ok := bindings.Event(e.Offset, e.Rising, e.Level, e.Timestamp); ok {
				handler.HandleEdge(ev)
			}
		})
	if err != nil {
		log.Fatalf("Failed to watch buttons: %v", err)
	}
	defer buttons.Close()

	l, err := loop.New(loop.Config{
		Mailbox: mailbox,
		Display: renderer,
		Status:  status,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("Failed to create main loop: %v", err)
	}

	// Handle shutdown gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Running: button A on %s:%d, button B on %s:%d",
		cfg.GPIO.Chip, cfg.GPIO.ButtonA, cfg.GPIO.Chip, cfg.GPIO.ButtonB)
	l.Run(ctx)

	log.Println("Shutting down...")
	if err := matrix.Clear(); err != nil {
		log.Printf("Failed to clear matrix: %v", err)
	}
	if err := status.SetValue(0); err != nil {
		log.Printf("Failed to clear status LED: %v", err)
	}
}
