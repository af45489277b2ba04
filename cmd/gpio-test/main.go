package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fkcurrie/digit-matrix-golang/internal/config"
	"github.com/fkcurrie/digit-matrix-golang/pkg/gpio"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	pulse := flag.Duration("pulse", 200*time.Millisecond, "how long the status LED is lit each second")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	// Set up signal handler for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Println("Starting GPIO test...")

	led, err := gpio.NewPin(cfg.GPIO.Chip, cfg.GPIO.StatusLED)
	if err != nil {
		log.Fatalf("Failed to request status LED: %v", err)
	}
	defer led.Close()

	buttons, err := gpio.WatchInputs(cfg.GPIO.Chip, []int{cfg.GPIO.ButtonA, cfg.GPIO.ButtonB},
		func(e gpio.Edge) {
			edge := "falling"
			if e.Rising {
				edge = "rising"
			}
			log.Printf("Line %d: %s edge, level %d at %v", e.Offset, edge, e.Level, e.Timestamp)
		})
	if err != nil {
		log.Fatalf("Failed to watch buttons: %v", err)
	}
	defer buttons.Close()

	log.Println("Successfully requested GPIO lines, press the buttons")

	// Pulse the LED every second until terminated
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			if err := led.Pulse(*pulse); err != nil {
				log.Printf("Failed to pulse status LED: %v", err)
				continue
			}
			value, err := led.GetValue()
			if err != nil {
				log.Printf("Failed to read back status LED: %v", err)
				continue
			}
			log.Printf("Pulsed status LED for %v, now %d", *pulse, value)
		}
	}
}
