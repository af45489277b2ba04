package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"periph.io/x/host/v3"

	"github.com/fkcurrie/digit-matrix-golang/internal/config"
	"github.com/fkcurrie/digit-matrix-golang/internal/counter"
	"github.com/fkcurrie/digit-matrix-golang/internal/display"
	"github.com/fkcurrie/digit-matrix-golang/pkg/ledmatrix"
	"github.com/fkcurrie/digit-matrix-golang/pkg/spiled"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	hold := flag.Duration("hold", 2*time.Second, "how long each pattern stays up")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config from %s: %v", *configPath, err)
		log.Printf("Using default configuration")
		cfg = config.DefaultConfig()
	}

	if _, err := host.Init(); err != nil {
		log.Fatalf("Failed to initialise host drivers: %v", err)
	}

	strip, err := spiled.Open(cfg.Display.SPIPort, ledmatrix.DefaultWidth*ledmatrix.DefaultHeight)
	if err != nil {
		log.Fatalf("Failed to open LED chain: %v", err)
	}

	matrixCfg := &ledmatrix.Config{
		Width:      ledmatrix.DefaultWidth,
		Height:     ledmatrix.DefaultHeight,
		Brightness: 64,
		Serpentine: cfg.Display.Serpentine,
	}
	matrix, err := ledmatrix.NewMatrix(matrixCfg, strip)
	if err != nil {
		log.Fatalf("Failed to create matrix: %v", err)
	}
	defer matrix.Close()

	fills := []struct {
		name string
		c    color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"green", color.RGBA{0, 255, 0, 255}},
		{"blue", color.RGBA{0, 0, 255, 255}},
	}
	for _, f := range fills {
		log.Printf("Setting all pixels to %s", f.name)
		if err := matrix.Fill(f.c); err != nil {
			log.Fatalf("Failed to fill matrix: %v", err)
		}
		time.Sleep(*hold)
	}

	// Alternating pixels, in grid order so wiring mistakes show up
	log.Println("Setting alternating pixels")
	for y := 0; y < matrixCfg.Height; y++ {
		for x := 0; x < matrixCfg.Width; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if (x+y)%2 == 0 {
				c = color.RGBA{255, 255, 255, 255}
			}
			if err := matrix.SetPixel(x, y, c); err != nil {
				log.Fatalf("Failed to set pixel: %v", err)
			}
		}
	}
	if err := matrix.Show(); err != nil {
		log.Fatalf("Failed to show matrix: %v", err)
	}
	time.Sleep(*hold)

	// Every digit
	renderer := display.NewRenderer(matrix)
	for d := counter.Digit(0); d <= counter.Max; d++ {
		log.Printf("Showing digit %d", d)
		if err := renderer.ShowDigit(d); err != nil {
			log.Fatalf("Failed to show digit: %v", err)
		}
		time.Sleep(*hold / 2)
	}

	// Clear the matrix
	log.Println("Clearing matrix")
	if err := matrix.Clear(); err != nil {
		log.Fatalf("Failed to clear matrix: %v", err)
	}

	fmt.Fprintln(os.Stdout, "Test completed successfully")
}
