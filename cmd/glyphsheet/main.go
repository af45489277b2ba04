package main

import (
	"flag"
	"log"
	"os"

	"github.com/fkcurrie/digit-matrix-golang/internal/sheet"
)

func main() {
	out := flag.String("out", "glyphs.png", "Path of the PNG to write")
	cell := flag.Int("cell", sheet.DefaultCell, "Size of one LED in pixels")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	if err := sheet.WritePNG(f, *cell); err != nil {
		f.Close()
		log.Fatalf("Failed to render glyph sheet: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *out, err)
	}

	log.Printf("Wrote %s", *out)
}
