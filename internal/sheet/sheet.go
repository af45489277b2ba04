// Package sheet renders the digit glyph table as a PNG contact sheet.
package sheet

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/fkcurrie/digit-matrix-golang/internal/glyph"
)

var (
	//go:embed icons/lit.svg
	litSVG []byte
	//go:embed icons/unlit.svg
	unlitSVG []byte
)

const (
	// DefaultCell is the edge length of one LED in pixels
	DefaultCell = 24
	// Columns of glyph panels on the sheet
	Columns = 5

	labelHeight = 16
)

var (
	background = color.RGBA{0, 0, 0, 255}
	panel      = color.RGBA{24, 24, 32, 255}
	label      = color.RGBA{220, 220, 220, 255}
)

// Layout gives the geometry of a sheet for a given cell size
type Layout struct {
	Cell int
}

// Pad is the margin around the cells of one panel
func (l Layout) Pad() int { return l.Cell / 2 }

// PanelSize returns the width and height of one digit panel
func (l Layout) PanelSize() (int, int) {
	w := glyph.Width*l.Cell + 2*l.Pad()
	h := glyph.Height*l.Cell + 2*l.Pad() + labelHeight
	return w, h
}

// Bounds returns the size of the whole sheet
func (l Layout) Bounds() image.Rectangle {
	pw, ph := l.PanelSize()
	rows := (glyph.Digits + Columns - 1) / Columns
	return image.Rect(0, 0, Columns*pw, rows*ph)
}

// CellOrigin returns the top-left corner of cell i of digit d
func (l Layout) CellOrigin(d, i int) image.Point {
	pw, ph := l.PanelSize()
	px, py := (d%Columns)*pw, (d/Columns)*ph
	return image.Pt(
		px+l.Pad()+(i%glyph.Width)*l.Cell,
		py+labelHeight+l.Pad()+(i/glyph.Width)*l.Cell,
	)
}

// Render draws every digit with cell pixels per LED
func Render(cell int) (*image.RGBA, error) {
	if cell < 4 {
		return nil, fmt.Errorf("cell size %d is too small", cell)
	}

	lit, err := oksvg.ReadIconStream(bytes.NewReader(litSVG))
	if err != nil {
		return nil, fmt.Errorf("failed to parse lit icon: %w", err)
	}
	unlit, err := oksvg.ReadIconStream(bytes.NewReader(unlitSVG))
	if err != nil {
		return nil, fmt.Errorf("failed to parse unlit icon: %w", err)
	}

	layout := Layout{Cell: cell}
	bounds := layout.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := image.NewRGBA(bounds)

	scanner := rasterx.NewScannerGV(w, h, img, bounds)
	filler := rasterx.NewFiller(w, h, scanner)
	dasher := rasterx.NewDasher(w, h, scanner)

	fill := func(c color.Color, minX, minY, maxX, maxY int) {
		filler.Clear()
		filler.SetColor(c)
		rasterx.AddRect(float64(minX), float64(minY), float64(maxX), float64(maxY), 0, filler)
		filler.Draw()
	}

	fill(background, 0, 0, w, h)

	pw, ph := layout.PanelSize()
	for d := 0; d < glyph.Digits; d++ {
		px, py := (d%Columns)*pw, (d/Columns)*ph
		fill(panel, px+1, py+1, px+pw-1, py+ph-1)

		drawer := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(label),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(px+layout.Pad(), py+labelHeight-2),
		}
		drawer.DrawString(strconv.Itoa(d))

		g := glyph.Lookup(d)
		for i := 0; i < glyph.Cells; i++ {
			icon := unlit
			if g.Lit(i) {
				icon = lit
			}
			o := layout.CellOrigin(d, i)
			icon.SetTarget(float64(o.X), float64(o.Y), float64(cell), float64(cell))
			icon.Draw(dasher, 1)
		}
	}

	return img, nil
}

// WritePNG renders the sheet and encodes it to w
func WritePNG(w io.Writer, cell int) error {
	img, err := Render(cell)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode sheet: %w", err)
	}
	return nil
}
