package sheet

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/digit-matrix-golang/internal/glyph"
)

func TestLayout(t *testing.T) {
	l := Layout{Cell: 20}
	pw, ph := l.PanelSize()
	assert.Equal(t, 5*20+2*10, pw)
	assert.Equal(t, 5*20+2*10+labelHeight, ph)
	assert.Equal(t, 5*pw, l.Bounds().Dx())
	assert.Equal(t, 2*ph, l.Bounds().Dy())

	// Digit 6 sits in the second row, second column
	o := l.CellOrigin(6, 7)
	assert.Equal(t, pw+10+2*20, o.X)
	assert.Equal(t, ph+labelHeight+10+1*20, o.Y)
}

func TestRenderCells(t *testing.T) {
	img, err := Render(DefaultCell)
	require.NoError(t, err)

	l := Layout{Cell: DefaultCell}
	assert.Equal(t, l.Bounds(), img.Bounds())

	for d := 0; d < glyph.Digits; d++ {
		g := glyph.Lookup(d)
		for i := 0; i < glyph.Cells; i++ {
			o := l.CellOrigin(d, i)
			c := img.RGBAAt(o.X+DefaultCell/2, o.Y+DefaultCell/2)
			if g.Lit(i) {
				assert.Truef(t, c.R > 200 && c.G < 80, "digit %d cell %d should be lit, got %v", d, i, c)
			} else {
				assert.Truef(t, c.R < 80, "digit %d cell %d should be dark, got %v", d, i, c)
			}
		}
	}
}

func TestRenderRejectsTinyCells(t *testing.T) {
	_, err := Render(2)
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, 8))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Layout{Cell: 8}.Bounds(), img.Bounds())
}
