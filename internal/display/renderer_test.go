package display

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/digit-matrix-golang/internal/counter"
	"github.com/fkcurrie/digit-matrix-golang/internal/glyph"
)

// fakeMatrix records pixel writes and shows
type fakeMatrix struct {
	pixels  [glyph.Cells]color.Color
	shows   int
	showErr error
}

func (f *fakeMatrix) Clear() error { return nil }
func (f *fakeMatrix) Close() error { return nil }

func (f *fakeMatrix) SetPixel(x, y int, c color.Color) error {
	f.pixels[y*glyph.Width+x] = c
	return nil
}

func (f *fakeMatrix) Show() error {
	f.shows++
	return f.showErr
}

func newTestRenderer(m *fakeMatrix) (*Renderer, *[]time.Duration) {
	var slept []time.Duration
	r := NewRenderer(m)
	r.sleep = func(d time.Duration) { slept = append(slept, d) }
	return r, &slept
}

func TestShowDigit(t *testing.T) {
	for d := counter.Digit(0); d <= counter.Max; d++ {
		m := &fakeMatrix{}
		r, slept := newTestRenderer(m)

		require.NoError(t, r.ShowDigit(d))
		assert.Equal(t, 1, m.shows)
		assert.Equal(t, []time.Duration{SettleTime}, *slept)

		g := glyph.Lookup(d.Int())
		for i := 0; i < glyph.Cells; i++ {
			want := Off
			if g.Lit(i) {
				want = On
			}
			assert.Equal(t, want, m.pixels[i], "digit %d cell %d", d, i)
		}
	}
}

func TestShowGlyphOnColourIsPureRed(t *testing.T) {
	m := &fakeMatrix{}
	r, _ := newTestRenderer(m)

	require.NoError(t, r.ShowGlyph(glyph.Lookup(8)))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, m.pixels[0])
	assert.Equal(t, color.RGBA{A: 255}, m.pixels[6])
}

func TestSetColor(t *testing.T) {
	m := &fakeMatrix{}
	r, _ := newTestRenderer(m)

	blue := color.RGBA{B: 255, A: 255}
	r.SetColor(blue)
	require.NoError(t, r.ShowDigit(0))
	assert.Equal(t, blue, m.pixels[0])
}

func TestShowGlyphError(t *testing.T) {
	m := &fakeMatrix{showErr: errors.New("chain down")}
	r, slept := newTestRenderer(m)

	err := r.ShowDigit(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, m.showErr)
	assert.Empty(t, *slept, "no settle wait after a failed show")
}
