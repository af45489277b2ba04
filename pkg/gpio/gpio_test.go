package gpio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-gpiocdev"
)

func TestEdgeBeforeReady(t *testing.T) {
	in := &Inputs{chip: "gpiochip0", offsets: []int{5, 6}}

	tests := []struct {
		name      string
		evtType   gpiocdev.LineEventType
		wantRise  bool
		wantLevel int
	}{
		{"falling", gpiocdev.LineEventFallingEdge, false, 0},
		{"rising", gpiocdev.LineEventRisingEdge, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := in.edge(gpiocdev.LineEvent{
				Offset:    6,
				Type:      tt.evtType,
				Timestamp: 1500 * time.Millisecond,
			})
			assert.Equal(t, 6, e.Offset)
			assert.Equal(t, tt.wantRise, e.Rising)
			assert.Equal(t, tt.wantLevel, e.Level)
			assert.Equal(t, 1500*time.Millisecond, e.Timestamp)
		})
	}
}

func TestInputsNotReady(t *testing.T) {
	in := &Inputs{chip: "gpiochip0", offsets: []int{5}}

	_, err := in.Value(5)
	require.Error(t, err)
	assert.NoError(t, in.Close(), "closing unrequested inputs is a no-op")
}

// fakeLine records values driven onto it
type fakeLine struct {
	values []int
	err    error
	closed bool
}

func (f *fakeLine) SetValue(v int) error {
	if f.err != nil {
		return f.err
	}
	f.values = append(f.values, v)
	return nil
}

func (f *fakeLine) Value() (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(f.values) == 0 {
		return 0, nil
	}
	return f.values[len(f.values)-1], nil
}

func (f *fakeLine) Close() error {
	f.closed = true
	return nil
}

func newTestPin(fl *fakeLine, slept *[]time.Duration) *Pin {
	return &Pin{
		chip:   "gpiochip0",
		offset: 13,
		line:   fl,
		sleep:  func(d time.Duration) { *slept = append(*slept, d) },
	}
}

func TestPinPulse(t *testing.T) {
	fl := &fakeLine{}
	var slept []time.Duration
	p := newTestPin(fl, &slept)

	require.NoError(t, p.Pulse(100*time.Millisecond))
	assert.Equal(t, []int{1, 0}, fl.values)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, slept)

	v, err := p.GetValue()
	require.NoError(t, err)
	assert.Equal(t, 0, v, "pulse leaves the line low")

	require.NoError(t, p.Close())
	assert.True(t, fl.closed)
}

func TestPinPulseError(t *testing.T) {
	fl := &fakeLine{err: errors.New("line busy")}
	var slept []time.Duration
	p := newTestPin(fl, &slept)

	err := p.Pulse(time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, fl.err)
	assert.Empty(t, slept, "no wait once driving high failed")

	_, err = p.GetValue()
	assert.ErrorIs(t, err, fl.err)
}
