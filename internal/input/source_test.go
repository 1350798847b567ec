package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"smartcloth/internal/engine"
)

func newTestSource() (*Source, *ButtonCell, *LoadCell) {
	buttons := &ButtonCell{}
	samples := &SampleCell{}
	return NewSource(buttons, samples, NewClassifier(5, 20), nil), buttons, NewLoadCell(samples)
}

func TestSourceScaleBeforeButtons(t *testing.T) {
	src, buttons, cell := newTestSource()

	cell.SetGross(300)
	cell.Read()
	buttons.Press(ButtonSave)
	require.True(t, src.ButtonPending())

	sig, ok := src.Next(0)
	require.True(t, ok)
	require.Equal(t, engine.EvScaleIncrement, sig.Event)
	require.True(t, src.ButtonPending())

	sig, ok = src.Next(0)
	require.True(t, ok)
	require.Equal(t, engine.EvSave, sig.Event)
	require.False(t, src.ButtonPending())

	_, ok = src.Next(0)
	require.False(t, ok)
}

func TestSourceSmallChangeFallsThroughToButton(t *testing.T) {
	src, buttons, cell := newTestSource()

	cell.SetGross(3)
	cell.Read()
	buttons.Press(Button(9))

	sig, ok := src.Next(0)
	require.True(t, ok)
	require.Equal(t, engine.Signal{Event: engine.EvGroupA, Group: 9}, sig)
}

func TestLoadCellTareAndRelease(t *testing.T) {
	src, _, cell := newTestSource()

	cell.SetGross(300)
	cell.Read()
	sig, ok := src.Next(0)
	require.True(t, ok)
	require.Equal(t, engine.EvScaleIncrement, sig.Event)

	cell.Tare()
	cell.Read()
	sig, ok = src.Next(0)
	require.True(t, ok)
	require.Equal(t, engine.EvScaleTare, sig.Event)

	cell.SetGross(420)
	cell.Read()
	sig, ok = src.Next(300)
	require.True(t, ok)
	require.Equal(t, engine.EvScaleIncrement, sig.Event)
	require.InDelta(t, 120, sig.Weight, 1e-9)

	cell.SetGross(0)
	cell.Read()
	sig, ok = src.Next(300)
	require.True(t, ok)
	require.Equal(t, engine.EvScaleRelease, sig.Event)
	require.InDelta(t, -300, sig.Weight, 1e-9)
}

func TestSampleCellKeepsTare(t *testing.T) {
	var cell SampleCell
	cell.Publish(Sample{Tared: true})
	cell.Publish(Sample{Grams: 40})

	s, ok := cell.Take()
	require.True(t, ok)
	require.True(t, s.Tared)

	_, ok = cell.Take()
	require.False(t, ok)
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		kind string
		id   int
		want Button
		err  bool
	}{
		{KindGroup, 1, Button(1), false},
		{KindGroup, 20, Button(20), false},
		{KindGroup, 21, ButtonNone, true},
		{KindMain, 1, ButtonRaw, false},
		{KindMain, 5, ButtonSave, false},
		{KindMain, 6, ButtonNone, true},
		{"BARCODE", 0, ButtonBarcode, false},
		{"pedal", 1, ButtonNone, true},
	}
	for _, tt := range tests {
		got, err := ParseButton(tt.kind, tt.id)
		if tt.err {
			require.True(t, errors.Is(err, ErrInvalidButton), "%s %d", tt.kind, tt.id)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestButtonSignals(t *testing.T) {
	for _, b := range Buttons() {
		sig, ok := b.Signal()
		require.True(t, ok, b.String())
		require.True(t, sig.Event.IsButton(), b.String())
	}
	require.Len(t, Buttons(), 26)

	sig, _ := Button(16).Signal()
	require.Equal(t, engine.EvGroupA, sig.Event)
	sig, _ = Button(15).Signal()
	require.Equal(t, engine.EvGroupB, sig.Event)
	require.Equal(t, "main-3", ButtonAdd.String())
}
