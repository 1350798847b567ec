package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRotationShowsLeadingPagesOnce(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var tm timers
	tm.reset(start)
	first := tm.rotate(start, 1,
		page{ScreenContainerRemoved, time.Second},
		page{ScreenDashboard, 5 * time.Second},
		page{ScreenPlaceContainer, 5 * time.Second},
	)
	require.Equal(t, ScreenContainerRemoved, first)

	steps := []struct {
		at   time.Duration
		want Screen
	}{
		{time.Second, ScreenDashboard},
		{6 * time.Second, ScreenPlaceContainer},
		{11 * time.Second, ScreenDashboard},
		{16 * time.Second, ScreenPlaceContainer},
	}
	for _, st := range steps {
		_, ok := tm.advance(start.Add(st.at - time.Millisecond))
		require.False(t, ok, "too early at %s", st.at)
		got, ok := tm.advance(start.Add(st.at))
		require.True(t, ok, "no page change at %s", st.at)
		require.Equal(t, st.want, got)
	}
}

func TestSinglePageRotationHolds(t *testing.T) {
	start := time.Now()
	var tm timers
	tm.rotate(start, 0, page{ScreenDashboard, time.Second})
	_, ok := tm.advance(start.Add(time.Hour))
	require.False(t, ok)
}

func TestTimerFiresOnce(t *testing.T) {
	start := time.Now()
	var tm timers
	tm.arm(start, 3*time.Second, EvGoToInit)

	_, ok := tm.expired(start.Add(2 * time.Second))
	require.False(t, ok)
	ev, ok := tm.expired(start.Add(3 * time.Second))
	require.True(t, ok)
	require.Equal(t, EvGoToInit, ev)
	_, ok = tm.expired(start.Add(time.Minute))
	require.False(t, ok)
}

func TestWeights(t *testing.T) {
	w := Weights{Container: 300, Food: 120, LastFood: 40}
	require.InDelta(t, 460, w.ToRemove(), 1e-9)
	require.Equal(t, 0.0, saturate(0.6))
	require.Equal(t, 0.0, saturate(-250))
	require.Equal(t, 12.5, saturate(12.5))
}

func TestInitDisplayRotation(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ScreenDashboard, h.display.last().Screen)
	h.advance(5 * time.Second)
	require.Equal(t, ScreenPlaceContainer, h.display.last().Screen)
	h.advance(5 * time.Second)
	require.Equal(t, ScreenDashboard, h.display.last().Screen)
}
