package service

import (
	"testing"

	"smartcloth/internal/engine"
)

func TestDisplayHub_SubscribePrimedWithLastView(t *testing.T) {
	h := NewDisplayHub()
	if _, ok := h.Last(); ok {
		t.Fatalf("expected no view before the first Show")
	}
	h.Show(engine.View{Screen: engine.ScreenDashboard})

	ch, cancel := h.Subscribe()
	defer cancel()

	if v := <-ch; v.Screen != engine.ScreenDashboard {
		t.Fatalf("want primed DASHBOARD, got %s", v.Screen)
	}
	h.Show(engine.View{Screen: engine.ScreenPlaceContainer})
	if v := <-ch; v.Screen != engine.ScreenPlaceContainer {
		t.Fatalf("want PLACE_CONTAINER, got %s", v.Screen)
	}
}

func TestDisplayHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewDisplayHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer*3; i++ {
		h.Show(engine.View{Weight: float64(i)})
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("expected a full buffer of %d, got %d", subscriberBuffer, len(ch))
	}
	if v, _ := h.Last(); v.Weight != float64(subscriberBuffer*3-1) {
		t.Fatalf("last view must still be the newest, got %v", v.Weight)
	}
}

func TestDisplayHub_CancelClosesAndUnsubscribes(t *testing.T) {
	h := NewDisplayHub()
	ch, cancel := h.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel")
	}
	if n := h.subscribers(); n != 0 {
		t.Fatalf("expected no subscribers, got %d", n)
	}
	h.Show(engine.View{})
}
