package service

import (
	"sync"

	"smartcloth/internal/engine"
)

const subscriberBuffer = 8

// DisplayHub is the engine's display. It keeps the last view and fans every
// new one out to subscribers; a subscriber that falls behind misses views.
type DisplayHub struct {
	mu     sync.Mutex
	last   engine.View
	shown  bool
	nextID int
	subs   map[int]chan engine.View
}

func NewDisplayHub() *DisplayHub {
	return &DisplayHub{subs: make(map[int]chan engine.View)}
}

// Show implements engine.Display.
func (h *DisplayHub) Show(v engine.View) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last, h.shown = v, true
	for _, ch := range h.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Last returns the most recent view, false before the first one.
func (h *DisplayHub) Last() (engine.View, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last, h.shown
}

// Subscribe returns a channel of views, primed with the current one, and a
// func that unsubscribes and closes it.
func (h *DisplayHub) Subscribe() (<-chan engine.View, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan engine.View, subscriberBuffer)
	if h.shown {
		ch <- h.last
	}
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

func (h *DisplayHub) subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
