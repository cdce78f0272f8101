package network

import (
	"errors"
	"sync"
)

// ErrHubFull is returned when MaxSpectators are already subscribed
var ErrHubFull = errors.New("spectator limit reached")

// ErrHubClosed is returned when subscribing after Close
var ErrHubClosed = errors.New("hub closed")

// Hub fans published frames out to spectator queues
// A slow spectator drops frames instead of stalling the game loop
type Hub struct {
	mu        sync.Mutex
	subs      map[chan []byte]struct{}
	maxSubs   int
	queueSize int
	latest    []byte
	closed    bool
}

func NewHub(maxSubs, queueSize int) *Hub {
	return &Hub{
		subs:      make(map[chan []byte]struct{}),
		maxSubs:   maxSubs,
		queueSize: queueSize,
	}
}

// Subscribe registers a spectator queue primed with the latest frame
func (h *Hub) Subscribe() (chan []byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}
	if h.maxSubs > 0 && len(h.subs) >= h.maxSubs {
		return nil, ErrHubFull
	}

	ch := make(chan []byte, h.queueSize)
	if h.latest != nil {
		ch <- h.latest
	}
	h.subs[ch] = struct{}{}
	return ch, nil
}

// Unsubscribe removes and closes a queue; safe to call twice
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// Publish stores frame as the latest and offers it to every queue without blocking
// Returns the number of spectators that dropped it
func (h *Hub) Publish(frame []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = frame
	dropped := 0
	for ch := range h.subs {
		select {
		case ch <- frame:
		default:
			dropped++
		}
	}
	return dropped
}

// Latest returns the most recent frame, nil before the first Publish
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every queue and refuses new subscribers
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
