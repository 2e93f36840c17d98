package linking

import (
	"sync/atomic"

	F "github.com/applinkd/go-applink/internal/utils/functional"
)

type (
	// Event is an incoming-URL notification from the native layer.
	Event struct {
		URL string
	}
	Listener func(Event)

	listenerMap = F.Map[uint64, *Subscription]
)

func newListenerMap() listenerMap {
	return F.NewMapOf[uint64, *Subscription]()
}

// Subscription is a registered URL listener. Close unregisters it;
// closing twice is a no-op.
type Subscription struct {
	id     uint64
	hub    *Hub
	notify Listener
	closed atomic.Bool
}

func (s *Subscription) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.hub.listeners.Delete(s.id)
	}
}

var nextSubID atomic.Uint64

// Subscribe registers a listener for incoming URLs.
func (h *Hub) Subscribe(notify Listener) *Subscription {
	sub := &Subscription{
		id:     nextSubID.Add(1),
		hub:    h,
		notify: notify,
	}
	h.listeners.Store(sub.id, sub)
	return sub
}

// Dispatch delivers a URL event to every live subscription. Calls are
// serialized so each listener observes events in the order the native
// layer emitted them.
func (h *Hub) Dispatch(url string) {
	h.dispatchMu.Lock()
	defer h.dispatchMu.Unlock()
	ev := Event{URL: url}
	h.listeners.RangeAll(func(_ uint64, sub *Subscription) {
		if !sub.closed.Load() {
			sub.notify(ev)
		}
	})
}
