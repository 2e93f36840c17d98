// Package linking wraps the platform's native linking layer: the URL
// the app was launched with, opening outbound URLs, and incoming-URL
// events. The native layer itself is opaque; its errors pass through
// unmodified.
package linking

import (
	"context"
	"sync"
)

// Native is the platform linking API the wrappers delegate to.
type Native interface {
	// InitialURL returns the URL the app was launched with,
	// "" if the app was not opened through a link.
	InitialURL(ctx context.Context) (string, error)
	// Open asks the platform to open the given URL.
	Open(ctx context.Context, url string) error
	// CanOpen reports whether some installed app handles the URL.
	CanOpen(ctx context.Context, url string) (bool, error)
}

// Hub fronts a Native implementation, adding resolve-once semantics
// for the initial URL and an incoming-URL subscription registry.
type Hub struct {
	native Native

	initialOnce sync.Once
	initialURL  string
	initialErr  error

	dispatchMu sync.Mutex
	listeners  listenerMap
}

func NewHub(native Native) *Hub {
	return &Hub{native: native, listeners: newListenerMap()}
}

// InitialURL resolves the launch URL once; later calls return the
// first result without touching the native layer again.
func (h *Hub) InitialURL(ctx context.Context) (string, error) {
	h.initialOnce.Do(func() {
		h.initialURL, h.initialErr = h.native.InitialURL(ctx)
	})
	return h.initialURL, h.initialErr
}

func (h *Hub) Open(ctx context.Context, url string) error {
	return h.native.Open(ctx, url)
}

func (h *Hub) CanOpen(ctx context.Context, url string) (bool, error) {
	return h.native.CanOpen(ctx, url)
}
