package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Bus is an in-memory event bus. Handlers for one event run sequentially in
// subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe implements Subscriber.
func (b *Bus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Unsubscribe implements Subscriber.
func (b *Bus) Unsubscribe(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, name)
}

// Listeners returns the number of handlers registered for name.
func (b *Bus) Listeners(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

// Emit runs the handlers registered for name, waiting for each to return
// before starting the next. Handler errors are collected and returned
// together; a cancelled context stops dispatch before the next handler.
func (b *Bus) Emit(ctx context.Context, name string) error {
	// Snapshot so handlers may subscribe or unsubscribe while running.
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[name]...)
	b.mu.RUnlock()

	var result *multierror.Error
	for i, h := range handlers {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}
		if err := h(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s handler %d: %w", name, i, err))
		}
	}
	return result.ErrorOrNil()
}
