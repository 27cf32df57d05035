package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rmercado/kahera/pkg/domain"
)

// MemoryBus is an in-process Bus. Handlers run synchronously on the
// publishing goroutine, in subscription order.
type MemoryBus struct {
	handlers map[string][]func(context.Context, domain.Event)
	mu       sync.RWMutex
}

// NewMemoryBus returns an empty in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string][]func(context.Context, domain.Event))}
}

// Publish delivers the event to every subscriber of its type.
func (b *MemoryBus) Publish(ctx context.Context, event domain.Event) error {
	slog.Debug("eventbus publish", "event_type", event.Type())
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.Type()] {
		handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (b *MemoryBus) Subscribe(eventType string, handler func(context.Context, domain.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
