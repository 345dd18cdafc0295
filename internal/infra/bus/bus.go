// Package bus provides the in-process implementation of the typed cart
// event bus.
package bus

import (
	"log/slog"
	"sync"

	"storefront/internal/domain/event"
)

// cartBus is a mutex-guarded fan-out bus. Publishing never blocks: a
// subscriber that cannot keep up misses events. Delivery is best-effort.
type cartBus struct {
	mu          sync.Mutex
	subscribers map[int]chan event.CartEvent
	nextID      int
	logger      *slog.Logger
}

// New creates an empty cart event bus.
func New(logger *slog.Logger) event.Bus {
	return &cartBus{
		subscribers: make(map[int]chan event.CartEvent),
		logger:      logger,
	}
}

func (b *cartBus) Publish(evt event.CartEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
			b.logger.Debug("cart event dropped for slow subscriber",
				slog.Int("subscriber", id),
				slog.String("kind", string(evt.Kind)),
			)
		}
	}
}

func (b *cartBus) Subscribe(buffer int) (<-chan event.CartEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan event.CartEvent, buffer)
	b.subscribers[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}
