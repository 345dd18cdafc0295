package bus

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() event.Bus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCartBus_PublishReachesAllSubscribers(t *testing.T) {
	b := newTestBus()

	ch1, cancel1 := b.Subscribe(1)
	defer cancel1()
	ch2, cancel2 := b.Subscribe(1)
	defer cancel2()

	evt := event.CartEvent{Kind: event.CartItemAdded, ItemCount: 3, At: time.Now()}
	b.Publish(evt)

	got1 := <-ch1
	got2 := <-ch2
	assert.Equal(t, event.CartItemAdded, got1.Kind)
	assert.Equal(t, 3, got1.ItemCount)
	assert.Equal(t, got1.Kind, got2.Kind)
}

func TestCartBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := newTestBus()

	// Buffer of one, never drained: the second publish must not block.
	_, cancel := b.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		b.Publish(event.CartEvent{Kind: event.CartItemAdded})
		b.Publish(event.CartEvent{Kind: event.CartItemRemoved})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestCartBus_CancelClosesChannel(t *testing.T) {
	b := newTestBus()

	ch, cancel := b.Subscribe(1)
	cancel()

	_, open := <-ch
	require.False(t, open)

	// Publishing after cancel must not panic on a closed channel.
	b.Publish(event.CartEvent{Kind: event.CartCleared})
}
