// Package event defines the typed cart event bus. It replaces the source
// system's untyped window-level "cartUpdated" broadcast: subscribers are
// statically known and the payload carries a typed kind and item count.
package event

import "time"

// CartEventKind discriminates what happened to the cart.
type CartEventKind string

const (
	CartItemAdded       CartEventKind = "item_added"
	CartQuantityChanged CartEventKind = "quantity_changed"
	CartItemRemoved     CartEventKind = "item_removed"
	CartCleared         CartEventKind = "cleared"
	CartCheckedOut      CartEventKind = "checked_out"
	CartMerged          CartEventKind = "merged"
)

// CartEvent is published after every cart mutation. Delivery is
// fire-and-forget: publishers never wait for subscribers.
type CartEvent struct {
	Kind      CartEventKind `json:"kind"`
	ItemCount int           `json:"item_count"`
	At        time.Time     `json:"at"`
}

// Bus is the in-process pub/sub contract for cart events.
type Bus interface {
	// Publish broadcasts the event to all current subscribers. Subscribers
	// with full buffers are skipped rather than blocking the publisher.
	Publish(event CartEvent)

	// Subscribe registers a new subscriber and returns its channel along
	// with a cancel function that must be called to release it.
	Subscribe(buffer int) (<-chan CartEvent, func())
}
