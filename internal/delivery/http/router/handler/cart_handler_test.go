package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/event"
	"storefront/internal/infra/bus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_Events_StreamsCartMutations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cartBus := bus.New(logger)
	h := NewCartHandler(nil, cartBus, logger)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/cart/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	done := make(chan error, 1)
	go func() { done <- h.Events(c) }()

	// Give the stream a moment to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	cartBus.Publish(event.CartEvent{Kind: event.CartItemAdded, ItemCount: 3, At: time.Now()})
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("event stream did not terminate on client disconnect")
	}

	body := rec.Body.String()
	assert.Contains(t, body, "data: ")
	assert.Contains(t, body, string(event.CartItemAdded))
	assert.Contains(t, body, `"item_count":3`)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
}
