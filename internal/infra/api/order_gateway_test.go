package api

import (
	"context"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderGateway_GetOrderDecodesOrder(t *testing.T) {
	var gotPath string
	orderGW := NewOrderGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success": true, "order": {"order_id": 7, "status": "pending", "total_amount": 2550}}`))
	})))

	order, err := orderGW.GetOrder(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Equal(t, "/orders/7", gotPath)
	assert.Equal(t, int64(7), order.ID)
}

func TestOrderGateway_GetOrder404IsOrderNotFound(t *testing.T) {
	orderGW := NewOrderGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "message": "order not found"}`))
	})))

	_, err := orderGW.GetOrder(context.Background(), "tok", 404)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
