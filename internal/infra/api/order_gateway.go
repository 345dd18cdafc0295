package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
)

type orderGateway struct {
	client *Client
}

// NewOrderGateway creates the upstream-backed OrderGateway.
func NewOrderGateway(client *Client) gateway.OrderGateway {
	return &orderGateway{client: client}
}

func orderQueryValues(query gateway.OrderQuery) url.Values {
	values := url.Values{}
	if query.Status != "" {
		values.Set("status", string(query.Status))
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	return values
}

func (g *orderGateway) CreateOrder(ctx context.Context, token string, input *gateway.OrderInput) (*entity.Order, error) {
	var payload struct {
		Order *entity.Order `json:"order"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodPost,
		path:   "/orders",
		token:  token,
		body:   input,
	}, &payload)
	if err != nil {
		// The own-store 403 is already mapped by the client; everything
		// else propagates as-is.
		return nil, err
	}

	return payload.Order, nil
}

func (g *orderGateway) GetOrder(ctx context.Context, token string, orderID int64) (*entity.Order, error) {
	var payload struct {
		Order *entity.Order `json:"order"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/orders/" + strconv.FormatInt(orderID, 10),
		token:  token,
	}, &payload)
	if statusOf(err) == http.StatusNotFound {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
	}
	if err != nil {
		return nil, err
	}

	return payload.Order, nil
}

func (g *orderGateway) ListOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error) {
	var page gateway.OrderPage
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/orders",
		token:  token,
		query:  orderQueryValues(query),
	}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (g *orderGateway) ListSupplierOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error) {
	var page gateway.OrderPage
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/orders/supplier",
		token:  token,
		query:  orderQueryValues(query),
	}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (g *orderGateway) OrderStats(ctx context.Context, token string) (*entity.OrderStats, error) {
	var payload struct {
		Stats *entity.OrderStats `json:"stats"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/orders/stats",
		token:  token,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.Stats, nil
}

func (g *orderGateway) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status entity.OrderStatus) error {
	err := g.client.decode(ctx, request{
		method: http.MethodPut,
		path:   "/orders/" + strconv.FormatInt(orderID, 10) + "/status",
		token:  token,
		body:   map[string]string{"status": string(status)},
	}, nil)
	if statusOf(err) == http.StatusNotFound {
		return domainerrors.ErrOrderNotFound
	}

	return err
}
