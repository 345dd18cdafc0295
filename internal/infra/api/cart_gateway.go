package api

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
)

type cartGateway struct {
	client *Client
}

// NewCartGateway creates the upstream-backed CartGateway.
func NewCartGateway(client *Client) gateway.CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) GetCart(ctx context.Context, token string) (*entity.Cart, error) {
	var payload struct {
		Cart *entity.Cart `json:"cart"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/cart/",
		token:  token,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.Cart == nil {
		return entity.EmptyCart(), nil
	}

	payload.Cart.Recompute()

	return payload.Cart, nil
}

func (g *cartGateway) AddItem(ctx context.Context, token string, productID int64, quantity int) error {
	err := g.client.decode(ctx, request{
		method: http.MethodPost,
		path:   "/cart/",
		token:  token,
		body: map[string]any{
			"product_id": productID,
			"quantity":   quantity,
		},
	}, nil)
	// The upstream answers 409 when the requested quantity exceeds stock.
	if statusOf(err) == http.StatusConflict {
		return domainerrors.ErrInsufficientStock.WrapMessage("add to cart failed")
	}

	return err
}

func (g *cartGateway) UpdateItemQuantity(ctx context.Context, token string, itemID int64, quantity int) error {
	err := g.client.decode(ctx, request{
		method: http.MethodPut,
		path:   "/cart/items/" + strconv.FormatInt(itemID, 10),
		token:  token,
		body:   map[string]int{"quantity": quantity},
	}, nil)
	if statusOf(err) == http.StatusNotFound {
		return domainerrors.ErrCartItemNotFound
	}
	if statusOf(err) == http.StatusConflict {
		return domainerrors.ErrInsufficientStock.WrapMessage("quantity update failed")
	}

	return err
}

func (g *cartGateway) RemoveItem(ctx context.Context, token string, itemID int64) error {
	err := g.client.decode(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/items/" + strconv.FormatInt(itemID, 10),
		token:  token,
	}, nil)
	if statusOf(err) == http.StatusNotFound {
		return domainerrors.ErrCartItemNotFound
	}

	return err
}

func (g *cartGateway) ClearCart(ctx context.Context, token string) error {
	return g.client.decode(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/",
		token:  token,
	}, nil)
}
