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

type storeGateway struct {
	client *Client
}

// NewStoreGateway creates the upstream-backed StoreGateway.
func NewStoreGateway(client *Client) gateway.StoreGateway {
	return &storeGateway{client: client}
}

func (g *storeGateway) ListStores(ctx context.Context, query gateway.StoreQuery) (*gateway.StorePage, error) {
	values := url.Values{}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.City != "" {
		values.Set("city", query.City)
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	var page gateway.StorePage
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/stores/",
		query:  values,
	}, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (g *storeGateway) GetStore(ctx context.Context, storeID int64) (*entity.Store, error) {
	var payload struct {
		Store *entity.Store `json:"store"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/stores/" + strconv.FormatInt(storeID, 10),
	}, &payload)
	if statusOf(err) == http.StatusNotFound {
		return nil, domainerrors.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	return payload.Store, nil
}

func (g *storeGateway) CheckStore(ctx context.Context, token string) (*entity.Store, bool, error) {
	var payload struct {
		HasStore bool          `json:"has_store"`
		Store    *entity.Store `json:"store"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/stores/check",
		token:  token,
	}, &payload)
	if err != nil {
		return nil, false, err
	}

	return payload.Store, payload.HasStore, nil
}

func (g *storeGateway) CreateStore(ctx context.Context, token string, input *gateway.StoreInput) (*entity.Store, error) {
	var payload struct {
		Store *entity.Store `json:"store"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodPost,
		path:   "/stores/",
		token:  token,
		body:   input,
	}, &payload)
	if statusOf(err) == http.StatusConflict {
		return nil, domainerrors.ErrStoreExists
	}
	if err != nil {
		return nil, err
	}

	return payload.Store, nil
}

func (g *storeGateway) UpdateStore(ctx context.Context, token string, storeID int64, input *gateway.StoreInput) (*entity.Store, error) {
	var payload struct {
		Store *entity.Store `json:"store"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodPut,
		path:   "/stores/" + strconv.FormatInt(storeID, 10),
		token:  token,
		body:   input,
	}, &payload)
	if statusOf(err) == http.StatusNotFound {
		return nil, domainerrors.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	return payload.Store, nil
}
