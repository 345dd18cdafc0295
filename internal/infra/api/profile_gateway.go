package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type profileGateway struct {
	client *Client
}

// NewProfileGateway creates the upstream-backed ProfileGateway.
func NewProfileGateway(client *Client) gateway.ProfileGateway {
	return &profileGateway{client: client}
}

func (g *profileGateway) GetProfile(ctx context.Context, token string) (*entity.User, error) {
	var payload struct {
		User *entity.User `json:"user"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/users/profile",
		token:  token,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.User, nil
}

func (g *profileGateway) UpdateProfile(ctx context.Context, token string, input *gateway.ProfileInput) (*entity.User, error) {
	var payload struct {
		User *entity.User `json:"user"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodPut,
		path:   "/users/profile",
		token:  token,
		body:   input,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.User, nil
}
