package api

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
)

type authGateway struct {
	client *Client
	logger *slog.Logger
}

// NewAuthGateway creates the upstream-backed AuthGateway.
func NewAuthGateway(client *Client, logger *slog.Logger) gateway.AuthGateway {
	return &authGateway{client: client, logger: logger}
}

type sessionPayload struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*gateway.Session, error) {
	var payload sessionPayload
	err := g.client.decode(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	}, &payload)
	// A 401 at login is a credentials failure, not an expired session.
	if statusOf(err) == http.StatusUnauthorized {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	g.logger.Info("login succeeded", slog.String("email", email))

	return &gateway.Session{Token: payload.Token, User: payload.User}, nil
}

func (g *authGateway) RegisterCustomer(ctx context.Context, input *gateway.RegisterCustomerInput) (*gateway.Session, error) {
	var payload sessionPayload
	err := g.client.decode(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register/customer",
		body:   input,
	}, &payload)
	if statusOf(err) == http.StatusConflict {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("customer registration failed")
	}
	if err != nil {
		return nil, err
	}

	return &gateway.Session{Token: payload.Token, User: payload.User}, nil
}

func (g *authGateway) RegisterSupplier(ctx context.Context, input *gateway.RegisterSupplierInput) (*gateway.Session, error) {
	var payload sessionPayload
	err := g.client.decode(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register/supplier",
		body:   input,
	}, &payload)
	if statusOf(err) == http.StatusConflict {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("supplier registration failed")
	}
	if err != nil {
		return nil, err
	}

	return &gateway.Session{Token: payload.Token, User: payload.User}, nil
}

func (g *authGateway) VerifyToken(ctx context.Context, token string) (*entity.User, error) {
	var payload struct {
		User *entity.User `json:"user"`
	}
	err := g.client.decode(ctx, request{
		method: http.MethodGet,
		path:   "/auth/verify-token",
		token:  token,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.User, nil
}
