// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authGW gateway.AuthGateway
	store  gateway.SessionStore
	logger *slog.Logger

	mu    sync.RWMutex
	state entity.AuthState
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authGW gateway.AuthGateway,
	store gateway.SessionStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authGW: authGW,
		store:  store,
		logger: logger,
		state:  entity.AuthState{Phase: entity.AuthIdle},
	}
}

func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	session, err := srv.authGW.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	if err := srv.adopt(session); err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{Token: session.Token, User: session.User}, nil
}

func (srv *sessionService) Logout(ctx context.Context) error {
	srv.setState(entity.AuthState{Phase: entity.AuthAnonymous})

	if err := srv.store.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear persisted session")
	}

	srv.logger.Info("session cleared")

	return nil
}

func (srv *sessionService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.SessionOutput, error) {
	session, err := srv.authGW.RegisterCustomer(ctx, &gateway.RegisterCustomerInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "customer registration failed")
	}

	// Registration doubles as login.
	if err := srv.adopt(session); err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{Token: session.Token, User: session.User}, nil
}

func (srv *sessionService) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.SessionOutput, error) {
	session, err := srv.authGW.RegisterSupplier(ctx, &gateway.RegisterSupplierInput{
		Email:           input.Email,
		Password:        input.Password,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
		BusinessPhone:   input.BusinessPhone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "supplier registration failed")
	}

	if err := srv.adopt(session); err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{Token: session.Token, User: session.User}, nil
}

func (srv *sessionService) Restore(ctx context.Context) entity.AuthState {
	stored, err := srv.store.Load()
	if err != nil || stored == nil {
		if err != nil {
			srv.logger.Warn("failed to load persisted session", slog.Any("error", err))
		}
		srv.setState(entity.AuthState{Phase: entity.AuthAnonymous})

		return srv.Current()
	}

	// Optimistically show the persisted user while the token is verified.
	user := stored.User
	srv.setState(entity.AuthState{Phase: entity.AuthLoading, User: &user, Token: stored.Token})

	verified, err := srv.authGW.VerifyToken(ctx, stored.Token)
	if err != nil {
		// A failed verification is a forced logout, not an error.
		srv.logger.Info("persisted session rejected, logging out", slog.Any("error", err))
		srv.setState(entity.AuthState{Phase: entity.AuthAnonymous})
		if clearErr := srv.store.Clear(); clearErr != nil {
			srv.logger.Warn("failed to clear rejected session", slog.Any("error", clearErr))
		}

		return srv.Current()
	}

	srv.setState(entity.AuthState{Phase: entity.AuthAuthenticated, User: verified, Token: stored.Token})

	return srv.Current()
}

func (srv *sessionService) Current() entity.AuthState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// adopt persists a fresh session and moves the state to authenticated.
func (srv *sessionService) adopt(session *gateway.Session) error {
	if session == nil || session.Token == "" || session.User == nil {
		return domainerrors.ErrUpstreamRejected.WithDetails("session payload missing token or user")
	}

	if err := srv.store.Save(&gateway.StoredSession{Token: session.Token, User: *session.User}); err != nil {
		return errors.Wrap(err, "failed to persist session")
	}

	srv.setState(entity.AuthState{
		Phase: entity.AuthAuthenticated,
		User:  session.User,
		Token: session.Token,
	})

	return nil
}

func (srv *sessionService) setState(state entity.AuthState) {
	srv.mu.Lock()
	srv.state = state
	srv.mu.Unlock()
}
