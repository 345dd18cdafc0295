package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	service *sessionService
	authGW  *mockAuthGateway
	store   *memSessionStore
}

func createTestSessionService(t *testing.T) sessionFixtures {
	authGW := &mockAuthGateway{}
	store := &memSessionStore{}
	service := NewSessionService(authGW, store, testLogger()).(*sessionService)

	t.Cleanup(func() { authGW.AssertExpectations(t) })

	return sessionFixtures{service: service, authGW: authGW, store: store}
}

func TestSessionService_Login_PersistsSessionAndState(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "shopper@example.com", Role: entity.RoleCustomer}
	fx.authGW.On("Login", ctx, "shopper@example.com", "hunter22").
		Return(&gateway.Session{Token: "tok-1", User: user}, nil)

	out, err := fx.service.Login(ctx, usecaseLoginInput("shopper@example.com", "hunter22"))
	require.NoError(t, err)
	assert.Equal(t, "tok-1", out.Token)

	state := fx.service.Current()
	assert.Equal(t, entity.AuthAuthenticated, state.Phase)
	assert.True(t, state.IsAuthenticated())

	stored, err := fx.store.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tok-1", stored.Token)
	assert.Equal(t, int64(7), stored.User.ID)
}

func TestSessionService_Login_PropagatesUpstreamError(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.authGW.On("Login", ctx, "shopper@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := fx.service.Login(ctx, usecaseLoginInput("shopper@example.com", "wrong"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, entity.AuthIdle, fx.service.Current().Phase)
}

func TestSessionService_Restore_VerificationFailureForcesLogout(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	stored := &gateway.StoredSession{Token: "stale"}
	stored.User = entity.User{ID: 3, Email: "old@example.com"}
	require.NoError(t, fx.store.Save(stored))

	fx.authGW.On("VerifyToken", ctx, "stale").
		Return(nil, domainerrors.ErrSessionExpired)

	state := fx.service.Restore(ctx)

	assert.Equal(t, entity.AuthAnonymous, state.Phase)
	assert.Nil(t, state.User)

	remaining, err := fx.store.Load()
	require.NoError(t, err)
	assert.Nil(t, remaining)
}

func TestSessionService_Restore_NoPersistedSessionIsAnonymous(t *testing.T) {
	fx := createTestSessionService(t)

	state := fx.service.Restore(context.Background())

	assert.Equal(t, entity.AuthAnonymous, state.Phase)
}

func TestSessionService_Restore_ValidTokenAuthenticates(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	stored := &gateway.StoredSession{Token: "fresh"}
	stored.User = entity.User{ID: 5, Email: "s@example.com", Role: entity.RoleSupplier}
	require.NoError(t, fx.store.Save(stored))

	verified := &entity.User{ID: 5, Email: "s@example.com", Role: entity.RoleSupplier, IsVerified: true}
	fx.authGW.On("VerifyToken", ctx, "fresh").Return(verified, nil)

	state := fx.service.Restore(ctx)

	require.Equal(t, entity.AuthAuthenticated, state.Phase)
	assert.True(t, state.User.IsVerified)
	assert.Equal(t, "fresh", state.Token)
}

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "a@example.com"}
	fx.authGW.On("Login", ctx, "a@example.com", "pw123456").
		Return(&gateway.Session{Token: "tok", User: user}, nil)
	_, err := fx.service.Login(ctx, usecaseLoginInput("a@example.com", "pw123456"))
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx))

	assert.Equal(t, entity.AuthAnonymous, fx.service.Current().Phase)
	stored, err := fx.store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSessionService_RegisterCustomer_AutoLogsIn(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	user := &entity.User{ID: 9, Email: "new@example.com", Role: entity.RoleCustomer}
	fx.authGW.On("RegisterCustomer", ctx, mock.AnythingOfType("*gateway.RegisterCustomerInput")).
		Return(&gateway.Session{Token: "tok-new", User: user}, nil)

	out, err := fx.service.RegisterCustomer(ctx, registerCustomerInput("new@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "tok-new", out.Token)
	assert.Equal(t, entity.AuthAuthenticated, fx.service.Current().Phase)
}
