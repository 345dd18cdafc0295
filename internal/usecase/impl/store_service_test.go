package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStoreGateway struct {
	mock.Mock
}

func (m *mockStoreGateway) ListStores(ctx context.Context, query gateway.StoreQuery) (*gateway.StorePage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*gateway.StorePage), args.Error(1)
}

func (m *mockStoreGateway) GetStore(ctx context.Context, storeID int64) (*entity.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *mockStoreGateway) CheckStore(ctx context.Context, token string) (*entity.Store, bool, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*entity.Store), args.Bool(1), args.Error(2)
}

func (m *mockStoreGateway) CreateStore(ctx context.Context, token string, input *gateway.StoreInput) (*entity.Store, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *mockStoreGateway) UpdateStore(ctx context.Context, token string, storeID int64, input *gateway.StoreInput) (*entity.Store, error) {
	args := m.Called(ctx, token, storeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func createTestStoreService(t *testing.T) (usecase.StoreUsecase, *mockStoreGateway) {
	storeGW := &mockStoreGateway{}
	service := NewStoreService(storeGW, testLogger())

	t.Cleanup(func() { storeGW.AssertExpectations(t) })

	return service, storeGW
}

func TestStoreService_CheckStore_NoStoreYet(t *testing.T) {
	service, storeGW := createTestStoreService(t)
	ctx := context.Background()

	storeGW.On("CheckStore", ctx, "tok").Return(nil, false, nil)

	store, hasStore, err := service.CheckStore(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, hasStore)
	assert.Nil(t, store)
}

func TestStoreService_CheckStore_ExistingStore(t *testing.T) {
	service, storeGW := createTestStoreService(t)
	ctx := context.Background()

	owned := &entity.Store{ID: 3, Name: "Pottery Lane"}
	storeGW.On("CheckStore", ctx, "tok").Return(owned, true, nil)

	store, hasStore, err := service.CheckStore(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, hasStore)
	assert.Equal(t, int64(3), store.ID)
}

func TestStoreService_CreateStore_PropagatesConflict(t *testing.T) {
	service, storeGW := createTestStoreService(t)
	ctx := context.Background()

	storeGW.On("CreateStore", ctx, "tok", mock.AnythingOfType("*gateway.StoreInput")).
		Return(nil, domainerrors.ErrStoreExists)

	_, err := service.CreateStore(ctx, "tok", &usecase.StoreForm{
		Name:    "Second Store",
		Address: "1 Main St",
		City:    "Kandy",
		Phone:   "0712345678",
		Email:   "store@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrStoreExists)
}
