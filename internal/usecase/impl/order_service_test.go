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

func createTestOrderService(t *testing.T) (*orderService, *mockOrderGateway) {
	orderGW := &mockOrderGateway{}
	service := NewOrderService(orderGW, testLogger()).(*orderService)

	t.Cleanup(func() { orderGW.AssertExpectations(t) })

	return service, orderGW
}

func TestOrderService_UpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	service, orderGW := createTestOrderService(t)

	err := service.UpdateOrderStatus(context.Background(), "tok", 1, entity.OrderStatus("teleported"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	orderGW.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_ValidTransition(t *testing.T) {
	service, orderGW := createTestOrderService(t)
	ctx := context.Background()

	orderGW.On("UpdateOrderStatus", ctx, "tok", int64(4), entity.OrderStatusShipped).Return(nil)

	require.NoError(t, service.UpdateOrderStatus(ctx, "tok", 4, entity.OrderStatusShipped))
}

func TestOrderService_ListOrders_PassesQueryThrough(t *testing.T) {
	service, orderGW := createTestOrderService(t)
	ctx := context.Background()

	query := gateway.OrderQuery{Page: 2, Limit: 10, Status: entity.OrderStatusPending}
	page := &gateway.OrderPage{Orders: []entity.Order{{ID: 1}}, Total: 11, Page: 2}
	orderGW.On("ListOrders", ctx, "tok", query).Return(page, nil)

	got, err := service.ListOrders(ctx, "tok", query)
	require.NoError(t, err)
	assert.Equal(t, 11, got.Total)
}

func TestOrderService_GetOrder(t *testing.T) {
	service, orderGW := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: 7, Status: entity.OrderStatusPending, TotalAmount: 2550}
	orderGW.On("GetOrder", ctx, "tok", int64(7)).Return(order, nil)

	got, err := service.GetOrder(ctx, "tok", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	service, orderGW := createTestOrderService(t)
	ctx := context.Background()

	orderGW.On("GetOrder", ctx, "tok", int64(99)).Return(nil, domainerrors.ErrOrderNotFound)

	_, err := service.GetOrder(ctx, "tok", 99)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_OrderStats(t *testing.T) {
	service, orderGW := createTestOrderService(t)
	ctx := context.Background()

	stats := &entity.OrderStats{TotalOrders: 12, PendingOrders: 3, TotalRevenue: 45600}
	orderGW.On("OrderStats", ctx, "tok").Return(stats, nil)

	got, err := service.OrderStats(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 12, got.TotalOrders)
}
