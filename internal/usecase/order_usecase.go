package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

// OrderUsecase owns the order pages: customer history, the supplier order
// board and status transitions.
type OrderUsecase interface {
	ListOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error)
	GetOrder(ctx context.Context, token string, orderID int64) (*entity.Order, error)
	ListSupplierOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error)
	OrderStats(ctx context.Context, token string) (*entity.OrderStats, error)

	// UpdateOrderStatus moves an order to a new fulfillment status. The
	// status value is checked before the upstream call.
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status entity.OrderStatus) error
}
