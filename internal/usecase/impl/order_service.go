package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderGW gateway.OrderGateway
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderGW gateway.OrderGateway, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{orderGW: orderGW, logger: logger}
}

func (srv *orderService) ListOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error) {
	page, err := srv.orderGW.ListOrders(ctx, token, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return page, nil
}

func (srv *orderService) GetOrder(ctx context.Context, token string, orderID int64) (*entity.Order, error) {
	order, err := srv.orderGW.GetOrder(ctx, token, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) ListSupplierOrders(ctx context.Context, token string, query gateway.OrderQuery) (*gateway.OrderPage, error) {
	page, err := srv.orderGW.ListSupplierOrders(ctx, token, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supplier orders")
	}

	return page, nil
}

func (srv *orderService) OrderStats(ctx context.Context, token string) (*entity.OrderStats, error) {
	stats, err := srv.orderGW.OrderStats(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order stats")
	}

	return stats, nil
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status entity.OrderStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + string(status))
	}

	if err := srv.orderGW.UpdateOrderStatus(ctx, token, orderID, status); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("order status updated",
		slog.Int64("orderID", orderID),
		slog.String("status", string(status)),
	)

	return nil
}
