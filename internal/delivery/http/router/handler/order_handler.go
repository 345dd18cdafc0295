package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the customer order history and the
// supplier order board.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUC usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

// ListOrders returns the customer's own orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := h.orderUC.ListOrders(c.Request().Context(), tokenFrom(c), orderQueryFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Orders retrieved")
}

// GetOrder returns a single order from the caller's history.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), tokenFrom(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved")
}

// ListSupplierOrders returns the orders placed against the supplier's
// store.
func (h *OrderHandler) ListSupplierOrders(c echo.Context) error {
	page, err := h.orderUC.ListSupplierOrders(c.Request().Context(), tokenFrom(c), orderQueryFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Orders retrieved")
}

// OrderStats returns the supplier dashboard aggregates.
func (h *OrderHandler) OrderStats(c echo.Context) error {
	stats, err := h.orderUC.OrderStats(c.Request().Context(), tokenFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved")
}

type orderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order to a new fulfillment status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *orderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.orderUC.UpdateOrderStatus(c.Request().Context(), tokenFrom(c), orderID, input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

func orderQueryFrom(c echo.Context) gateway.OrderQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return gateway.OrderQuery{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	}
}
