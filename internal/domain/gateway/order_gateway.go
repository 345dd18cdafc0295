package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderLine is a single purchased line in an order-creation payload.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderInput is the order-creation payload assembled by the checkout flow.
type OrderInput struct {
	Items           []OrderLine `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingCity    string      `json:"shipping_city"`
	ShippingPhone   string      `json:"shipping_phone"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	TotalAmount     float64     `json:"total_amount"`
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders     []entity.Order `json:"orders"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// OrderQuery narrows an order listing.
type OrderQuery struct {
	Status entity.OrderStatus
	Page   int
	Limit  int
}

// OrderGateway wraps the upstream order endpoints.
type OrderGateway interface {
	// CreateOrder submits an order. A 403 "own store" rejection surfaces as
	// the dedicated own-store-purchase business error.
	CreateOrder(ctx context.Context, token string, input *OrderInput) (*entity.Order, error)

	// GetOrder fetches a single order the caller is allowed to see.
	GetOrder(ctx context.Context, token string, orderID int64) (*entity.Order, error)

	// ListOrders fetches the customer's own orders.
	ListOrders(ctx context.Context, token string, query OrderQuery) (*OrderPage, error)

	// ListSupplierOrders fetches the orders placed against the supplier's store.
	ListSupplierOrders(ctx context.Context, token string, query OrderQuery) (*OrderPage, error)

	// OrderStats fetches the supplier dashboard aggregates.
	OrderStats(ctx context.Context, token string) (*entity.OrderStats, error)

	// UpdateOrderStatus moves an order to a new fulfillment status.
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status entity.OrderStatus) error
}
