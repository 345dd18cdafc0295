package entity

import "time"

// OrderStatus is the fulfillment state of an order. Only the supplier side
// may move an order between statuses; customers see it read-only.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus is the payment state of an order. The upstream owns any
// transitions; this service only renders the value.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// OrderItem is a purchased line, snapshotted from the cart at checkout.
type OrderItem struct {
	ProductID int64    `json:"product_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	Quantity  int      `json:"quantity"`
	Subtotal  float64  `json:"subtotal"`
}

// Order is a completed checkout. Created once at submission; afterwards
// only the status field moves.
type Order struct {
	ID                  int64         `json:"order_id"`
	Items               []OrderItem   `json:"items"`
	TotalAmount         float64       `json:"total_amount"`
	Status              OrderStatus   `json:"status"`
	PaymentStatus       PaymentStatus `json:"payment_status"`
	ShippingAddress     string        `json:"shipping_address"`
	ShippingCity        string        `json:"shipping_city"`
	ShippingPhone       string        `json:"shipping_phone"`
	CustomerName        string        `json:"customer_name"`
	CustomerEmail       string        `json:"customer_email"`
	LoyaltyPointsUsed   int           `json:"loyalty_points_used,omitempty"`
	LoyaltyPointsEarned int           `json:"loyalty_points_earned,omitempty"`
	DateCreated         time.Time     `json:"date_created"`
}

// OrderStats is the aggregate view rendered on the supplier dashboard.
type OrderStats struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}
