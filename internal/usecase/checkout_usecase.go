package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase orchestrates the checkout flow: price quoting, the
// simulated payment step and order submission.
type CheckoutUsecase interface {
	// QuoteCart prices the current remote cart.
	QuoteCart(ctx context.Context, token string) (*Quote, error)

	// QuoteItems prices an arbitrary set of lines. Pure computation.
	QuoteItems(items []QuoteItem) Quote

	// Submit runs the full checkout: resolve the lines (cart or single
	// product), validate, simulate payment, create the order upstream and,
	// for cart checkouts, clear the remote cart.
	Submit(ctx context.Context, token string, input *CheckoutInput) (*CheckoutOutput, error)
}

// QuoteItem is one line being priced.
type QuoteItem struct {
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Quote is the price breakdown shown before payment. Total is always
// Subtotal + DeliveryFee, and DeliveryFee drops to zero once Subtotal
// exceeds the free-delivery threshold.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	DeliveryFee  float64 `json:"delivery_fee"`
	Total        float64 `json:"total"`
	FreeDelivery bool    `json:"free_delivery"`
}

// SingleProduct identifies a buy-it-now checkout line.
type SingleProduct struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CheckoutInput is the checkout submission. Exactly one source must be
// set: FromCart, or a single product. Neither present is the terminal
// "no order found" state.
type CheckoutInput struct {
	FromCart      bool           `json:"from_cart"`
	SingleProduct *SingleProduct `json:"single_product,omitempty"`

	ShippingAddress string `json:"shipping_address" validate:"required"`
	ShippingCity    string `json:"shipping_city" validate:"required"`
	ShippingPhone   string `json:"shipping_phone" validate:"required"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
}

// CheckoutOutput is the result of a successful submission.
type CheckoutOutput struct {
	Order *entity.Order `json:"order"`
	Quote Quote         `json:"quote"`
}
