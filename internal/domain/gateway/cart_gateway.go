package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartGateway wraps the upstream cart endpoints. The server-side cart is
// the source of truth for authenticated users; every mutation here is
// followed by a full reload in the usecase layer.
type CartGateway interface {
	// GetCart retrieves the whole cart for the token's owner.
	GetCart(ctx context.Context, token string) (*entity.Cart, error)

	// AddItem puts quantity units of a product into the cart.
	AddItem(ctx context.Context, token string, productID int64, quantity int) error

	// UpdateItemQuantity sets the absolute quantity of a cart line.
	UpdateItemQuantity(ctx context.Context, token string, itemID int64, quantity int) error

	// RemoveItem deletes a single cart line.
	RemoveItem(ctx context.Context, token string, itemID int64) error

	// ClearCart deletes the whole cart resource.
	ClearCart(ctx context.Context, token string) error
}
