package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/google/uuid"
)

// CartUsecase owns both carts: the server-backed mirror used once a user
// is authenticated, and the guest cart that serves pre-auth flows. Every
// remote mutation is followed by a full reload (correctness over latency)
// and a typed cart event.
type CartUsecase interface {
	// LoadCartItems fetches the remote cart. Any failure degrades to an
	// empty cart instead of an error, so cart reads never crash a page.
	LoadCartItems(ctx context.Context, token string) *entity.Cart

	// AddItem puts a product into the remote cart and returns the
	// reloaded cart.
	AddItem(ctx context.Context, token string, productID int64, quantity int) (*entity.Cart, error)

	// UpdateQuantity sets a line's quantity. Quantities below one delegate
	// to RemoveItem.
	UpdateQuantity(ctx context.Context, token string, itemID int64, quantity int) (*entity.Cart, error)

	// RemoveItem deletes a line and returns the reloaded cart.
	RemoveItem(ctx context.Context, token string, itemID int64) (*entity.Cart, error)

	// ClearCart deletes the whole remote cart.
	ClearCart(ctx context.Context, token string) error

	// TotalPrice sums the item totals of a cart snapshot.
	TotalPrice(cart *entity.Cart) float64

	// Guest cart operations, serving unauthenticated sessions only.
	GuestItems() ([]gateway.GuestCartItem, error)
	GuestAdd(ctx context.Context, input *GuestAddInput) error
	GuestUpdateQuantity(id uuid.UUID, quantity int) error
	GuestRemove(id uuid.UUID) error
	GuestClear() error

	// MergeGuestCart pushes the guest cart into the remote cart after
	// login and clears the local file.
	MergeGuestCart(ctx context.Context, token string) (*entity.Cart, error)
}

// GuestAddInput adds a product to the guest cart. The product is looked up
// for a price snapshot before it is stored.
type GuestAddInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}
