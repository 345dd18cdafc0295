package gateway

import "github.com/google/uuid"

// GuestCartItem is a line in the pre-auth guest cart. Prices are a
// best-effort snapshot taken at add time; the upstream recomputes them when
// the guest cart is merged after login.
type GuestCartItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	SalePrice *float64  `json:"sale_price,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	StoreName string    `json:"store_name,omitempty"`
	Quantity  int       `json:"quantity"`
}

// UnitPrice is the price a single unit sells for.
func (i GuestCartItem) UnitPrice() float64 {
	if i.SalePrice != nil {
		return *i.SalePrice
	}

	return i.Price
}

// GuestCartStore persists the guest cart. It only serves unauthenticated
// flows; once a user logs in the remote cart is the source of truth.
// Implementations must be safe for concurrent use.
type GuestCartStore interface {
	// List returns all guest cart lines.
	List() ([]GuestCartItem, error)

	// Upsert adds a line, or adds the quantity onto an existing line for
	// the same product.
	Upsert(item GuestCartItem) error

	// UpdateQuantity sets the absolute quantity of a line. Quantities below
	// one remove the line instead of storing a zero.
	UpdateQuantity(id uuid.UUID, quantity int) error

	// Remove deletes a line.
	Remove(id uuid.UUID) error

	// Clear empties the guest cart.
	Clear() error
}
