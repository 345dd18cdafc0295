package gateway

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// ProductQuery narrows a product listing. Zero values mean "no filter".
type ProductQuery struct {
	Search     string
	CategoryID int64
	StoreID    int64
	Featured   bool
	Page       int
	Limit      int
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products   []entity.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	SalePrice           *float64 `json:"sale_price,omitempty"`
	CategoryID          int64    `json:"category_id"`
	StockQuantity       int      `json:"stock_quantity"`
	IsFeatured          bool     `json:"is_featured"`
	IsActive            bool     `json:"is_active"`
	LoyaltyPointsEarned int      `json:"loyalty_points_earned"`
}

// ImageUpload is a product image to be forwarded as multipart form data.
// Size and content type are validated before the upload ever starts.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ProductFlags are the single-field toggles patched without a full update.
type ProductFlags struct {
	IsActive   *bool `json:"is_active,omitempty"`
	IsFeatured *bool `json:"is_featured,omitempty"`
}

// CatalogGateway wraps the upstream product endpoints.
type CatalogGateway interface {
	// ListProducts fetches one page of the public catalog.
	ListProducts(ctx context.Context, query ProductQuery) (*ProductPage, error)

	// GetProduct fetches a single product.
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)

	// ListManagedProducts fetches the supplier's own products.
	ListManagedProducts(ctx context.Context, token string, query ProductQuery) (*ProductPage, error)

	// ProductStats fetches the supplier dashboard aggregates.
	ProductStats(ctx context.Context, token string) (*entity.ProductStats, error)

	// CreateProduct creates a product, as multipart when an image is attached.
	CreateProduct(ctx context.Context, token string, input *ProductInput, image *ImageUpload) (*entity.Product, error)

	// UpdateProduct replaces a product's writable fields.
	UpdateProduct(ctx context.Context, token string, productID int64, input *ProductInput, image *ImageUpload) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, token string, productID int64) error

	// SetProductFlags toggles is_active / is_featured without touching the
	// rest of the product.
	SetProductFlags(ctx context.Context, token string, productID int64, flags ProductFlags) error
}
