package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

// CatalogUsecase owns the product pages: public listing plus the supplier
// management surface. Writes are validated before any upstream call.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductPage, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	ListManagedProducts(ctx context.Context, token string, query gateway.ProductQuery) (*gateway.ProductPage, error)
	ProductStats(ctx context.Context, token string) (*entity.ProductStats, error)

	// CreateProduct validates the form and the optional image, then
	// forwards upstream (multipart when an image is attached).
	CreateProduct(ctx context.Context, token string, input *ProductForm, image *gateway.ImageUpload) (*entity.Product, error)

	// UpdateProduct behaves like CreateProduct against an existing product.
	UpdateProduct(ctx context.Context, token string, productID int64, input *ProductForm, image *gateway.ImageUpload) (*entity.Product, error)

	DeleteProduct(ctx context.Context, token string, productID int64) error

	// SetProductFlags toggles is_active / is_featured as a single-field
	// write.
	SetProductFlags(ctx context.Context, token string, productID int64, flags gateway.ProductFlags) error
}

// ProductForm carries a product create/edit submission.
type ProductForm struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description"`
	Price               float64  `json:"price" validate:"required,gt=0"`
	SalePrice           *float64 `json:"sale_price,omitempty"`
	CategoryID          int64    `json:"category_id" validate:"required,gt=0"`
	StockQuantity       int      `json:"stock_quantity" validate:"min=0"`
	IsFeatured          bool     `json:"is_featured"`
	IsActive            bool     `json:"is_active"`
	LoyaltyPointsEarned int      `json:"loyalty_points_earned" validate:"min=0"`
}
