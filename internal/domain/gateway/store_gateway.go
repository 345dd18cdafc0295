package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// StoreQuery narrows a store listing.
type StoreQuery struct {
	Search string
	City   string
	Page   int
	Limit  int
}

// StorePage is one page of a store listing.
type StorePage struct {
	Stores     []entity.Store `json:"stores"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// StoreInput carries the writable fields of a store.
type StoreInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	OpeningHours string `json:"opening_hours"`
}

// StoreGateway wraps the upstream store endpoints.
type StoreGateway interface {
	// ListStores fetches one page of the public store directory.
	ListStores(ctx context.Context, query StoreQuery) (*StorePage, error)

	// GetStore fetches a single store.
	GetStore(ctx context.Context, storeID int64) (*entity.Store, error)

	// CheckStore reports whether the supplier already owns a store, and
	// returns it if so.
	CheckStore(ctx context.Context, token string) (*entity.Store, bool, error)

	// CreateStore creates the supplier's store. One store per supplier.
	CreateStore(ctx context.Context, token string, input *StoreInput) (*entity.Store, error)

	// UpdateStore replaces the store's writable fields.
	UpdateStore(ctx context.Context, token string, storeID int64, input *StoreInput) (*entity.Store, error)
}
