package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

// StoreUsecase owns the store directory and the supplier's store settings.
type StoreUsecase interface {
	ListStores(ctx context.Context, query gateway.StoreQuery) (*gateway.StorePage, error)
	GetStore(ctx context.Context, storeID int64) (*entity.Store, error)

	// CheckStore reports whether the supplier already owns a store.
	CheckStore(ctx context.Context, token string) (*entity.Store, bool, error)

	// CreateStore creates the supplier's one store.
	CreateStore(ctx context.Context, token string, input *StoreForm) (*entity.Store, error)

	UpdateStore(ctx context.Context, token string, storeID int64, input *StoreForm) (*entity.Store, error)
}

// StoreForm carries a store create/edit submission.
type StoreForm struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	OpeningHours string `json:"opening_hours"`
}
