package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeGW gateway.StoreGateway
	logger  *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(storeGW gateway.StoreGateway, logger *slog.Logger) usecase.StoreUsecase {
	return &storeService{storeGW: storeGW, logger: logger}
}

func (srv *storeService) ListStores(ctx context.Context, query gateway.StoreQuery) (*gateway.StorePage, error) {
	page, err := srv.storeGW.ListStores(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return page, nil
}

func (srv *storeService) GetStore(ctx context.Context, storeID int64) (*entity.Store, error) {
	store, err := srv.storeGW.GetStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get store")
	}

	return store, nil
}

func (srv *storeService) CheckStore(ctx context.Context, token string) (*entity.Store, bool, error) {
	store, has, err := srv.storeGW.CheckStore(ctx, token)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to check store ownership")
	}

	return store, has, nil
}

func (srv *storeService) CreateStore(ctx context.Context, token string, input *usecase.StoreForm) (*entity.Store, error) {
	store, err := srv.storeGW.CreateStore(ctx, token, storeFormToInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.logger.Info("store created", slog.Int64("storeID", store.ID))

	return store, nil
}

func (srv *storeService) UpdateStore(ctx context.Context, token string, storeID int64, input *usecase.StoreForm) (*entity.Store, error) {
	store, err := srv.storeGW.UpdateStore(ctx, token, storeID, storeFormToInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

func storeFormToInput(form *usecase.StoreForm) *gateway.StoreInput {
	return &gateway.StoreInput{
		Name:         form.Name,
		Description:  form.Description,
		Address:      form.Address,
		City:         form.City,
		Phone:        form.Phone,
		Email:        form.Email,
		OpeningHours: form.OpeningHours,
	}
}
