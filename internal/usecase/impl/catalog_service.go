package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogGW gateway.CatalogGateway
	upload    *config.UploadConfig
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalogGW gateway.CatalogGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogGW: catalogGW,
		upload:    cfg.Upload,
		logger:    logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductPage, error) {
	page, err := srv.catalogGW.ListProducts(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return page, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.catalogGW.GetProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *catalogService) ListManagedProducts(ctx context.Context, token string, query gateway.ProductQuery) (*gateway.ProductPage, error) {
	page, err := srv.catalogGW.ListManagedProducts(ctx, token, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list managed products")
	}

	return page, nil
}

func (srv *catalogService) ProductStats(ctx context.Context, token string) (*entity.ProductStats, error) {
	stats, err := srv.catalogGW.ProductStats(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product stats")
	}

	return stats, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, token string, input *usecase.ProductForm, image *gateway.ImageUpload) (*entity.Product, error) {
	if err := srv.validateForm(input, image); err != nil {
		return nil, err
	}

	product, err := srv.catalogGW.CreateProduct(ctx, token, formToInput(input), image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created", slog.Int64("productID", product.ID))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, token string, productID int64, input *usecase.ProductForm, image *gateway.ImageUpload) (*entity.Product, error) {
	if err := srv.validateForm(input, image); err != nil {
		return nil, err
	}

	product, err := srv.catalogGW.UpdateProduct(ctx, token, productID, formToInput(input), image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, token string, productID int64) error {
	if err := srv.catalogGW.DeleteProduct(ctx, token, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("product deleted", slog.Int64("productID", productID))

	return nil
}

func (srv *catalogService) SetProductFlags(ctx context.Context, token string, productID int64, flags gateway.ProductFlags) error {
	if flags.IsActive == nil && flags.IsFeatured == nil {
		return domainerrors.ErrValidationFailed.WithDetails("no flag to change")
	}

	if err := srv.catalogGW.SetProductFlags(ctx, token, productID, flags); err != nil {
		return errors.Wrap(err, "failed to set product flags")
	}

	return nil
}

// validateForm enforces the write rules before any upstream call is made:
// a sale price must undercut the list price, and an attached image must be
// an allowed type within the size limit.
func (srv *catalogService) validateForm(input *usecase.ProductForm, image *gateway.ImageUpload) error {
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if input.StockQuantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock quantity cannot be negative")
	}
	if input.SalePrice != nil && *input.SalePrice >= input.Price {
		return domainerrors.ErrValidationFailed.WithDetails("sale price must be below the regular price")
	}

	if image != nil {
		if !slices.Contains(srv.upload.ContentTypes, image.ContentType) {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("image type %s is not allowed", image.ContentType))
		}
		if image.Size > srv.upload.MaxSizeBytes {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("image exceeds the %d byte limit", srv.upload.MaxSizeBytes))
		}
	}

	return nil
}

func formToInput(form *usecase.ProductForm) *gateway.ProductInput {
	return &gateway.ProductInput{
		Name:                form.Name,
		Description:         form.Description,
		Price:               form.Price,
		SalePrice:           form.SalePrice,
		CategoryID:          form.CategoryID,
		StockQuantity:       form.StockQuantity,
		IsFeatured:          form.IsFeatured,
		IsActive:            form.IsActive,
		LoyaltyPointsEarned: form.LoyaltyPointsEarned,
	}
}
