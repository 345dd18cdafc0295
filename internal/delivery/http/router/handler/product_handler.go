package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the public catalog and the
// supplier's product management surface.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(catalogUC usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

// ListProducts returns one page of the public catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := h.catalogUC.ListProducts(c.Request().Context(), productQueryFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved")
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved")
}

// ListManagedProducts returns the supplier's own products.
func (h *ProductHandler) ListManagedProducts(c echo.Context) error {
	page, err := h.catalogUC.ListManagedProducts(c.Request().Context(), tokenFrom(c), productQueryFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved")
}

// ProductStats returns the supplier dashboard aggregates.
func (h *ProductHandler) ProductStats(c echo.Context) error {
	stats, err := h.catalogUC.ProductStats(c.Request().Context(), tokenFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved")
}

// CreateProduct creates a product from a multipart form, with an optional
// image.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	form, image, err := productFormFrom(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	if image != nil {
		if closer, ok := image.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), tokenFrom(c), form, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct updates a product from a multipart form.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	form, image, err := productFormFrom(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	if image != nil {
		if closer, ok := image.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), tokenFrom(c), productID, form, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), tokenFrom(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// SetProductFlags toggles is_active / is_featured.
func (h *ProductHandler) SetProductFlags(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var flags gateway.ProductFlags
	if err := c.Bind(&flags); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flags input")
	}

	if err := h.catalogUC.SetProductFlags(c.Request().Context(), tokenFrom(c), productID, flags); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product flags updated")
}

func productQueryFrom(c echo.Context) gateway.ProductQuery {
	categoryID, _ := strconv.ParseInt(c.QueryParam("category_id"), 10, 64)
	storeID, _ := strconv.ParseInt(c.QueryParam("store_id"), 10, 64)
	featured, _ := strconv.ParseBool(c.QueryParam("featured"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return gateway.ProductQuery{
		Search:     c.QueryParam("search"),
		CategoryID: categoryID,
		StoreID:    storeID,
		Featured:   featured,
		Page:       page,
		Limit:      limit,
	}
}

// productFormFrom reads the multipart product form. The image is optional;
// when present its stream is returned unread so the gateway can forward it.
func productFormFrom(c echo.Context) (*usecase.ProductForm, *gateway.ImageUpload, error) {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return nil, nil, errors.New("price must be a number")
	}

	form := &usecase.ProductForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
	}
	if form.Name == "" {
		return nil, nil, errors.New("name is required")
	}

	if raw := c.FormValue("sale_price"); raw != "" {
		salePrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, errors.New("sale_price must be a number")
		}
		form.SalePrice = &salePrice
	}

	form.CategoryID, _ = strconv.ParseInt(c.FormValue("category_id"), 10, 64)
	form.StockQuantity, _ = strconv.Atoi(c.FormValue("stock_quantity"))
	form.IsFeatured, _ = strconv.ParseBool(c.FormValue("is_featured"))
	form.IsActive, _ = strconv.ParseBool(c.FormValue("is_active"))
	form.LoyaltyPointsEarned, _ = strconv.Atoi(c.FormValue("loyalty_points_earned"))

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image attached.
		return form, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open uploaded image")
	}

	image := &gateway.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	return form, image, nil
}
