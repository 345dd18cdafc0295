package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for the store directory and the
// supplier's store settings.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(storeUC usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{storeUC: storeUC, logger: logger}
}

// ListStores returns one page of the public store directory.
func (h *StoreHandler) ListStores(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	stores, err := h.storeUC.ListStores(c.Request().Context(), gateway.StoreQuery{
		Search: c.QueryParam("search"),
		City:   c.QueryParam("city"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved")
}

// GetStore returns a single store.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved")
}

// CheckStore reports whether the supplier already owns a store.
func (h *StoreHandler) CheckStore(c echo.Context) error {
	store, hasStore, err := h.storeUC.CheckStore(c.Request().Context(), tokenFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"has_store": hasStore,
		"store":     store,
	}, "Store checked")
}

// CreateStore creates the supplier's one store.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var input *usecase.StoreForm
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), tokenFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created")
}

// UpdateStore replaces the store's writable fields.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	var input *usecase.StoreForm
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), tokenFrom(c), storeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated")
}
