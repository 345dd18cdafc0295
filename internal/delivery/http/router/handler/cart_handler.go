package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/event"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for both cart surfaces: the remote cart
// of authenticated users and the local guest cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	bus    event.Bus
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cartUC usecase.CartUsecase, bus event.Bus, logger *slog.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, bus: bus, logger: logger}
}

type cartLineInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type quantityInput struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the remote cart. Read failures degrade to an empty cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart := h.cartUC.LoadCartItems(c.Request().Context(), tokenFrom(c))

	return response.Success(c, http.StatusOK, cart, "Cart retrieved")
}

// AddItem puts a product into the remote cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *cartLineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), tokenFrom(c), input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// UpdateQuantity sets a line's quantity. Quantities below one remove the
// line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	var input *quantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), tokenFrom(c), itemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Quantity updated")
}

// RemoveItem deletes a line from the remote cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), tokenFrom(c), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed")
}

// ClearCart empties the remote cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context(), tokenFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// Events streams cart mutations as server-sent events. The navbar badge
// subscribes here and refetches its count whenever an event arrives.
func (h *CartHandler) Events(c echo.Context) error {
	events, cancel := h.bus.Subscribe(8)
	defer cancel()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(evt)
			if err != nil {
				h.logger.Warn("failed to encode cart event", slog.Any("error", err))

				continue
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

// GuestCart returns the guest cart lines.
func (h *CartHandler) GuestCart(c echo.Context) error {
	items, err := h.cartUC.GuestItems()
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"items": items}, "Guest cart retrieved")
}

// GuestAdd puts a product into the guest cart, snapshotting its price.
func (h *CartHandler) GuestAdd(c echo.Context) error {
	var input *usecase.GuestAddInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest cart input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.cartUC.GuestAdd(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item added to guest cart")
}

// GuestUpdateQuantity sets a guest line's quantity.
func (h *CartHandler) GuestUpdateQuantity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid guest cart item id")
	}

	var input *quantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.cartUC.GuestUpdateQuantity(id, input.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quantity updated")
}

// GuestRemove deletes a guest cart line.
func (h *CartHandler) GuestRemove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid guest cart item id")
	}

	if err := h.cartUC.GuestRemove(id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed")
}

// GuestClear empties the guest cart.
func (h *CartHandler) GuestClear(c echo.Context) error {
	if err := h.cartUC.GuestClear(); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Guest cart cleared")
}
