package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout flow.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkoutUC usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, logger: logger}
}

// Quote prices the current remote cart before payment.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	quote, err := h.checkoutUC.QuoteCart(c.Request().Context(), tokenFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote computed")
}

// Submit runs the full checkout and creates the order upstream.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.checkoutUC.Submit(c.Request().Context(), tokenFrom(c), input)
	if err != nil {
		middleware.RecordCheckout(false)

		return errors.WithStack(err)
	}
	middleware.RecordCheckout(true)

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}
