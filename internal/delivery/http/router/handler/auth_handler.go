// Package handler contains the HTTP handlers for the storefront gateway.
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

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	cartUC    usecase.CartUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessionUC usecase.SessionUsecase, cartUC usecase.CartUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessionUC: sessionUC,
		cartUC:    cartUC,
		logger:    logger,
	}
}

// Login handles the login request. After a successful login any guest cart
// lines are merged into the remote cart.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.cartUC.MergeGuestCart(c.Request().Context(), output.Token); err != nil {
		// The login itself succeeded; a failed merge leaves the guest cart
		// intact for a later retry.
		h.logger.Warn("guest cart merge after login failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the persisted session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// RegisterCustomer handles the customer registration request.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var input *usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.sessionUC.RegisterCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Customer registered successfully")
}

// RegisterSupplier handles the supplier registration request.
func (h *AuthHandler) RegisterSupplier(c echo.Context) error {
	var input *usecase.RegisterSupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.sessionUC.RegisterSupplier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Supplier registered successfully")
}

// Session returns the current session state snapshot.
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.Current(), "Session state")
}

// tokenFrom reads the bearer token the auth middleware stored on the
// context.
func tokenFrom(c echo.Context) string {
	token, _ := c.Get(middleware.ContextToken).(string)

	return token
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
