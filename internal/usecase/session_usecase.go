// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase owns the session lifecycle: login, logout, registration
// and verify-on-start. State is an explicit machine
// (idle -> loading -> authenticated | anonymous), never boolean flags.
type SessionUsecase interface {
	// Login exchanges credentials for a session, persists it and moves the
	// state to authenticated. Upstream errors propagate without retry.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Logout clears the persisted session and in-memory state
	// synchronously. No upstream round-trip.
	Logout(ctx context.Context) error

	// RegisterCustomer registers and auto-logs-in a customer.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*SessionOutput, error)

	// RegisterSupplier registers and auto-logs-in a supplier.
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*SessionOutput, error)

	// Restore loads the persisted session, optimistically marks it
	// authenticated, then verifies the token upstream. A failed
	// verification forces a logout and lands on anonymous; it never
	// returns an error for that case.
	Restore(ctx context.Context) entity.AuthState

	// Current returns the session state snapshot.
	Current() entity.AuthState
}

// LoginInput defines the credentials for a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterCustomerInput defines the data required to register a customer.
type RegisterCustomerInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
}

// RegisterSupplierInput defines the data required to register a supplier.
type RegisterSupplierInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	BusinessName    string `json:"business_name" validate:"required"`
	BusinessAddress string `json:"business_address" validate:"required"`
	BusinessPhone   string `json:"business_phone" validate:"required"`
}

// SessionOutput is returned by login and registration.
type SessionOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
