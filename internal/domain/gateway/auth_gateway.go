// Package gateway defines the interfaces between the storefront and the
// remote marketplace API, plus the locally persisted stores. The usecase
// layer depends on these contracts, never on a concrete HTTP client, so
// every flow can be exercised against stubs in tests.
package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// Session is the result of a successful login or registration: the bearer
// token the upstream issued plus the user it belongs to.
type Session struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// RegisterCustomerInput defines the data required to register a customer.
type RegisterCustomerInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RegisterSupplierInput defines the data required to register a supplier.
type RegisterSupplierInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
}

// AuthGateway wraps the upstream authentication endpoints.
type AuthGateway interface {
	// Login exchanges credentials for a session. Upstream business errors
	// propagate unchanged; there is no retry.
	Login(ctx context.Context, email, password string) (*Session, error)

	// RegisterCustomer creates a customer account and returns a session
	// (registration doubles as login).
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*Session, error)

	// RegisterSupplier creates a supplier account and returns a session.
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*Session, error)

	// VerifyToken asks the upstream whether the token is still valid and
	// returns the user it belongs to.
	VerifyToken(ctx context.Context, token string) (*entity.User, error)
}
