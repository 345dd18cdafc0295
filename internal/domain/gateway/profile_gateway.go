package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileInput carries the writable fields of the user profile. Nil fields
// are left untouched. Role is deliberately absent: it is immutable after
// signup.
type ProfileInput struct {
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	BusinessName    *string `json:"business_name,omitempty"`
	BusinessAddress *string `json:"business_address,omitempty"`
	BusinessPhone   *string `json:"business_phone,omitempty"`
}

// ProfileGateway wraps the upstream profile endpoints.
type ProfileGateway interface {
	// GetProfile fetches the token owner's profile.
	GetProfile(ctx context.Context, token string) (*entity.User, error)

	// UpdateProfile applies the non-nil fields and returns the updated user.
	UpdateProfile(ctx context.Context, token string, input *ProfileInput) (*entity.User, error)
}
