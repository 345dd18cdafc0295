package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileUsecase owns the profile page.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, token string, input *ProfileForm) (*entity.User, error)
}

// ProfileForm carries a profile update. Nil fields are left untouched;
// the role cannot be changed here.
type ProfileForm struct {
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	BusinessName    *string `json:"business_name,omitempty"`
	BusinessAddress *string `json:"business_address,omitempty"`
	BusinessPhone   *string `json:"business_phone,omitempty"`
}
