package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileGW gateway.ProfileGateway
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileGW gateway.ProfileGateway, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{profileGW: profileGW, logger: logger}
}

func (srv *profileService) GetProfile(ctx context.Context, token string) (*entity.User, error) {
	user, err := srv.profileGW.GetProfile(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

func (srv *profileService) UpdateProfile(ctx context.Context, token string, input *usecase.ProfileForm) (*entity.User, error) {
	user, err := srv.profileGW.UpdateProfile(ctx, token, &gateway.ProfileInput{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
		BusinessPhone:   input.BusinessPhone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.logger.Info("profile updated", slog.Int64("userID", user.ID))

	return user, nil
}
