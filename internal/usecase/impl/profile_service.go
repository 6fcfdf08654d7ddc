package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "affiliate/internal/delivery/context"
	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/domain/repository"
	"affiliate/internal/usecase"
	"affiliate/internal/util"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the operator profile.
func (srv *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}
		srv.log(ctx).Error("Failed to get profile", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile applies the supplied fields. Blank name or email keep the stored value,
// an empty avatar clears it.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if input == nil {
		input = &usecase.UpdateProfileInput{}
	}

	if email := util.TrimmedOrEmpty(input.Email); email != "" && !isEmail(email) {
		problems := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)
		problems.Add("email must be a valid email address")

		return nil, problems
	}

	profile, err := srv.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	if name := util.TrimmedOrEmpty(input.Name); name != "" {
		profile.Name = name
	}
	if email := util.TrimmedOrEmpty(input.Email); email != "" {
		profile.Email = strings.ToLower(email)
	}
	if input.Avatar != nil {
		profile.Avatar = strings.TrimSpace(*input.Avatar)
	}
	profile.UpdatedAt = srv.now().UTC()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile deleted during update")
		case errors.Is(err, repository.ErrDuplicateEmail):
			problems := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)
			problems.Add("email is already in use")

			return nil, problems
		}
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("profileID", profile.ID))

	return profile, nil
}
