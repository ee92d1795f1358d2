package impl

import (
	"context"
	"log/slog"

	deliverycontext "storerating/internal/delivery/context"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	evaluator *policy.Evaluator
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Evaluator *policy.Evaluator
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		evaluator: params.Evaluator,
		logger:    params.Logger,
	}
}

// GetProfile returns the caller's own account.
func (srv *profileService) GetProfile(ctx context.Context, actor *policy.Actor) (*policy.UserView, error) {
	decision, err := srv.evaluator.Authorize(ctx, actor, policy.OpProfile, policy.Target{})
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to get profile")
	}

	return decision.Fields.Project(user), nil
}

// ChangePassword verifies the current password before storing the new one.
func (srv *profileService) ChangePassword(ctx context.Context, actor *policy.Actor, input usecase.ChangePasswordInput) error {
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpProfile, policy.Target{}); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return errors.Wrap(translateNotFound(err), "failed to load user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrPasswordMismatch
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return errors.Wrap(translateNotFound(err), "failed to update password")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Password changed", slog.String("user_id", user.ID.String()))

	return nil
}
