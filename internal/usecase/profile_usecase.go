package usecase

import (
	"context"

	"storerating/internal/domain/policy"
)

// ChangePasswordInput defines the data required to replace the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ProfileUsecase defines the interface for the caller's own account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, actor *policy.Actor) (*policy.UserView, error)
	ChangePassword(ctx context.Context, actor *policy.Actor, input ChangePasswordInput) error
}
