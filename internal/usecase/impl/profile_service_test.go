package impl

import (
	"context"
	"testing"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	mockRepo "storerating/internal/mocks/repository"
	mockService "storerating/internal/mocks/service"
	"storerating/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	srv := NewProfileService(ProfileServiceParams{
		UserRepo:  userRepo,
		Hasher:    hasher,
		Evaluator: policy.NewEvaluator(mockRepo.NewMockStoreRepository(t)),
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{service: srv, userRepo: userRepo, hasher: hasher}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleUser)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(&entity.User{
		ID: actor.ID, Name: "Dana", Email: actor.Email, Address: "7 Elm", Role: entity.RoleUser,
	}, nil)

	view, err := fx.service.GetProfile(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "7 Elm", view.Address)
	assert.Equal(t, entity.RoleUser, view.Role)
}

func TestProfileService_GetProfile_Anonymous(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProfileService_ChangePassword(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleOwner)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(&entity.User{ID: actor.ID, PasswordHash: "old-hash"}, nil)
	fx.hasher.EXPECT().Check("Old#pass1", "old-hash").Return(true)
	fx.hasher.EXPECT().Hash("New#pass1").Return("new-hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, actor.ID, "new-hash").Return(nil)

	err := fx.service.ChangePassword(ctx, actor, usecase.ChangePasswordInput{CurrentPassword: "Old#pass1", NewPassword: "New#pass1"})
	assert.NoError(t, err)
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleUser)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(&entity.User{ID: actor.ID, PasswordHash: "old-hash"}, nil)
	fx.hasher.EXPECT().Check("nope", "old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, actor, usecase.ChangePasswordInput{CurrentPassword: "nope", NewPassword: "New#pass1"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}
