package impl

import (
	"context"
	"testing"
	"time"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	mockRepo "storerating/internal/mocks/repository"
	mockService "storerating/internal/mocks/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := usecase.RegisterUserInput{
		Name:     "Beatrice Okonkwo-Hastings",
		Email:    "  Beatrice@Example.com ",
		Password: "Secret#123",
		Address:  "4 Mill Lane",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "beatrice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret#123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "beatrice@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleUser
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = uuid.New() }).
		Return(nil)

	view, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "beatrice@example.com", view.Email)
	assert.Equal(t, entity.RoleUser, view.Role)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.RegisterUser(ctx, usecase.RegisterUserInput{Email: "taken@example.com", Password: "Secret#123"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestUserService_RegisterUser_ConcurrentDuplicateConflicts(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "racer@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret#123").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.RegisterUser(ctx, usecase.RegisterUserInput{Email: "racer@example.com", Password: "Secret#123"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed", Role: entity.RoleOwner}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Secret#123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("signed-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ANA@example.com", Password: "Secret#123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, entity.RoleOwner, out.User.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, domainerrors.KindUnauthenticated, domainerrors.KindOf(err))
}

func TestUserService_ResolveActor_UsesCurrentRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	// The token still says owner but the store was deleted since.
	fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID, Role: entity.RoleOwner}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "u@example.com", Role: entity.RoleUser}, nil)

	actor, err := fx.service.ResolveActor(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, entity.RoleUser, actor.Role)
}

func TestUserService_ResolveActor_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

	_, err := fx.service.ResolveActor(context.Background(), "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_ResolveActor_DeletedUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ResolveActor(ctx, "tok")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
