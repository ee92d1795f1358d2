package impl

import (
	"context"
	"log/slog"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "Bearer"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new account with the user role.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*policy.UserView, error) {
	email := normalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Address:      input.Address,
		Role:         entity.RoleUser,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return policy.FullFields.Project(user), nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch on login", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
		User:        policy.FullFields.Project(user),
	}, nil
}

// ResolveActor validates the token and reloads the user so role changes apply
// to tokens issued before the change.
func (srv *userService) ResolveActor(ctx context.Context, token string) (*policy.Actor, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return &policy.Actor{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
