package impl

import (
	"context"
	"log/slog"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/aggregate"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface. Every multi-write
// operation runs in one transaction so a failure leaves nothing behind.
type adminService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	evaluator  *policy.Evaluator
	catalog    *storeCatalog
	pagination *config.PaginationConfig
	events     ratingEvents
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Evaluator  *policy.Evaluator
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	var pagination *config.PaginationConfig
	if params.Config != nil {
		pagination = params.Config.Pagination
	}

	return &adminService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		evaluator:  params.Evaluator,
		catalog: &storeCatalog{
			storeRepo:  params.StoreRepo,
			ratingRepo: params.RatingRepo,
			pagination: pagination,
		},
		pagination: pagination,
		events:     ratingEvents{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) authorize(ctx context.Context, actor *policy.Actor) (*policy.Decision, error) {
	return srv.evaluator.Authorize(ctx, actor, policy.OpAdminManage, policy.Target{})
}

// Dashboard returns platform-wide totals.
func (srv *adminService) Dashboard(ctx context.Context, actor *policy.Actor) (*usecase.AdminDashboard, error) {
	if _, err := srv.authorize(ctx, actor); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	stores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	ratings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.AdminDashboard{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

// CreateUser creates an account with any role.
func (srv *adminService) CreateUser(ctx context.Context, actor *policy.Actor, input usecase.CreateUserInput) (*policy.UserView, error) {
	decision, err := srv.authorize(ctx, actor)
	if err != nil {
		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(input.Role))
	}

	user, err := srv.newUser(ctx, srv.userRepo, input.Name, input.Email, input.Password, input.Address, input.Role)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created by admin",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return decision.Fields.Project(user), nil
}

// newUser checks that the email is free and builds a user with a hashed password.
func (srv *adminService) newUser(ctx context.Context, userRepo repository.UserRepository, name, email, password, address string, role entity.Role) (*entity.User, error) {
	email = normalizeEmail(email)

	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	return &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      address,
		Role:         role,
	}, nil
}

// ListUsers returns one page of users matching the filter.
func (srv *adminService) ListUsers(ctx context.Context, actor *policy.Actor, filter entity.UserFilter) (*usecase.Page[*policy.UserView], error) {
	decision, err := srv.authorize(ctx, actor)
	if err != nil {
		return nil, err
	}

	filter.PageRequest = normalizePage(filter.PageRequest, srv.pagination)

	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*policy.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, decision.Fields.Project(u))
	}

	return usecase.NewPage(views, total, filter.PageRequest), nil
}

// GetUser returns a user and, when they own a store, the store and its summary.
func (srv *adminService) GetUser(ctx context.Context, actor *policy.Actor, userID uuid.UUID) (*usecase.UserDetail, error) {
	decision, err := srv.authorize(ctx, actor)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to find user")
	}

	detail := &usecase.UserDetail{User: decision.Fields.Project(user)}

	store, err := srv.storeRepo.FindByOwnerID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return detail, nil
		}

		return nil, errors.Wrap(err, "failed to find owned store")
	}

	ratings, err := srv.ratingRepo.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	summary := aggregate.Summary(ratings)
	detail.Store = usecase.NewStoreView(store)
	detail.Rating = &summary

	return detail, nil
}

// ChangeUserRole sets a user's role. A store owner cannot be demoted to the
// user role while the store exists, and admins cannot change their own role.
func (srv *adminService) ChangeUserRole(ctx context.Context, actor *policy.Actor, userID uuid.UUID, role entity.Role) (*policy.UserView, error) {
	decision, err := srv.authorize(ctx, actor)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role))
	}
	if userID == actor.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("admins cannot change their own role")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(translateNotFound(err), "failed to find user")
		}

		if role == entity.RoleUser && found.Role != entity.RoleUser {
			if err := ensureOwnsNoStore(ctx, repoFactory.StoreRepo(), found.ID); err != nil {
				return err
			}
		}

		if err := userRepo.UpdateRole(ctx, found.ID, role); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to update role")
		}
		found.Role = role
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change user role")
	}

	srv.log(ctx).Info("User role changed",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()),
	)

	return decision.Fields.Project(user), nil
}

// DeleteUser removes a user who owns no store, together with their ratings.
func (srv *adminService) DeleteUser(ctx context.Context, actor *policy.Actor, userID uuid.UUID) error {
	if _, err := srv.authorize(ctx, actor); err != nil {
		return err
	}

	if userID == actor.ID {
		return domainerrors.ErrForbidden.WithDetails("admins cannot delete their own account")
	}

	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to find user")
		}

		if err := ensureOwnsNoStore(ctx, repoFactory.StoreRepo(), userID); err != nil {
			return err
		}

		var err error
		removed, err = repoFactory.RatingRepo().DeleteByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete user ratings")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("ratings_removed", removed),
	)
	if removed > 0 {
		srv.events.emit(ctx, ratingsPurgedForUser(userID, removed))
	}

	return nil
}

// ensureOwnsNoStore fails with a conflict when userID owns a store.
func ensureOwnsNoStore(ctx context.Context, storeRepo repository.StoreRepository, userID uuid.UUID) error {
	_, err := storeRepo.FindByOwnerID(ctx, userID)
	if err == nil {
		return domainerrors.ErrUserOwnsStore
	}
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to check owned store")
}

// CreateStore creates a store for an existing user and promotes that user to
// the owner role, an admin included.
func (srv *adminService) CreateStore(ctx context.Context, actor *policy.Actor, input usecase.CreateStoreInput) (*usecase.StoreView, error) {
	if _, err := srv.authorize(ctx, actor); err != nil {
		return nil, err
	}

	store := &entity.Store{
		Name:    input.Name,
		Email:   normalizeEmail(input.Email),
		Address: input.Address,
		OwnerID: input.OwnerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		storeRepo := repoFactory.StoreRepo()

		owner, err := userRepo.FindByID(ctx, input.OwnerID)
		if err != nil {
			return errors.Wrap(translateNotFound(err), "failed to find owner")
		}

		_, err = storeRepo.FindByOwnerID(ctx, owner.ID)
		if err == nil {
			return domainerrors.ErrStoreAlreadyOwned
		}
		if !errors.Is(err, repository.ErrStoreNotFound) {
			return errors.Wrap(err, "failed to check owned store")
		}

		if err := storeRepo.Create(ctx, store); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		if owner.Role != entity.RoleOwner {
			if err := userRepo.UpdateRole(ctx, owner.ID, entity.RoleOwner); err != nil {
				return errors.Wrap(err, "failed to promote owner")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created",
		slog.String("store_id", store.ID.String()),
		slog.String("owner_id", store.OwnerID.String()),
	)

	return usecase.NewStoreView(store), nil
}

// CreateStoreWithOwner creates a new owner account and its store atomically.
func (srv *adminService) CreateStoreWithOwner(ctx context.Context, actor *policy.Actor, input usecase.CreateStoreWithOwnerInput) (*usecase.StoreWithOwner, error) {
	decision, err := srv.authorize(ctx, actor)
	if err != nil {
		return nil, err
	}

	var (
		owner *entity.User
		store *entity.Store
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		newOwner, err := srv.newUser(ctx, userRepo, input.Owner.Name, input.Owner.Email, input.Owner.Password, input.Owner.Address, entity.RoleOwner)
		if err != nil {
			return err
		}

		if err := userRepo.Create(ctx, newOwner); err != nil {
			return errors.Wrap(err, "failed to create owner")
		}

		newStore := &entity.Store{
			Name:    input.Name,
			Email:   normalizeEmail(input.Email),
			Address: input.Address,
			OwnerID: newOwner.ID,
		}
		if err := repoFactory.StoreRepo().Create(ctx, newStore); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		owner, store = newOwner, newStore

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create store with owner")
	}

	srv.log(ctx).Info("Store created with new owner",
		slog.String("store_id", store.ID.String()),
		slog.String("owner_id", owner.ID.String()),
	)

	return &usecase.StoreWithOwner{
		Store: usecase.NewStoreView(store),
		Owner: decision.Fields.Project(owner),
	}, nil
}

// ListStores returns one page of stores with their rating summaries.
func (srv *adminService) ListStores(ctx context.Context, actor *policy.Actor, filter entity.StoreFilter) (*usecase.Page[*usecase.StoreListItem], error) {
	if _, err := srv.authorize(ctx, actor); err != nil {
		return nil, err
	}

	return srv.catalog.list(ctx, nil, filter)
}

// DeleteStore removes a store and its ratings and reverts a non-admin owner
// to the user role.
func (srv *adminService) DeleteStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) error {
	if _, err := srv.authorize(ctx, actor); err != nil {
		return err
	}

	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()
		userRepo := repoFactory.UserRepo()

		store, err := storeRepo.FindByID(ctx, storeID)
		if err != nil {
			return errors.Wrap(translateNotFound(err), "failed to find store")
		}

		removed, err = repoFactory.RatingRepo().DeleteByStore(ctx, store.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete store ratings")
		}

		if err := storeRepo.Delete(ctx, store.ID); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to delete store")
		}

		owner, err := userRepo.FindByID(ctx, store.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find store owner")
		}

		if owner.Role != entity.RoleAdmin {
			if err := userRepo.UpdateRole(ctx, owner.ID, entity.RoleUser); err != nil {
				return errors.Wrap(err, "failed to revert owner role")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete store")
	}

	srv.log(ctx).Info("Store deleted",
		slog.String("store_id", storeID.String()),
		slog.Int64("ratings_removed", removed),
	)
	if removed > 0 {
		srv.events.emit(ctx, ratingsPurgedForStore(storeID, removed))
	}

	return nil
}
