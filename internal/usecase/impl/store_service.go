package impl

import (
	"context"
	"log/slog"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/aggregate"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	evaluator  *policy.Evaluator
	qrService  service.QRCodeService
	catalog    *storeCatalog
	logger     *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Evaluator  *policy.Evaluator
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	var pagination *config.PaginationConfig
	if params.Config != nil {
		pagination = params.Config.Pagination
	}

	return &storeService{
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		evaluator:  params.Evaluator,
		qrService:  params.QRService,
		catalog: &storeCatalog{
			storeRepo:  params.StoreRepo,
			ratingRepo: params.RatingRepo,
			pagination: pagination,
		},
		logger: params.Logger,
	}
}

// ListStores returns one page of stores with their rating summaries.
func (srv *storeService) ListStores(ctx context.Context, actor *policy.Actor, filter entity.StoreFilter) (*usecase.Page[*usecase.StoreListItem], error) {
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpStoreBrowse, policy.Target{}); err != nil {
		return nil, err
	}

	return srv.catalog.list(ctx, actor, filter)
}

// GetStore returns a single store with its rating summary.
func (srv *storeService) GetStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*usecase.StoreListItem, error) {
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpStoreBrowse, policy.Target{}); err != nil {
		return nil, err
	}

	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to find store")
	}

	return srv.catalog.item(ctx, actor, store)
}

// StoreQRCode renders the share code of an existing store.
func (srv *storeService) StoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to find store")
	}

	png, err := srv.qrService.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

// ManageStore returns the store, its owner and every rating with its author.
func (srv *storeService) ManageStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*usecase.ManagedStore, error) {
	store, decision, err := srv.authorizeManage(ctx, actor, storeID)
	if err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindByID(ctx, store.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load store owner")
	}

	ratings, err := srv.ratingRepo.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	raters, err := loadRaters(ctx, srv.userRepo, ratings, decision.Fields)
	if err != nil {
		return nil, err
	}

	return &usecase.ManagedStore{
		Store:   usecase.NewStoreView(store),
		Owner:   policy.FieldsFor(actor, owner).Project(owner),
		Rating:  aggregate.Summary(ratings),
		Ratings: raters,
	}, nil
}

// UpdateStore changes the present fields of a store.
func (srv *storeService) UpdateStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID, input usecase.UpdateStoreInput) (*usecase.StoreView, error) {
	store, _, err := srv.authorizeManage(ctx, actor, storeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Email != nil {
		store.Email = normalizeEmail(*input.Email)
	}
	if input.Address != nil {
		store.Address = *input.Address
	}

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to update store")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Store updated",
		slog.String("store_id", store.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return usecase.NewStoreView(store), nil
}

// authorizeManage loads the store and checks the store-owner-or-admin rule.
func (srv *storeService) authorizeManage(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*entity.Store, *policy.Decision, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
		return nil, nil, errors.Wrap(err, "failed to find store")
	}

	decision, err := srv.evaluator.Authorize(ctx, actor, policy.OpStoreManage, policy.Target{Store: store})
	if err != nil {
		return nil, nil, err
	}

	return store, decision, nil
}
