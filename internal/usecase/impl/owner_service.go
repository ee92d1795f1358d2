package impl

import (
	"context"
	"log/slog"
	"time"

	"storerating/config"
	"storerating/internal/domain/aggregate"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	userRepo    repository.UserRepository
	ratingRepo  repository.RatingRepository
	evaluator   *policy.Evaluator
	catalog     *storeCatalog
	trendMonths int
	recentLimit int
	now         func() time.Time
	logger      *slog.Logger
}

// OwnerServiceParams holds dependencies for OwnerService, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Evaluator  *policy.Evaluator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	trendMonths, recentLimit := 6, 10
	if params.Config != nil && params.Config.Stats != nil {
		trendMonths = params.Config.Stats.TrendMonths
		recentLimit = params.Config.Stats.RecentRatingsLimit
	}

	var pagination *config.PaginationConfig
	if params.Config != nil {
		pagination = params.Config.Pagination
	}

	return &ownerService{
		userRepo:   params.UserRepo,
		ratingRepo: params.RatingRepo,
		evaluator:  params.Evaluator,
		catalog: &storeCatalog{
			storeRepo:  params.StoreRepo,
			ratingRepo: params.RatingRepo,
			pagination: pagination,
		},
		trendMonths: trendMonths,
		recentLimit: recentLimit,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// Dashboard summarizes the owner's store: totals, distribution, monthly trend
// and the most recent ratings with their authors.
func (srv *ownerService) Dashboard(ctx context.Context, actor *policy.Actor) (*usecase.OwnerDashboard, error) {
	decision, err := srv.evaluator.Authorize(ctx, actor, policy.OpOwnerDashboard, policy.Target{})
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.FindByStore(ctx, decision.Store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	recent := ratings
	if srv.recentLimit > 0 && len(recent) > srv.recentLimit {
		recent = recent[:srv.recentLimit]
	}

	raters, err := loadRaters(ctx, srv.userRepo, recent, decision.Fields)
	if err != nil {
		return nil, err
	}

	return &usecase.OwnerDashboard{
		Store:         usecase.NewStoreView(decision.Store),
		Rating:        aggregate.Summary(ratings),
		Trend:         aggregate.MonthlyTrend(ratings, srv.trendMonths, srv.now()),
		RecentRatings: raters,
	}, nil
}

// MyStore returns the owner's store with its rating summary.
func (srv *ownerService) MyStore(ctx context.Context, actor *policy.Actor) (*usecase.StoreListItem, error) {
	decision, err := srv.evaluator.Authorize(ctx, actor, policy.OpOwnerDashboard, policy.Target{})
	if err != nil {
		return nil, err
	}

	return srv.catalog.item(ctx, nil, decision.Store)
}

// StoreRatings returns every rating of the owner's store with its author.
func (srv *ownerService) StoreRatings(ctx context.Context, actor *policy.Actor) ([]*usecase.RatingWithRater, error) {
	decision, err := srv.evaluator.Authorize(ctx, actor, policy.OpOwnerDashboard, policy.Target{})
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.FindByStore(ctx, decision.Store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	return loadRaters(ctx, srv.userRepo, ratings, decision.Fields)
}
