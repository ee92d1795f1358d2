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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface. It keeps at most one
// rating per (user, store) and lets only the author change it.
type ratingService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	evaluator  *policy.Evaluator
	events     ratingEvents
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Evaluator  *policy.Evaluator
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		evaluator:  params.Evaluator,
		events:     ratingEvents{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRating stores the caller's first rating of a store.
func (srv *ratingService) CreateRating(ctx context.Context, actor *policy.Actor, input usecase.CreateRatingInput) (*usecase.RatingView, error) {
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpRatingSubmit, policy.Target{}); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		UserID:  actor.ID,
		StoreID: input.StoreID,
		Value:   input.Value,
		Comment: input.Comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.StoreRepo().FindByID(ctx, input.StoreID); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to find store")
		}

		ratingRepo := repoFactory.RatingRepo()

		_, err := ratingRepo.FindByUserAndStore(ctx, actor.ID, input.StoreID)
		if err == nil {
			return domainerrors.ErrRatingAlreadyExists
		}
		if !errors.Is(err, repository.ErrRatingNotFound) {
			return errors.Wrap(err, "failed to check existing rating")
		}

		// The unique (user_id, store_id) index still rejects a concurrent duplicate.
		return ratingRepo.Create(ctx, rating)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rating")
	}

	srv.log(ctx).Info("Rating created",
		slog.String("rating_id", rating.ID.String()),
		slog.String("store_id", rating.StoreID.String()),
	)
	srv.events.emit(ctx, ratingChanged(service.RatingCreated, rating))

	return usecase.NewRatingView(rating), nil
}

// UpdateRating applies the present fields of patch to the caller's rating.
func (srv *ratingService) UpdateRating(ctx context.Context, actor *policy.Actor, ratingID uuid.UUID, patch entity.RatingPatch) (*usecase.RatingView, error) {
	var updated *entity.Rating

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()

		rating, err := srv.loadForMutation(ctx, ratingRepo, actor, ratingID)
		if err != nil {
			return err
		}

		if patch.IsEmpty() {
			return domainerrors.ErrValidationFailed.WithDetails("at least one of value or comment is required")
		}

		patch.Apply(rating)
		if err := ratingRepo.Update(ctx, rating); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to save rating")
		}
		updated = rating

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update rating")
	}

	srv.events.emit(ctx, ratingChanged(service.RatingUpdated, updated))

	return usecase.NewRatingView(updated), nil
}

// DeleteRating removes the caller's rating. A second delete reports not found.
func (srv *ratingService) DeleteRating(ctx context.Context, actor *policy.Actor, ratingID uuid.UUID) error {
	var deleted *entity.Rating

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()

		rating, err := srv.loadForMutation(ctx, ratingRepo, actor, ratingID)
		if err != nil {
			return err
		}

		if err := ratingRepo.Delete(ctx, rating.ID); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to delete rating")
		}
		deleted = rating

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete rating")
	}

	srv.log(ctx).Info("Rating deleted", slog.String("rating_id", ratingID.String()))
	srv.events.emit(ctx, ratingChanged(service.RatingDeleted, deleted))

	return nil
}

// loadForMutation fetches a rating and checks that actor may change it.
func (srv *ratingService) loadForMutation(ctx context.Context, ratingRepo repository.RatingRepository, actor *policy.Actor, ratingID uuid.UUID) (*entity.Rating, error) {
	rating, err := ratingRepo.FindByID(ctx, ratingID)
	if err != nil && !errors.Is(err, repository.ErrRatingNotFound) {
		return nil, errors.Wrap(err, "failed to find rating")
	}

	// A nil rating makes the evaluator report not found after the role check.
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpRatingMutate, policy.Target{Rating: rating}); err != nil {
		return nil, err
	}

	return rating, nil
}

// ListMyRatings returns the caller's ratings, newest first, with store names.
func (srv *ratingService) ListMyRatings(ctx context.Context, actor *policy.Actor) ([]*usecase.RatingWithStore, error) {
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpRatingViewOwn, policy.Target{}); err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	names := map[uuid.UUID]string{}
	if len(ratings) > 0 {
		storeIDs := make([]uuid.UUID, 0, len(ratings))
		for _, r := range ratings {
			storeIDs = append(storeIDs, r.StoreID)
		}

		stores, err := srv.storeRepo.FindByIDs(ctx, storeIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load rated stores")
		}
		for _, s := range stores {
			names[s.ID] = s.Name
		}
	}

	out := make([]*usecase.RatingWithStore, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, &usecase.RatingWithStore{
			RatingView: *usecase.NewRatingView(r),
			StoreName:  names[r.StoreID],
		})
	}

	return out, nil
}

// MyRatingForStore returns the caller's rating of a store, or nil when there is none.
func (srv *ratingService) MyRatingForStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*usecase.RatingView, error) {
	if _, err := srv.evaluator.Authorize(ctx, actor, policy.OpMyRatingForStore, policy.Target{}); err != nil {
		return nil, err
	}

	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to find store")
	}

	rating, err := srv.ratingRepo.FindByUserAndStore(ctx, actor.ID, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return usecase.NewRatingView(rating), nil
}
