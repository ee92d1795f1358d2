// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// translateNotFound converts repository sentinels into their domain errors and
// leaves every other error untouched.
func translateNotFound(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound
	case errors.Is(err, repository.ErrRatingNotFound):
		return domainerrors.ErrRatingNotFound
	default:
		return err
	}
}

// normalizeEmail lowercases and trims an email so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePage clamps a page request to the configured bounds.
func normalizePage(req entity.PageRequest, cfg *config.PaginationConfig) entity.PageRequest {
	defaultLimit, maxLimit := 20, 100
	if cfg != nil {
		defaultLimit, maxLimit = cfg.DefaultLimit, cfg.MaxLimit
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}

	return req
}

// ratingEvents publishes rating events after commit. A failed publish is
// logged and never fails the caller.
type ratingEvents struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e ratingEvents) emit(ctx context.Context, event *service.RatingEvent) {
	if e.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := e.publisher.PublishRatingEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish rating event",
			slog.String("action", string(event.Action)),
			slog.String("store_id", event.StoreID),
			slog.Any("error", err),
		)
	}
}

func ratingChanged(action service.RatingAction, rating *entity.Rating) *service.RatingEvent {
	return &service.RatingEvent{
		Action:   action,
		RatingID: rating.ID.String(),
		StoreID:  rating.StoreID.String(),
		UserID:   rating.UserID.String(),
		Value:    rating.Value,
	}
}

func ratingsPurgedForStore(storeID uuid.UUID, removed int64) *service.RatingEvent {
	return &service.RatingEvent{
		Action:  service.RatingsPurged,
		StoreID: storeID.String(),
		Removed: removed,
	}
}

func ratingsPurgedForUser(userID uuid.UUID, removed int64) *service.RatingEvent {
	return &service.RatingEvent{
		Action:  service.RatingsPurged,
		UserID:  userID.String(),
		Removed: removed,
	}
}

// withRaters attaches the author, projected onto fields, to each rating.
// Authors that no longer exist are shown by id only.
func withRaters(ratings []*entity.Rating, users []*entity.User, fields policy.FieldSet) []*usecase.RatingWithRater {
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]*usecase.RatingWithRater, 0, len(ratings))
	for _, r := range ratings {
		rater := &usecase.RaterView{ID: r.UserID}
		if u, ok := byID[r.UserID]; ok {
			if fields.Has(policy.FieldName) {
				rater.Name = u.Name
			}
			if fields.Has(policy.FieldEmail) {
				rater.Email = u.Email
			}
		}
		out = append(out, &usecase.RatingWithRater{RatingView: *usecase.NewRatingView(r), Rater: rater})
	}

	return out
}

// raterIDs returns the distinct authors of ratings.
func raterIDs(ratings []*entity.Rating) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ratings))
	ids := make([]uuid.UUID, 0, len(ratings))
	for _, r := range ratings {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	return ids
}

// loadRaters fetches the authors of ratings and attaches them projected onto fields.
func loadRaters(ctx context.Context, userRepo repository.UserRepository, ratings []*entity.Rating, fields policy.FieldSet) ([]*usecase.RatingWithRater, error) {
	if len(ratings) == 0 {
		return []*usecase.RatingWithRater{}, nil
	}

	users, err := userRepo.FindByIDs(ctx, raterIDs(ratings))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load raters")
	}

	return withRaters(ratings, users, fields), nil
}
