package usecase

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"

	"github.com/google/uuid"
)

// CreateRatingInput defines the data required to rate a store.
type CreateRatingInput struct {
	StoreID uuid.UUID
	Value   int
	Comment *string
}

// RatingUsecase defines the rating lifecycle of a single user.
type RatingUsecase interface {
	// CreateRating fails with a conflict when the caller already rated the store.
	CreateRating(ctx context.Context, actor *policy.Actor, input CreateRatingInput) (*RatingView, error)
	// UpdateRating changes only the fields present in the patch.
	UpdateRating(ctx context.Context, actor *policy.Actor, ratingID uuid.UUID, patch entity.RatingPatch) (*RatingView, error)
	DeleteRating(ctx context.Context, actor *policy.Actor, ratingID uuid.UUID) error
	ListMyRatings(ctx context.Context, actor *policy.Actor) ([]*RatingWithStore, error)
	// MyRatingForStore returns nil without error when the caller has not rated the store.
	MyRatingForStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*RatingView, error)
}
