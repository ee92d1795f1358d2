package repository

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/errors"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the persistence operations for ratings.
type RatingRepository interface {
	// FindByID retrieves a rating by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// FindByUserAndStore retrieves the rating a user holds for a store.
	// Returns ErrRatingNotFound when the pair has no rating.
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)

	// FindByStore returns every rating of a store, newest first.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error)

	// FindByStores returns every rating of the given stores.
	FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Rating, error)

	// FindByUser returns every rating authored by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)

	// FindByUserForStores returns the ratings a user holds for the given stores.
	FindByUserForStores(ctx context.Context, userID uuid.UUID, storeIDs []uuid.UUID) ([]*entity.Rating, error)

	// Count returns the number of ratings.
	Count(ctx context.Context) (int64, error)

	// Create persists a new rating. A second rating for the same (user, store)
	// pair yields ErrRatingAlreadyExists; an unknown store yields ErrStoreNotFound.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update writes the value and comment of an existing rating.
	Update(ctx context.Context, rating *entity.Rating) error

	// Delete removes a rating. Returns ErrRatingNotFound when no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByStore removes every rating of a store and returns how many were removed.
	DeleteByStore(ctx context.Context, storeID uuid.UUID) (int64, error)

	// DeleteByUser removes every rating authored by a user and returns how many were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
