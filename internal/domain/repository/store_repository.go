package repository

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the persistence operations for stores.
type StoreRepository interface {
	// FindByID retrieves a store by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByOwnerID retrieves the store owned by the given user.
	// Returns ErrStoreNotFound when the user owns no store.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	// FindByIDs retrieves the stores with the given IDs; missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error)

	// List returns one page of stores matching the filter and the total match count.
	List(ctx context.Context, filter entity.StoreFilter) ([]*entity.Store, int64, error)

	// Count returns the number of stores.
	Count(ctx context.Context) (int64, error)

	// Create persists a new store. A second store for the same owner yields ErrStoreAlreadyOwned.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies the name, email and address of a store.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store. Returns ErrStoreNotFound when no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
