package usecase

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"

	"github.com/google/uuid"
)

// UpdateStoreInput holds the editable store fields. Nil fields stay unchanged.
type UpdateStoreInput struct {
	Name    *string
	Email   *string
	Address *string
}

// ManagedStore is the full view of a store for its owner or an admin.
type ManagedStore struct {
	Store   *StoreView           `json:"store"`
	Owner   *policy.UserView     `json:"owner"`
	Rating  entity.RatingSummary `json:"rating"`
	Ratings []*RatingWithRater   `json:"ratings"`
}

// StoreUsecase defines public browsing and store-owner-or-admin management.
type StoreUsecase interface {
	// ListStores is public; actor may be nil. Authenticated callers also get their own rating per store.
	ListStores(ctx context.Context, actor *policy.Actor, filter entity.StoreFilter) (*Page[*StoreListItem], error)
	// GetStore is public; actor may be nil.
	GetStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*StoreListItem, error)
	// StoreQRCode returns a PNG linking to the store's public page.
	StoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error)
	ManageStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) (*ManagedStore, error)
	UpdateStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID, input UpdateStoreInput) (*StoreView, error)
}
