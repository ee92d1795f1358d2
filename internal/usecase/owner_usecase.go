package usecase

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"
)

// OwnerDashboard is the statistics view of the owner's store.
type OwnerDashboard struct {
	Store         *StoreView           `json:"store"`
	Rating        entity.RatingSummary `json:"rating"`
	Trend         []entity.TrendPoint  `json:"trend"`
	RecentRatings []*RatingWithRater   `json:"recent_ratings"`
}

// OwnerUsecase defines the read-only views of a store owner.
type OwnerUsecase interface {
	Dashboard(ctx context.Context, actor *policy.Actor) (*OwnerDashboard, error)
	MyStore(ctx context.Context, actor *policy.Actor) (*StoreListItem, error)
	StoreRatings(ctx context.Context, actor *policy.Actor) ([]*RatingWithRater, error)
}
