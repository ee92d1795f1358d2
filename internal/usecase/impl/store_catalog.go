package impl

import (
	"context"

	"storerating/config"
	"storerating/internal/domain/aggregate"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeCatalog builds store listings decorated with rating summaries. It is
// shared by the public and the admin listings.
type storeCatalog struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	pagination *config.PaginationConfig
}

// list returns one page of stores. When viewer is set, each item also carries
// the viewer's own rating of that store.
func (c *storeCatalog) list(ctx context.Context, viewer *policy.Actor, filter entity.StoreFilter) (*usecase.Page[*usecase.StoreListItem], error) {
	filter.PageRequest = normalizePage(filter.PageRequest, c.pagination)

	stores, total, err := c.storeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	ids := make([]uuid.UUID, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.ID)
	}

	var ratings []*entity.Rating
	if len(ids) > 0 {
		ratings, err = c.ratingRepo.FindByStores(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load store ratings")
		}
	}
	summaries := aggregate.SummariesByStore(ids, ratings)

	mine := map[uuid.UUID]*entity.Rating{}
	if viewer != nil && len(ids) > 0 {
		own, err := c.ratingRepo.FindByUserForStores(ctx, viewer.ID, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load own ratings")
		}
		for _, r := range own {
			mine[r.StoreID] = r
		}
	}

	items := make([]*usecase.StoreListItem, 0, len(stores))
	for _, s := range stores {
		items = append(items, &usecase.StoreListItem{
			StoreView: *usecase.NewStoreView(s),
			Rating:    summaries[s.ID],
			MyRating:  usecase.NewRatingView(mine[s.ID]),
		})
	}

	return usecase.NewPage(items, total, filter.PageRequest), nil
}

// item decorates a single store with its summary and the viewer's rating.
func (c *storeCatalog) item(ctx context.Context, viewer *policy.Actor, store *entity.Store) (*usecase.StoreListItem, error) {
	ratings, err := c.ratingRepo.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store ratings")
	}

	item := &usecase.StoreListItem{
		StoreView: *usecase.NewStoreView(store),
		Rating:    aggregate.Summary(ratings),
	}

	if viewer != nil {
		for _, r := range ratings {
			if r.IsWrittenBy(viewer.ID) {
				item.MyRating = usecase.NewRatingView(r)

				break
			}
		}
	}

	return item, nil
}
