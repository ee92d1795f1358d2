// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"time"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs shared across usecases ---

// Page is one page of a listing.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPage builds a page, substituting an empty slice for nil items.
func NewPage[T any](items []T, total int64, req entity.PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items: items,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}
}

// StoreView is the public representation of a store.
type StoreView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStoreView maps a store entity to its view.
func NewStoreView(store *entity.Store) *StoreView {
	if store == nil {
		return nil
	}

	return &StoreView{
		ID:        store.ID,
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		OwnerID:   store.OwnerID,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}

// RatingView is the representation of a rating.
type RatingView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Value     int       `json:"value"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRatingView maps a rating entity to its view.
func NewRatingView(rating *entity.Rating) *RatingView {
	if rating == nil {
		return nil
	}

	return &RatingView{
		ID:        rating.ID,
		UserID:    rating.UserID,
		StoreID:   rating.StoreID,
		Value:     rating.Value,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// StoreListItem is a store together with its rating summary and, for
// authenticated callers, the caller's own rating.
type StoreListItem struct {
	StoreView
	Rating   entity.RatingSummary `json:"rating"`
	MyRating *RatingView          `json:"my_rating,omitempty"`
}

// RaterView identifies who wrote a rating, projected for the viewer.
type RaterView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

// RatingWithRater is a rating shown to a store owner or admin.
type RatingWithRater struct {
	RatingView
	Rater *RaterView `json:"rater"`
}

// RatingWithStore is a rating shown to its author.
type RatingWithStore struct {
	RatingView
	StoreName string `json:"store_name"`
}
