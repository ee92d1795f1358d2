package usecase

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data an admin supplies to create an account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// CreateStoreInput defines a store for an existing user.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID uuid.UUID
}

// NewOwnerInput defines the account created together with a store.
type NewOwnerInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// CreateStoreWithOwnerInput defines a store and its brand-new owner.
type CreateStoreWithOwnerInput struct {
	Name    string
	Email   string
	Address string
	Owner   NewOwnerInput
}

// --- Output DTOs ---

// AdminDashboard holds platform-wide totals.
type AdminDashboard struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// UserDetail is a user as seen by an admin. Store and Rating are set for store owners.
type UserDetail struct {
	User   *policy.UserView      `json:"user"`
	Store  *StoreView            `json:"store,omitempty"`
	Rating *entity.RatingSummary `json:"rating,omitempty"`
}

// StoreWithOwner is the result of creating a store together with its owner.
type StoreWithOwner struct {
	Store *StoreView       `json:"store"`
	Owner *policy.UserView `json:"owner"`
}

// AdminUsecase defines user and store administration.
type AdminUsecase interface {
	Dashboard(ctx context.Context, actor *policy.Actor) (*AdminDashboard, error)

	CreateUser(ctx context.Context, actor *policy.Actor, input CreateUserInput) (*policy.UserView, error)
	ListUsers(ctx context.Context, actor *policy.Actor, filter entity.UserFilter) (*Page[*policy.UserView], error)
	GetUser(ctx context.Context, actor *policy.Actor, userID uuid.UUID) (*UserDetail, error)
	ChangeUserRole(ctx context.Context, actor *policy.Actor, userID uuid.UUID, role entity.Role) (*policy.UserView, error)
	// DeleteUser fails with a conflict while the user owns a store; their ratings cascade.
	DeleteUser(ctx context.Context, actor *policy.Actor, userID uuid.UUID) error

	// CreateStore promotes the existing owner to the owner role unless they are an admin.
	CreateStore(ctx context.Context, actor *policy.Actor, input CreateStoreInput) (*StoreView, error)
	// CreateStoreWithOwner creates the owner account and the store atomically.
	CreateStoreWithOwner(ctx context.Context, actor *policy.Actor, input CreateStoreWithOwnerInput) (*StoreWithOwner, error)
	ListStores(ctx context.Context, actor *policy.Actor, filter entity.StoreFilter) (*Page[*StoreListItem], error)
	// DeleteStore cascades the store's ratings and reverts its owner to the user role unless they are an admin.
	DeleteStore(ctx context.Context, actor *policy.Actor, storeID uuid.UUID) error
}
