// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storerating/internal/domain/entity"
	"storerating/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDs retrieves the users with the given IDs; missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// List returns one page of users matching the filter and the total match count.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, int64, error)

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)

	// Create persists a new user. A duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role of a single user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes a user. Returns ErrUserNotFound when no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
