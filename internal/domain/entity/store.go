package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a rateable shop. OwnerID is unique across stores: one user owns at most one store.
type Store struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Address   string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID owns the store.
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s != nil && s.OwnerID == userID
}
