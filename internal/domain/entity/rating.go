package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinRatingValue is the lowest score a rating may hold.
	MinRatingValue = 1
	// MaxRatingValue is the highest score a rating may hold.
	MaxRatingValue = 5
	// MaxCommentLength bounds the optional rating comment.
	MaxCommentLength = 500
)

// Rating is a user's score for a store. (UserID, StoreID) is unique.
type Rating struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StoreID   uuid.UUID
	Value     int
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWrittenBy reports whether userID authored the rating.
func (r *Rating) IsWrittenBy(userID uuid.UUID) bool {
	return r != nil && r.UserID == userID
}

// RatingPatch holds the fields of a partial rating update; nil fields stay unchanged.
type RatingPatch struct {
	Value   *int
	Comment *string
}

// IsEmpty reports whether the patch changes nothing.
func (p RatingPatch) IsEmpty() bool {
	return p.Value == nil && p.Comment == nil
}

// Apply copies the present fields onto r.
func (p RatingPatch) Apply(r *Rating) {
	if p.Value != nil {
		r.Value = *p.Value
	}
	if p.Comment != nil {
		r.Comment = p.Comment
	}
}
