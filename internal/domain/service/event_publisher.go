package service

import (
	"context"
	"time"
)

// RatingAction names the change a RatingEvent describes.
type RatingAction string

const (
	RatingCreated RatingAction = "rating.created"
	RatingUpdated RatingAction = "rating.updated"
	RatingDeleted RatingAction = "rating.deleted"
	// RatingsPurged is emitted once when a store or user deletion cascades its ratings.
	RatingsPurged RatingAction = "ratings.purged"
)

// RatingEvent announces a committed change to the ratings of a store or user.
// Consumers use it to invalidate anything derived from ratings.
type RatingEvent struct {
	RequestID  string       `json:"request_id,omitempty"`
	Action     RatingAction `json:"action"`
	RatingID   string       `json:"rating_id,omitempty"`
	StoreID    string       `json:"store_id,omitempty"`
	UserID     string       `json:"user_id,omitempty"`
	Value      int          `json:"value,omitempty"`
	Removed    int64        `json:"removed,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRatingEvent publishes a rating change event
	PublishRatingEvent(ctx context.Context, event *RatingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
