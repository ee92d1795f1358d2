package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. The (user_id, store_id) pair is
// unique and ratings are removed together with their user or store.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store,priority:1"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store,priority:2;index:idx_ratings_store"`
	Value     int       `gorm:"type:smallint;not null;check:chk_ratings_value,value BETWEEN 1 AND 5"`
	Comment   *string   `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// All returns every persistence model in migration order.
func All() []any {
	return []any{&UserModel{}, &StoreModel{}, &RatingModel{}}
}
