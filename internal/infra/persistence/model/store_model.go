package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. OwnerID is unique so a user owns at
// most one store, and a user cannot be deleted while their store exists.
type StoreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(60);not null;index"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(400);not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stores_owner"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
