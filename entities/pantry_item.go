package entities

import (
	"github.com/google/uuid"
)

type PantryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Item     string    `json:"item"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
