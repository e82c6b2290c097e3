package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients" gorm:"type:text"` // JSON array of ingredient objects
	Instructions string    `json:"instructions" gorm:"type:text"`
	SourceURL    string    `json:"source_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
