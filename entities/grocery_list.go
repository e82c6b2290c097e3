package entities

import (
	"time"

	"github.com/google/uuid"
)

type GroceryList struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealPlanID     uuid.UUID `json:"meal_plan_id"`
	UserID         uuid.UUID `json:"user_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	ServingsScale  float64   `json:"servings_scale"`
	UnitSystem     string    `json:"unit_system"`            // "imperial" or "metric"
	Items          string    `json:"items" gorm:"type:text"` // JSON array of grocery items
	TotalItems     int       `json:"total_items"`
	EstimatedTotal *float64  `json:"estimated_total,omitempty"`
	CreatedAt      time.Time `gorm:"type:timestamp" json:"created_at"`

	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID"`
	User     *User     `gorm:"foreignKey:UserID"`
}
