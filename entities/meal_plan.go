package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	User  *User   `gorm:"foreignKey:UserID"`
	Meals []*Meal `gorm:"foreignKey:MealPlanID"`
	Timestamp
}

type Meal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealPlanID  uuid.UUID  `json:"meal_plan_id"`
	Date        time.Time  `json:"date"`
	MealTime    string     `json:"meal_time"` // "breakfast", "lunch", "dinner", "snack", "custom"
	Title       string     `json:"title"`
	RecipeID    *uuid.UUID `json:"recipe_id,omitempty"`
	Description string     `json:"description,omitempty"`
	Servings    int        `json:"servings"`
	CreatedAt   time.Time  `gorm:"type:timestamp" json:"created_at"`

	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID"`
}
