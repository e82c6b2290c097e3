package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMealPlan = "meal plan created successfully"
	MessageSuccessGetMealPlans   = "meal plans retrieved successfully"
	MessageSuccessGetMealPlan    = "meal plan retrieved successfully"
	MessageSuccessUpdateMealPlan = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"
	MessageSuccessAddMeal        = "meal added successfully"
	MessageSuccessGetMeals       = "meals retrieved successfully"
	MessageSuccessUpdateMeal     = "meal updated successfully"
	MessageSuccessDeleteMeal     = "meal deleted successfully"

	MessageFailedCreateMealPlan = "failed to create meal plan"
	MessageFailedGetMealPlans   = "failed to retrieve meal plans"
	MessageFailedGetMealPlan    = "failed to retrieve meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"
	MessageFailedAddMeal        = "failed to add meal"
	MessageFailedGetMeals       = "failed to retrieve meals"
	MessageFailedUpdateMeal     = "failed to update meal"
	MessageFailedDeleteMeal     = "failed to delete meal"

	ErrMealPlanNotFound       = errors.New("meal plan not found")
	ErrMealNotFound           = errors.New("meal not found")
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrInvalidDate            = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidMealTime        = errors.New("invalid meal time")
	ErrInvalidServings        = errors.New("servings must be a positive integer")
	ErrUnauthorizedPlanAccess = errors.New("unauthorized access to meal plan")
)

type (
	CreateMealPlanRequest struct {
		StartDate string `json:"start_date" validate:"required"`
		EndDate   string `json:"end_date" validate:"required"`
	}

	UpdateMealPlanRequest struct {
		StartDate string `json:"start_date" validate:"omitempty"`
		EndDate   string `json:"end_date" validate:"omitempty"`
	}

	MealPlanResponse struct {
		ID        string    `json:"id"`
		StartDate string    `json:"start_date"`
		EndDate   string    `json:"end_date"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	AddMealRequest struct {
		Date        string `json:"date" validate:"required"`
		MealTime    string `json:"meal_time" validate:"required"`
		Title       string `json:"title" validate:"required"`
		RecipeID    string `json:"recipe_id,omitempty" validate:"omitempty,uuid"`
		Description string `json:"description,omitempty"`
		Servings    int    `json:"servings" validate:"omitempty,min=1"`
	}

	UpdateMealRequest struct {
		Date        string `json:"date" validate:"omitempty"`
		MealTime    string `json:"meal_time" validate:"omitempty"`
		Title       string `json:"title" validate:"omitempty"`
		RecipeID    string `json:"recipe_id,omitempty" validate:"omitempty,uuid"`
		Description string `json:"description,omitempty"`
		Servings    int    `json:"servings" validate:"omitempty,min=1"`
	}

	MealResponse struct {
		ID          string `json:"id"`
		MealPlanID  string `json:"meal_plan_id"`
		Date        string `json:"date"`
		MealTime    string `json:"meal_time"`
		Title       string `json:"title"`
		RecipeID    string `json:"recipe_id,omitempty"`
		Description string `json:"description,omitempty"`
		Servings    int    `json:"servings"`
	}
)
