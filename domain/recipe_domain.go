package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessUploadImage  = "recipe image uploaded successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipe    = "failed to retrieve recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedUploadImage  = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidIngredientAmount  = errors.New("ingredient amount must be non-negative")
)

type (
	// RecipeIngredient is a single line of a recipe's ingredient list.
	// Amounts are declared per one serving.
	RecipeIngredient struct {
		Name        string  `json:"name" validate:"required"`
		Amount      float64 `json:"amount" validate:"min=0"`
		Unit        string  `json:"unit"`
		Preparation string  `json:"preparation,omitempty"`
		Optional    bool    `json:"optional,omitempty"`
	}

	CreateRecipeRequest struct {
		Title        string             `json:"title" validate:"required"`
		Ingredients  []RecipeIngredient `json:"ingredients" validate:"required,dive"`
		Instructions string             `json:"instructions"`
		SourceURL    string             `json:"source_url,omitempty" validate:"omitempty,url"`
	}

	UpdateRecipeRequest struct {
		Title        string             `json:"title" validate:"omitempty"`
		Ingredients  []RecipeIngredient `json:"ingredients" validate:"omitempty,dive"`
		Instructions string             `json:"instructions" validate:"omitempty"`
		SourceURL    string             `json:"source_url,omitempty" validate:"omitempty,url"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID           string             `json:"id"`
		Title        string             `json:"title"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		Instructions string             `json:"instructions,omitempty"`
		SourceURL    string             `json:"source_url,omitempty"`
		ImageURL     string             `json:"image_url,omitempty"`
		CreatedAt    time.Time          `json:"created_at"`
		UpdatedAt    time.Time          `json:"updated_at"`
	}
)
