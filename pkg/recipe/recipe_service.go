package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner-backend/domain"
	"mealplanner-backend/entities"
	"mealplanner-backend/internal/utils/storage"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipe(ctx context.Context, id string, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	for _, ing := range req.Ingredients {
		if ing.Amount < 0 {
			return domain.RecipeResponse{}, domain.ErrInvalidIngredientAmount
		}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	ingredientsJSON, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        req.Title,
		Ingredients:  string(ingredientsJSON),
		Instructions: req.Instructions,
		SourceURL:    req.SourceURL,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe)
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := toRecipeResponse(recipe)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Ingredients != nil {
		for _, ing := range req.Ingredients {
			if ing.Amount < 0 {
				return domain.RecipeResponse{}, domain.ErrInvalidIngredientAmount
			}
		}
		ingredientsJSON, err := json.Marshal(req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Ingredients = string(ingredientsJSON)
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}
	if req.SourceURL != "" {
		recipe.SourceURL = req.SourceURL
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, id, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(req.Image.Filename))
	key := fmt.Sprintf("recipes/%s/%s%s", userID, recipe.ID.String(), ext)

	imageURL, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.ImageURL = imageURL
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe)
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func toRecipeResponse(recipe *entities.Recipe) (domain.RecipeResponse, error) {
	var ingredients []domain.RecipeIngredient
	if recipe.Ingredients != "" {
		if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return domain.RecipeResponse{
		ID:           recipe.ID.String(),
		Title:        recipe.Title,
		Ingredients:  ingredients,
		Instructions: recipe.Instructions,
		SourceURL:    recipe.SourceURL,
		ImageURL:     recipe.ImageURL,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}, nil
}
