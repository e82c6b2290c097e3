package mealplan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner-backend/domain"
	"mealplanner-backend/entities"
)

const dateLayout = "2006-01-02"

type (
	MealPlanService interface {
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		GetMealPlans(ctx context.Context, userID string, page, limit int) ([]domain.MealPlanResponse, int64, error)
		GetMealPlan(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error)
		UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		DeleteMealPlan(ctx context.Context, id string, userID string) error

		AddMeal(ctx context.Context, mealPlanID string, req domain.AddMealRequest, userID string) (domain.MealResponse, error)
		GetMeals(ctx context.Context, mealPlanID string, userID string) ([]domain.MealResponse, error)
		UpdateMeal(ctx context.Context, mealPlanID, mealID string, req domain.UpdateMealRequest, userID string) (domain.MealResponse, error)
		DeleteMeal(ctx context.Context, mealPlanID, mealID string, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepository: mealPlanRepository}
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidDate
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidDate
	}
	// Rejected before any meal or grocery processing can happen.
	if endDate.Before(startDate) {
		return domain.MealPlanResponse{}, domain.ErrInvalidDateRange
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	plan := &entities.MealPlan{
		ID:        uuid.New(),
		UserID:    userUUID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return toMealPlanResponse(plan), nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, userID string, page, limit int) ([]domain.MealPlanResponse, int64, error) {
	plans, count, err := s.mealPlanRepository.GetMealPlans(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toMealPlanResponse(plan))
	}
	return result, count, nil
}

func (s *mealPlanService) GetMealPlan(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, id, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	return toMealPlanResponse(plan), nil
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, id, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	startDate := plan.StartDate
	endDate := plan.EndDate

	if req.StartDate != "" {
		startDate, err = time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return domain.MealPlanResponse{}, domain.ErrInvalidDate
		}
	}
	if req.EndDate != "" {
		endDate, err = time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return domain.MealPlanResponse{}, domain.ErrInvalidDate
		}
	}
	if endDate.Before(startDate) {
		return domain.MealPlanResponse{}, domain.ErrInvalidDateRange
	}

	plan.StartDate = startDate
	plan.EndDate = endDate

	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}
	return toMealPlanResponse(plan), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedPlan(ctx, id, userID); err != nil {
		return err
	}
	return s.mealPlanRepository.DeleteMealPlan(ctx, id)
}

func (s *mealPlanService) AddMeal(ctx context.Context, mealPlanID string, req domain.AddMealRequest, userID string) (domain.MealResponse, error) {
	plan, err := s.getOwnedPlan(ctx, mealPlanID, userID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.MealResponse{}, domain.ErrInvalidDate
	}
	if !domain.IsValidMealTime(req.MealTime) {
		return domain.MealResponse{}, domain.ErrInvalidMealTime
	}

	servings := req.Servings
	if servings == 0 {
		servings = 1
	}
	if servings < 1 {
		return domain.MealResponse{}, domain.ErrInvalidServings
	}

	meal := &entities.Meal{
		ID:          uuid.New(),
		MealPlanID:  plan.ID,
		Date:        date,
		MealTime:    req.MealTime,
		Title:       req.Title,
		Description: req.Description,
		Servings:    servings,
		CreatedAt:   time.Now(),
	}

	if req.RecipeID != "" {
		recipeUUID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		meal.RecipeID = &recipeUUID
	}

	if err := s.mealPlanRepository.AddMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return toMealResponse(meal), nil
}

func (s *mealPlanService) GetMeals(ctx context.Context, mealPlanID string, userID string) ([]domain.MealResponse, error) {
	if _, err := s.getOwnedPlan(ctx, mealPlanID, userID); err != nil {
		return nil, err
	}

	meals, err := s.mealPlanRepository.GetMealsForPlan(ctx, mealPlanID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MealResponse, 0, len(meals))
	for _, meal := range meals {
		result = append(result, toMealResponse(meal))
	}
	return result, nil
}

func (s *mealPlanService) UpdateMeal(ctx context.Context, mealPlanID, mealID string, req domain.UpdateMealRequest, userID string) (domain.MealResponse, error) {
	if _, err := s.getOwnedPlan(ctx, mealPlanID, userID); err != nil {
		return domain.MealResponse{}, err
	}

	meal, err := s.mealPlanRepository.GetMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrMealNotFound
		}
		return domain.MealResponse{}, err
	}
	if meal.MealPlanID.String() != mealPlanID {
		return domain.MealResponse{}, domain.ErrMealNotFound
	}

	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return domain.MealResponse{}, domain.ErrInvalidDate
		}
		meal.Date = date
	}
	if req.MealTime != "" {
		if !domain.IsValidMealTime(req.MealTime) {
			return domain.MealResponse{}, domain.ErrInvalidMealTime
		}
		meal.MealTime = req.MealTime
	}
	if req.Title != "" {
		meal.Title = req.Title
	}
	if req.Description != "" {
		meal.Description = req.Description
	}
	if req.Servings != 0 {
		if req.Servings < 1 {
			return domain.MealResponse{}, domain.ErrInvalidServings
		}
		meal.Servings = req.Servings
	}
	if req.RecipeID != "" {
		recipeUUID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		meal.RecipeID = &recipeUUID
	}

	if err := s.mealPlanRepository.UpdateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return toMealResponse(meal), nil
}

func (s *mealPlanService) DeleteMeal(ctx context.Context, mealPlanID, mealID string, userID string) error {
	if _, err := s.getOwnedPlan(ctx, mealPlanID, userID); err != nil {
		return err
	}

	meal, err := s.mealPlanRepository.GetMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}
	if meal.MealPlanID.String() != mealPlanID {
		return domain.ErrMealNotFound
	}

	return s.mealPlanRepository.DeleteMeal(ctx, mealID)
}

func (s *mealPlanService) getOwnedPlan(ctx context.Context, id string, userID string) (*entities.MealPlan, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	if plan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedPlanAccess
	}
	return plan, nil
}

func toMealPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	return domain.MealPlanResponse{
		ID:        plan.ID.String(),
		StartDate: plan.StartDate.Format(dateLayout),
		EndDate:   plan.EndDate.Format(dateLayout),
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}

func toMealResponse(meal *entities.Meal) domain.MealResponse {
	res := domain.MealResponse{
		ID:          meal.ID.String(),
		MealPlanID:  meal.MealPlanID.String(),
		Date:        meal.Date.Format(dateLayout),
		MealTime:    meal.MealTime,
		Title:       meal.Title,
		Description: meal.Description,
		Servings:    meal.Servings,
	}
	if meal.RecipeID != nil {
		res.RecipeID = meal.RecipeID.String()
	}
	return res
}
