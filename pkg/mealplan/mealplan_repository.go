package mealplan

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mealplanner-backend/entities"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context, userID string, page, limit int) ([]*entities.MealPlan, int64, error)
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string) error

		AddMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		GetMealsForPlan(ctx context.Context, mealPlanID string) ([]*entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		DeleteMeal(ctx context.Context, id string) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, userID string, page, limit int) ([]*entities.MealPlan, int64, error) {
	var plans []*entities.MealPlan
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.MealPlan{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("start_date desc").Find(&plans).Error; err != nil {
		return nil, 0, err
	}

	return plans, count, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// DeleteMealPlan removes the plan together with its meals and grocery lists
// in one transaction.
func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", id).Delete(&entities.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_plan_id = ?", id).Delete(&entities.GroceryList{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.MealPlan{}).Error
	})
}

func (r *mealPlanRepository) AddMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealPlanRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealPlanRepository) GetMealsForPlan(ctx context.Context, mealPlanID string) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Where("meal_plan_id = ?", mealPlanID).
		Order("date asc, created_at asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealPlanRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealPlanRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Meal{}).Error
}
