package grocery

import (
	"context"

	"gorm.io/gorm"

	"mealplanner-backend/entities"
)

type (
	GroceryRepository interface {
		CreateGroceryList(ctx context.Context, list *entities.GroceryList) error
		GetGroceryListByID(ctx context.Context, id string) (*entities.GroceryList, error)
		GetLatestGroceryListByPlan(ctx context.Context, mealPlanID string) (*entities.GroceryList, error)
		UpdateGroceryList(ctx context.Context, list *entities.GroceryList) error
		DeleteGroceryList(ctx context.Context, id string) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) CreateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *groceryRepository) GetGroceryListByID(ctx context.Context, id string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) GetLatestGroceryListByPlan(ctx context.Context, mealPlanID string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).
		Where("meal_plan_id = ?", mealPlanID).
		Order("created_at desc").
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) UpdateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *groceryRepository) DeleteGroceryList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryList{}).Error
}
