package pantry

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mealplanner-backend/entities"
)

type (
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		GetPantryItems(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id string) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetPantryItems(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("item asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}
