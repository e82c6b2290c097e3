package pantry

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner-backend/domain"
	"mealplanner-backend/entities"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string, userID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrInvalidPantryQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.PantryItem{
		ID:       uuid.New(),
		UserID:   userUUID,
		Item:     req.Item,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toPantryItemResponse(item), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toPantryItemResponse(item))
	}
	return result, nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	if req.Item != "" {
		item.Item = req.Item
	}
	if req.Quantity != 0 {
		if req.Quantity < 0 {
			return domain.PantryItemResponse{}, domain.ErrInvalidPantryQuantity
		}
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toPantryItemResponse(item), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func toPantryItemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:        item.ID.String(),
		Item:      item.Item,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
