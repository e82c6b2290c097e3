package pantry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mealplanner-backend/domain"
	"mealplanner-backend/entities"
)

type fakePantryRepository struct {
	items map[string]*entities.PantryItem
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{items: make(map[string]*entities.PantryItem)}
}

func (r *fakePantryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakePantryRepository) GetPantryItems(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakePantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) DeletePantryItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func TestAddPantryItem(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())
	userID := uuid.New().String()

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Item:     "rice",
		Quantity: 2,
		Unit:     "lb",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "rice", res.Item)
	assert.InDelta(t, 2, res.Quantity, 0.001)
	assert.Equal(t, "lb", res.Unit)
}

func TestAddPantryItemRejectsNegativeQuantity(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Item:     "rice",
		Quantity: -1,
		Unit:     "lb",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidPantryQuantity)
}

func TestGetPantryItemsScopedToUser(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	alice := uuid.New().String()
	bob := uuid.New().String()

	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{Item: "salt", Quantity: 1, Unit: "lb"}, alice)
	require.NoError(t, err)
	_, err = service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{Item: "sugar", Quantity: 1, Unit: "lb"}, bob)
	require.NoError(t, err)

	items, err := service.GetPantryItems(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "salt", items[0].Item)
}

func TestUpdatePantryItemOwnership(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	owner := uuid.New().String()

	created, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{Item: "flour", Quantity: 5, Unit: "lb"}, owner)
	require.NoError(t, err)

	updated, err := service.UpdatePantryItem(context.Background(), created.ID, domain.UpdatePantryItemRequest{Quantity: 3}, owner)
	require.NoError(t, err)
	assert.InDelta(t, 3, updated.Quantity, 0.001)
	assert.Equal(t, "flour", updated.Item)

	_, err = service.UpdatePantryItem(context.Background(), created.ID, domain.UpdatePantryItemRequest{Quantity: 1}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestDeletePantryItem(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	owner := uuid.New().String()

	created, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{Item: "beans", Quantity: 2, Unit: "cans"}, owner)
	require.NoError(t, err)

	require.NoError(t, service.DeletePantryItem(context.Background(), created.ID, owner))

	err = service.DeletePantryItem(context.Background(), created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}
