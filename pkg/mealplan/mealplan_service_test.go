package mealplan

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

type fakeMealPlanRepository struct {
	plans map[string]*entities.MealPlan
	meals map[string]*entities.Meal
}

func newFakeMealPlanRepository() *fakeMealPlanRepository {
	return &fakeMealPlanRepository{
		plans: make(map[string]*entities.MealPlan),
		meals: make(map[string]*entities.Meal),
	}
}

func (r *fakeMealPlanRepository) CreateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	r.plans[plan.ID.String()] = plan
	return nil
}

func (r *fakeMealPlanRepository) GetMealPlanByID(_ context.Context, id string) (*entities.MealPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return plan, nil
}

func (r *fakeMealPlanRepository) GetMealPlans(_ context.Context, userID string, page, limit int) ([]*entities.MealPlan, int64, error) {
	var plans []*entities.MealPlan
	for _, plan := range r.plans {
		if plan.UserID.String() == userID {
			plans = append(plans, plan)
		}
	}
	return plans, int64(len(plans)), nil
}

func (r *fakeMealPlanRepository) UpdateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	r.plans[plan.ID.String()] = plan
	return nil
}

func (r *fakeMealPlanRepository) DeleteMealPlan(_ context.Context, id string) error {
	delete(r.plans, id)
	for mealID, meal := range r.meals {
		if meal.MealPlanID.String() == id {
			delete(r.meals, mealID)
		}
	}
	return nil
}

func (r *fakeMealPlanRepository) AddMeal(_ context.Context, meal *entities.Meal) error {
	r.meals[meal.ID.String()] = meal
	return nil
}

func (r *fakeMealPlanRepository) GetMealByID(_ context.Context, id string) (*entities.Meal, error) {
	meal, ok := r.meals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return meal, nil
}

func (r *fakeMealPlanRepository) GetMealsForPlan(_ context.Context, mealPlanID string) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	for _, meal := range r.meals {
		if meal.MealPlanID.String() == mealPlanID {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

func (r *fakeMealPlanRepository) UpdateMeal(_ context.Context, meal *entities.Meal) error {
	r.meals[meal.ID.String()] = meal
	return nil
}

func (r *fakeMealPlanRepository) DeleteMeal(_ context.Context, id string) error {
	delete(r.meals, id)
	return nil
}

func TestCreateMealPlan(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	userID := uuid.New().String()

	res, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", res.StartDate)
	assert.Equal(t, "2026-09-07", res.EndDate)
	assert.Len(t, repo.plans, 1)
}

func TestCreateMealPlanSingleDayRangeAllowed(t *testing.T) {
	service := NewMealPlanService(newFakeMealPlanRepository())

	_, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	}, uuid.New().String())
	assert.NoError(t, err)
}

func TestCreateMealPlanRejectsReversedRange(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)

	_, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-01",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Empty(t, repo.plans, "nothing should be persisted")
}

func TestCreateMealPlanRejectsMalformedDate(t *testing.T) {
	service := NewMealPlanService(newFakeMealPlanRepository())

	_, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "09/01/2026",
		EndDate:   "2026-09-07",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetMealPlanOwnership(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	created, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)

	_, err = service.GetMealPlan(context.Background(), created.ID, owner)
	assert.NoError(t, err)

	_, err = service.GetMealPlan(context.Background(), created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedPlanAccess)

	_, err = service.GetMealPlan(context.Background(), uuid.New().String(), owner)
	assert.ErrorIs(t, err, domain.ErrMealPlanNotFound)
}

func TestUpdateMealPlanRejectsReversedRange(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	created, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)

	_, err = service.UpdateMealPlan(context.Background(), created.ID, domain.UpdateMealPlanRequest{
		EndDate: "2026-08-30",
	}, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestAddMeal(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)

	recipeID := uuid.New().String()
	meal, err := service.AddMeal(context.Background(), plan.ID, domain.AddMealRequest{
		Date:     "2026-09-02",
		MealTime: "dinner",
		Title:    "Pasta Night",
		RecipeID: recipeID,
		Servings: 4,
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, meal.MealPlanID)
	assert.Equal(t, recipeID, meal.RecipeID)
	assert.Equal(t, 4, meal.Servings)
}

func TestAddMealDefaultsServingsToOne(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)

	meal, err := service.AddMeal(context.Background(), plan.ID, domain.AddMealRequest{
		Date:     "2026-09-02",
		MealTime: "lunch",
		Title:    "Leftovers",
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, meal.Servings)
	assert.Empty(t, meal.RecipeID)
}

func TestAddMealRejectsInvalidMealTime(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)

	_, err = service.AddMeal(context.Background(), plan.ID, domain.AddMealRequest{
		Date:     "2026-09-02",
		MealTime: "brunch",
		Title:    "Brunch",
	}, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidMealTime)
}

func TestUpdateMealRejectsMealFromAnotherPlan(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	planA, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)
	planB, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-08",
		EndDate:   "2026-09-14",
	}, owner)
	require.NoError(t, err)

	meal, err := service.AddMeal(context.Background(), planA.ID, domain.AddMealRequest{
		Date:     "2026-09-02",
		MealTime: "dinner",
		Title:    "Tacos",
	}, owner)
	require.NoError(t, err)

	_, err = service.UpdateMeal(context.Background(), planB.ID, meal.ID, domain.UpdateMealRequest{
		Title: "Stolen Tacos",
	}, owner)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}

func TestDeleteMeal(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	owner := uuid.New().String()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-07",
	}, owner)
	require.NoError(t, err)

	meal, err := service.AddMeal(context.Background(), plan.ID, domain.AddMealRequest{
		Date:     "2026-09-02",
		MealTime: "dinner",
		Title:    "Curry",
	}, owner)
	require.NoError(t, err)

	require.NoError(t, service.DeleteMeal(context.Background(), plan.ID, meal.ID, owner))
	assert.Empty(t, repo.meals)

	err = service.DeleteMeal(context.Background(), plan.ID, meal.ID, owner)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}
