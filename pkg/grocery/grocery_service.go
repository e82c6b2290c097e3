package grocery

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner-backend/domain"
	"mealplanner-backend/entities"
	"mealplanner-backend/internal/utils/mailing"
	"mealplanner-backend/pkg/mealplan"
	"mealplanner-backend/pkg/pantry"
	"mealplanner-backend/pkg/recipe"
)

const dateLayout = "2006-01-02"

type (
	GroceryService interface {
		GenerateGroceryList(ctx context.Context, mealPlanID string, req domain.GenerateGroceryListRequest, userID string) (domain.GroceryListResponse, error)
		GetGroceryList(ctx context.Context, id string, userID string) (domain.GroceryListResponse, error)
		GetLatestGroceryList(ctx context.Context, mealPlanID string, userID string) (domain.GroceryListResponse, error)
		UpdateGroceryList(ctx context.Context, id string, req domain.UpdateGroceryListRequest, userID string) (domain.GroceryListResponse, error)
		DeleteGroceryList(ctx context.Context, id string, userID string) error
		ExportGroceryListCSV(ctx context.Context, id string, userID string) ([]byte, error)
		ExportGroceryListJSON(ctx context.Context, id string, userID string) ([]byte, error)
		ShareGroceryList(ctx context.Context, id string, req domain.ShareGroceryListRequest, userID string) error
	}

	groceryService struct {
		groceryRepository  GroceryRepository
		mealPlanRepository mealplan.MealPlanRepository
		recipeRepository   recipe.RecipeRepository
		pantryRepository   pantry.PantryRepository
		generator          Generator
	}
)

func NewGroceryService(
	groceryRepository GroceryRepository,
	mealPlanRepository mealplan.MealPlanRepository,
	recipeRepository recipe.RecipeRepository,
	pantryRepository pantry.PantryRepository,
	generator Generator,
) GroceryService {
	return &groceryService{
		groceryRepository:  groceryRepository,
		mealPlanRepository: mealPlanRepository,
		recipeRepository:   recipeRepository,
		pantryRepository:   pantryRepository,
		generator:          generator,
	}
}

func (s *groceryService) GenerateGroceryList(ctx context.Context, mealPlanID string, req domain.GenerateGroceryListRequest, userID string) (domain.GroceryListResponse, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, mealPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.GroceryListResponse{}, err
	}
	if plan.UserID.String() != userID {
		return domain.GroceryListResponse{}, domain.ErrUnauthorizedPlanAccess
	}

	unitSystem := req.UnitSystem
	if unitSystem == "" {
		unitSystem = domain.UnitSystemImperial
	}
	if unitSystem != domain.UnitSystemImperial && unitSystem != domain.UnitSystemMetric {
		return domain.GroceryListResponse{}, domain.ErrInvalidUnitSystem
	}

	meals, err := s.mealPlanRepository.GetMealsForPlan(ctx, mealPlanID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	input := PlanInput{
		MealPlanID: mealPlanID,
		StartDate:  plan.StartDate.Format(dateLayout),
		EndDate:    plan.EndDate.Format(dateLayout),
		Recipes:    make(map[string]RecipeInput),
		UnitSystem: unitSystem,
	}

	for _, meal := range meals {
		mealInput := MealInput{
			Date:        meal.Date.Format(dateLayout),
			MealTime:    meal.MealTime,
			Title:       meal.Title,
			Description: meal.Description,
			Servings:    meal.Servings,
		}
		if meal.RecipeID != nil {
			mealInput.RecipeID = meal.RecipeID.String()
		}
		input.Meals = append(input.Meals, mealInput)

		if mealInput.RecipeID == "" {
			continue
		}
		if _, ok := input.Recipes[mealInput.RecipeID]; ok {
			continue
		}
		rec, err := s.recipeRepository.GetRecipeByID(ctx, mealInput.RecipeID)
		if err != nil {
			// A meal pointing at a deleted recipe contributes nothing. Anything
			// else fails the whole generation rather than persisting a list
			// with ingredients missing.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return domain.GroceryListResponse{}, err
		}
		var ingredients []domain.RecipeIngredient
		if rec.Ingredients != "" {
			if err := json.Unmarshal([]byte(rec.Ingredients), &ingredients); err != nil {
				return domain.GroceryListResponse{}, err
			}
		}
		input.Recipes[mealInput.RecipeID] = RecipeInput{
			ID:          rec.ID.String(),
			Title:       rec.Title,
			Ingredients: ingredients,
		}
	}

	if req.PantryItems != nil {
		for _, p := range req.PantryItems {
			input.Pantry = append(input.Pantry, PantryInput{Item: p.Item, Quantity: p.Quantity, Unit: p.Unit})
		}
	} else {
		pantryItems, err := s.pantryRepository.GetPantryItems(ctx, userID)
		if err != nil {
			return domain.GroceryListResponse{}, err
		}
		for _, p := range pantryItems {
			input.Pantry = append(input.Pantry, PantryInput{Item: p.Item, Quantity: p.Quantity, Unit: p.Unit})
		}
	}

	items, err := s.generator.Generate(ctx, input)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryListResponse{}, domain.ErrParseUUID
	}

	list := &entities.GroceryList{
		ID:            uuid.New(),
		MealPlanID:    plan.ID,
		UserID:        userUUID,
		GeneratedAt:   time.Now(),
		StartDate:     plan.StartDate,
		EndDate:       plan.EndDate,
		ServingsScale: 1.0,
		UnitSystem:    unitSystem,
		Items:         string(itemsJSON),
		TotalItems:    len(items),
		CreatedAt:     time.Now(),
	}

	if total := sumEstimatedPrices(items); total > 0 {
		list.EstimatedTotal = &total
	}

	if err := s.groceryRepository.CreateGroceryList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list, items), nil
}

func (s *groceryService) GetGroceryList(ctx context.Context, id string, userID string) (domain.GroceryListResponse, error) {
	list, items, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return toGroceryListResponse(list, items), nil
}

func (s *groceryService) GetLatestGroceryList(ctx context.Context, mealPlanID string, userID string) (domain.GroceryListResponse, error) {
	list, err := s.groceryRepository.GetLatestGroceryListByPlan(ctx, mealPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListResponse{}, domain.ErrGroceryListNotFound
		}
		return domain.GroceryListResponse{}, err
	}
	if list.UserID.String() != userID {
		return domain.GroceryListResponse{}, domain.ErrUnauthorizedListAccess
	}
	items, err := unmarshalItems(list)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return toGroceryListResponse(list, items), nil
}

func (s *groceryService) UpdateGroceryList(ctx context.Context, id string, req domain.UpdateGroceryListRequest, userID string) (domain.GroceryListResponse, error) {
	list, _, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	// Items and summary are replaced wholesale.
	list.Items = string(itemsJSON)
	list.TotalItems = req.Summary.TotalItems
	list.EstimatedTotal = req.Summary.EstimatedTotal

	if err := s.groceryRepository.UpdateGroceryList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list, req.Items), nil
}

func (s *groceryService) DeleteGroceryList(ctx context.Context, id string, userID string) error {
	if _, _, err := s.getOwnedList(ctx, id, userID); err != nil {
		return err
	}
	return s.groceryRepository.DeleteGroceryList(ctx, id)
}

func (s *groceryService) ExportGroceryListCSV(ctx context.Context, id string, userID string) ([]byte, error) {
	_, items, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Item Name", "Quantity", "Unit", "Category", "Estimated Price", "Notes", "Optional"}); err != nil {
		return nil, err
	}
	for _, item := range items {
		name := item.DisplayName
		if name == "" {
			name = item.Name
		}
		price := ""
		if item.EstimatedPrice != nil {
			price = strconv.FormatFloat(*item.EstimatedPrice, 'f', 2, 64)
		}
		optional := "No"
		if item.Optional {
			optional = "Yes"
		}
		row := []string{
			name,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			item.Unit,
			item.Category,
			price,
			item.Notes,
			optional,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *groceryService) ExportGroceryListJSON(ctx context.Context, id string, userID string) ([]byte, error) {
	list, items, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(toGroceryListResponse(list, items), "", "  ")
}

func (s *groceryService) ShareGroceryList(ctx context.Context, id string, req domain.ShareGroceryListRequest, userID string) error {
	list, items, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	body.WriteString(fmt.Sprintf("<h2>Grocery List (%s - %s)</h2>", list.StartDate.Format(dateLayout), list.EndDate.Format(dateLayout)))
	body.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Item</th><th>Quantity</th><th>Unit</th><th>Category</th></tr>")
	for _, item := range items {
		name := item.DisplayName
		if name == "" {
			name = item.Name
		}
		body.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%g</td><td>%s</td><td>%s</td></tr>",
			name, item.Quantity, item.Unit, item.Category))
	}
	body.WriteString("</table>")

	subject := fmt.Sprintf("Your grocery list for %s - %s", list.StartDate.Format(dateLayout), list.EndDate.Format(dateLayout))
	return mailing.SendMail(req.Email, subject, body.String())
}

func (s *groceryService) getOwnedList(ctx context.Context, id string, userID string) (*entities.GroceryList, []domain.GroceryItem, error) {
	list, err := s.groceryRepository.GetGroceryListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrGroceryListNotFound
		}
		return nil, nil, err
	}
	if list.UserID.String() != userID {
		return nil, nil, domain.ErrUnauthorizedListAccess
	}
	items, err := unmarshalItems(list)
	if err != nil {
		return nil, nil, err
	}
	return list, items, nil
}

func unmarshalItems(list *entities.GroceryList) ([]domain.GroceryItem, error) {
	items := []domain.GroceryItem{}
	if list.Items == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(list.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func sumEstimatedPrices(items []domain.GroceryItem) float64 {
	var total float64
	for _, item := range items {
		if item.EstimatedPrice != nil {
			total += *item.EstimatedPrice
		}
	}
	return total
}

func toGroceryListResponse(list *entities.GroceryList, items []domain.GroceryItem) domain.GroceryListResponse {
	return domain.GroceryListResponse{
		ID:         list.ID.String(),
		MealPlanID: list.MealPlanID.String(),
		Meta: domain.GroceryListMeta{
			GeneratedAt: list.GeneratedAt,
			DateRange: domain.DateRange{
				Start: list.StartDate.Format(dateLayout),
				End:   list.EndDate.Format(dateLayout),
			},
			ServingsScale: list.ServingsScale,
			UnitSystem:    list.UnitSystem,
		},
		Items: items,
		Summary: domain.GroceryListSummary{
			TotalItems:     list.TotalItems,
			EstimatedTotal: list.EstimatedTotal,
		},
		CreatedAt: list.CreatedAt,
	}
}
