package budget

import (
	"context"

	"mealplanner-backend/domain"
	"mealplanner-backend/pkg/grocery"
)

type (
	BudgetService interface {
		EstimateBudget(ctx context.Context, req domain.PriceEstimateRequest, userID string) (domain.BudgetEstimate, error)
	}

	budgetService struct {
		groceryService grocery.GroceryService
	}
)

func NewBudgetService(groceryService grocery.GroceryService) BudgetService {
	return &budgetService{groceryService: groceryService}
}

// EstimateBudget computes an estimate against a persisted grocery list. The
// estimate is derived on every request and never stored.
func (s *budgetService) EstimateBudget(ctx context.Context, req domain.PriceEstimateRequest, userID string) (domain.BudgetEstimate, error) {
	list, err := s.groceryService.GetGroceryList(ctx, req.GroceryListID, userID)
	if err != nil {
		return domain.BudgetEstimate{}, err
	}

	return Estimate(list, req.ManualOverrides, req.Store), nil
}
