package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealplanner-backend/domain"
	"mealplanner-backend/internal/api/presenters"
	"mealplanner-backend/pkg/budget"
)

type (
	BudgetHandler interface {
		EstimateBudget(c *fiber.Ctx) error
	}

	budgetHandler struct {
		budgetService budget.BudgetService
		validator     *validator.Validate
	}
)

func NewBudgetHandler(budgetService budget.BudgetService, validator *validator.Validate) BudgetHandler {
	return &budgetHandler{
		budgetService: budgetService,
		validator:     validator,
	}
}

func (h *budgetHandler) EstimateBudget(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PriceEstimateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimateBudget, err)
	}

	res, err := h.budgetService.EstimateBudget(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimateBudget, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEstimateBudget)
}
