package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealplanner-backend/domain"
	"mealplanner-backend/internal/api/presenters"
	"mealplanner-backend/pkg/mealplan"
)

type (
	MealPlanHandler interface {
		CreateMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		GetMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		AddMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	res, err := h.mealPlanService.CreateMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMealPlan)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	plans, count, err := h.mealPlanService.GetMealPlans(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"meal_plans": plans,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	res, err := h.mealPlanService.GetMealPlan(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	req := new(domain.UpdateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	res, err := h.mealPlanService.UpdateMealPlan(c.Context(), planID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) AddMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	req := new(domain.AddMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	res, err := h.mealPlanService.AddMeal(c.Context(), planID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMeal)
}

func (h *mealPlanHandler) GetMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	res, err := h.mealPlanService.GetMeals(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealPlanHandler) UpdateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	mealID := c.Params("meal_id")

	req := new(domain.UpdateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	res, err := h.mealPlanService.UpdateMeal(c.Context(), planID, mealID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *mealPlanHandler) DeleteMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	mealID := c.Params("meal_id")

	if err := h.mealPlanService.DeleteMeal(c.Context(), planID, mealID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}
