package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealplanner-backend/domain"
	"mealplanner-backend/internal/api/presenters"
	"mealplanner-backend/pkg/pantry"
)

type (
	PantryHandler interface {
		AddPantryItem(c *fiber.Ctx) error
		GetPantryItems(c *fiber.Ctx) error
		UpdatePantryItem(c *fiber.Ctx) error
		DeletePantryItem(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func (h *pantryHandler) AddPantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AddPantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	res, err := h.pantryService.AddPantryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

func (h *pantryHandler) GetPantryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.pantryService.GetPantryItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) UpdatePantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	req := new(domain.UpdatePantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	res, err := h.pantryService.UpdatePantryItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeletePantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.pantryService.DeletePantryItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}
