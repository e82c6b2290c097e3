package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealplanner-backend/domain"
	"mealplanner-backend/internal/api/presenters"
	"mealplanner-backend/pkg/grocery"
)

type (
	GroceryHandler interface {
		GenerateGroceryList(c *fiber.Ctx) error
		GetGroceryList(c *fiber.Ctx) error
		GetLatestGroceryList(c *fiber.Ctx) error
		UpdateGroceryList(c *fiber.Ctx) error
		DeleteGroceryList(c *fiber.Ctx) error
		ExportGroceryList(c *fiber.Ctx) error
		ShareGroceryList(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GenerateGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	req := new(domain.GenerateGroceryListRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateGroceryList, err)
	}

	res, err := h.groceryService.GenerateGroceryList(c.Context(), planID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateGroceryList)
}

func (h *groceryHandler) GetGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	res, err := h.groceryService.GetGroceryList(c.Context(), listID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryList)
}

func (h *groceryHandler) GetLatestGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	res, err := h.groceryService.GetLatestGroceryList(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryList)
}

func (h *groceryHandler) UpdateGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	req := new(domain.UpdateGroceryListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, err)
	}

	res, err := h.groceryService.UpdateGroceryList(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroceryList)
}

func (h *groceryHandler) DeleteGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	if err := h.groceryService.DeleteGroceryList(c.Context(), listID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryList)
}

func (h *groceryHandler) ExportGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	format := c.Query("format", "csv")

	switch format {
	case "csv":
		data, err := h.groceryService.ExportGroceryListCSV(c.Context(), listID, userID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportGroceryList, err)
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=grocery-list-%s.csv", listID))
		return c.Status(fiber.StatusOK).Send(data)
	case "json":
		data, err := h.groceryService.ExportGroceryListJSON(c.Context(), listID, userID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportGroceryList, err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=grocery-list-%s.json", listID))
		return c.Status(fiber.StatusOK).Send(data)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportGroceryList, domain.ErrInvalidExportFormat)
	}
}

func (h *groceryHandler) ShareGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	req := new(domain.ShareGroceryListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareGroceryList, err)
	}

	if err := h.groceryService.ShareGroceryList(c.Context(), listID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareGroceryList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShareGroceryList)
}
