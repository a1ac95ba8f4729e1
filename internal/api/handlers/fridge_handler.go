package handlers

import (
	"cookus-server/domain"
	"cookus-server/internal/api/presenters"
	"cookus-server/pkg/fridge"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		GetFridge(c *fiber.Ctx) error
		SaveFridge(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) GetFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.fridgeService.GetFridge(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridge, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFridge)
}

func (h *fridgeHandler) SaveFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveFridge, err)
	}

	items, err := h.fridgeService.SaveFridge(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveFridge, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessSaveFridge)
}

func (h *fridgeHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")

	if err := h.fridgeService.DeleteItem(c.Context(), userID, fridgeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFridge, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFridge)
}
