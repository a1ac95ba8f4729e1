package handlers

import (
	"strconv"

	"cookus-server/domain"
	"cookus-server/internal/api/presenters"
	"cookus-server/pkg/recommend"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendHandler interface {
		Recommend(c *fiber.Ctx) error
		RecommendDemo(c *fiber.Ctx) error
		SelectRecipe(c *fiber.Ctx) error
		GetSelections(c *fiber.Ctx) error
		DeleteSelection(c *fiber.Ctx) error
		UpdateSelectionAction(c *fiber.Ctx) error
	}

	recommendHandler struct {
		recommendService recommend.RecommendService
		validator        *validator.Validate
	}
)

func NewRecommendHandler(recommendService recommend.RecommendService, validator *validator.Validate) RecommendHandler {
	return &recommendHandler{
		recommendService: recommendService,
		validator:        validator,
	}
}

func (h *recommendHandler) Recommend(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecommendRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommend, err)
	}

	res, err := h.recommendService.Recommend(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommend, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommend)
}

// RecommendDemo serves the unauthenticated showcase flow. An empty
// user_id makes the engine pick a random fridge-owning user.
func (h *recommendHandler) RecommendDemo(c *fiber.Ctx) error {
	req := new(domain.RecommendRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommend, err)
	}

	res, err := h.recommendService.Recommend(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommend, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommend)
}

func (h *recommendHandler) SelectRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SelectRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSelectRecipe, err)
	}

	res, err := h.recommendService.SelectRecipe(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSelectRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSelectRecipe)
}

func (h *recommendHandler) GetSelections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendService.GetSelections(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSelections, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSelections)
}

func (h *recommendHandler) DeleteSelection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	selectedID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSelection, err)
	}

	if err := h.recommendService.DeleteSelection(c.Context(), userID, selectedID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSelection, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSelection)
}

func (h *recommendHandler) UpdateSelectionAction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	selectedID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAction, err)
	}

	req := new(domain.UpdateSelectionActionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAction, err)
	}

	if err := h.recommendService.UpdateSelectionAction(c.Context(), userID, selectedID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAction, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateAction)
}
