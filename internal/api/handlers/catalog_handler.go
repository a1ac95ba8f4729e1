package handlers

import (
	"errors"
	"strconv"

	"cookus-server/domain"
	"cookus-server/internal/api/presenters"
	"cookus-server/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetRecipe(c *fiber.Ctx) error
		SearchIngredients(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetRecipe(c *fiber.Ctx) error {
	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	res, err := h.catalogService.GetRecipe(c.Context(), recipeID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *catalogHandler) SearchIngredients(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchIngredients, errors.New("query parameter q is required"))
	}

	res, err := h.catalogService.SearchIngredients(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchIngredients)
}
