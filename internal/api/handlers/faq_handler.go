package handlers

import (
	"cookus-server/domain"
	"cookus-server/internal/api/presenters"
	"cookus-server/pkg/faq"

	"github.com/gofiber/fiber/v2"
)

type (
	FaqHandler interface {
		ListFaq(c *fiber.Ctx) error
		Categories(c *fiber.Ctx) error
	}

	faqHandler struct {
		faqService faq.FaqService
	}
)

func NewFaqHandler(faqService faq.FaqService) FaqHandler {
	return &faqHandler{faqService: faqService}
}

func (h *faqHandler) ListFaq(c *fiber.Ctx) error {
	query := c.Query("query")
	category := c.Query("category")
	limit := c.QueryInt("limit")

	res, err := h.faqService.ListFaq(c.Context(), query, category, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListFaq, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListFaq)
}

func (h *faqHandler) Categories(c *fiber.Ctx) error {
	res, err := h.faqService.Categories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFaqCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFaqCategories)
}
