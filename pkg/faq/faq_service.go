package faq

import (
	"context"
	"time"

	"cookus-server/domain"
)

const (
	defaultFaqLimit = 30
	maxFaqLimit     = 100
)

type (
	FaqService interface {
		ListFaq(ctx context.Context, query, category string, limit int) (domain.FaqListResponse, error)
		Categories(ctx context.Context) ([]string, error)
	}

	faqService struct {
		repo FaqRepository
	}
)

func NewFaqService(repo FaqRepository) FaqService {
	return &faqService{repo: repo}
}

func (s *faqService) ListFaq(ctx context.Context, query, category string, limit int) (domain.FaqListResponse, error) {
	if limit < 1 {
		limit = defaultFaqLimit
	}
	if limit > maxFaqLimit {
		limit = maxFaqLimit
	}

	faqs, err := s.repo.List(ctx, query, category, limit)
	if err != nil {
		return domain.FaqListResponse{}, err
	}

	items := make([]domain.FaqItemResponse, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, domain.FaqItemResponse{
			FaqID:     f.FaqID,
			Question:  f.Question,
			Answer:    f.Answer,
			Category:  f.Category,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
			UpdatedAt: f.UpdatedAt.Format(time.RFC3339),
		})
	}
	return domain.FaqListResponse{Count: len(items), Items: items}, nil
}

func (s *faqService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
