package faq

import (
	"context"

	"cookus-server/entities"

	"gorm.io/gorm"
)

type (
	FaqRepository interface {
		List(ctx context.Context, query, category string, limit int) ([]entities.Faq, error)
		Categories(ctx context.Context) ([]string, error)
	}

	faqRepository struct {
		db *gorm.DB
	}
)

func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) List(ctx context.Context, query, category string, limit int) ([]entities.Faq, error) {
	q := r.db.WithContext(ctx).
		Model(&entities.Faq{}).
		Where("is_visible = ?", true)

	if query != "" {
		pat := "%" + query + "%"
		q = q.Where("question LIKE ? OR answer LIKE ? OR category LIKE ?", pat, pat, pat)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var faqs []entities.Faq
	if err := q.Order("created_at desc").Limit(limit).Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Faq{}).
		Distinct("category").
		Where("is_visible = ? AND category <> ''", true).
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
