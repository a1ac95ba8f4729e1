package fridge

import (
	"context"
	"errors"

	"cookus-server/domain"
	"cookus-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		GetItems(ctx context.Context, userID string) ([]entities.FridgeItem, error)
		GetItemByName(ctx context.Context, userID, name string) (*entities.FridgeItem, error)
		CreateItem(ctx context.Context, item *entities.FridgeItem) error
		UpdateItem(ctx context.Context, item *entities.FridgeItem) error
		DeleteItem(ctx context.Context, userID string, fridgeID uuid.UUID) error
		DeleteExcept(ctx context.Context, userID string, keepNames []string) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) GetItems(ctx context.Context, userID string) ([]entities.FridgeItem, error) {
	var items []entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("stored_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *fridgeRepository) GetItemByName(ctx context.Context, userID, name string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_name = ?", userID, name).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) CreateItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *fridgeRepository) UpdateItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *fridgeRepository) DeleteItem(ctx context.Context, userID string, fridgeID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND fridge_id = ?", userID, fridgeID).
		Delete(&entities.FridgeItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFridgeItemNotFound
	}
	return nil
}

func (r *fridgeRepository) DeleteExcept(ctx context.Context, userID string, keepNames []string) error {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(keepNames) > 0 {
		q = q.Where("ingredient_name NOT IN ?", keepNames)
	}
	return q.Delete(&entities.FridgeItem{}).Error
}
