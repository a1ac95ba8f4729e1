package fridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"

	"github.com/google/uuid"
)

type (
	FridgeService interface {
		GetFridge(ctx context.Context, userID string) ([]domain.FridgeItemResponse, error)
		SaveFridge(ctx context.Context, userID string, req domain.SaveFridgeRequest) ([]domain.FridgeItemResponse, error)
		DeleteItem(ctx context.Context, userID, fridgeID string) error
	}

	fridgeService struct {
		repo FridgeRepository
	}
)

func NewFridgeService(repo FridgeRepository) FridgeService {
	return &fridgeService{repo: repo}
}

// storedName collapses name and unit into the single column the
// recommendation engine tokenizes, e.g. "양파(개)".
func storedName(name, unit string) string {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s(%s)", name, unit)
}

// splitStoredName is the inverse of storedName.
func splitStoredName(stored string) (name, unit string) {
	open := strings.LastIndex(stored, "(")
	if open > 0 && strings.HasSuffix(stored, ")") {
		return stored[:open], stored[open+1 : len(stored)-1]
	}
	return stored, ""
}

func (s *fridgeService) GetFridge(ctx context.Context, userID string) ([]domain.FridgeItemResponse, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FridgeItemResponse, 0, len(items))
	for _, it := range items {
		name, unit := splitStoredName(it.IngredientName)
		out = append(out, domain.FridgeItemResponse{
			FridgeID: it.FridgeID.String(),
			Name:     name,
			Quantity: it.Quantity,
			Unit:     unit,
			StoredAt: it.StoredAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// SaveFridge writes a batch of items, upserting by stored name. Mode
// "merge" (the default) adds to an existing row's quantity; mode
// "replace" overwrites it. With purge_missing set, rows the batch no
// longer mentions are removed first.
func (s *fridgeService) SaveFridge(ctx context.Context, userID string, req domain.SaveFridgeRequest) ([]domain.FridgeItemResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = "merge"
	}

	names := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		names = append(names, storedName(item.Name, item.Unit))
	}

	if req.PurgeMissing {
		if err := s.repo.DeleteExcept(ctx, userID, names); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	for i, item := range req.Items {
		name := names[i]

		existing, err := s.repo.GetItemByName(ctx, userID, name)
		if err == nil {
			if mode == "merge" {
				existing.Quantity += item.Quantity
			} else {
				existing.Quantity = item.Quantity
			}
			existing.StoredAt = now
			if err := s.repo.UpdateItem(ctx, existing); err != nil {
				return nil, err
			}
			continue
		}
		if !errors.Is(err, domain.ErrFridgeItemNotFound) {
			return nil, err
		}

		if err := s.repo.CreateItem(ctx, &entities.FridgeItem{
			FridgeID:       uuid.New(),
			UserID:         userID,
			IngredientName: name,
			Quantity:       item.Quantity,
			StoredAt:       now,
		}); err != nil {
			return nil, err
		}
	}

	return s.GetFridge(ctx, userID)
}

func (s *fridgeService) DeleteItem(ctx context.Context, userID, fridgeID string) error {
	id, err := uuid.Parse(fridgeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.repo.DeleteItem(ctx, userID, id)
}
