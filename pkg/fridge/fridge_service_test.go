package fridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"

	"github.com/google/uuid"
)

type fakeFridgeRepo struct {
	items map[string]*entities.FridgeItem // keyed by stored name

	deletedExcept []string
}

func newFakeFridgeRepo() *fakeFridgeRepo {
	return &fakeFridgeRepo{items: make(map[string]*entities.FridgeItem)}
}

func (f *fakeFridgeRepo) GetItems(ctx context.Context, userID string) ([]entities.FridgeItem, error) {
	var out []entities.FridgeItem
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeFridgeRepo) GetItemByName(ctx context.Context, userID, name string) (*entities.FridgeItem, error) {
	if it, ok := f.items[name]; ok {
		return it, nil
	}
	return nil, domain.ErrFridgeItemNotFound
}

func (f *fakeFridgeRepo) CreateItem(ctx context.Context, item *entities.FridgeItem) error {
	f.items[item.IngredientName] = item
	return nil
}

func (f *fakeFridgeRepo) UpdateItem(ctx context.Context, item *entities.FridgeItem) error {
	f.items[item.IngredientName] = item
	return nil
}

func (f *fakeFridgeRepo) DeleteItem(ctx context.Context, userID string, fridgeID uuid.UUID) error {
	for name, it := range f.items {
		if it.FridgeID == fridgeID {
			delete(f.items, name)
			return nil
		}
	}
	return domain.ErrFridgeItemNotFound
}

func (f *fakeFridgeRepo) DeleteExcept(ctx context.Context, userID string, keepNames []string) error {
	f.deletedExcept = keepNames
	keep := make(map[string]struct{}, len(keepNames))
	for _, n := range keepNames {
		keep[n] = struct{}{}
	}
	for name := range f.items {
		if _, ok := keep[name]; !ok {
			delete(f.items, name)
		}
	}
	return nil
}

func TestStoredNameRoundTrip(t *testing.T) {
	cases := []struct {
		name, unit string
		stored     string
	}{
		{"양파", "개", "양파(개)"},
		{"우유", "ml", "우유(ml)"},
		{"두부", "", "두부"},
	}
	for _, tc := range cases {
		if got := storedName(tc.name, tc.unit); got != tc.stored {
			t.Errorf("storedName(%q, %q) = %q, want %q", tc.name, tc.unit, got, tc.stored)
		}
		name, unit := splitStoredName(tc.stored)
		if name != tc.name || unit != tc.unit {
			t.Errorf("splitStoredName(%q) = %q, %q", tc.stored, name, unit)
		}
	}
}

func TestSaveFridgeMergeAddsQuantity(t *testing.T) {
	repo := newFakeFridgeRepo()
	repo.items["양파(개)"] = &entities.FridgeItem{
		FridgeID:       uuid.New(),
		UserID:         "u1",
		IngredientName: "양파(개)",
		Quantity:       2,
		StoredAt:       time.Now().AddDate(0, 0, -3),
	}
	svc := NewFridgeService(repo)

	_, err := svc.SaveFridge(context.Background(), "u1", domain.SaveFridgeRequest{
		Items: []domain.FridgeItemRequest{
			{Name: "양파", Quantity: 3, Unit: "개"},
			{Name: "두부", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("SaveFridge: %v", err)
	}

	if len(repo.items) != 2 {
		t.Fatalf("items = %d, want 2", len(repo.items))
	}
	if got := repo.items["양파(개)"].Quantity; got != 5 {
		t.Errorf("quantity = %d, want 5 after merge", got)
	}
}

func TestSaveFridgeReplaceOverwritesQuantity(t *testing.T) {
	repo := newFakeFridgeRepo()
	repo.items["두부"] = &entities.FridgeItem{FridgeID: uuid.New(), UserID: "u1", IngredientName: "두부", Quantity: 1}
	repo.items["양파"] = &entities.FridgeItem{FridgeID: uuid.New(), UserID: "u1", IngredientName: "양파", Quantity: 4}
	svc := NewFridgeService(repo)

	_, err := svc.SaveFridge(context.Background(), "u1", domain.SaveFridgeRequest{
		Mode:  "replace",
		Items: []domain.FridgeItemRequest{{Name: "양파", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("SaveFridge: %v", err)
	}

	if got := repo.items["양파"].Quantity; got != 2 {
		t.Errorf("quantity = %d, want 2 after replace", got)
	}
	if _, ok := repo.items["두부"]; !ok {
		t.Error("replace without purge_missing must keep unmentioned rows")
	}
}

func TestSaveFridgePurgeMissing(t *testing.T) {
	repo := newFakeFridgeRepo()
	repo.items["두부"] = &entities.FridgeItem{FridgeID: uuid.New(), UserID: "u1", IngredientName: "두부", Quantity: 1}
	repo.items["양파"] = &entities.FridgeItem{FridgeID: uuid.New(), UserID: "u1", IngredientName: "양파", Quantity: 1}
	svc := NewFridgeService(repo)

	_, err := svc.SaveFridge(context.Background(), "u1", domain.SaveFridgeRequest{
		PurgeMissing: true,
		Items:        []domain.FridgeItemRequest{{Name: "양파", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("SaveFridge: %v", err)
	}

	if _, ok := repo.items["두부"]; ok {
		t.Error("unmentioned item survived purge")
	}
	if _, ok := repo.items["양파"]; !ok {
		t.Error("mentioned item was purged")
	}
}

func TestSaveFridgeRejectsBadQuantity(t *testing.T) {
	svc := NewFridgeService(newFakeFridgeRepo())

	_, err := svc.SaveFridge(context.Background(), "u1", domain.SaveFridgeRequest{
		Items: []domain.FridgeItemRequest{{Name: "양파", Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("err = %v, want ErrInvalidQuantity", err)
	}
}

func TestDeleteItemInvalidID(t *testing.T) {
	svc := NewFridgeService(newFakeFridgeRepo())

	if err := svc.DeleteItem(context.Background(), "u1", "not-a-uuid"); !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("err = %v, want ErrParseUUID", err)
	}
}
