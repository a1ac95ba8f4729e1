package faq

import (
	"context"
	"testing"
	"time"

	"cookus-server/entities"
)

type fakeFaqRepo struct {
	faqs []entities.Faq

	lastQuery    string
	lastCategory string
	lastLimit    int
}

func (f *fakeFaqRepo) List(ctx context.Context, query, category string, limit int) ([]entities.Faq, error) {
	f.lastQuery = query
	f.lastCategory = category
	f.lastLimit = limit
	return f.faqs, nil
}

func (f *fakeFaqRepo) Categories(ctx context.Context) ([]string, error) {
	return []string{"계정", "추천"}, nil
}

func TestListFaq(t *testing.T) {
	repo := &fakeFaqRepo{faqs: []entities.Faq{
		{FaqID: 1, Question: "추천이 왜 비어 있나요?", Answer: "냉장고 재료를 추가해 보세요.", Category: "추천", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}}
	svc := NewFaqService(repo)

	res, err := svc.ListFaq(context.Background(), "추천", "", 0)
	if err != nil {
		t.Fatalf("ListFaq: %v", err)
	}
	if res.Count != 1 || res.Items[0].FaqID != 1 {
		t.Errorf("res = %+v", res)
	}
	if repo.lastQuery != "추천" || repo.lastLimit != defaultFaqLimit {
		t.Errorf("repo called with %q/%d", repo.lastQuery, repo.lastLimit)
	}
}

func TestListFaqClampsLimit(t *testing.T) {
	repo := &fakeFaqRepo{}
	svc := NewFaqService(repo)

	if _, err := svc.ListFaq(context.Background(), "", "계정", 500); err != nil {
		t.Fatalf("ListFaq: %v", err)
	}
	if repo.lastLimit != maxFaqLimit {
		t.Errorf("limit = %d, want %d", repo.lastLimit, maxFaqLimit)
	}
	if repo.lastCategory != "계정" {
		t.Errorf("category = %q", repo.lastCategory)
	}
}

func TestCategories(t *testing.T) {
	svc := NewFaqService(&fakeFaqRepo{})

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("cats = %v", cats)
	}
}
