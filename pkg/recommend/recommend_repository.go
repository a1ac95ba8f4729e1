package recommend

import (
	"context"
	"errors"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"

	"gorm.io/gorm"
)

type (
	RecommendRepository interface {
		GetProfile(ctx context.Context, userID string) (*entities.User, error)
		GetFridgeItems(ctx context.Context, userID string) ([]entities.FridgeItem, error)
		RandomEligibleUserID(ctx context.Context) (string, error)

		SearchByKeywords(ctx context.Context, keywords []string, andTop, limit int) ([]entities.Recipe, error)
		RandomRecipes(ctx context.Context, excludeIDs []int, limit int) ([]entities.Recipe, error)
		RecipesByIDs(ctx context.Context, ids []int) ([]entities.Recipe, error)

		InsertRecommendation(ctx context.Context, rec *entities.RecommendRecipe, window time.Duration) (bool, error)
		RecentRecommendations(ctx context.Context, userID string, window time.Duration) ([]entities.RecommendRecipe, error)
		FindRecentRecommendation(ctx context.Context, userID string, recipeID int, window time.Duration) (*entities.RecommendRecipe, error)

		CreateSelection(ctx context.Context, sel *entities.SelectedRecipe) error
		GetSelections(ctx context.Context, userID string) ([]entities.SelectedRecipe, error)
		GetSelection(ctx context.Context, userID string, selectedID int64) (*entities.SelectedRecipe, error)
		DeleteSelection(ctx context.Context, userID string, selectedID int64) error
		UpdateSelectionAction(ctx context.Context, userID string, selectedID int64, action int) error
	}

	recommendRepository struct {
		db *gorm.DB
	}
)

func NewRecommendRepository(db *gorm.DB) RecommendRepository {
	return &recommendRepository{db: db}
}

func (r *recommendRepository) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", userID, false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *recommendRepository) GetFridgeItems(ctx context.Context, userID string) ([]entities.FridgeItem, error) {
	var items []entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("stored_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *recommendRepository) RandomEligibleUserID(ctx context.Context) (string, error) {
	var userID string
	err := r.db.WithContext(ctx).
		Model(&entities.FridgeItem{}).
		Select("user_id").
		Group("user_id").
		Order("RANDOM()").
		Limit(1).
		Scan(&userID).Error
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", domain.ErrNoEligibleUser
	}
	return userID, nil
}

// SearchByKeywords retrieves catalog recipes whose ingredient list or
// title matches the fridge keywords. With andTop > 0 the first andTop
// keywords must all appear and at least one of the remaining keywords
// must too; with andTop == 0 any keyword is enough. Callers walk
// andTop down from 3 until something comes back.
func (r *recommendRepository) SearchByKeywords(ctx context.Context, keywords []string, andTop, limit int) ([]entities.Recipe, error) {
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	if len(kws) == 0 {
		return nil, nil
	}
	if andTop > len(kws) {
		andTop = len(kws)
	}

	match := func(kw string) *gorm.DB {
		pat := "%" + kw + "%"
		return r.db.Where("ingredient_full LIKE ? OR recipe_nm_ko LIKE ?", pat, pat)
	}
	anyOf := func(kws []string) *gorm.DB {
		or := match(kws[0])
		for _, kw := range kws[1:] {
			or = or.Or(match(kw))
		}
		return or
	}

	q := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if andTop > 0 {
		for _, kw := range kws[:andTop] {
			q = q.Where(match(kw))
		}
		if rest := kws[andTop:]; len(rest) > 0 {
			q = q.Where(anyOf(rest))
		}
	} else {
		q = q.Where(anyOf(kws))
	}

	var recipes []entities.Recipe
	if err := q.Order("RANDOM()").Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recommendRepository) RandomRecipes(ctx context.Context, excludeIDs []int, limit int) ([]entities.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if len(excludeIDs) > 0 {
		q = q.Where("recipe_id NOT IN ?", excludeIDs)
	}

	var recipes []entities.Recipe
	if err := q.Order("RANDOM()").Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recommendRepository) RecipesByIDs(ctx context.Context, ids []int) ([]entities.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// InsertRecommendation persists one recommendation card unless the same
// user already got the same recipe inside the dedup window. Returns
// false when the insert was skipped.
func (r *recommendRepository) InsertRecommendation(ctx context.Context, rec *entities.RecommendRecipe, window time.Duration) (bool, error) {
	since := time.Now().Add(-window)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecommendRecipe{}).
		Where("user_id = ? AND recipe_id = ? AND recommend_date >= ?", rec.UserID, rec.RecipeID, since).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *recommendRepository) RecentRecommendations(ctx context.Context, userID string, window time.Duration) ([]entities.RecommendRecipe, error) {
	since := time.Now().Add(-window)

	var recs []entities.RecommendRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recommend_date >= ?", userID, since).
		Order("recommend_date desc").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendRepository) FindRecentRecommendation(ctx context.Context, userID string, recipeID int, window time.Duration) (*entities.RecommendRecipe, error) {
	since := time.Now().Add(-window)

	var rec entities.RecommendRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND recommend_date >= ?", userID, recipeID, since).
		Order("recommend_date desc").
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecommendationAbsent
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendRepository) CreateSelection(ctx context.Context, sel *entities.SelectedRecipe) error {
	return r.db.WithContext(ctx).Create(sel).Error
}

func (r *recommendRepository) GetSelections(ctx context.Context, userID string) ([]entities.SelectedRecipe, error) {
	var sels []entities.SelectedRecipe
	if err := r.db.WithContext(ctx).
		Preload("Recommend").
		Where("user_id = ?", userID).
		Order("selected_date desc").
		Find(&sels).Error; err != nil {
		return nil, err
	}
	return sels, nil
}

func (r *recommendRepository) GetSelection(ctx context.Context, userID string, selectedID int64) (*entities.SelectedRecipe, error) {
	var sel entities.SelectedRecipe
	if err := r.db.WithContext(ctx).
		Preload("Recommend").
		Where("user_id = ? AND selected_id = ?", userID, selectedID).
		First(&sel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSelectionNotFound
		}
		return nil, err
	}
	return &sel, nil
}

func (r *recommendRepository) DeleteSelection(ctx context.Context, userID string, selectedID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND selected_id = ?", userID, selectedID).
		Delete(&entities.SelectedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSelectionNotFound
	}
	return nil
}

func (r *recommendRepository) UpdateSelectionAction(ctx context.Context, userID string, selectedID int64, action int) error {
	res := r.db.WithContext(ctx).
		Model(&entities.SelectedRecipe{}).
		Where("user_id = ? AND selected_id = ?", userID, selectedID).
		Update("action", action)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSelectionNotFound
	}
	return nil
}
