package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"
)

type fakeRepo struct {
	profile     *entities.User
	fridgeItems []entities.FridgeItem
	poolByRung  map[int][]entities.Recipe
	randomPool  []entities.Recipe
	recentRecs  []entities.RecommendRecipe
	recentByID  map[int]*entities.RecommendRecipe
	selections  []entities.SelectedRecipe

	searchRungs []int
	inserted    []entities.RecommendRecipe
	created     []entities.SelectedRecipe
}

func (f *fakeRepo) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	if f.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return f.profile, nil
}

func (f *fakeRepo) GetFridgeItems(ctx context.Context, userID string) ([]entities.FridgeItem, error) {
	return f.fridgeItems, nil
}

func (f *fakeRepo) RandomEligibleUserID(ctx context.Context) (string, error) {
	if f.profile == nil {
		return "", domain.ErrNoEligibleUser
	}
	return f.profile.ID, nil
}

func (f *fakeRepo) SearchByKeywords(ctx context.Context, keywords []string, andTop, limit int) ([]entities.Recipe, error) {
	f.searchRungs = append(f.searchRungs, andTop)
	return f.poolByRung[andTop], nil
}

func (f *fakeRepo) RandomRecipes(ctx context.Context, excludeIDs []int, limit int) ([]entities.Recipe, error) {
	excluded := make(map[int]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	var out []entities.Recipe
	for _, r := range f.randomPool {
		if _, skip := excluded[r.RecipeID]; skip {
			continue
		}
		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) RecipesByIDs(ctx context.Context, ids []int) ([]entities.Recipe, error) {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []entities.Recipe
	for _, pool := range f.poolByRung {
		for _, r := range pool {
			if _, ok := want[r.RecipeID]; ok {
				out = append(out, r)
				delete(want, r.RecipeID)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) InsertRecommendation(ctx context.Context, rec *entities.RecommendRecipe, window time.Duration) (bool, error) {
	f.inserted = append(f.inserted, *rec)
	return true, nil
}

func (f *fakeRepo) RecentRecommendations(ctx context.Context, userID string, window time.Duration) ([]entities.RecommendRecipe, error) {
	return f.recentRecs, nil
}

func (f *fakeRepo) FindRecentRecommendation(ctx context.Context, userID string, recipeID int, window time.Duration) (*entities.RecommendRecipe, error) {
	if rec, ok := f.recentByID[recipeID]; ok {
		return rec, nil
	}
	return nil, domain.ErrRecommendationAbsent
}

func (f *fakeRepo) CreateSelection(ctx context.Context, sel *entities.SelectedRecipe) error {
	sel.SelectedID = int64(len(f.created) + 1)
	f.created = append(f.created, *sel)
	return nil
}

func (f *fakeRepo) GetSelections(ctx context.Context, userID string) ([]entities.SelectedRecipe, error) {
	return f.selections, nil
}

func (f *fakeRepo) GetSelection(ctx context.Context, userID string, selectedID int64) (*entities.SelectedRecipe, error) {
	for i := range f.selections {
		if f.selections[i].SelectedID == selectedID {
			return &f.selections[i], nil
		}
	}
	return nil, domain.ErrSelectionNotFound
}

func (f *fakeRepo) DeleteSelection(ctx context.Context, userID string, selectedID int64) error {
	return nil
}

func (f *fakeRepo) UpdateSelectionAction(ctx context.Context, userID string, selectedID int64, action int) error {
	return nil
}

type fakeAdapter struct {
	recipes []GeneratedRecipe
	err     error
	calls   int
}

func (a *fakeAdapter) GenerateRecipes(ctx context.Context, prompt string) ([]GeneratedRecipe, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.recipes, nil
}

func newTestService(repo RecommendRepository, adapter Adapter) *recommendService {
	return &recommendService{
		repo:        repo,
		adapter:     adapter,
		dedupWindow: 2 * time.Minute,
		genTimeout:  8 * time.Second,
		scoreOpts:   DefaultScoreOptions(),
	}
}

func engineFixture() *fakeRepo {
	now := time.Now()
	return &fakeRepo{
		profile: &entities.User{ID: "u1", UserName: "철수"},
		fridgeItems: []entities.FridgeItem{
			fridgeItem("양파", now),
			fridgeItem("감자", now),
			fridgeItem("대파", now),
		},
		poolByRung: map[int][]entities.Recipe{
			3: {recipeFullMatch, recipePartial, recipeGated, recipeLowCoverage},
		},
	}
}

func TestRecommendHappyPath(t *testing.T) {
	repo := engineFixture()
	adapter := &fakeAdapter{recipes: []GeneratedRecipe{
		{RecipeNmKo: "양파 감자볶음", IngredientFull: map[string]string{"양파": "한 개", "당근": "1개"}, StepText: "볶는다", RecipeID: 1},
		{RecipeNmKo: "고등어 양파조림", IngredientFull: map[string]string{"양파": "1개"}, StepText: "조린다", RecipeID: 2},
		{RecipeNmKo: "감자 해물찜", IngredientFull: map[string]string{"감자": "1개"}, StepText: "찐다", RecipeID: 4},
	}}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if res.Degraded {
		t.Error("degraded = true on a successful generation")
	}
	if len(res.Candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(res.Candidates))
	}
	if !strings.Contains(res.DisplayText, "철수님!") {
		t.Errorf("display text missing greeting: %q", res.DisplayText)
	}
	if len(repo.inserted) != 3 {
		t.Errorf("persisted = %d, want 3", len(repo.inserted))
	}

	// the model's off-fridge ingredient must not survive enforcement
	for _, c := range res.Candidates {
		if strings.Contains(c.Ingredients, "당근") {
			t.Errorf("unowned ingredient leaked: %s", c.Ingredients)
		}
	}
}

func TestRecommendEnforcementQuantities(t *testing.T) {
	repo := engineFixture()
	adapter := &fakeAdapter{recipes: []GeneratedRecipe{
		{RecipeNmKo: "볶음", IngredientFull: map[string]string{"양파": "한 개"}, StepText: "볶는다", RecipeID: 1},
	}}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1", Limit: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	ing := res.Candidates[0].Ingredients
	// model quantity wins for 양파, catalog fills the rest
	if !strings.Contains(ing, `"양파":"한 개"`) {
		t.Errorf("model quantity not kept: %s", ing)
	}
	if !strings.Contains(ing, `"감자":"2개"`) {
		t.Errorf("catalog quantity not used: %s", ing)
	}
}

func TestRecommendDegradedFallback(t *testing.T) {
	repo := engineFixture()
	adapter := &fakeAdapter{err: errors.New("upstream timeout")}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !res.Degraded {
		t.Error("degraded = false after adapter failure")
	}
	if len(res.Candidates) == 0 {
		t.Fatal("no fallback candidates")
	}
	if res.Candidates[0].Title != recipeFullMatch.RecipeNmKo {
		t.Errorf("fallback title = %q, want catalog title", res.Candidates[0].Title)
	}
	if !strings.Contains(res.DisplayText, "기본 조리법") {
		t.Errorf("display text does not flag the fallback: %q", res.DisplayText)
	}
	if len(repo.inserted) == 0 {
		t.Error("fallback cards not persisted")
	}
}

func TestRecommendPartialGenerationFallsBack(t *testing.T) {
	repo := engineFixture()
	// one card for three candidates: the payload is unusable as a whole
	adapter := &fakeAdapter{recipes: []GeneratedRecipe{
		{RecipeNmKo: "양파 감자볶음", IngredientFull: map[string]string{"양파": "한 개"}, StepText: "볶는다", RecipeID: 1},
	}}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !res.Degraded {
		t.Error("degraded = false on a partial generation payload")
	}
	if len(res.Candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(res.Candidates))
	}
	for _, c := range res.Candidates {
		if c.Title == "양파 감자볶음" {
			t.Error("partial payload card survived the fallback")
		}
	}
	if len(repo.inserted) != 3 {
		t.Errorf("persisted = %d, want every fallback card", len(repo.inserted))
	}
}

func TestRecommendDifficultyPreference(t *testing.T) {
	repo := engineFixture()
	repo.profile.CookingLevel = "하"
	adapter := &fakeAdapter{err: errors.New("skip generation")}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1", Limit: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].RecipeID != 1 {
		t.Errorf("candidates = %+v, want only the 하-level recipe", res.Candidates)
	}

	// no recipe at the declared level: the pool falls back unfiltered
	repo2 := engineFixture()
	repo2.profile.CookingLevel = "특급"
	svc2 := newTestService(repo2, adapter)

	res2, err := svc2.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1", Limit: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(res2.Candidates) == 0 {
		t.Error("level mismatch must not empty the pool")
	}
}

func TestRecommendExcludeIDs(t *testing.T) {
	repo := engineFixture()
	adapter := &fakeAdapter{err: errors.New("skip generation")}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		UserID:     "u1",
		Limit:      2,
		ExcludeIDs: []int{1},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, c := range res.Candidates {
		if c.RecipeID == 1 {
			t.Error("excluded recipe returned")
		}
	}
}

func TestRecommendExcludesRecentFromFresh(t *testing.T) {
	repo := engineFixture()
	// one recent row inside the window: not enough to replay, but its
	// recipe must not come back in a fresh run
	repo.recentRecs = []entities.RecommendRecipe{
		{RecommendID: 1, UserID: "u1", RecipeNmKo: "감자볶음", IngredientFull: `{}`, RecipeID: 1, RecommendDate: time.Now()},
	}
	adapter := &fakeAdapter{err: errors.New("skip generation")}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1", Limit: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, c := range res.Candidates {
		if c.RecipeID == 1 {
			t.Error("recently recommended recipe returned before window closed")
		}
	}
}

func TestRecommendNoCandidatesIsSoft(t *testing.T) {
	repo := engineFixture()
	repo.poolByRung = map[int][]entities.Recipe{}
	repo.randomPool = nil
	svc := newTestService(repo, &fakeAdapter{})

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("empty catalog must not error: %v", err)
	}
	if !res.Degraded {
		t.Error("degraded = false with zero candidates")
	}
	if len(res.Candidates) != 0 {
		t.Errorf("candidates = %d, want 0", len(res.Candidates))
	}
	if res.DisplayText == "" {
		t.Error("explanatory message missing")
	}
}

func TestRecommendEmptyFridge(t *testing.T) {
	repo := engineFixture()
	repo.fridgeItems = nil
	svc := newTestService(repo, &fakeAdapter{})

	if _, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1"}); !errors.Is(err, domain.ErrFridgeEmpty) {
		t.Errorf("err = %v, want ErrFridgeEmpty", err)
	}
}

func TestRecommendKeywordLadder(t *testing.T) {
	repo := engineFixture()
	// nothing until the OR-only rung
	repo.poolByRung = map[int][]entities.Recipe{
		0: {recipeFullMatch, recipePartial},
	}
	adapter := &fakeAdapter{err: errors.New("skip generation")}
	svc := newTestService(repo, adapter)

	if _, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1", Limit: 2}); err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	want := []int{3, 2, 1, 0}
	if len(repo.searchRungs) != len(want) {
		t.Fatalf("rungs = %v, want %v", repo.searchRungs, want)
	}
	for i, r := range want {
		if repo.searchRungs[i] != r {
			t.Fatalf("rungs = %v, want %v", repo.searchRungs, want)
		}
	}
}

func TestRecommendReusesRecentWindow(t *testing.T) {
	repo := engineFixture()
	repo.recentRecs = []entities.RecommendRecipe{
		{RecommendID: 1, UserID: "u1", RecipeNmKo: "감자볶음", IngredientFull: `{"양파":"1개"}`, StepText: "볶는다", RecipeID: 1, RecommendDate: time.Now()},
		{RecommendID: 2, UserID: "u1", RecipeNmKo: "고등어조림", IngredientFull: `{"양파":"1개"}`, StepText: "조린다", RecipeID: 2, RecommendDate: time.Now()},
	}
	adapter := &fakeAdapter{}
	svc := newTestService(repo, adapter)

	res, err := svc.Recommend(context.Background(), domain.RecommendRequest{UserID: "u1", Limit: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if adapter.calls != 0 {
		t.Errorf("adapter called %d times during replay", adapter.calls)
	}
	if len(res.Candidates) != 2 {
		t.Errorf("candidates = %d, want 2", len(res.Candidates))
	}
	if len(repo.inserted) != 0 {
		t.Error("replay should not persist new rows")
	}
}

func TestSelectRecipe(t *testing.T) {
	repo := engineFixture()
	repo.recentByID = map[int]*entities.RecommendRecipe{
		1: {RecommendID: 77, UserID: "u1", RecipeNmKo: "감자볶음", RecipeID: 1},
	}
	svc := newTestService(repo, &fakeAdapter{})

	res, err := svc.SelectRecipe(context.Background(), "u1", domain.SelectRecipeRequest{RecipeID: 1})
	if err != nil {
		t.Fatalf("SelectRecipe: %v", err)
	}
	if res.RecommendID != 77 || res.RecipeID != 1 || res.RecipeNmKo != "감자볶음" {
		t.Errorf("unexpected response: %+v", res)
	}

	if _, err := svc.SelectRecipe(context.Background(), "u1", domain.SelectRecipeRequest{RecipeID: 99}); !errors.Is(err, domain.ErrRecommendationAbsent) {
		t.Errorf("err = %v, want ErrRecommendationAbsent", err)
	}
}

func TestUpdateSelectionActionValidation(t *testing.T) {
	svc := newTestService(engineFixture(), &fakeAdapter{})

	bad := 2
	err := svc.UpdateSelectionAction(context.Background(), "u1", 1, domain.UpdateSelectionActionRequest{Action: &bad})
	if !errors.Is(err, domain.ErrInvalidAction) {
		t.Errorf("err = %v, want ErrInvalidAction", err)
	}

	ok := 1
	if err := svc.UpdateSelectionAction(context.Background(), "u1", 1, domain.UpdateSelectionActionRequest{Action: &ok}); err != nil {
		t.Errorf("valid action rejected: %v", err)
	}
}
