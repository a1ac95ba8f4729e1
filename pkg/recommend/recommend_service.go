package recommend

import (
	"context"
	"encoding/json"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"
	"cookus-server/internal/utils"
)

const (
	defaultLimit      = 3
	maxLimit          = 5
	rungFetchLimit    = 80
	missingDisplayCap = 6
	fridgeSampleCap   = 10
)

type (
	RecommendService interface {
		Recommend(ctx context.Context, req domain.RecommendRequest) (domain.RecommendResponse, error)
		SelectRecipe(ctx context.Context, userID string, req domain.SelectRecipeRequest) (domain.SelectedRecipeResponse, error)
		GetSelections(ctx context.Context, userID string) ([]domain.SelectedRecipeResponse, error)
		DeleteSelection(ctx context.Context, userID string, selectedID int64) error
		UpdateSelectionAction(ctx context.Context, userID string, selectedID int64, req domain.UpdateSelectionActionRequest) error
	}

	recommendService struct {
		repo    RecommendRepository
		adapter Adapter

		dedupWindow time.Duration
		genTimeout  time.Duration
		scoreOpts   ScoreOptions
	}
)

func NewRecommendService(repo RecommendRepository, adapter Adapter) RecommendService {
	s := &recommendService{
		repo:        repo,
		adapter:     adapter,
		dedupWindow: parseDurationConfig("RECOMMEND_DEDUP_WINDOW", 2*time.Minute),
		genTimeout:  parseDurationConfig("RECOMMEND_GEN_TIMEOUT", 8*time.Second),
		scoreOpts:   DefaultScoreOptions(),
	}
	if utils.GetConfig("RECOMMEND_FIRST_GATE") == "false" {
		s.scoreOpts.FirstIngredientGate = false
	}
	return s
}

func parseDurationConfig(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(utils.GetConfig(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func (s *recommendService) Recommend(ctx context.Context, req domain.RecommendRequest) (domain.RecommendResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	userID := req.UserID
	if userID == "" {
		picked, err := s.repo.RandomEligibleUserID(ctx)
		if err != nil {
			return domain.RecommendResponse{}, err
		}
		userID = picked
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return domain.RecommendResponse{}, err
	}

	items, err := s.repo.GetFridgeItems(ctx, userID)
	if err != nil {
		return domain.RecommendResponse{}, err
	}
	if len(items) == 0 {
		return domain.RecommendResponse{}, domain.ErrFridgeEmpty
	}

	fs := BuildFridgeSet(items)
	if len(fs.Tokens) == 0 {
		return domain.RecommendResponse{}, domain.ErrFridgeEmpty
	}
	recent := RecentItems(items, time.Now())

	recentRows, err := s.repo.RecentRecommendations(ctx, userID, s.dedupWindow)
	if err != nil {
		return domain.RecommendResponse{}, err
	}

	// a fresh recommendation inside the dedup window gets replayed
	// instead of burning another generation call
	if resp, ok := s.reuseRecent(ctx, userID, profile.UserName, fs, recent, limit, req.ExcludeIDs, recentRows); ok {
		return resp, nil
	}

	// partially consumed windows still block their recipes from
	// reappearing until the window closes
	excludeIDs := append([]int{}, req.ExcludeIDs...)
	for _, row := range recentRows {
		excludeIDs = append(excludeIDs, row.RecipeID)
	}

	pool, err := s.retrieveCandidates(ctx, fs, excludeIDs)
	if err != nil {
		return domain.RecommendResponse{}, err
	}
	pool = preferDifficulty(pool, profile.CookingLevel)

	ranked := SelectTop(pool, fs, limit*2, s.scoreOpts)
	chosen := Diversify(ranked, limit, func(exclude map[int]struct{}, need int) []Scored {
		fillExclude := append([]int{}, excludeIDs...)
		for id := range exclude {
			fillExclude = append(fillExclude, id)
		}
		fillers, err := s.repo.RandomRecipes(ctx, fillExclude, need)
		if err != nil {
			return nil
		}
		out := make([]Scored, 0, len(fillers))
		for _, r := range fillers {
			out = append(out, ScoreRecipe(r, fs, s.scoreOpts))
		}
		return out
	})
	if len(chosen) == 0 {
		// soft outcome, not an error: nothing matched even after
		// relaxation and random fill
		resp := s.buildResponse(userID, profile.UserName, fs, recent, nil, nil, true)
		resp.DisplayText = emptyResultText
		return resp, nil
	}

	byID := make(map[int]Scored, len(chosen))
	for _, sc := range chosen {
		byID[sc.Recipe.RecipeID] = sc
	}

	cards, degraded := s.generateCards(ctx, profile, fs, recent, chosen)
	for i := range cards {
		if sc, ok := byID[cards[i].RecipeID]; ok {
			cards[i] = EnforceIngredients(cards[i], sc, fs)
		}
	}

	s.persistCards(ctx, userID, cards)

	return s.buildResponse(userID, profile.UserName, fs, recent, cards, byID, degraded), nil
}

const (
	emptyResultText    = "지금 냉장고 재료로 만들 수 있는 레시피를 찾지 못했어요. 재료를 추가해 보세요!"
	fallbackNoticeText = "\n\n(외부 생성 서비스를 사용하지 못해 기본 조리법으로 안내해 드려요.)"
)

// preferDifficulty narrows the pool to the user's declared level but
// never empties it; a level mismatch is a preference, not a filter.
func preferDifficulty(pool []entities.Recipe, level string) []entities.Recipe {
	if level == "" {
		return pool
	}
	matched := make([]entities.Recipe, 0, len(pool))
	for _, r := range pool {
		if r.LevelNm == level {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return pool
	}
	return matched
}

// retrieveCandidates walks the keyword ladder from strict to loose and
// returns the first rung with results, deduplicated.
func (s *recommendService) retrieveCandidates(ctx context.Context, fs *FridgeSet, excludeIDs []int) ([]entities.Recipe, error) {
	excluded := make(map[int]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	for _, andTop := range []int{3, 2, 1, 0} {
		found, err := s.repo.SearchByKeywords(ctx, fs.Keywords, andTop, rungFetchLimit)
		if err != nil {
			return nil, err
		}
		pool := make([]entities.Recipe, 0, len(found))
		for _, r := range found {
			if _, skip := excluded[r.RecipeID]; skip {
				continue
			}
			pool = append(pool, r)
		}
		if len(pool) > 0 {
			return pool, nil
		}
	}

	return s.repo.RandomRecipes(ctx, excludeIDs, rungFetchLimit)
}

// generateCards asks the language model to rewrite the candidates into
// user-facing cards under a hard timeout. Any failure degrades to cards
// assembled straight from the catalog rows.
func (s *recommendService) generateCards(ctx context.Context, profile *entities.User, fs *FridgeSet, recent []string, chosen []Scored) ([]GeneratedRecipe, bool) {
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	fridgeTokens := make([]string, 0, len(fs.Tokens))
	for tok := range fs.Tokens {
		fridgeTokens = append(fridgeTokens, tok)
	}

	prompt := BuildPrompt(profile.UserName, profile.CookingLevel, fridgeTokens, recent, chosen)
	generated, err := s.adapter.GenerateRecipes(genCtx, prompt)
	if err == nil {
		valid := make(map[int]struct{}, len(chosen))
		for _, sc := range chosen {
			valid[sc.Recipe.RecipeID] = struct{}{}
		}
		cards := make([]GeneratedRecipe, 0, len(generated))
		for _, g := range generated {
			if _, ok := valid[g.RecipeID]; ok {
				cards = append(cards, g)
			}
		}
		// a payload that covers only part of the chosen set is as
		// unusable as no payload: one card per candidate or nothing
		if len(cards) == len(chosen) {
			return cards, false
		}
	}

	cards := make([]GeneratedRecipe, 0, len(chosen))
	for _, sc := range chosen {
		cards = append(cards, fallbackCard(sc, fs))
	}
	return cards, true
}

// fallbackCard builds a card from the catalog row alone, keeping only
// ingredients the fridge owns.
func fallbackCard(sc Scored, fs *FridgeSet) GeneratedRecipe {
	_, catalogQty := ParseIngredientMap(sc.Recipe.IngredientFull)
	ingredients := make(map[string]string)
	for _, tok := range sc.Tokens {
		if fs.Has(tok) {
			ingredients[tok] = catalogQty[tok]
		}
	}
	return GeneratedRecipe{
		RecipeNmKo:     sc.Recipe.RecipeNmKo,
		IngredientFull: ingredients,
		StepText:       sc.Recipe.StepText,
		RecipeID:       sc.Recipe.RecipeID,
	}
}

func (s *recommendService) persistCards(ctx context.Context, userID string, cards []GeneratedRecipe) {
	now := time.Now()
	for _, card := range cards {
		payload, err := json.Marshal(card.IngredientFull)
		if err != nil {
			continue
		}
		rec := entities.RecommendRecipe{
			UserID:         userID,
			RecipeNmKo:     card.RecipeNmKo,
			IngredientFull: string(payload),
			StepText:       card.StepText,
			RecipeID:       card.RecipeID,
			RecommendDate:  now,
		}
		// best effort; a skipped duplicate is not an error
		_, _ = s.repo.InsertRecommendation(ctx, &rec, s.dedupWindow)
	}
}

// reuseRecent replays cards persisted inside the dedup window so a
// double-tap does not produce a different answer seconds apart.
func (s *recommendService) reuseRecent(ctx context.Context, userID, userName string, fs *FridgeSet, recent []string, limit int, excludeIDs []int, rows []entities.RecommendRecipe) (domain.RecommendResponse, bool) {
	if len(rows) == 0 {
		return domain.RecommendResponse{}, false
	}

	excluded := make(map[int]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	var cards []GeneratedRecipe
	seen := make(map[int]struct{})
	for _, row := range rows {
		if len(cards) >= limit {
			break
		}
		if _, dup := seen[row.RecipeID]; dup {
			continue
		}
		if _, skip := excluded[row.RecipeID]; skip {
			continue
		}
		seen[row.RecipeID] = struct{}{}

		ingredients := make(map[string]string)
		_ = json.Unmarshal([]byte(row.IngredientFull), &ingredients)
		cards = append(cards, GeneratedRecipe{
			RecipeNmKo:     row.RecipeNmKo,
			IngredientFull: ingredients,
			StepText:       row.StepText,
			RecipeID:       row.RecipeID,
		})
	}
	if len(cards) < limit {
		return domain.RecommendResponse{}, false
	}

	ids := make([]int, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.RecipeID)
	}
	byID := make(map[int]Scored, len(ids))
	if metas, err := s.repo.RecipesByIDs(ctx, ids); err == nil {
		for _, m := range metas {
			byID[m.RecipeID] = ScoreRecipe(m, fs, s.scoreOpts)
		}
	}

	return s.buildResponse(userID, userName, fs, recent, cards, byID, false), true
}

func (s *recommendService) buildResponse(userID, userName string, fs *FridgeSet, recent []string, cards []GeneratedRecipe, byID map[int]Scored, degraded bool) domain.RecommendResponse {
	sample := fs.Core
	if len(sample) > fridgeSampleCap {
		sample = sample[:fridgeSampleCap]
	}

	candidates := make([]domain.RecommendedCandidate, 0, len(cards))
	for _, card := range cards {
		c := domain.RecommendedCandidate{
			RecipeID: card.RecipeID,
			Title:    card.RecipeNmKo,
			Steps:    card.StepText,
			Missing:  []string{},
		}
		payload, _ := json.Marshal(card.IngredientFull)
		c.Ingredients = string(payload)

		if sc, ok := byID[card.RecipeID]; ok {
			c.CookTime = sc.Recipe.CookingTime
			c.Difficulty = sc.Recipe.LevelNm
			missing := sc.Missing
			if len(missing) > missingDisplayCap {
				missing = missing[:missingDisplayCap]
			}
			c.Missing = missing
		}
		candidates = append(candidates, c)
	}

	displayText := ""
	if len(cards) > 0 {
		displayText = FormatForDisplay(userName, cards, byID)
		if degraded {
			displayText += fallbackNoticeText
		}
	}

	return domain.RecommendResponse{
		UserID:         userID,
		FridgeSample:   sample,
		RecentEmphasis: recent,
		DisplayText:    displayText,
		Candidates:     candidates,
		Degraded:       degraded,
	}
}

func (s *recommendService) SelectRecipe(ctx context.Context, userID string, req domain.SelectRecipeRequest) (domain.SelectedRecipeResponse, error) {
	rec, err := s.repo.FindRecentRecommendation(ctx, userID, req.RecipeID, s.dedupWindow)
	if err != nil {
		return domain.SelectedRecipeResponse{}, err
	}

	sel := entities.SelectedRecipe{
		UserID:       userID,
		RecommendID:  rec.RecommendID,
		RecipeID:     rec.RecipeID,
		Action:       0,
		SelectedDate: time.Now(),
	}
	if err := s.repo.CreateSelection(ctx, &sel); err != nil {
		return domain.SelectedRecipeResponse{}, err
	}

	return domain.SelectedRecipeResponse{
		SelectedID:   sel.SelectedID,
		RecommendID:  sel.RecommendID,
		RecipeID:     sel.RecipeID,
		RecipeNmKo:   rec.RecipeNmKo,
		Action:       sel.Action,
		SelectedDate: sel.SelectedDate.Format(time.RFC3339),
	}, nil
}

func (s *recommendService) GetSelections(ctx context.Context, userID string) ([]domain.SelectedRecipeResponse, error) {
	sels, err := s.repo.GetSelections(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SelectedRecipeResponse, 0, len(sels))
	for _, sel := range sels {
		resp := domain.SelectedRecipeResponse{
			SelectedID:   sel.SelectedID,
			RecommendID:  sel.RecommendID,
			RecipeID:     sel.RecipeID,
			Action:       sel.Action,
			SelectedDate: sel.SelectedDate.Format(time.RFC3339),
		}
		if sel.Recommend != nil {
			resp.RecipeNmKo = sel.Recommend.RecipeNmKo
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *recommendService) DeleteSelection(ctx context.Context, userID string, selectedID int64) error {
	return s.repo.DeleteSelection(ctx, userID, selectedID)
}

func (s *recommendService) UpdateSelectionAction(ctx context.Context, userID string, selectedID int64, req domain.UpdateSelectionActionRequest) error {
	if req.Action == nil || (*req.Action != 0 && *req.Action != 1) {
		return domain.ErrInvalidAction
	}
	return s.repo.UpdateSelectionAction(ctx, userID, selectedID, *req.Action)
}
