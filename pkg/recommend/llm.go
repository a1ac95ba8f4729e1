package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"cookus-server/domain"
	"cookus-server/internal/utils"
)

// GeneratedRecipe is one recipe card produced by the language model.
type GeneratedRecipe struct {
	RecipeNmKo     string            `json:"recipe_nm_ko"`
	IngredientFull map[string]string `json:"ingredient_full"`
	StepText       string            `json:"step_text"`
	RecipeID       int               `json:"recipe_id"`
}

// Adapter rewrites ranked catalog candidates into user-facing recipe
// cards. Implementations must be safe for concurrent use.
type Adapter interface {
	GenerateRecipes(ctx context.Context, prompt string) ([]GeneratedRecipe, error)
}

type openAIAdapter struct {
	client *http.Client
}

// NewOpenAIAdapter returns an Adapter backed by the OpenAI chat
// completions API. Model and key come from configuration.
func NewOpenAIAdapter() Adapter {
	return &openAIAdapter{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// recipeSchema constrains the completion to the exact card shape, so a
// malformed answer fails fast instead of leaking into responses.
var recipeSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"recipes": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"recipe_nm_ko": map[string]interface{}{"type": "string"},
					"ingredient_full": map[string]interface{}{
						"type":                 "object",
						"additionalProperties": map[string]interface{}{"type": "string"},
					},
					"step_text": map[string]interface{}{"type": "string"},
					"recipe_id": map[string]interface{}{"type": "integer"},
				},
				"required":             []string{"recipe_nm_ko", "ingredient_full", "step_text", "recipe_id"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"recipes"},
	"additionalProperties": false,
}

func (a *openAIAdapter) GenerateRecipes(ctx context.Context, prompt string) ([]GeneratedRecipe, error) {
	apiKey := utils.GetConfig("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	model := utils.GetConfig("OPENAI_MODEL")

	requestBody := map[string]interface{}{
		"model": model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": "너는 냉장고 파먹기 요리 코치다. 사용자가 가진 재료만으로 만들 수 있는 레시피를 한국어로 제안한다.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.7,
		"response_format": map[string]interface{}{
			"type": "json_schema",
			"json_schema": map[string]interface{}{
				"name":   "recipe_cards",
				"strict": true,
				"schema": recipeSchema,
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, domain.ErrGenerationFailed
	}

	var payload struct {
		Recipes []GeneratedRecipe `json:"recipes"`
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("invalid response format: %w", err)
	}
	if len(payload.Recipes) == 0 {
		return nil, domain.ErrGenerationFailed
	}
	return payload.Recipes, nil
}

// BuildPrompt renders the generation prompt for the ranked candidates.
// Recently stored items are called out so the model favors them.
func BuildPrompt(userName, cookingLevel string, fridge []string, recent []string, candidates []Scored) string {
	var b strings.Builder
	fmt.Fprintf(&b, "사용자 이름: %s\n", userName)
	if cookingLevel != "" {
		fmt.Fprintf(&b, "요리 실력: %s\n", cookingLevel)
	}
	fmt.Fprintf(&b, "냉장고 재료: %s\n", strings.Join(fridge, ", "))
	if len(recent) > 0 {
		fmt.Fprintf(&b, "최근에 넣은 재료(우선 사용): %s\n", strings.Join(recent, ", "))
	}
	b.WriteString("\n아래 후보 레시피를 바탕으로, 사용자가 가진 재료만 쓰는 레시피 카드를 후보마다 하나씩 작성해라.\n")
	b.WriteString("재료 목록에는 냉장고에 없는 재료를 절대 넣지 마라. recipe_id는 후보의 recipe_id를 그대로 쓴다.\n\n")
	for i, sc := range candidates {
		fmt.Fprintf(&b, "후보 %d) recipe_id=%d, 이름=%s, 재료=%s\n",
			i+1, sc.Recipe.RecipeID, sc.Recipe.RecipeNmKo, strings.Join(sc.Tokens, ", "))
		if steps := strings.TrimSpace(sc.Recipe.StepText); steps != "" {
			fmt.Fprintf(&b, "조리법 참고: %s\n", truncateRunes(steps, 400))
		}
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// EnforceIngredients rewrites a generated card's ingredient map so it
// only lists ingredients the recipe actually uses and the fridge
// actually owns. Quantities prefer the model's wording, then the
// catalog's, then blank. When nothing survives, the model's own map is
// filtered down to owned tokens as a fallback.
func EnforceIngredients(gen GeneratedRecipe, sc Scored, fs *FridgeSet) GeneratedRecipe {
	_, catalogQty := ParseIngredientMap(sc.Recipe.IngredientFull)

	genQty := make(map[string]string, len(gen.IngredientFull))
	for name, q := range gen.IngredientFull {
		if c := CanonToken(name); c != "" {
			genQty[c] = strings.TrimSpace(q)
		}
	}

	enforced := make(map[string]string)
	for _, tok := range sc.Tokens {
		if !fs.Has(tok) {
			continue
		}
		if q, ok := genQty[tok]; ok && q != "" {
			enforced[tok] = q
		} else if q, ok := catalogQty[tok]; ok && q != "" {
			enforced[tok] = q
		} else {
			enforced[tok] = ""
		}
	}

	if len(enforced) == 0 {
		for name, q := range gen.IngredientFull {
			if c := CanonToken(name); c != "" && fs.Has(c) {
				enforced[c] = strings.TrimSpace(q)
			}
		}
	}

	gen.IngredientFull = enforced
	return gen
}

// FormatForDisplay renders recipe cards as the chat-style text block
// the mobile client shows verbatim.
func FormatForDisplay(userName string, recipes []GeneratedRecipe, byID map[int]Scored) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s님! 냉장고 속 재료로 만들 수 있는 세 가지 레시피를 추천해 드릴게요!**\n", userName)
	for i, rec := range recipes {
		meta := ""
		if sc, ok := byID[rec.RecipeID]; ok {
			level := sc.Recipe.LevelNm
			if level == "" {
				level = "중"
			}
			if sc.Recipe.CookingTime > 0 {
				meta = fmt.Sprintf(" (%s / %d분 소요)", level, sc.Recipe.CookingTime)
			} else {
				meta = fmt.Sprintf(" (%s)", level)
			}
		}
		fmt.Fprintf(&b, "\n%d. %s%s\n", i+1, rec.RecipeNmKo, meta)
		b.WriteString("[필요 재료]\n")
		for _, name := range sortedKeys(rec.IngredientFull) {
			if q := rec.IngredientFull[name]; q != "" {
				fmt.Fprintf(&b, "- %s: %s\n", name, q)
			} else {
				fmt.Fprintf(&b, "- %s\n", name)
			}
		}
		b.WriteString("[조리 순서]\n")
		b.WriteString(strings.TrimSpace(rec.StepText))
		b.WriteString("\n")
	}
	return b.String()
}
