package recommend

import (
	"strings"
	"testing"

	"cookus-server/entities"
)

func TestEnforceIngredientsFallback(t *testing.T) {
	fs := testFridgeSet(t)
	// recipe uses nothing the fridge owns
	sc := ScoreRecipe(entities.Recipe{
		RecipeID:       7,
		RecipeNmKo:     "오징어볶음",
		IngredientFull: `{"오징어": "1마리", "고추장": "2큰술"}`,
	}, fs, DefaultScoreOptions())

	gen := GeneratedRecipe{
		RecipeID:       7,
		RecipeNmKo:     "오징어볶음",
		IngredientFull: map[string]string{"양파": "반 개", "오징어": "1마리"},
	}

	got := EnforceIngredients(gen, sc, fs)
	if len(got.IngredientFull) != 1 {
		t.Fatalf("ingredients = %v, want only owned tokens", got.IngredientFull)
	}
	if got.IngredientFull["양파"] != "반 개" {
		t.Errorf("양파 = %q, want 반 개", got.IngredientFull["양파"])
	}
}

func TestFormatForDisplay(t *testing.T) {
	fs := testFridgeSet(t)
	sc := ScoreRecipe(recipeFullMatch, fs, DefaultScoreOptions())
	byID := map[int]Scored{1: sc}

	cards := []GeneratedRecipe{{
		RecipeID:       1,
		RecipeNmKo:     "감자볶음",
		IngredientFull: map[string]string{"감자": "2개", "양파": ""},
		StepText:       "1. 감자를 썬다\n2. 볶는다",
	}}

	text := FormatForDisplay("철수", cards, byID)

	for _, want := range []string{
		"**철수님! 냉장고 속 재료로 만들 수 있는 세 가지 레시피를 추천해 드릴게요!**",
		"1. 감자볶음 (하 / 10분 소요)",
		"[필요 재료]",
		"- 감자: 2개",
		"- 양파",
		"[조리 순서]",
		"1. 감자를 썬다",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("display text missing %q:\n%s", want, text)
		}
	}
}

func TestBuildPromptMentionsRecentItems(t *testing.T) {
	fs := testFridgeSet(t)
	sc := ScoreRecipe(recipeFullMatch, fs, DefaultScoreOptions())

	prompt := BuildPrompt("철수", "하", []string{"양파", "감자"}, []string{"두부"}, []Scored{sc})

	if !strings.Contains(prompt, "두부") {
		t.Error("recent item not emphasized in prompt")
	}
	if !strings.Contains(prompt, "recipe_id=1") {
		t.Error("candidate id missing from prompt")
	}
}
