package recommend

import (
	"testing"

	"cookus-server/entities"
)

func scored(id int, title, tyNm, first string) Scored {
	return Scored{
		Recipe: entities.Recipe{RecipeID: id, RecipeNmKo: title, TyNm: tyNm},
		First:  first,
	}
}

func TestDiversifyStrictPass(t *testing.T) {
	ranked := []Scored{
		scored(1, "김치찌개", "국&찌개", "김치"),
		scored(2, "된장찌개", "국&찌개", "된장"),
		scored(3, "감자볶음", "볶음", "감자"),
		scored(4, "계란말이", "반찬", "계란"),
	}

	got := Diversify(ranked, 3, nil)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// second 국&찌개 skipped in the strict pass
	ids := []int{got[0].Recipe.RecipeID, got[1].Recipe.RecipeID, got[2].Recipe.RecipeID}
	if ids[0] != 1 || ids[1] != 3 || ids[2] != 4 {
		t.Errorf("ids = %v, want [1 3 4]", ids)
	}
}

func TestDiversifyRelaxedPass(t *testing.T) {
	// all share one group, so the strict pass yields one and the
	// relaxed pass tops up the rest
	ranked := []Scored{
		scored(1, "김치찌개", "국&찌개", "김치"),
		scored(2, "된장찌개", "국&찌개", "된장"),
		scored(3, "부대찌개", "국&찌개", "햄"),
	}

	got := Diversify(ranked, 3, nil)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Recipe.RecipeID != 1 || got[1].Recipe.RecipeID != 2 || got[2].Recipe.RecipeID != 3 {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestDiversifyDuplicateTitle(t *testing.T) {
	ranked := []Scored{
		scored(1, "김치찌개", "국&찌개", "김치"),
		scored(2, "김치찌개", "볶음", "김치"),
	}

	got := Diversify(ranked, 2, nil)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (same title twice)", len(got))
	}
}

func TestDiversifyNormalizesTitles(t *testing.T) {
	ranked := []Scored{
		scored(1, "김치 찌개", "국&찌개", "김치"),
		scored(2, " 김치  찌개 ", "볶음", "김치"),
	}

	got := Diversify(ranked, 2, nil)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (whitespace variants of one title)", len(got))
	}
}

func TestDiversifyGroupFallsBackToFirstIngredient(t *testing.T) {
	ranked := []Scored{
		scored(1, "감자조림", "", "감자"),
		scored(2, "감자볶음", "", "감자"),
		scored(3, "양파볶음", "", "양파"),
	}

	got := Diversify(ranked, 2, nil)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Recipe.RecipeID != 3 {
		t.Errorf("second pick = %d, want 3 (same lead ingredient skipped)", got[1].Recipe.RecipeID)
	}
}

func TestDiversifyRandomFill(t *testing.T) {
	ranked := []Scored{scored(1, "김치찌개", "국&찌개", "김치")}

	var askedNeed int
	fill := func(exclude map[int]struct{}, need int) []Scored {
		askedNeed = need
		if _, ok := exclude[1]; !ok {
			t.Error("fill not told to exclude chosen id")
		}
		return []Scored{
			scored(1, "김치찌개", "국&찌개", "김치"),
			scored(9, "잡채", "반찬", "당면"),
			scored(10, "비빔밥", "밥", "쌀"),
		}
	}

	got := Diversify(ranked, 3, fill)
	if askedNeed != 2 {
		t.Errorf("need = %d, want 2", askedNeed)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Recipe.RecipeID != 9 || got[2].Recipe.RecipeID != 10 {
		t.Errorf("fill picks = [%d %d], want [9 10]", got[1].Recipe.RecipeID, got[2].Recipe.RecipeID)
	}
}
