package recommend

import "strings"

// normTitle collapses whitespace so retitled near-duplicates such as
// "감자 볶음" and "감자  볶음 " dedup together.
func normTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dishGroup buckets a candidate for the diversity pass. Catalog type
// wins when present; otherwise the lead ingredient stands in for it.
func dishGroup(sc Scored) string {
	if sc.Recipe.TyNm != "" {
		return sc.Recipe.TyNm
	}
	if sc.First != "" {
		return sc.First
	}
	if len(sc.Tokens) > 0 {
		return sc.Tokens[0]
	}
	return ""
}

// Diversify picks up to limit candidates from the ranked list, avoiding
// near-duplicate results. The strict pass requires unique recipe id,
// title, and dish group; if that cannot fill the limit, a relaxed pass
// drops the group constraint; if the ranked list itself runs out, fill
// pulls random catalog recipes excluding everything already chosen.
func Diversify(ranked []Scored, limit int, fill func(exclude map[int]struct{}, need int) []Scored) []Scored {
	out := make([]Scored, 0, limit)
	ids := make(map[int]struct{})
	titles := make(map[string]struct{})
	groups := make(map[string]struct{})

	take := func(sc Scored) {
		out = append(out, sc)
		ids[sc.Recipe.RecipeID] = struct{}{}
		titles[normTitle(sc.Recipe.RecipeNmKo)] = struct{}{}
		if g := dishGroup(sc); g != "" {
			groups[g] = struct{}{}
		}
	}

	for _, sc := range ranked {
		if len(out) >= limit {
			return out
		}
		if _, dup := ids[sc.Recipe.RecipeID]; dup {
			continue
		}
		if _, dup := titles[normTitle(sc.Recipe.RecipeNmKo)]; dup {
			continue
		}
		if g := dishGroup(sc); g != "" {
			if _, dup := groups[g]; dup {
				continue
			}
		}
		take(sc)
	}

	for _, sc := range ranked {
		if len(out) >= limit {
			return out
		}
		if _, dup := ids[sc.Recipe.RecipeID]; dup {
			continue
		}
		if _, dup := titles[normTitle(sc.Recipe.RecipeNmKo)]; dup {
			continue
		}
		take(sc)
	}

	if len(out) < limit && fill != nil {
		for _, sc := range fill(ids, limit-len(out)) {
			if len(out) >= limit {
				break
			}
			if _, dup := ids[sc.Recipe.RecipeID]; dup {
				continue
			}
			take(sc)
		}
	}
	return out
}
