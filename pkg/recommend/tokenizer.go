package recommend

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// Pantry staples are assumed always on hand. They never count toward the
// core fridge set but may backfill it when the user owns almost nothing.
var pantryStaples = []string{
	"소금", "설탕", "후추", "물", "간장", "식용유", "올리브유", "참기름",
	"마요네즈", "케첩", "머스타드", "다진마늘", "깨", "깨소금", "고춧가루",
	"고추장", "된장", "맛술", "버터", "치즈", "치킨스톡", "육수", "식초",
	"맛소금", "참깨", "조미료", "msg",
}

// synonymGroups collapse market variants of the same ingredient. The
// shortest member of each group becomes the canonical spelling.
var synonymGroups = [][]string{
	{"대파", "파", "쪽파"},
	{"돼지고기", "삼겹살", "목살", "돈육"},
	{"소고기", "쇠고기", "한우", "우육"},
	{"닭고기", "닭", "닭가슴살", "닭다리", "닭봉"},
	{"감자", "알감자"},
	{"양파", "적양파"},
	{"고추", "청양고추", "풋고추", "홍고추"},
	{"국수", "면", "소면", "중면", "우동면"},
	{"쌀", "밥"},
}

var (
	pantrySet  map[string]struct{}
	synonymMap map[string]string
)

func init() {
	pantrySet = make(map[string]struct{}, len(pantryStaples))
	for _, p := range pantryStaples {
		pantrySet[p] = struct{}{}
	}
	synonymMap = make(map[string]string)
	for _, group := range synonymGroups {
		canon := group[0]
		for _, m := range group {
			if len([]rune(m)) < len([]rune(canon)) {
				canon = m
			}
		}
		for _, m := range group {
			synonymMap[m] = canon
		}
	}
}

var (
	parenRe    = regexp.MustCompile(`\([^)]*\)`)
	unitRe     = regexp.MustCompile(`\d+(\.\d+)?\s*(kg|g|ml|l|cup|컵|스푼|큰술|작은술|tbsp|tsp|개|장|줌)`)
	spaceRe    = regexp.MustCompile(`\s+`)
	keyRe      = regexp.MustCompile(`['"]([^'"]+)['"]\s*:`)
	keyValRe   = regexp.MustCompile(`['"]([^'"]+)['"]\s*:\s*['"]([^'"]*)['"]`)
	quotedRe   = regexp.MustCompile(`['"]([^'"]+)['"]`)
	splitterRe = regexp.MustCompile(`[\n,|，、]`)
)

// CanonToken reduces one raw ingredient mention to its canonical form:
// parentheticals and unit amounts removed, whitespace squeezed out,
// lowercased, then mapped through the synonym table. Returns "" when
// nothing edible remains.
func CanonToken(raw string) string {
	s := parenRe.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ToLower(s)
	s = unitRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, "")
	s = strings.Trim(s, ".·-~!?:;'\"")
	if s == "" {
		return ""
	}
	if canon, ok := synonymMap[s]; ok {
		return canon
	}
	return s
}

// IsPantry reports whether a canonical token is a pantry staple.
func IsPantry(token string) bool {
	_, ok := pantrySet[token]
	return ok
}

// PantryStaples returns the staple list in a stable order.
func PantryStaples() []string {
	out := make([]string, len(pantryStaples))
	copy(out, pantryStaples)
	sort.Strings(out)
	return out
}

// RawTokens extracts ingredient mentions from a catalog ingredient_full
// value without canonicalizing them. The field is free text in practice:
// a JSON object, a JSON array, a python-style dict dump with single
// quotes, or a plain delimited list. Each shape is tried in order and
// the first that yields tokens wins. Order is preserved, duplicates
// dropped.
func RawTokens(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if keys, ok := jsonObjectKeys(text); ok && len(keys) > 0 {
		return dedupStrings(keys)
	}
	if strings.Contains(text, ":") {
		if m := keyRe.FindAllStringSubmatch(text, -1); len(m) > 0 {
			keys := make([]string, 0, len(m))
			for _, g := range m {
				keys = append(keys, strings.TrimSpace(g[1]))
			}
			return dedupStrings(keys)
		}
	}
	if elems, ok := jsonArrayStrings(text); ok && len(elems) > 0 {
		return dedupStrings(elems)
	}
	if m := quotedRe.FindAllStringSubmatch(text, -1); len(m) > 0 {
		elems := make([]string, 0, len(m))
		for _, g := range m {
			elems = append(elems, strings.TrimSpace(g[1]))
		}
		return dedupStrings(elems)
	}

	parts := splitterRe.Split(text, -1)
	elems := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			elems = append(elems, p)
		}
	}
	return dedupStrings(elems)
}

// CanonTokens is RawTokens followed by canonicalization, empty tokens
// and duplicates removed.
func CanonTokens(text string) []string {
	raw := RawTokens(text)
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		c := CanonToken(r)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// FirstIngredient returns the canonical form of the first listed
// ingredient, which catalog entries order by importance.
func FirstIngredient(text string) string {
	raw := RawTokens(text)
	for _, r := range raw {
		if c := CanonToken(r); c != "" {
			return c
		}
	}
	return ""
}

// ParseIngredientMap returns the ordered ingredient names and, where the
// text carried quantities, a name to quantity map keyed by canonical
// token.
func ParseIngredientMap(text string) ([]string, map[string]string) {
	names := RawTokens(text)
	qty := make(map[string]string)
	if obj, ok := jsonObjectPairs(text); ok {
		for k, v := range obj {
			if c := CanonToken(k); c != "" && v != "" {
				qty[c] = v
			}
		}
	} else if m := keyValRe.FindAllStringSubmatch(text, -1); len(m) > 0 {
		for _, g := range m {
			if c := CanonToken(g[1]); c != "" && strings.TrimSpace(g[2]) != "" {
				qty[c] = strings.TrimSpace(g[2])
			}
		}
	}
	return names, qty
}

func jsonObjectKeys(text string) ([]string, bool) {
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}
	dec := json.NewDecoder(strings.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, false
	}
	var keys []string
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := kt.(string)
		if !ok {
			return nil, false
		}
		keys = append(keys, strings.TrimSpace(key))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, false
		}
	}
	return keys, true
}

func jsonObjectPairs(text string) (map[string]string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = strings.TrimSpace(s)
		}
	}
	return out, true
}

func jsonArrayStrings(text string) ([]string, bool) {
	if !strings.HasPrefix(text, "[") {
		return nil, false
	}
	var arr []any
	if err := json.Unmarshal([]byte(text), &arr); err != nil {
		return nil, false
	}
	var out []string
	for _, el := range arr {
		switch v := el.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, s)
			}
		case map[string]any:
			for k := range v {
				out = append(out, strings.TrimSpace(k))
			}
		}
	}
	return out, true
}

func dedupStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
