package recommend

import (
	"sort"
	"strings"
	"time"

	"cookus-server/entities"
)

const (
	maxKeywords       = 30
	maxPantryBackfill = 3
	minCoreTokens     = 2
	recentWindowDays  = 10
	maxRecentItems    = 8
)

// FridgeSet is the matchable view of one user's fridge.
type FridgeSet struct {
	// Core holds canonical non-pantry tokens in storage order.
	Core []string
	// Tokens includes Core plus any backfilled pantry staples.
	Tokens map[string]struct{}
	// Keywords are loose search terms for catalog retrieval, capped.
	Keywords []string
}

// Has reports whether the fridge owns the canonical token.
func (f *FridgeSet) Has(token string) bool {
	_, ok := f.Tokens[token]
	return ok
}

// BuildFridgeSet canonicalizes fridge item names into a matchable set.
// Pantry staples stored in the fridge do not count as core items; when
// fewer than two core tokens remain, up to three stored staples are
// backfilled so retrieval still has something to chew on.
func BuildFridgeSet(items []entities.FridgeItem) *FridgeSet {
	fs := &FridgeSet{Tokens: make(map[string]struct{})}
	var storedPantry []string
	seen := make(map[string]struct{})

	for _, it := range items {
		tok := CanonToken(it.IngredientName)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if IsPantry(tok) {
			storedPantry = append(storedPantry, tok)
			continue
		}
		fs.Core = append(fs.Core, tok)
		fs.Tokens[tok] = struct{}{}
	}

	if len(fs.Core) < minCoreTokens {
		for i, p := range storedPantry {
			if i >= maxPantryBackfill {
				break
			}
			fs.Tokens[p] = struct{}{}
		}
	}

	fs.Keywords = buildKeywords(items, fs.Core)
	return fs
}

// buildKeywords pairs each canonical token with the lightly cleaned
// storefront spelling so LIKE retrieval can match either form.
func buildKeywords(items []entities.FridgeItem, core []string) []string {
	kws := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{})
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || len(kws) >= maxKeywords {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		kws = append(kws, s)
	}

	for _, tok := range core {
		add(tok)
	}
	for _, it := range items {
		loose := strings.TrimSpace(parenRe.ReplaceAllString(it.IngredientName, ""))
		add(loose)
	}
	return kws
}

// RecentItems returns canonical tokens for items stored within the last
// ten days, newest first, capped at eight. These get emphasized in the
// generation prompt so soon-to-spoil food is used first.
func RecentItems(items []entities.FridgeItem, now time.Time) []string {
	cutoff := now.AddDate(0, 0, -recentWindowDays)

	sorted := make([]entities.FridgeItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StoredAt.After(sorted[j].StoredAt)
	})

	var out []string
	seen := make(map[string]struct{})
	for _, it := range sorted {
		if it.StoredAt.Before(cutoff) {
			continue
		}
		tok := CanonToken(it.IngredientName)
		if tok == "" || IsPantry(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) >= maxRecentItems {
			break
		}
	}
	return out
}
