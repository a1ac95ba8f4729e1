package recommend

import (
	"sort"
	"strings"

	"cookus-server/entities"
)

const unknownCookTime = 9999

// ScoreOptions tune how candidates are matched against the fridge.
type ScoreOptions struct {
	MinExact            int
	MinCoverage         float64
	MaxMissing          int
	FirstIngredientGate bool
	SimilarityThreshold float64
	TopWindow           int
	Similarity          SimilarityFunc
}

// DefaultScoreOptions returns the tuning the ranker ships with.
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{
		MinExact:            1,
		MinCoverage:         0.20,
		MaxMissing:          8,
		FirstIngredientGate: true,
		SimilarityThreshold: 0.84,
		TopWindow:           5,
		Similarity:          LevenshteinRatio,
	}
}

// Scored is one catalog recipe with its fridge-overlap metrics.
type Scored struct {
	Recipe   entities.Recipe
	Tokens   []string
	First    string
	Exact    int
	TopExact int
	Substr   int
	Fuzzy    int
	Missing  []string
	Coverage float64
	Score    float64
}

// ScoreRecipe computes overlap metrics and the composite score for one
// recipe against a fridge set. Every recipe token matches at most once,
// at the strongest tier available: exact, then substring, then fuzzy.
func ScoreRecipe(r entities.Recipe, fs *FridgeSet, opts ScoreOptions) Scored {
	tokens := CanonTokens(r.IngredientFull)
	s := Scored{
		Recipe: r,
		Tokens: tokens,
		First:  FirstIngredient(r.IngredientFull),
	}

	// lead ingredients carry extra weight; short lists keep a narrow window
	topN := opts.TopWindow
	if len(tokens) < 3 {
		topN = 3
	}
	if topN > len(tokens) {
		topN = len(tokens)
	}

	sim := opts.Similarity
	if sim == nil {
		sim = LevenshteinRatio
	}

	core := 0
	for i, tok := range tokens {
		if !IsPantry(tok) {
			core++
		}
		switch {
		case fs.Has(tok):
			s.Exact++
			if i < topN {
				s.TopExact++
			}
		case substrMatch(tok, fs):
			s.Substr++
		case fuzzyMatch(tok, fs, sim, opts.SimilarityThreshold):
			s.Fuzzy++
		default:
			// seasonings are assumed owned; only core gaps count
			if !IsPantry(tok) {
				s.Missing = append(s.Missing, tok)
			}
		}
	}

	// coverage is over core ingredients; all-seasoning recipes fall
	// back to the full token list
	denom := core
	if denom < 1 {
		denom = len(tokens)
	}
	if denom < 1 {
		denom = 1
	}
	s.Coverage = float64(s.Exact) / float64(denom)

	cookTime := r.CookingTime
	if cookTime <= 0 {
		cookTime = unknownCookTime
	}
	s.Score = 10 +
		5*float64(s.TopExact) +
		3*float64(s.Exact) +
		1.6*float64(s.Substr) +
		1.2*float64(s.Fuzzy) +
		float64(int(s.Coverage*8)) -
		1.2*float64(len(s.Missing)) -
		0.001*float64(cookTime)
	return s
}

func substrMatch(tok string, fs *FridgeSet) bool {
	for owned := range fs.Tokens {
		if strings.Contains(tok, owned) || strings.Contains(owned, tok) {
			return true
		}
	}
	return false
}

func fuzzyMatch(tok string, fs *FridgeSet, sim SimilarityFunc, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	for owned := range fs.Tokens {
		if sim(tok, owned) >= threshold {
			return true
		}
	}
	return false
}

// passes applies the hard eligibility filters.
func (s Scored) passes(fs *FridgeSet, opts ScoreOptions) bool {
	if opts.FirstIngredientGate && s.First != "" && !fs.Has(s.First) {
		return false
	}
	if s.Exact < opts.MinExact {
		return false
	}
	if s.Coverage < opts.MinCoverage {
		return false
	}
	if len(s.Missing) > opts.MaxMissing {
		return false
	}
	return true
}

// SelectTop scores, filters, and ranks candidates, returning up to limit
// recipes. Passing candidates sort by score descending with cook time as
// the tiebreak. When too few pass, the remainder backfills from the
// rejected pool by cook time ascending; the first-ingredient gate still
// applies to backfill so the lead ingredient is never missing.
func SelectTop(recipes []entities.Recipe, fs *FridgeSet, limit int, opts ScoreOptions) []Scored {
	var passed, rest []Scored
	seen := make(map[int]struct{}, len(recipes))
	for _, r := range recipes {
		if _, dup := seen[r.RecipeID]; dup {
			continue
		}
		seen[r.RecipeID] = struct{}{}
		sc := ScoreRecipe(r, fs, opts)
		if sc.passes(fs, opts) {
			passed = append(passed, sc)
		} else {
			rest = append(rest, sc)
		}
	}

	sort.SliceStable(passed, func(i, j int) bool {
		if passed[i].Score != passed[j].Score {
			return passed[i].Score > passed[j].Score
		}
		return effectiveCookTime(passed[i].Recipe) < effectiveCookTime(passed[j].Recipe)
	})

	if len(passed) >= limit {
		return passed[:limit]
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return effectiveCookTime(rest[i].Recipe) < effectiveCookTime(rest[j].Recipe)
	})
	for _, sc := range rest {
		if len(passed) >= limit {
			break
		}
		if opts.FirstIngredientGate && sc.First != "" && !fs.Has(sc.First) {
			continue
		}
		passed = append(passed, sc)
	}
	return passed
}

func effectiveCookTime(r entities.Recipe) int {
	if r.CookingTime <= 0 {
		return unknownCookTime
	}
	return r.CookingTime
}
