package recommend

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLevenshteinRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"양파", "양파", 1},
		{"", "양파", 0},
		{"양파", "", 0},
		{"파", "양파", 0.5},
		{"양파", "양배추", 1.0 / 3.0},
		{"고춧가루", "고추가루", 0.75},
	}
	for _, tc := range cases {
		if got := LevenshteinRatio(tc.a, tc.b); !almostEqual(got, tc.want) {
			t.Errorf("LevenshteinRatio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLevenshteinRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"돼지고기", "소고기"},
		{"새송이버섯", "양송이버섯"},
		{"치즈", "크림치즈"},
	}
	for _, p := range pairs {
		if a, b := LevenshteinRatio(p[0], p[1]), LevenshteinRatio(p[1], p[0]); !almostEqual(a, b) {
			t.Errorf("ratio not symmetric for %q/%q: %v vs %v", p[0], p[1], a, b)
		}
	}
}

func TestLevenshteinRatioThreshold(t *testing.T) {
	// one edit across seven runes clears the 0.84 cut
	if got := LevenshteinRatio("슬라이스치즈가", "슬라이스치즈"); got < 0.84 {
		t.Errorf("ratio = %v, want >= 0.84", got)
	}
	// one edit across six runes does not
	if got := LevenshteinRatio("모짜렐라치즈", "모차렐라치즈"); got >= 0.84 {
		t.Errorf("ratio = %v, want < 0.84", got)
	}
}
