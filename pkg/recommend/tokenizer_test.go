package recommend

import (
	"reflect"
	"testing"
)

func TestCanonToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"양파", "양파"},
		{"양파(적당량)", "양파"},
		{"양파 2개", "양파"},
		{"우유 500ml", "우유"},
		{"대파", "파"},
		{"쪽파", "파"},
		{"닭가슴살", "닭"},
		{"밥", "쌀"},
		{"청양고추", "고추"},
		{"MSG", "msg"},
		{"알감자", "감자"},
		{"  참치  캔 ", "참치캔"},
		{"100g", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CanonToken(tc.in); got != tc.want {
			t.Errorf("CanonToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRawTokensShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "json object keys in order",
			in:   `{"양파": "1개", "감자": "2개", "대파": "1대"}`,
			want: []string{"양파", "감자", "대파"},
		},
		{
			name: "python dict dump",
			in:   `{'양파': '1개', '감자': '2개'}`,
			want: []string{"양파", "감자"},
		},
		{
			name: "json array",
			in:   `["양파", "감자"]`,
			want: []string{"양파", "감자"},
		},
		{
			name: "quoted fragments",
			in:   `'양파' 그리고 '감자'`,
			want: []string{"양파", "감자"},
		},
		{
			name: "delimited list",
			in:   "양파, 감자|당근\n대파",
			want: []string{"양파", "감자", "당근", "대파"},
		},
		{
			name: "duplicates dropped",
			in:   "양파, 양파, 감자",
			want: []string{"양파", "감자"},
		},
		{
			name: "empty",
			in:   "  ",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RawTokens(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("RawTokens(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonTokensCollapsesSynonyms(t *testing.T) {
	got := CanonTokens("대파, 파, 쪽파, 감자")
	want := []string{"파", "감자"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CanonTokens = %v, want %v", got, want)
	}
}

func TestFirstIngredient(t *testing.T) {
	if got := FirstIngredient(`{"닭가슴살": "300g", "양파": "1개"}`); got != "닭" {
		t.Errorf("FirstIngredient = %q, want 닭", got)
	}
	if got := FirstIngredient(""); got != "" {
		t.Errorf("FirstIngredient on empty = %q, want empty", got)
	}
}

func TestIsPantry(t *testing.T) {
	for _, staple := range []string{"소금", "간장", "고춧가루", "msg"} {
		if !IsPantry(staple) {
			t.Errorf("IsPantry(%q) = false, want true", staple)
		}
	}
	if IsPantry("양파") {
		t.Error("IsPantry(양파) = true, want false")
	}
}

func TestParseIngredientMap(t *testing.T) {
	names, qty := ParseIngredientMap(`{"양파": "1개", "대파": "한 줌", "감자": ""}`)
	if !reflect.DeepEqual(names, []string{"양파", "대파", "감자"}) {
		t.Errorf("names = %v", names)
	}
	if qty["양파"] != "1개" {
		t.Errorf("qty[양파] = %q, want 1개", qty["양파"])
	}
	// quantities key by canonical token
	if qty["파"] != "한 줌" {
		t.Errorf("qty[파] = %q, want 한 줌", qty["파"])
	}
	if _, ok := qty["감자"]; ok {
		t.Error("empty quantity should not be recorded")
	}
}
