package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Bernal Sunset", "bernal sunset"},
		{"diacritics folded", "Café São Tomé", "cafe sao tome"},
		{"okina folded into word", "Hawaiʻi", "hawaii"},
		{"punctuation to space", "Maui, HI", "maui hi"},
		{"whitespace collapsed", "  sea   of \t love ", "sea of love"},
		{"digits kept", "06/2019", "06 2019"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
		{"mixed unicode garbage", "\x00�☃ snow", "snow"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hawaiʻi", "Bernal Heights, SF", "ÀÁÂÃÄÅ", "a  b   c", "", "06/2019 — Maui",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_DiacriticEquivalence(t *testing.T) {
	if Normalize("Hawaiʻi") != Normalize("hawaii") {
		t.Errorf("Hawaiʻi and hawaii should normalize equal, got %q vs %q",
			Normalize("Hawaiʻi"), Normalize("hawaii"))
	}
}
