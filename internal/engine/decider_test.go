package engine

import "testing"

func TestDecideLanguage(t *testing.T) {
	tests := []struct {
		word string
		want Language
	}{
		{"", LanguageUnknown},
		{"function", LanguageEnglish},
		{"interface", LanguageEnglish},
		{"viet", LanguageVietnamese},
		{"nguoi", LanguageVietnamese},
		{"strong", LanguageEnglish},
		{"black", LanguageEnglish},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got := DecideLanguage([]rune(tc.word))
			if got != tc.want {
				t.Errorf("DecideLanguage(%q) = %v, want %v", tc.word, got, tc.want)
			}
		})
	}
}

func TestDecideLanguageRejectsNonLetters(t *testing.T) {
	if got := DecideLanguage([]rune("abc123")); got != LanguageUnknown {
		t.Errorf("DecideLanguage with digits = %v, want LanguageUnknown", got)
	}
}
