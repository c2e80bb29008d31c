package engine

import (
	"testing"
	"unicode"

	"pgregory.net/rapid"
)

// TestPropertyDiffNeverOverdeletes checks that OnKey's returned Backspace
// never exceeds what has actually been rendered so far, for any sequence
// of lowercase-letter keystrokes (spec §8: Diff invariant).
func TestPropertyDiffNeverOverdeletes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		letters := "abcdefghijklmnopqrstuvwxyz"
		n := rapid.IntRange(0, 12).Draw(t, "n")
		e := NewCompositionEngine(DefaultConfig())
		rendered := 0
		for i := 0; i < n; i++ {
			idx := rapid.IntRange(0, len(letters)-1).Draw(t, "idx")
			diff := e.OnKey(KeyEvent{KeySym: uint32(letters[idx])})
			if int(diff.Backspace) > rendered {
				t.Fatalf("backspace %d exceeds rendered length %d", diff.Backspace, rendered)
			}
			rendered = rendered - int(diff.Backspace) + len(diff.Chars)
		}
	})
}

// TestPropertyToneAlwaysInVowelCluster checks that FindTonePosition always
// returns a position that is actually one of the supplied vowels.
func TestPropertyToneAlwaysInVowelCluster(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 3).Draw(t, "n")
		vowelLetters := []rune{'a', 'e', 'i', 'o', 'u', 'y'}
		vowels := make([]VowelRef, n)
		positions := map[int]bool{}
		for i := 0; i < n; i++ {
			pos := i * 2
			positions[pos] = true
			key := vowelLetters[rapid.IntRange(0, len(vowelLetters)-1).Draw(t, "key")]
			diacritic := DiacriticMark(rapid.IntRange(0, 2).Draw(t, "diacritic"))
			vowels[i] = VowelRef{Pos: pos, Key: uint16(key), Diacritic: diacritic}
		}
		hasCoda := rapid.Bool().Draw(t, "hasCoda")
		strategy := ToneStrategy(rapid.IntRange(0, 2).Draw(t, "strategy"))

		pos := FindTonePosition(vowels, hasCoda, strategy, true)
		if !positions[pos] {
			t.Fatalf("FindTonePosition returned %d, not among vowel positions %v", pos, positions)
		}
	})
}

// TestPropertyValidatorConfidenceInRange checks the validator's output
// confidence is always within [0,100] for arbitrary ASCII letter runs.
func TestPropertyValidatorConfidenceInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "n")
		word := make([]rune, n)
		for i := range word {
			word[i] = rune(rapid.IntRange(int('a'), int('z')).Draw(t, "letter"))
		}
		result := validateVietnamese(word)
		if result.Confidence < 0 || result.Confidence > 100 {
			t.Fatalf("confidence %d out of range for %q", result.Confidence, string(word))
		}
	})
}

// TestPropertyDecideLanguageDeterministic checks DecideLanguage is a pure
// function of its input: calling it twice with the same bytes always
// agrees.
func TestPropertyDecideLanguageDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		word := make([]rune, n)
		for i := range word {
			letter := rune(rapid.IntRange(int('a'), int('z')).Draw(t, "letter"))
			if rapid.Bool().Draw(t, "upper") {
				letter = unicode.ToUpper(letter)
			}
			word[i] = letter
		}
		a := DecideLanguage(word)
		b := DecideLanguage(word)
		if a != b {
			t.Fatalf("DecideLanguage not deterministic for %q: %v vs %v", string(word), a, b)
		}
	})
}
