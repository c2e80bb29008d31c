package engine

import "testing"

func typeLetters(t *testing.T, e *CompositionEngine, s string) string {
	t.Helper()
	var out []rune
	for _, r := range s {
		diff := e.OnKey(KeyEvent{KeySym: uint32(r)})
		if int(diff.Backspace) > len(out) {
			t.Fatalf("backspace %d exceeds rendered length %d", diff.Backspace, len(out))
		}
		out = out[:len(out)-int(diff.Backspace)]
		out = append(out, diff.Chars...)
	}
	return string(out)
}

func TestTelexBasicTones(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sac", "as", "á"},
		{"huyen", "af", "à"},
		{"hoi", "ar", "ả"},
		{"nga", "ax", "ã"},
		{"nang", "aj", "ạ"},
		{"circumflex", "aa", "â"},
		{"circumflex_tone", "aas", "ấ"},
		{"horn_o", "ow", "ơ"},
		{"horn_u", "uw", "ư"},
		{"breve", "aw", "ă"},
		{"stroke", "dd", "đ"},
		{"stroke_word", "ddoongf", "đồng"},
		{"full_word", "vieetj", "việt"},
		{"full_word2", "nam", "nam"},
		{"remove_tone", "afz", "a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewCompositionEngine(DefaultConfig())
			got := typeLetters(t, e, tc.in)
			if got != tc.want {
				t.Errorf("typeLetters(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTelexBackwardApplication(t *testing.T) {
	e := NewCompositionEngine(DefaultConfig())
	got := typeLetters(t, e, "camas")
	if got != "cấm" {
		t.Errorf("typeLetters(camas) = %q, want cấm", got)
	}
}

func TestTelexDoubleVowelSafety(t *testing.T) {
	// Once a tone is present, doubling the same vowel again must not also
	// apply circumflex; it should fall back to a literal letter, and the
	// mark then moves to the second vowel of the new two-vowel cluster.
	e := NewCompositionEngine(DefaultConfig())
	got := typeLetters(t, e, "as")
	if got != "á" {
		t.Fatalf("setup: got %q, want á", got)
	}
	diff := e.OnKey(KeyEvent{KeySym: uint32('a')})
	got = applyDiffToString(t, got, diff)
	if got != "aá" {
		t.Errorf("doubling after tone = %q, want aá", got)
	}
}

func applyDiffToString(t *testing.T, prev string, diff Diff) string {
	t.Helper()
	runes := []rune(prev)
	runes = runes[:len(runes)-int(diff.Backspace)]
	runes = append(runes, diff.Chars...)
	return string(runes)
}

func TestTelexCanStartWordAndWordBreaker(t *testing.T) {
	tm := NewTelexMethod()
	if !tm.CanStartWord('b') {
		t.Error("expected 'b' to start a word")
	}
	if tm.CanStartWord('1') {
		t.Error("expected '1' to not start a word")
	}
	if !tm.IsWordBreaker(' ') {
		t.Error("expected space to break a word")
	}
}
