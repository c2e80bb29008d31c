package engine

import "testing"

func TestVNIBasicTones(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sac", "a1", "á"},
		{"huyen", "a2", "à"},
		{"hoi", "a3", "ả"},
		{"nga", "a4", "ã"},
		{"nang", "a5", "ạ"},
		{"circumflex_a", "a6", "â"},
		{"circumflex_e", "e6", "ê"},
		{"circumflex_o", "o6", "ô"},
		{"horn_o", "o7", "ơ"},
		{"horn_u", "u7", "ư"},
		{"breve", "a8", "ă"},
		{"stroke", "d9", "đ"},
		{"remove_tone", "a10", "a"},
		{"viet", "vie65t", "việt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewCompositionEngine(&EngineConfig{
				InputMethodName: "VNI", Enabled: true, ToneStrategy: ToneAuto,
				UseModernTonePlacement: true, SmartMode: false, MaxHistorySize: maxHistoryDepth,
			})
			got := typeLetters(t, e, tc.in)
			if got != tc.want {
				t.Errorf("typeLetters(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestVNICanStartWordAndWordBreaker(t *testing.T) {
	vm := NewVNIMethod()
	if !vm.CanStartWord('n') {
		t.Error("expected 'n' to start a word")
	}
	if vm.IsWordBreaker('5') {
		t.Error("expected '5' to not break a word in VNI (it's a modifier)")
	}
	if !vm.IsWordBreaker(' ') {
		t.Error("expected space to break a word")
	}
}
