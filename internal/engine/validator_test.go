package engine

import "testing"

func TestValidateVietnamese(t *testing.T) {
	tests := []struct {
		word      string
		wantValid bool
	}{
		{"viet", true},
		{"nam", true},
		{"nguoi", true},
		{"xinh", true},
		{"strong", false},
		{"black", false},
		{"glass", false},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got := validateVietnamese([]rune(tc.word))
			if got.Valid != tc.wantValid {
				t.Errorf("validateVietnamese(%q) = {valid:%v conf:%d}, want valid=%v",
					tc.word, got.Valid, got.Confidence, tc.wantValid)
			}
		})
	}
}

func TestValidateVietnameseEmpty(t *testing.T) {
	got := validateVietnamese(nil)
	if !got.Valid || got.Confidence != 100 {
		t.Errorf("validateVietnamese(nil) = %+v, want fully valid", got)
	}
}

func TestIsValidInitialFrontBackDistribution(t *testing.T) {
	tests := []struct {
		onset, nucleus string
		want           bool
	}{
		{"k", "e", true},   // k precedes front vowels
		{"k", "a", false},  // "ka" is spelled "ca" in Vietnamese
		{"c", "o", true},   // c precedes back/central vowels
		{"c", "i", false},  // "ci" is spelled "ki" in Vietnamese
		{"ng", "u", true},
		{"ngh", "i", true},
		{"ngh", "a", false},
	}
	for _, tc := range tests {
		if got := isValidInitial(tc.onset, tc.nucleus); got != tc.want {
			t.Errorf("isValidInitial(%q, %q) = %v, want %v", tc.onset, tc.nucleus, got, tc.want)
		}
	}
}

func TestNucleusRecognized(t *testing.T) {
	tests := []struct {
		nucleus string
		want    bool
	}{
		{"a", true},
		{"ie", true},   // raw Telex "viet" before transformation
		{"iê", true},   // rendered "việt"
		{"uoi", true},  // raw "nguoi"
		{"uôi", true},  // rendered "muôi"
		{"ee", false},
		{"aoe", false},
	}
	for _, tc := range tests {
		if got := nucleusRecognized(tc.nucleus); got != tc.want {
			t.Errorf("nucleusRecognized(%q) = %v, want %v", tc.nucleus, got, tc.want)
		}
	}
}

func TestValidateWithTonesRejectsMisplacedHorn(t *testing.T) {
	buf := NewStructuralBuffer()
	buf.Push(Char{Key: 'k'})
	buf.Push(Char{Key: 'e', Diacritic: DiacriticHorn}) // HORN never legal on 'e'
	got := ValidateWithTones(buf)
	if got.Confidence >= 100 {
		t.Errorf("ValidateWithTones with misplaced HORN = %+v, want a penalized score", got)
	}
}

func TestValidateWithTonesRejectsStopCodaWithWrongTone(t *testing.T) {
	buf := NewStructuralBuffer()
	buf.Push(Char{Key: 'c'})
	buf.Push(Char{Key: 'a', Mark: ToneHuyen})
	buf.Push(Char{Key: 'p'})
	got := ValidateWithTones(buf)
	if got.Valid {
		t.Errorf("ValidateWithTones(càp) = %+v, want invalid: huyền never sits on a p-closed nucleus", got)
	}
}

func TestValidateWithTonesAcceptsStopCodaWithSac(t *testing.T) {
	buf := NewStructuralBuffer()
	buf.Push(Char{Key: 'c'})
	buf.Push(Char{Key: 'a', Mark: ToneSac})
	buf.Push(Char{Key: 'p'})
	got := ValidateWithTones(buf)
	if !got.Valid {
		t.Errorf("ValidateWithTones(cáp) = %+v, want valid", got)
	}
}
