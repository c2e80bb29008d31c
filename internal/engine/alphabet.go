package engine

import "unicode"

// The six bare Vietnamese vowel letters. Diacritics are carried out-of-band
// in Char.Diacritic/Char.Mark, never as separate buffer keys.
func isVowelKey(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isConsonantKey(r rune) bool {
	switch unicode.ToLower(r) {
	case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}

// isLetterKey reports whether r is one of the 22 ASCII letters Vietnamese
// syllables are built from (no f, j, w, z — those are Telex modifiers or
// plainly foreign).
func isLetterKey(r rune) bool {
	return isVowelKey(r) || isConsonantKey(r)
}

