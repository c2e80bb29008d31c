package engine

import "unicode"

// Language is the decider's verdict for a run of raw keystrokes.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageVietnamese
	LanguageEnglish
)

// englishOnsetClusters lists two-letter consonant clusters common at the
// start of English syllables; the scorer matches them anywhere in the word.
var englishOnsetClusters = map[string]bool{
	"bl": true, "br": true, "cl": true, "cr": true, "dr": true, "fl": true,
	"fr": true, "gl": true, "gr": true, "pl": true, "pr": true, "sc": true,
	"sh": true, "sk": true, "sl": true, "sm": true, "sn": true, "sp": true,
	"st": true, "sw": true, "th": true, "tw": true, "wh": true, "wr": true,
}

var englishCodaClusters = map[string]bool{
	"ct": true, "ft": true, "ld": true, "lk": true, "lm": true, "lp": true,
	"lt": true, "mp": true, "nd": true, "nk": true, "nt": true, "pt": true,
	"rd": true, "rk": true, "rm": true, "rn": true, "rt": true, "sk": true,
	"sp": true, "st": true, "xt": true,
}

var englishSuffixes = []string{
	"tion", "sion", "ing", "ment", "ness", "ity", "able", "ible", "ous",
	"ive", "ize", "ise", "ful", "less", "ward",
}

// DecideLanguage scores a raw ASCII run using the dictionary, an
// 8-layer English-phonotactic check, and the Vietnamese validator,
// returning which language the run most likely is (spec §4.6).
func DecideLanguage(raw []rune) Language {
	if len(raw) == 0 {
		return LanguageUnknown
	}
	for _, r := range raw {
		if !unicode.IsLetter(r) {
			return LanguageUnknown
		}
	}
	word := normalizeASCII(raw)

	if isEnglishDictionaryWord(word) {
		return LanguageEnglish
	}

	engScore := englishPhonotacticScore(word)
	vieResult := validateVietnamese(raw)

	switch {
	case engScore >= 3 && engScore > (100-vieResult.Confidence)/20:
		return LanguageEnglish
	case vieResult.Confidence >= 60:
		return LanguageVietnamese
	case engScore > 0:
		return LanguageEnglish
	default:
		return LanguageUnknown
	}
}

func normalizeASCII(raw []rune) string {
	out := make([]rune, len(raw))
	for i, r := range raw {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}

// englishPhonotacticScore layers eight independent signals, each worth one
// point: presence of f/j/w/z, English onset clusters, English coda
// clusters, doubled consonants (other than 'dd', which Telex treats
// specially), three or more consecutive consonants, English derivational
// suffixes, three or more consecutive vowels, and length over 7 letters.
func englishPhonotacticScore(word string) int {
	score := 0
	runes := []rune(word)

	if containsAny(runes, "fjwz") {
		score++
	}
	if hasSubstring(word, englishOnsetClusters, 2) || hasSubstring(word, englishOnsetClusters, 3) {
		score++
	}
	if hasSubstring(word, englishCodaClusters, 2) {
		score++
	}
	if hasDoubledConsonant(runes) {
		score++
	}
	if hasConsonantRun(runes, 3) {
		score++
	}
	for _, suf := range englishSuffixes {
		if len(word) > len(suf) && word[len(word)-len(suf):] == suf {
			score++
			break
		}
	}
	if hasVowelRun(runes, 3) {
		score++
	}
	if len(runes) > 7 {
		score++
	}
	return score
}

func containsAny(runes []rune, set string) bool {
	for _, r := range runes {
		for _, s := range set {
			if r == s {
				return true
			}
		}
	}
	return false
}

func hasSubstring(word string, set map[string]bool, n int) bool {
	if len(word) < n {
		return false
	}
	for i := 0; i+n <= len(word); i++ {
		if set[word[i:i+n]] {
			return true
		}
	}
	return false
}

func hasDoubledConsonant(runes []rune) bool {
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] && isConsonantKey(runes[i]) {
			if runes[i] == 'd' {
				continue
			}
			return true
		}
	}
	return false
}

func hasConsonantRun(runes []rune, n int) bool {
	run := 0
	for _, r := range runes {
		if isConsonantKey(r) {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

func hasVowelRun(runes []rune, n int) bool {
	run := 0
	for _, r := range runes {
		if isVowelKey(r) {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
