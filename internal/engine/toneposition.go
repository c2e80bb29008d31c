package engine

import "unicode"

// ToneStrategy selects which Vietnamese orthography the engine follows for
// the oa/oe/uy family, where modern and traditional placement disagree.
type ToneStrategy int

const (
	// ToneModern places the mark on the second vowel for oa/oe/uy (hoà rather than hòa).
	ToneModern ToneStrategy = iota
	// ToneTraditional places the mark on the first vowel for oa/oe/uy.
	ToneTraditional
	// ToneAuto defers to UseModernTonePlacement in EngineConfig.
	ToneAuto
)

// resolveToneStrategy turns ToneAuto into a concrete strategy using the
// config's compatibility alias.
func resolveToneStrategy(strategy ToneStrategy, useModern bool) ToneStrategy {
	if strategy != ToneAuto {
		return strategy
	}
	if useModern {
		return ToneModern
	}
	return ToneTraditional
}

// isOaOeUyFamily reports whether a two-vowel, diacritic-free cluster is one
// of the families whose placement depends on ToneStrategy.
func isOaOeUyFamily(first, second rune) bool {
	f, s := unicode.ToLower(first), unicode.ToLower(second)
	switch {
	case f == 'o' && (s == 'a' || s == 'e'):
		return true
	case f == 'u' && s == 'y':
		return true
	}
	return false
}

// FindTonePosition decides which vowel in the projection should carry the
// tone mark, given whether the syllable has closed with a final consonant.
// Rules are applied in priority order per spec §4.4.
func FindTonePosition(vowels []VowelRef, hasFinalConsonant bool, strategy ToneStrategy, useModern bool) int {
	if len(vowels) == 0 {
		return 0
	}
	if len(vowels) == 1 {
		return vowels[0].Pos
	}

	// Rule 1: diacritic priority.
	if pos, ok := diacriticPriorityPosition(vowels); ok {
		return pos
	}

	strategy = resolveToneStrategy(strategy, useModern)

	// oa/oe/uy family: strategy-dependent, only when diphthong with no coda.
	if len(vowels) == 2 && !hasFinalConsonant {
		first := rune(vowels[0].Key)
		second := rune(vowels[1].Key)
		if isOaOeUyFamily(first, second) {
			if strategy == ToneTraditional {
				return vowels[0].Pos
			}
			return vowels[1].Pos
		}
	}

	// Rule 2: second-vowel rule for diphthongs, middle vowel for triphthongs.
	if len(vowels) == 2 {
		return vowels[1].Pos
	}
	// 3+ vowels: middle vowel.
	mid := len(vowels) / 2
	return vowels[mid].Pos
}

// diacriticPriorityPosition implements rule 1: if any vowel carries a
// diacritic, the mark goes on the rightmost such vowel, except for
// triphthongs where both the first and middle vowel carry HORN (the
// ươ… family), where it goes on the middle vowel.
func diacriticPriorityPosition(vowels []VowelRef) (int, bool) {
	lastDiacritic := -1
	for i, v := range vowels {
		if v.Diacritic != DiacriticNone {
			lastDiacritic = i
		}
	}
	if lastDiacritic == -1 {
		return 0, false
	}
	if len(vowels) == 3 && vowels[0].Diacritic == DiacriticHorn && vowels[1].Diacritic == DiacriticHorn {
		return vowels[1].Pos, true
	}
	return vowels[lastDiacritic].Pos, true
}
