package engine

import "unicode"

// ValidationResult is the outcome of phonotactic validation (spec §4.5).
type ValidationResult struct {
	Valid      bool
	Confidence int // 0-100
}

var validInitials = map[string]bool{
	"b": true, "c": true, "ch": true, "d": true, "đ": true, "g": true, "gh": true,
	"gi": true, "h": true, "k": true, "kh": true, "l": true, "m": true, "n": true,
	"ng": true, "ngh": true, "nh": true, "p": true, "ph": true, "qu": true, "r": true,
	"s": true, "t": true, "th": true, "tr": true, "v": true, "x": true,
}

var validFinals = map[string]bool{
	"": true, "c": true, "ch": true, "m": true, "n": true, "ng": true,
	"nh": true, "p": true, "t": true,
}

// invalidClusters lists onset letter pairs that never start a Vietnamese
// syllable (spec §4.5, ported from the English-phonotactic exclusion set).
var invalidClusters = map[string]bool{
	"bl": true, "br": true, "cl": true, "cr": true, "dr": true, "fl": true,
	"fr": true, "gl": true, "gr": true, "pl": true, "pr": true, "sc": true,
	"sk": true, "sl": true, "sm": true, "sn": true, "sp": true, "st": true,
	"sw": true, "tw": true, "scr": true, "spl": true, "spr": true, "str": true,
}

// bigramExceptions lists onsets that validateVietnamese exempts from the
// invalidClusters penalty. No other letter-pair (bigram) table is applied.
var bigramExceptions = map[string]bool{
	"qu": true, "gi": true,
}

// validNuclei2 and validNuclei3 are the recognized 2- and 3-vowel nuclei,
// keyed on their base-letter spelling (diacritics folded off, since the
// same check runs against both raw pre-transform keystrokes and rendered
// post-transform text); any other combination of vowel letters never
// occurs in Vietnamese (spec §4.5 rule 4/6).
var validNuclei2 = map[string]bool{
	"ai": true, "ao": true, "au": true, "ay": true, "eo": true, "eu": true,
	"ia": true, "iu": true, "oa": true, "oe": true, "oi": true, "ua": true,
	"ue": true, "ui": true, "uo": true, "uy": true, "ie": true, "ye": true,
}

var validNuclei3 = map[string]bool{
	"ieu": true, "uoi": true, "uou": true, "uye": true, "yeu": true,
}

// foldVowelBase maps a (possibly diacritic-bearing) vowel rune to the bare
// letter it is built from, so nucleus shape can be recognized regardless of
// whether circumflex/horn/breve has been applied yet.
func foldVowelBase(r rune) rune {
	switch r {
	case 'ă', 'â':
		return 'a'
	case 'ê':
		return 'e'
	case 'ô', 'ơ':
		return 'o'
	case 'ư':
		return 'u'
	}
	return r
}

func foldNucleus(nucleus string) string {
	folded := make([]rune, 0, len(nucleus))
	for _, r := range nucleus {
		folded = append(folded, foldVowelBase(r))
	}
	return string(folded)
}

// nucleusRecognized reports whether nucleus (lower-cased) is one of the
// known Vietnamese vowel-cluster shapes; a single vowel is always valid.
func nucleusRecognized(nucleus string) bool {
	folded := foldNucleus(nucleus)
	switch len([]rune(folded)) {
	case 0:
		return false
	case 1:
		return true
	case 2:
		return validNuclei2[folded]
	case 3:
		return validNuclei3[folded]
	default:
		return false
	}
}

// validateVietnamese runs the layered phonotactic check over the rendered
// syllable text (tone marks are set aside first; circumflex/horn/breve
// letters are kept), returning a confidence score rather than a hard veto,
// since the engine never refuses to render a key (spec §7 total contract).
func validateVietnamese(word []rune) ValidationResult {
	if len(word) == 0 {
		return ValidationResult{Valid: true, Confidence: 100}
	}
	lower := make([]rune, len(word))
	for i, r := range word {
		lower[i] = unicode.ToLower(r)
		for base, tones := range toneOfVowel {
			for _, toned := range tones {
				if toned == lower[i] {
					lower[i] = base
				}
			}
		}
	}

	onset, nucleus, coda := splitSyllable(lower)
	confidence := 100

	if onset != "" && !isValidInitial(onset, nucleus) {
		confidence -= 40
	}
	if len(onset) >= 2 && invalidClusters[onset] && !bigramExceptions[onset] {
		confidence -= 40
	}
	if coda != "" && !validFinals[coda] && coda != "k" {
		confidence -= 30
	}
	if len(nucleus) == 0 {
		confidence -= 50
	} else if !nucleusRecognized(nucleus) {
		confidence -= 30
	}
	if !vowelCodaCompatible(nucleus, coda) {
		confidence -= 20
	}
	if confidence < 0 {
		confidence = 0
	}
	return ValidationResult{Valid: confidence >= 50, Confidence: confidence}
}

// ValidateWithTones runs the phonotactic validator against the buffer's
// rendered text, then layers spec §4.5 rule 8's tone/diacritic placement
// constraints on top, which validateVietnamese cannot see because they
// depend on which vowel carries which diacritic and mark rather than on
// the rendered letters alone: HORN only ever sits on a/o/u (ă/ơ/ư), a
// CIRCUMFLEX 'ô' may only be followed by 'i' in the nucleus, a 3-vowel
// nucleus must be one of the recognized triphthongs, and a mark on a
// nucleus closed by a stop coda must be SẮC or NẶNG. Breaking any of these
// makes the result invalid and lowers its confidence by 30.
func ValidateWithTones(buf *StructuralBuffer) ValidationResult {
	base := validateVietnamese(RenderBuffer(buf))
	if !tonePlacementOK(buf) {
		confidence := base.Confidence - 30
		if confidence < 0 {
			confidence = 0
		}
		return ValidationResult{Valid: false, Confidence: confidence}
	}
	return base
}

func tonePlacementOK(buf *StructuralBuffer) bool {
	vowels := buf.VowelProjection()
	if len(vowels) == 0 {
		return true
	}
	for i, v := range vowels {
		key := unicode.ToLower(rune(v.Key))
		if v.Diacritic == DiacriticHorn && key != 'a' && key != 'o' && key != 'u' {
			return false
		}
		if key == 'o' && v.Diacritic == DiacriticCircumflex && i+1 < len(vowels) {
			if unicode.ToLower(rune(vowels[i+1].Key)) != 'i' {
				return false
			}
		}
	}
	if len(vowels) == 3 {
		keys := make([]rune, 3)
		for i, v := range vowels {
			keys[i] = unicode.ToLower(rune(v.Key))
		}
		if !validNuclei3[string(keys)] {
			return false
		}
	}
	if pos, ok := buf.Mark(); ok {
		c, _ := buf.Get(pos)
		if !toneAllowedOnCoda(c.Mark, codaAfterVowels(buf)) {
			return false
		}
	}
	return true
}

// isValidInitial checks the onset against the known-initial table and the
// c/k/g spelling-distribution rule: k/gh/ngh only ever precede a front
// vowel (i/e/ê/y), c/g/ng only ever precede a back/central one.
func isValidInitial(onset, nucleus string) bool {
	if !validInitials[onset] {
		return false
	}
	if nucleus == "" {
		return true
	}
	first := []rune(nucleus)[0]
	switch onset {
	case "k", "gh", "ngh":
		return isFrontVowel(first)
	case "c", "g", "ng":
		return !isFrontVowel(first)
	}
	return true
}

func isFrontVowel(r rune) bool {
	switch r {
	case 'i', 'e', 'ê', 'y':
		return true
	}
	return false
}

// vowelCodaCompatible checks the last vowel of the nucleus against the
// coda: ch/nh are accepted only after a, ê or i, and ng/c only after a, ă,
// â, o, ô, ơ, u or ư; every other coda is accepted. (The 'k' coda used by
// ethnic-minority place names such as "Đăk Lăk" is tolerated by
// validateVietnamese's coda check, not here.)
func vowelCodaCompatible(nucleus, coda string) bool {
	if nucleus == "" {
		return true
	}
	last := []rune(nucleus)[len([]rune(nucleus))-1]
	switch coda {
	case "ch", "nh":
		switch last {
		case 'a', 'ê', 'i':
			return true
		default:
			return false
		}
	case "ng", "c":
		switch last {
		case 'a', 'ă', 'â', 'o', 'ô', 'ơ', 'u', 'ư':
			return true
		default:
			return false
		}
	}
	return true
}

// splitSyllable is a best-effort onset/nucleus/coda split over already
// lower-cased runes, used only for validation scoring (the structural
// buffer, not this split, is the engine's source of truth).
func splitSyllable(word []rune) (onset, nucleus, coda string) {
	i := 0
	for i < len(word) && isConsonantRune(word[i]) {
		i++
	}
	onset = string(word[:i])
	j := i
	for j < len(word) && isVowelRune(word[j]) {
		j++
	}
	nucleus = string(word[i:j])
	coda = string(word[j:])
	return onset, nucleus, coda
}

func isConsonantRune(r rune) bool {
	switch r {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}

func isVowelRune(r rune) bool {
	switch r {
	case 'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y':
		return true
	}
	return false
}
