package engine

import "unicode"

// TelexMethod implements the Telex input method (spec §4.1).
type TelexMethod struct{}

// NewTelexMethod returns a Telex classifier.
func NewTelexMethod() *TelexMethod { return &TelexMethod{} }

// Name returns "Telex".
func (t *TelexMethod) Name() string { return "Telex" }

var telexToneKeys = map[rune]ToneMark{
	's': ToneSac,
	'f': ToneHuyen,
	'r': ToneHoi,
	'x': ToneNga,
	'j': ToneNang,
}

// Classify implements InputMethod for Telex.
func (t *TelexMethod) Classify(key rune, buf *StructuralBuffer, cfg *EngineConfig) Intent {
	lower := unicode.ToLower(key)

	if lower == 'z' {
		if _, ok := buf.Mark(); !ok {
			return Intent{Kind: IntentLiteral}
		}
		return Intent{Kind: IntentRemoveMark}
	}
	if tone, ok := telexToneKeys[lower]; ok {
		if len(buf.FindVowels()) == 0 {
			return Intent{Kind: IntentLiteral}
		}
		return Intent{Kind: IntentTone, Tone: tone}
	}
	if lower == 'd' {
		return telexClassifyStroke(buf)
	}
	switch lower {
	case 'a', 'e', 'o':
		return telexClassifyDouble(buf, lower, cfg)
	case 'w':
		return telexClassifyHorn(buf, cfg)
	}
	return Intent{Kind: IntentLiteral}
}

// telexClassifyStroke handles "dd" -> STROKE.
func telexClassifyStroke(buf *StructuralBuffer) Intent {
	last, ok := buf.Last()
	if ok && unicode.ToLower(rune(last.Key)) == 'd' && !last.Stroke {
		return Intent{Kind: IntentStroke}
	}
	return Intent{Kind: IntentLiteral}
}

// telexClassifyDouble handles "aa|ee|oo" -> CIRCUMFLEX, including the
// backward-application extension (spec §12) for a syllable that has already
// closed with a coda.
func telexClassifyDouble(buf *StructuralBuffer, key rune, cfg *EngineConfig) Intent {
	vowels := buf.FindVowels()

	if last, ok := buf.Last(); ok && last.IsVowel() &&
		unicode.ToLower(rune(last.Key)) == key && last.Diacritic == DiacriticNone {
		if vowelClusterHasToneOrMark(buf, vowels) {
			return Intent{Kind: IntentLiteral}
		}
		return Intent{Kind: IntentDiacritic, Diacritic: DiacriticCircumflex}
	}

	if cfg.EnableBackwardApplication && buf.HasFinalConsonant() && len(vowels) > 0 {
		pos := vowels[len(vowels)-1]
		c, _ := buf.Get(pos)
		if unicode.ToLower(rune(c.Key)) == key && c.Diacritic == DiacriticNone {
			return Intent{Kind: IntentDiacritic, Diacritic: DiacriticCircumflex}
		}
	}
	return Intent{Kind: IntentLiteral}
}

// telexClassifyHorn handles "w" -> HORN, smart-targeting whichever of
// u/o/a is present in the current vowel cluster.
func telexClassifyHorn(buf *StructuralBuffer, cfg *EngineConfig) Intent {
	vowels := buf.VowelProjection()
	if len(vowels) == 0 {
		return Intent{Kind: IntentLiteral}
	}

	if buf.HasFinalConsonant() {
		if !cfg.EnableBackwardApplication {
			return Intent{Kind: IntentLiteral}
		}
		last := vowels[len(vowels)-1]
		c, _ := buf.Get(last.Pos)
		if !isHornEligible(rune(c.Key)) {
			return Intent{Kind: IntentLiteral}
		}
		return Intent{Kind: IntentDiacritic, Diacritic: DiacriticHorn}
	}

	for _, v := range vowels {
		if isHornEligible(rune(v.Key)) {
			return Intent{Kind: IntentDiacritic, Diacritic: DiacriticHorn}
		}
	}
	return Intent{Kind: IntentLiteral}
}

func isHornEligible(key rune) bool {
	switch unicode.ToLower(key) {
	case 'a', 'o', 'u':
		return true
	}
	return false
}

// CanStartWord reports whether r can begin a new composing word.
func (t *TelexMethod) CanStartWord(r rune) bool {
	return isLetterKey(r)
}

// IsWordBreaker reports whether r ends the current composing word.
func (t *TelexMethod) IsWordBreaker(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r)
}

// IsComposingKey reports whether r extends the current word. Telex has no
// digit modifiers, so only letters compose.
func (t *TelexMethod) IsComposingKey(r rune) bool {
	return unicode.IsLetter(r)
}
