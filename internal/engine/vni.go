package engine

import "unicode"

// VNIMethod implements the VNI input method (spec §4.1): number keys 1-5
// and 0 select tones, 6-9 select diacritics/stroke.
type VNIMethod struct{}

// NewVNIMethod returns a VNI classifier.
func NewVNIMethod() *VNIMethod { return &VNIMethod{} }

// Name returns "VNI".
func (v *VNIMethod) Name() string { return "VNI" }

var vniToneKeys = map[rune]ToneMark{
	'1': ToneSac,
	'2': ToneHuyen,
	'3': ToneHoi,
	'4': ToneNga,
	'5': ToneNang,
}

// Classify implements InputMethod for VNI.
func (v *VNIMethod) Classify(key rune, buf *StructuralBuffer, cfg *EngineConfig) Intent {
	if key == '0' {
		if _, ok := buf.Mark(); !ok {
			return Intent{Kind: IntentLiteral}
		}
		return Intent{Kind: IntentRemoveMark}
	}
	if tone, ok := vniToneKeys[key]; ok {
		if len(buf.FindVowels()) == 0 {
			return Intent{Kind: IntentLiteral}
		}
		return Intent{Kind: IntentTone, Tone: tone}
	}

	switch key {
	case '9':
		return vniClassifyStroke(buf)
	case '6':
		return vniClassifyCircumflex(buf, cfg)
	case '7':
		return vniClassifyHorn(buf, cfg)
	case '8':
		return vniClassifyBreve(buf, cfg)
	}
	return Intent{Kind: IntentLiteral}
}

func vniClassifyStroke(buf *StructuralBuffer) Intent {
	last, ok := buf.Last()
	if ok && unicode.ToLower(rune(last.Key)) == 'd' && !last.Stroke {
		return Intent{Kind: IntentStroke}
	}
	return Intent{Kind: IntentLiteral}
}

// vniClassifyCircumflex handles key 6: a/e/o -> â/ê/ô.
func vniClassifyCircumflex(buf *StructuralBuffer, cfg *EngineConfig) Intent {
	return vniClassifyDiacritic(buf, cfg, DiacriticCircumflex, func(r rune) bool {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'o':
			return true
		}
		return false
	})
}

// vniClassifyBreve handles key 8: a -> ă.
func vniClassifyBreve(buf *StructuralBuffer, cfg *EngineConfig) Intent {
	return vniClassifyDiacritic(buf, cfg, DiacriticHorn, func(r rune) bool {
		return unicode.ToLower(r) == 'a'
	})
}

// vniClassifyHorn handles key 7: o/u -> ơ/ư.
func vniClassifyHorn(buf *StructuralBuffer, cfg *EngineConfig) Intent {
	return vniClassifyDiacritic(buf, cfg, DiacriticHorn, func(r rune) bool {
		switch unicode.ToLower(r) {
		case 'o', 'u':
			return true
		}
		return false
	})
}

// vniClassifyDiacritic is the shared VNI target-eligibility check: unlike
// Telex, VNI's marker keys are not tied to a specific repeated letter. Only
// the last vowel of the cluster is considered (through a coda when backward
// application is enabled); it qualifies if it is eligible and untouched,
// and otherwise the key is a literal.
func vniClassifyDiacritic(buf *StructuralBuffer, cfg *EngineConfig, diacritic DiacriticMark, eligible func(rune) bool) Intent {
	vowels := buf.VowelProjection()
	if len(vowels) == 0 {
		return Intent{Kind: IntentLiteral}
	}

	if buf.HasFinalConsonant() && !cfg.EnableBackwardApplication {
		return Intent{Kind: IntentLiteral}
	}

	last := vowels[len(vowels)-1]
	c, _ := buf.Get(last.Pos)
	if eligible(rune(c.Key)) && c.Diacritic == DiacriticNone {
		return Intent{Kind: IntentDiacritic, Diacritic: diacritic}
	}
	return Intent{Kind: IntentLiteral}
}

// CanStartWord reports whether r can begin a new composing word.
func (v *VNIMethod) CanStartWord(r rune) bool {
	return isLetterKey(r)
}

// IsWordBreaker reports whether r ends the current composing word. VNI's
// digit keys are modifiers, not breakers, while composing.
func (v *VNIMethod) IsWordBreaker(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// IsComposingKey reports whether r extends the current word: letters
// always, plus digits 0-9 since VNI uses them as tone/diacritic keys.
func (v *VNIMethod) IsComposingKey(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
