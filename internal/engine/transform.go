package engine

import "unicode"

// ApplyIntent mutates buf according to a classified Intent and reports
// which positions changed. It is the sole place buffer invariants (one
// mark, diacritics only on eligible vowels, stroke only on 'd') are
// enforced (spec §4.3).
func ApplyIntent(buf *StructuralBuffer, intent Intent, key rune, caps bool, cfg *EngineConfig) TransformResult {
	switch intent.Kind {
	case IntentTone:
		return applyTone(buf, intent.Tone, cfg)
	case IntentDiacritic:
		return applyDiacritic(buf, intent.Diacritic, cfg)
	case IntentStroke:
		return applyStroke(buf)
	case IntentRemoveMark:
		return removeMark(buf)
	case IntentIgnore:
		return TransformResult{}
	default:
		buf.Push(Char{Key: toUpperKeyLower(key), Caps: caps})
		enforceStopCodaToneRule(buf)
		RepositionTone(buf, cfg)
		return TransformResult{Applied: true}
	}
}

// toUpperKeyLower stores the key's bare lowercase code point; Caps carries
// case separately so rendering and matching stay case-insensitive.
func toUpperKeyLower(key rune) uint16 {
	return uint16(unicode.ToLower(key))
}

// applyTone finds the tone-bearing position via FindTonePosition and sets
// its mark, replacing the buffer's current mark (there is at most one).
// Per spec §4.5's stop-coda rule, a nucleus already closed by p/t/c/ch only
// ever takes SẮC or NẶNG; any other tone key is declined rather than
// applied, consistent with how other ineligible intents decline.
func applyTone(buf *StructuralBuffer, tone ToneMark, cfg *EngineConfig) TransformResult {
	vowels := buf.VowelProjection()
	if len(vowels) == 0 {
		return TransformResult{}
	}
	if !toneAllowedOnCoda(tone, codaAfterVowels(buf)) {
		return TransformResult{}
	}
	buf.ClearMark()
	pos := FindTonePosition(vowels, buf.HasFinalConsonant(), cfg.ToneStrategy, cfg.UseModernTonePlacement)
	c, ok := buf.Get(pos)
	if !ok {
		return TransformResult{}
	}
	c.Mark = tone
	buf.Set(pos, c)
	return TransformResult{ModifiedPositions: []int{pos}, Applied: true}
}

// stopCodas are the final consonants after which only SẮC and NẶNG may sit
// on the nucleus (spec §4.5).
var stopCodas = map[string]bool{"p": true, "t": true, "c": true, "ch": true}

// codaAfterVowels returns the literal, lower-cased coda following the last
// vowel in the cluster.
func codaAfterVowels(buf *StructuralBuffer) string {
	vowels := buf.FindVowels()
	if len(vowels) == 0 {
		return ""
	}
	last := vowels[len(vowels)-1]
	coda := make([]rune, 0, buf.Len()-last-1)
	for i := last + 1; i < buf.Len(); i++ {
		c, _ := buf.Get(i)
		coda = append(coda, unicode.ToLower(rune(c.Key)))
	}
	return string(coda)
}

// toneAllowedOnCoda reports whether tone may sit on a nucleus closed by
// coda; every tone is allowed on a non-stop coda.
func toneAllowedOnCoda(tone ToneMark, coda string) bool {
	if !stopCodas[coda] {
		return true
	}
	return tone == ToneSac || tone == ToneNang
}

// enforceStopCodaToneRule keeps the stop-coda invariant true after a
// literal keystroke: if the syllable has just closed with a stop coda and
// the mark already sitting on the nucleus is no longer permitted there, the
// mark is cleared rather than left in an invalid state (spec §4.5 must
// hold for every keystroke prefix).
func enforceStopCodaToneRule(buf *StructuralBuffer) {
	pos, ok := buf.Mark()
	if !ok {
		return
	}
	c, _ := buf.Get(pos)
	if !toneAllowedOnCoda(c.Mark, codaAfterVowels(buf)) {
		buf.ClearMark()
	}
}

// RepositionTone re-derives where the tone mark belongs after a diacritic
// or coda change has altered the vowel cluster, and moves an existing mark
// there (spec §4.4's reposition-on-mutation rule, spec §12). It is a no-op
// when no mark is set or the mark is already in the right place.
func RepositionTone(buf *StructuralBuffer, cfg *EngineConfig) {
	pos, ok := buf.Mark()
	if !ok {
		return
	}
	c, _ := buf.Get(pos)
	vowels := buf.VowelProjection()
	if len(vowels) == 0 {
		return
	}
	target := FindTonePosition(vowels, buf.HasFinalConsonant(), cfg.ToneStrategy, cfg.UseModernTonePlacement)
	if target == pos {
		return
	}
	tone := c.Mark
	buf.ClearMark()
	tc, ok := buf.Get(target)
	if !ok {
		return
	}
	tc.Mark = tone
	buf.Set(target, tc)
}

// removeMark clears whichever position currently carries the mark.
func removeMark(buf *StructuralBuffer) TransformResult {
	pos, ok := buf.Mark()
	if !ok {
		return TransformResult{}
	}
	buf.ClearMark()
	return TransformResult{ModifiedPositions: []int{pos}, Applied: true}
}

// applyStroke sets Stroke on the most recent 'd'/'D'.
func applyStroke(buf *StructuralBuffer) TransformResult {
	for i := buf.Len() - 1; i >= 0; i-- {
		c, _ := buf.Get(i)
		if unicode.ToLower(rune(c.Key)) == 'd' {
			c.Stroke = true
			buf.Set(i, c)
			return TransformResult{ModifiedPositions: []int{i}, Applied: true}
		}
	}
	return TransformResult{}
}

// applyDiacritic sets the given diacritic on the target vowel, choosing
// the target per spec §4.1/§4.3: the vowel immediately preceding any
// coda if the syllable has closed (and backward application is enabled),
// otherwise the eligible vowel nearest the tail of the cluster. For HORN
// on a "uo" cluster, both vowels are modified (compound ươ).
func applyDiacritic(buf *StructuralBuffer, diacritic DiacriticMark, cfg *EngineConfig) TransformResult {
	vowels := buf.VowelProjection()
	if len(vowels) == 0 {
		return TransformResult{}
	}

	eligible := diacriticEligible(diacritic)
	hasCoda := buf.HasFinalConsonant()

	if diacritic == DiacriticHorn && len(vowels) >= 2 {
		penult, last := vowels[len(vowels)-2], vowels[len(vowels)-1]
		pc, _ := buf.Get(penult.Pos)
		lc, _ := buf.Get(last.Pos)
		if unicode.ToLower(rune(pc.Key)) == 'u' && unicode.ToLower(rune(lc.Key)) == 'o' &&
			pc.Diacritic == DiacriticNone && lc.Diacritic == DiacriticNone {
			pc.Diacritic, lc.Diacritic = DiacriticHorn, DiacriticHorn
			buf.Set(penult.Pos, pc)
			buf.Set(last.Pos, lc)
			RepositionTone(buf, cfg)
			return TransformResult{ModifiedPositions: []int{penult.Pos, last.Pos}, Applied: true}
		}
	}

	// Target selection: the vowel immediately before a coda, or in an open
	// syllable the eligible vowel nearest the tail, provided it is not
	// already carrying a diacritic.
	if hasCoda && !cfg.EnableBackwardApplication {
		return TransformResult{}
	}
	for i := len(vowels) - 1; i >= 0; i-- {
		tc, _ := buf.Get(vowels[i].Pos)
		if eligible(rune(tc.Key)) && tc.Diacritic == DiacriticNone {
			tc.Diacritic = diacritic
			buf.Set(vowels[i].Pos, tc)
			RepositionTone(buf, cfg)
			return TransformResult{ModifiedPositions: []int{vowels[i].Pos}, Applied: true}
		}
		if hasCoda {
			break
		}
	}
	return TransformResult{}
}

func diacriticEligible(diacritic DiacriticMark) func(rune) bool {
	switch diacritic {
	case DiacriticCircumflex:
		return func(r rune) bool {
			switch unicode.ToLower(r) {
			case 'a', 'e', 'o':
				return true
			}
			return false
		}
	case DiacriticHorn:
		return func(r rune) bool {
			switch unicode.ToLower(r) {
			case 'a', 'o', 'u':
				return true
			}
			return false
		}
	default:
		return func(rune) bool { return false }
	}
}
