package engine

import "unicode"

// composeKey identifies one cell of the (base, diacritic, tone) rendering
// table. Caps is applied afterwards via unicode.To{Upper,Lower} rather than
// doubling every entry, so the table itself only needs the lowercase axis.
type composeKey struct {
	base      rune
	diacritic DiacriticMark
	tone      ToneMark
}

// baseWithDiacritic gives the lowercase vowel produced by applying a
// diacritic to a bare vowel. This is the seed table from which the full
// (base, diacritic, tone) table below is generated.
var baseWithDiacritic = map[rune]map[DiacriticMark]rune{
	'a': {DiacriticCircumflex: 'â', DiacriticHorn: 'ă'}, // horn-on-a is breve
	'e': {DiacriticCircumflex: 'ê'},
	'o': {DiacriticCircumflex: 'ô', DiacriticHorn: 'ơ'},
	'u': {DiacriticHorn: 'ư'},
}

// toneOfVowel gives every tone variant of a lowercase (possibly
// diacritic-modified) vowel. This is the other seed table; composeTable is
// their generated cross product.
var toneOfVowel = map[rune]map[ToneMark]rune{
	'a': {ToneNone: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'ă': {ToneNone: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'â': {ToneNone: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'e': {ToneNone: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'ê': {ToneNone: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'i': {ToneNone: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'o': {ToneNone: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'ô': {ToneNone: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'ơ': {ToneNone: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'u': {ToneNone: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'ư': {ToneNone: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'y': {ToneNone: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
}

// composeTable is generated at init time as the cross product of
// baseWithDiacritic and toneOfVowel: every (base vowel, diacritic, tone)
// triple maps to its precomposed NFC code point. It is never hand-edited.
var composeTable map[composeKey]rune

func init() {
	composeTable = make(map[composeKey]rune, 6*3*6)
	for base, tones := range toneOfVowel {
		for tone, r := range tones {
			composeTable[composeKey{base: base, diacritic: DiacriticNone, tone: tone}] = r
		}
	}
	for base, diacritics := range baseWithDiacritic {
		for diacritic, modified := range diacritics {
			tones, ok := toneOfVowel[modified]
			if !ok {
				continue
			}
			for tone, r := range tones {
				composeTable[composeKey{base: base, diacritic: diacritic, tone: tone}] = r
			}
		}
	}
}

// renderVowel returns the precomposed code point for a vowel Char, honoring
// Caps. Falls back to the bare letter if the (diacritic, tone) combination
// has no table entry (should not happen for a well-formed buffer).
func renderVowel(c Char) rune {
	base := unicode.ToLower(rune(c.Key))
	r, ok := composeTable[composeKey{base: base, diacritic: c.Diacritic, tone: c.Mark}]
	if !ok {
		r = base
	}
	if c.Caps {
		r = unicode.ToUpper(r)
	}
	return r
}

// renderChar renders any buffer Char (vowel or consonant) to its display
// rune, applying stroke for 'd'/'đ'.
func renderChar(c Char) rune {
	if c.IsVowel() {
		return renderVowel(c)
	}
	base := unicode.ToLower(rune(c.Key))
	if base == 'd' && c.Stroke {
		base = 'đ'
	}
	if c.Caps {
		return unicode.ToUpper(base)
	}
	return base
}

// RenderBuffer composes the full display sequence for a structural buffer.
func RenderBuffer(b *StructuralBuffer) []rune {
	out := make([]rune, 0, b.Len())
	b.Iter(func(_ int, c Char) bool {
		out = append(out, renderChar(c))
		return true
	})
	return out
}
