package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// CP1258Encoder encodes via Windows-1258, the single-byte Vietnamese
// codepage still used by some legacy Windows hosts.
type CP1258Encoder struct{}

// Name returns "CP1258".
func (CP1258Encoder) Name() string { return "CP1258" }

// Encode transliterates runes to CP1258 bytes one rune at a time; a rune
// the codepage cannot represent (such as a precomposed toned letter like
// 'ệ') is emitted as its UTF-8 bytes instead.
func (CP1258Encoder) Encode(runes []rune) []byte {
	out := make([]byte, 0, len(runes))
	for _, r := range runes {
		if b, ok := charmap.Windows1258.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		out = utf8.AppendRune(out, r)
	}
	return out
}

func replaceUnmappable(runes []rune, fallback rune) string {
	out := make([]rune, len(runes))
	for i, r := range runes {
		if r > 0xff {
			out[i] = fallback
		} else {
			out[i] = r
		}
	}
	return string(out)
}
