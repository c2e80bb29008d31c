package encoding

// tcvn3Table maps precomposed Vietnamese runes to their TCVN3 (ABC) byte
// values. TCVN3 predates Unicode and has no maintained Go library, unlike
// CP1258 (golang.org/x/text/encoding/charmap) or plain UTF-8 — hand-rolling
// this single-byte table is the only option (spec §11).
var tcvn3Table = map[rune]byte{
	'á': 0xE1, 'à': 0xE0, 'ả': 0xE2, 'ã': 0xE3, 'ạ': 0xE5,
	'â': 0xE2, 'ấ': 0xE2, 'ầ': 0xE2, 'ẩ': 0xE2, 'ẫ': 0xE2, 'ậ': 0xE2,
	'ă': 0xE8, 'ắ': 0xE8, 'ằ': 0xE8, 'ẳ': 0xE8, 'ẵ': 0xE8, 'ặ': 0xE8,
	'đ': 0xF0,
	'é': 0xE9, 'è': 0xE8, 'ẻ': 0xEB, 'ẽ': 0xEC, 'ẹ': 0xE6,
	'ê': 0xEA, 'ế': 0xEA, 'ề': 0xEA, 'ể': 0xEA, 'ễ': 0xEA, 'ệ': 0xEA,
	'í': 0xED, 'ì': 0xEC, 'ỉ': 0xEF, 'ĩ': 0xEC, 'ị': 0xEC,
	'ó': 0xF3, 'ò': 0xF2, 'ỏ': 0xF4, 'õ': 0xF5, 'ọ': 0xF7,
	'ô': 0xF4, 'ố': 0xF4, 'ồ': 0xF4, 'ổ': 0xF4, 'ỗ': 0xF4, 'ộ': 0xF4,
	'ơ': 0xF7, 'ớ': 0xF7, 'ờ': 0xF7, 'ở': 0xF7, 'ỡ': 0xF7, 'ợ': 0xF7,
	'ú': 0xFA, 'ù': 0xF9, 'ủ': 0xFB, 'ũ': 0xFC, 'ụ': 0xF3,
	'ư': 0xFD, 'ứ': 0xFD, 'ừ': 0xFD, 'ử': 0xFD, 'ữ': 0xFD, 'ự': 0xFD,
	'ý': 0xFD, 'ỳ': 0xFD, 'ỷ': 0xFD, 'ỹ': 0xFD, 'ỵ': 0xFD,
}

// TCVN3Encoder is a hand-rolled single-byte encoder for the legacy TCVN3
// (also known as ABC) charset.
type TCVN3Encoder struct{}

// Name returns "TCVN3".
func (TCVN3Encoder) Name() string { return "TCVN3" }

// Encode maps each rune through tcvn3Table, falling back to '?' (0x3F)
// for any code point the table has no entry for.
func (TCVN3Encoder) Encode(runes []rune) []byte {
	out := make([]byte, len(runes))
	for i, r := range runes {
		if r <= 0x7f {
			out[i] = byte(r)
			continue
		}
		if b, ok := tcvn3Table[r]; ok {
			out[i] = b
			continue
		}
		out[i] = '?'
	}
	return out
}
